// This file is part of Gopher6581.
//
// Gopher6581 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6581 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6581.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6581/random"
)

// Sentinel error patterns.
const (
	LoadTooLarge      = "memory: data (%d bytes) does not fit at %#04x"
	InvalidSIDAddress = "memory: invalid address for second SID (%#04x)"
)

// Mode specifies how the memory responds to bank switching.
type Mode int

// List of valid Mode values.
const (
	BankSwitching Mode = iota
	TransparentROM
	PlaySID
)

func (m Mode) String() string {
	switch m {
	case BankSwitching:
		return "BankSwitching"
	case TransparentROM:
		return "TransparentROM"
	case PlaySID:
		return "PlaySID"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

// ParseMode returns the Mode named by the string. The match is not case
// sensitive.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{BankSwitching, TransparentROM, PlaySID} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return BankSwitching, fmt.Errorf("memory: unrecognised mode (%s)", s)
}

// Memory is the C64 address space.
type Memory struct {
	mode Mode

	ram [0x10000]uint8

	// ROM and I/O share one array. BASIC and KERNAL ROM are in their usual
	// place and I/O is at 0xd000 to 0xdfff. not used in the PlaySID mode
	rom [0x10000]uint8

	// bank state derived from the value at address 0x0001
	basic  bool
	io     bool
	kernal bool

	// address of the second SID. zero if there is no second SID
	sid2 uint16

	// key latches for each voice of each SID. a latch is set by the write path
	// and stays set until ClearKeyLatches() is called
	keyOn  [2][addresses.NumVoices]bool
	keyOff [2][addresses.NumVoices]bool

	// the fake read timer
	rnd *random.Random
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The random argument is used to generate values for hardware registers that
// aren't otherwise emulated.
func NewMemory(mode Mode, rnd *random.Random) *Memory {
	mem := &Memory{
		mode: mode,
		rnd:  rnd,
	}
	mem.Reset(clocks.PAL)
	return mem
}

// Mode returns the memory mode.
func (mem *Memory) Mode() Mode {
	return mem.mode
}

// SetMode changes the memory mode. Memory should be Reset() afterwards.
func (mem *Memory) SetMode(mode Mode) {
	mem.mode = mode
}

// SetSecondSID sets the address of the second SID. An address of zero removes
// the second SID. The address must be a 32 byte block in the I/O area but
// cannot be the first block of the SID area.
func (mem *Memory) SetSecondSID(address uint16) error {
	if address == 0 {
		mem.sid2 = 0
		return nil
	}
	if address&0x1f != 0 || address < addresses.IOOrigin || address > addresses.IOMemtop || address == addresses.SIDOrigin {
		return curated.Errorf(InvalidSIDAddress, address)
	}
	mem.sid2 = address
	return nil
}

// SecondSID returns the address of the second SID or zero if there is no
// second SID.
func (mem *Memory) SecondSID() uint16 {
	return mem.sid2
}

// Reset memory to the state expected by a music player immediately after the
// C64 has been switched on.
func (mem *Memory) Reset(clock clocks.Clock) {
	clear(mem.ram[:])
	clear(mem.rom[:])
	mem.rnd.Reset()
	mem.ClearKeyLatches()

	mem.ram[addresses.DataDirection] = 0x2f
	mem.SetBankSelect(0x37)

	mem.pokeWord(mem.ram[:], addresses.IRQVector, addresses.KernalIRQ)
	mem.pokeWord(mem.ram[:], addresses.NMIVector, addresses.KernalNMI)

	if clock == clocks.PAL {
		mem.ram[addresses.PALFlag] = 0x01
	}

	// ROM. BASIC and KERNAL areas are filled with RTS
	for a := int(addresses.BasicOrigin); a <= int(addresses.BasicMemtop); a++ {
		mem.rom[a] = 0x60
	}
	for a := int(addresses.KernalOrigin); a <= 0xffff; a++ {
		mem.rom[a] = 0x60
	}

	// hardware vectors. in the PlaySID mode they are in RAM
	vectors := mem.rom[:]
	if mem.mode == PlaySID {
		vectors = mem.ram[:]
	}
	mem.pokeWord(vectors, addresses.NMI, addresses.KernalNMIEntry)
	mem.pokeWord(vectors, addresses.Reset, addresses.KernalReset)
	mem.pokeWord(vectors, addresses.IRQ, addresses.KernalIRQEntry)

	// the CIA timer as it is left by the KERNAL
	io := mem.ioArea()
	mem.pokeWord(io, addresses.CIA1TimerALo, addresses.CIA1TimerReset)
}

func (mem *Memory) pokeWord(area []uint8, address uint16, value uint16) {
	area[address] = uint8(value)
	area[address+1] = uint8(value >> 8)
}

// ioArea returns the array that backs the I/O area.
func (mem *Memory) ioArea() []uint8 {
	if mem.mode == PlaySID {
		return mem.ram[:]
	}
	return mem.rom[:]
}

// Load data into RAM at the origin address.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(mem.ram) {
		return curated.Errorf(LoadTooLarge, len(data), origin)
	}
	copy(mem.ram[origin:], data)
	return nil
}

// SetBankSelect writes the bank select value to address 0x0001 and updates
// the bank state.
func (mem *Memory) SetBankSelect(value uint8) {
	mem.ram[addresses.ProcessorPort] = value
	mem.basic = value&0x03 == 0x03
	mem.io = value&0x07 > 0x04
	mem.kernal = value&0x02 != 0x00
}

// Banks returns the visibility of the BASIC, I/O and KERNAL areas. The I/O
// area is always visible in the PlaySID mode.
func (mem *Memory) Banks() (basic bool, io bool, kernal bool) {
	if mem.mode == PlaySID {
		return false, true, false
	}
	if mem.mode == TransparentROM {
		return false, mem.io, mem.kernal
	}
	return mem.basic, mem.io, mem.kernal
}

func (mem *Memory) ioVisible() bool {
	return mem.mode == PlaySID || mem.io
}

// RedirectJump implements the cpu.Memory interface.
func (mem *Memory) RedirectJump(address uint16) bool {
	switch mem.mode {
	case BankSwitching:
		switch {
		case address >= addresses.BasicOrigin && address <= addresses.BasicMemtop:
			return mem.basic
		case address >= addresses.IOOrigin && address <= addresses.IOMemtop:
			return mem.io
		case address >= addresses.KernalOrigin:
			return mem.kernal
		}
	case TransparentROM:
		return address >= addresses.IOOrigin && mem.kernal
	}
	return false
}

// Read implements the cpu.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.read(address, true)
}

// Peek returns the byte visible to the CPU at the address without side
// effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address, false)
}

func (mem *Memory) read(address uint16, sideEffects bool) uint8 {
	switch {
	case address < addresses.BasicOrigin:
		return mem.ram[address]
	case address <= addresses.BasicMemtop:
		if mem.mode == BankSwitching && mem.basic {
			return mem.rom[address]
		}
		return mem.ram[address]
	case address < addresses.IOOrigin:
		return mem.ram[address]
	case address <= addresses.IOMemtop:
		if mem.ioVisible() {
			return mem.readIO(address, sideEffects)
		}
		return mem.ram[address]
	}

	if mem.mode == BankSwitching && mem.kernal {
		return mem.rom[address]
	}
	return mem.ram[address]
}

// Write implements the cpu.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	if address == addresses.ProcessorPort {
		mem.SetBankSelect(data)
		return
	}

	if address >= addresses.IOOrigin && address <= addresses.IOMemtop && mem.ioVisible() {
		mem.writeIO(address, data)
		return
	}

	mem.ram[address] = data
}

// Poke stores a byte at the address visible to the CPU without side effects.
// The I/O area is written to directly, without SID register folding or key
// latching.
func (mem *Memory) Poke(address uint16, data uint8) {
	if address >= addresses.IOOrigin && address <= addresses.IOMemtop && mem.ioVisible() {
		mem.ioArea()[address] = data
		return
	}
	mem.ram[address] = data
}

// PeekRAM returns the RAM byte at the address regardless of the bank state.
func (mem *Memory) PeekRAM(address uint16) uint8 {
	return mem.ram[address]
}

// PeekIO returns the byte at the address in the I/O area regardless of the
// bank state and without side effects.
func (mem *Memory) PeekIO(address uint16) uint8 {
	return mem.ioArea()[address]
}

// PokeIO stores a byte in the I/O area regardless of the bank state.
func (mem *Memory) PokeIO(address uint16, data uint8) {
	mem.ioArea()[address] = data
}
