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
	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
)

// returns the chip number and register offset for an address in the I/O
// area. the first return value is false if the address is not a SID address
func (mem *Memory) sidAddress(address uint16) (int, uint16, bool) {
	if mem.sid2 != 0 && address&0xffe0 == mem.sid2 {
		return 1, address & 0x1f, true
	}
	if address >= addresses.SIDOrigin && address <= addresses.SIDMemtop {
		return 0, address & 0x1f, true
	}
	return 0, 0, false
}

func (mem *Memory) readIO(address uint16, sideEffects bool) uint8 {
	io := mem.ioArea()

	if chip, offset, ok := mem.sidAddress(address); ok {
		switch offset {
		case addresses.PotX, addresses.PotY:
			return 0xff
		case addresses.Osc3:
			if sideEffects {
				return mem.rnd.FakeRead()
			}
		}

		if chip == 0 && offset < addresses.SIDExtended {
			return io[addresses.SIDOrigin+offset]
		}
		return io[address]
	}

	if sideEffects {
		switch address {
		case addresses.VICControl, addresses.VICRaster,
			addresses.CIA1TimerALo, addresses.CIA1TimerAHi,
			addresses.CIA1TimerBLo, addresses.CIA1TimerBHi,
			addresses.CIA2TimerALo, addresses.CIA2TimerAHi:
			return mem.rnd.FakeRead()
		}
	}

	return io[address]
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	io := mem.ioArea()

	chip, offset, ok := mem.sidAddress(address)
	if !ok {
		io[address] = data
		return
	}

	// fold SID registers in the repeated blocks onto the first block.
	// extended registers are stored at their real address
	if chip == 0 {
		if offset >= addresses.SIDExtended {
			io[address] = data
			return
		}
		address = addresses.SIDOrigin + offset
	}

	if offset <= addresses.Control+addresses.VoiceOffset*2 && offset%addresses.VoiceOffset == addresses.Control {
		voice := offset / addresses.VoiceOffset
		prev := io[address]
		if data&0x01 == 0x01 && prev&0x01 == 0x00 {
			mem.keyOn[chip][voice] = true
		} else if data&0x01 == 0x00 && prev&0x01 == 0x01 {
			mem.keyOff[chip][voice] = true
		}
	}

	io[address] = data
}

// ClearKeyLatches resets the key-on and key-off latches for every voice.
func (mem *Memory) ClearKeyLatches() {
	mem.keyOn = [2][addresses.NumVoices]bool{}
	mem.keyOff = [2][addresses.NumVoices]bool{}
}

// KeyLatches returns the key-on and key-off latches of the SID. Chip zero is
// the first SID and chip one is the second SID.
func (mem *Memory) KeyLatches(chip int) (keyOn [addresses.NumVoices]bool, keyOff [addresses.NumVoices]bool) {
	return mem.keyOn[chip], mem.keyOff[chip]
}

// SIDRegisters returns the 32 bytes of register storage of the SID. Chip zero
// is the first SID and chip one is the second SID. Returns nil if there is no
// second SID.
//
// The slice refers to the underlying memory and is only valid until the next
// write to the SID.
func (mem *Memory) SIDRegisters(chip int) []uint8 {
	io := mem.ioArea()
	if chip == 0 {
		return io[addresses.SIDOrigin : addresses.SIDOrigin+addresses.SIDSize]
	}
	if mem.sid2 == 0 {
		return nil
	}
	return io[mem.sid2 : mem.sid2+addresses.SIDSize]
}
