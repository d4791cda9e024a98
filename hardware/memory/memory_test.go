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

package memory_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/memory"
	"github.com/jetsetilly/gopher6581/random"
	"github.com/jetsetilly/gopher6581/test"
)

func TestBankSelectTruthTable(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))

	expected := []struct {
		basic, io, kernal bool
	}{
		{false, false, false},
		{false, false, false},
		{false, false, true},
		{true, false, true},
		{false, false, false},
		{false, true, false},
		{false, true, true},
		{true, true, true},
	}

	for v, e := range expected {
		mem.Write(0x0001, uint8(v))
		basic, io, kernal := mem.Banks()
		test.ExpectEquality(t, basic, e.basic, v)
		test.ExpectEquality(t, io, e.io, v)
		test.ExpectEquality(t, kernal, e.kernal, v)

		// the upper bits of the bank select value are ignored
		mem.Write(0x0001, uint8(v)|0x30)
		basic, io, kernal = mem.Banks()
		test.ExpectEquality(t, basic, e.basic, v)
		test.ExpectEquality(t, io, e.io, v)
		test.ExpectEquality(t, kernal, e.kernal, v)
	}
}

func TestBankedReads(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))

	// all areas visible
	mem.Write(0x0001, 0x37)
	mem.Write(0xa000, 0x11)
	mem.Write(0xe000, 0x22)
	mem.Write(0xd020, 0x33)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x60))
	test.ExpectEquality(t, mem.Read(0xe000), uint8(0x60))
	test.ExpectEquality(t, mem.Read(0xd020), uint8(0x33))

	// all RAM. writes to ROM areas went to RAM. the write to I/O did not
	mem.Write(0x0001, 0x34)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0xe000), uint8(0x22))
	test.ExpectEquality(t, mem.Read(0xd020), uint8(0x00))

	// I/O with KERNAL
	mem.Write(0x0001, 0x36)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0xe000), uint8(0x60))
	test.ExpectEquality(t, mem.Read(0xd020), uint8(0x33))

	// hardware vectors in KERNAL ROM
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x48))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0xff))
}

func TestTransparentROM(t *testing.T) {
	mem := memory.NewMemory(memory.TransparentROM, random.NewRandom(0))
	mem.Write(0x0001, 0x37)
	mem.Write(0xa000, 0x11)
	mem.Write(0xe000, 0x22)
	test.ExpectEquality(t, mem.Read(0xa000), uint8(0x11))
	test.ExpectEquality(t, mem.Read(0xe000), uint8(0x22))

	test.ExpectSuccess(t, mem.RedirectJump(0xd000))
	test.ExpectSuccess(t, mem.RedirectJump(0xfffe))
	test.ExpectFailure(t, mem.RedirectJump(0xa000))

	mem.Write(0x0001, 0x35)
	test.ExpectFailure(t, mem.RedirectJump(0xe000))
}

func TestPlaySID(t *testing.T) {
	mem := memory.NewMemory(memory.PlaySID, random.NewRandom(0))
	mem.Write(0x0001, 0x30)
	mem.Write(0xe000, 0x22)
	test.ExpectEquality(t, mem.Read(0xe000), uint8(0x22))
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x48))

	// SID is visible regardless of bank select
	mem.Write(0xd418, 0x0f)
	test.ExpectEquality(t, mem.Read(0xd418), uint8(0x0f))
	test.ExpectEquality(t, mem.PeekRAM(0xd418), uint8(0x0f))

	for _, a := range []uint16{0xa000, 0xd000, 0xe000, 0xfffe} {
		test.ExpectFailure(t, mem.RedirectJump(a), fmt.Sprintf("%#04x", a))
	}
}

func TestJumpRedirection(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	mem.Write(0x0001, 0x37)
	test.ExpectSuccess(t, mem.RedirectJump(0xa000))
	test.ExpectSuccess(t, mem.RedirectJump(0xbfff))
	test.ExpectSuccess(t, mem.RedirectJump(0xd400))
	test.ExpectSuccess(t, mem.RedirectJump(0xea31))
	test.ExpectFailure(t, mem.RedirectJump(0x9fff))
	test.ExpectFailure(t, mem.RedirectJump(0xc000))

	mem.Write(0x0001, 0x35)
	test.ExpectFailure(t, mem.RedirectJump(0xa000))
	test.ExpectSuccess(t, mem.RedirectJump(0xd400))
	test.ExpectFailure(t, mem.RedirectJump(0xe000))
}

func TestSIDRegisterRoundTrip(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	mem.Write(0x0001, 0x37)

	for a := uint16(0xd400); a <= 0xd418; a++ {
		v := uint8(a) ^ 0xa5
		mem.Write(a, v)
		test.ExpectEquality(t, mem.Read(a), v)
	}

	// writes to a repeated block are folded onto the first block
	mem.Write(0xd425, 0x34)
	test.ExpectEquality(t, mem.Read(0xd405), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0xd7e5), uint8(0x34))

	// paddles always read as 0xff
	mem.Write(0xd419, 0x00)
	test.ExpectEquality(t, mem.Read(0xd419), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xd41a), uint8(0xff))

	// envelope register returns whatever was stored there
	mem.PokeIO(0xd41c, 0x80)
	test.ExpectEquality(t, mem.Read(0xd41c), uint8(0x80))

	// extended registers are not folded
	mem.Write(0xd41d, 0x55)
	mem.Write(0xd43d, 0x66)
	test.ExpectEquality(t, mem.Read(0xd41d), uint8(0x55))
	test.ExpectEquality(t, mem.Read(0xd43d), uint8(0x66))
	test.ExpectEquality(t, mem.PeekIO(0xd43d), uint8(0x66))

	regs := mem.SIDRegisters(0)
	test.ExpectEquality(t, len(regs), 32)
	test.ExpectEquality(t, regs[0x05], uint8(0x34))
	test.ExpectEquality(t, regs[0x1d], uint8(0x55))
}

func TestKeyLatches(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	mem.Write(0x0001, 0x37)

	mem.Write(0xd404, 0x11)
	on, off := mem.KeyLatches(0)
	test.ExpectSuccess(t, on[0])
	test.ExpectFailure(t, off[0])

	// writing the same gate value again does not latch
	mem.ClearKeyLatches()
	mem.Write(0xd404, 0x21)
	on, off = mem.KeyLatches(0)
	test.ExpectFailure(t, on[0])
	test.ExpectFailure(t, off[0])

	// gate off through a mirror for voice three
	mem.Write(0xd412, 0x41)
	mem.ClearKeyLatches()
	mem.Write(0xd432, 0x40)
	on, off = mem.KeyLatches(0)
	test.ExpectFailure(t, on[2])
	test.ExpectSuccess(t, off[2])

	// latches persist until they are cleared
	mem.Write(0xd40b, 0x01)
	mem.Write(0xd40b, 0x00)
	on, off = mem.KeyLatches(0)
	test.ExpectSuccess(t, on[1])
	test.ExpectSuccess(t, off[1])
	mem.ClearKeyLatches()
	on, off = mem.KeyLatches(0)
	test.ExpectFailure(t, on[1])
	test.ExpectFailure(t, off[1])
}

func TestSecondSID(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	mem.Write(0x0001, 0x37)

	test.ExpectFailure(t, mem.SetSecondSID(0xd401))
	test.ExpectFailure(t, mem.SetSecondSID(0xd400))
	test.ExpectFailure(t, mem.SetSecondSID(0xc000))
	test.ExpectEquality(t, len(mem.SIDRegisters(1)), 0)

	test.DemandSuccess(t, mem.SetSecondSID(0xd500))
	mem.Write(0xd504, 0x01)
	on, _ := mem.KeyLatches(1)
	test.ExpectSuccess(t, on[0])
	on, _ = mem.KeyLatches(0)
	test.ExpectFailure(t, on[0])

	test.ExpectEquality(t, mem.SIDRegisters(1)[4], uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xd404), uint8(0x00))

	// the second SID's extended offsets are plain registers
	mem.Write(0xd51d, 0x12)
	test.ExpectEquality(t, mem.Read(0xd51d), uint8(0x12))
}

func TestFakeReads(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	mem.Write(0x0001, 0x37)

	// peeking does not advance the timer
	test.ExpectEquality(t, mem.Peek(0xd012), uint8(0x00))

	test.ExpectEquality(t, mem.Read(0xd012), uint8(0))
	test.ExpectEquality(t, mem.Read(0xd011), uint8(1))
	test.ExpectEquality(t, mem.Read(0xdc04), uint8(22))
	test.ExpectEquality(t, mem.Read(0xd41b), uint8(0x29))

	// the sequence restarts on reset
	mem.Reset(clocks.PAL)
	mem.Write(0x0001, 0x37)
	test.ExpectEquality(t, mem.Read(0xdd05), uint8(0))
	test.ExpectEquality(t, mem.Read(0xdc07), uint8(1))

	// no fake reads when I/O is not visible
	mem.Write(0x0001, 0x34)
	test.ExpectEquality(t, mem.Read(0xd012), uint8(0))
	test.ExpectEquality(t, mem.Read(0xd012), uint8(0))
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	test.ExpectEquality(t, mem.PeekRAM(0x0000), uint8(0x2f))
	test.ExpectEquality(t, mem.PeekRAM(0x0001), uint8(0x37))
	test.ExpectEquality(t, mem.PeekRAM(0x0314), uint8(0x31))
	test.ExpectEquality(t, mem.PeekRAM(0x0315), uint8(0xea))
	test.ExpectEquality(t, mem.PeekRAM(0x0318), uint8(0x47))
	test.ExpectEquality(t, mem.PeekRAM(0x0319), uint8(0xfe))
	test.ExpectEquality(t, mem.PeekRAM(0x02a6), uint8(0x01))
	test.ExpectEquality(t, mem.PeekIO(0xdc04), uint8(0x25))
	test.ExpectEquality(t, mem.PeekIO(0xdc05), uint8(0x40))

	mem.Reset(clocks.NTSC)
	test.ExpectEquality(t, mem.PeekRAM(0x02a6), uint8(0x00))
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	test.ExpectSuccess(t, mem.Load(0x1000, []uint8{1, 2, 3}))
	test.ExpectEquality(t, mem.Peek(0x1002), uint8(3))

	err := mem.Load(0xfff0, make([]uint8, 32))
	test.ExpectSuccess(t, curated.Is(err, memory.LoadTooLarge))
}

func TestMemoryMap(t *testing.T) {
	mem := memory.NewMemory(memory.BankSwitching, random.NewRandom(0))
	expected := "C64 Memory Map (BankSwitching)\n----------\n" +
		"0000 -> 9fff\tRAM\n" +
		"a000 -> bfff\tBASIC\n" +
		"c000 -> cfff\tRAM\n" +
		"d000 -> d3ff\tI/O\n" +
		"d400 -> d7ff\tSID\n" +
		"d800 -> dfff\tI/O\n" +
		"e000 -> ffff\tKERNAL\n"
	test.ExpectEquality(t, mem.MemoryMap(), expected)

	mode, err := memory.ParseMode("playsid")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mode, memory.PlaySID)
}
