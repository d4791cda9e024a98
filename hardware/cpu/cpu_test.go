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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6581/hardware/cpu"
	"github.com/jetsetilly/gopher6581/test"
)

type mockMem struct {
	internal []uint8
	redirect map[uint16]bool
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		redirect: make(map[uint16]bool),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) RedirectJump(address uint16) bool {
	return mem.redirect[address]
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
}

func prepare(mem *mockMem, origin uint16) *cpu.CPU {
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.PC.Load(origin)
	return mc
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0x1000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8, 0x08, 0x28)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))
	test.ExpectEquality(t, mem.Read(0x01ff), uint8(0x34))

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
}

func TestArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)

	// LDA #1; ADC #10; SEC; SBC #8
	mem.putInstructions(0x1000, 0xa9, 0x01, 0x69, 0x0a, 0x38, 0xe9, 0x08)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(11))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(3))
	test.ExpectSuccess(t, mc.Status.Carry)

	// SED; CLC; LDA #$09; ADC #$01
	mc.PC.Load(0x1100)
	mem.putInstructions(0x1100, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestShiftsAndMemory(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)

	// LDA #$81; ASL A; ASL $2000
	mem.putInstructions(0x1000, 0xa9, 0x81, 0x0a, 0x0e, 0x00, 0x20)
	mem.Write(0x2000, 0x40)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x80))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))

	// INC $2000; DEC $2000; DEC $2000
	mem.putInstructions(0x1006, 0xee, 0x00, 0x20, 0xce, 0x00, 0x20, 0xce, 0x00, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x81))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x7f))
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)

	// LDA $20FF,X crossing a page
	mem.putInstructions(0x1000, 0xbd, 0xff, 0x20)
	mem.Write(0x2100, 0x99)
	mc.X.Load(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// LDA ($80),Y
	mem.putInstructions(0x1003, 0xb1, 0x80)
	mem.Write(0x0080, 0x00)
	mem.Write(0x0081, 0x30)
	mem.Write(0x3005, 0x42)
	mc.Y.Load(0x05)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))

	// LDA ($7f,X) with X=1
	mem.putInstructions(0x1005, 0xa1, 0x7f)
	mem.Write(0x3000, 0x24)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x24))

	// zero page indexing wraps within the zero page
	mem.putInstructions(0x1007, 0xb5, 0xff)
	mem.Write(0x0000, 0x11)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x11))

	// JMP ($30FF) does not cross the page to find the high byte
	mem.putInstructions(0x1009, 0x6c, 0xff, 0x30)
	mem.Write(0x30ff, 0x00)
	mem.Write(0x3000, 0x40)
	mem.Write(0x3100, 0x50)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x4000))
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDX #$03; DEX; BNE -3; RTS
	mem.putInstructions(0x1000, 0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x60)
	test.ExpectSuccess(t, mc.Interpret(0x1000, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Instructions, 8)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestInterpret(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// LDA #$42; STA $2000; RTS
	mem.putInstructions(0x1000, 0xa9, 0x42, 0x8d, 0x00, 0x20, 0x60)
	test.ExpectSuccess(t, mc.Interpret(0x1000, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x42))
	test.ExpectEquality(t, mem.Read(0x0001), uint8(0x37))
	test.ExpectSuccess(t, mc.Returned)

	// registers are set by Interpret
	mem.putInstructions(0x1100, 0x60)
	test.ExpectSuccess(t, mc.Interpret(0x1100, 0x35, 1, 2, 3))
	test.ExpectEquality(t, mc.A.Value(), uint8(1))
	test.ExpectEquality(t, mc.X.Value(), uint8(2))
	test.ExpectEquality(t, mc.Y.Value(), uint8(3))
	test.ExpectEquality(t, mem.Read(0x0001), uint8(0x35))

	// BRK ends the call in the same way as RTS
	mem.putInstructions(0x1200, 0x00)
	test.ExpectSuccess(t, mc.Interpret(0x1200, 0x37, 0, 0, 0))
}

func TestSubroutines(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// JSR $1010; RTS
	mem.putInstructions(0x1000, 0x20, 0x10, 0x10, 0x60)

	// LDX #$05; RTS
	mem.putInstructions(0x1010, 0xa2, 0x05, 0x60)

	test.ExpectSuccess(t, mc.Interpret(0x1000, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x05))

	// return address is the last byte of the JSR instruction
	test.ExpectEquality(t, mem.Read(0x01ff), uint8(0x10))
	test.ExpectEquality(t, mem.Read(0x01fe), uint8(0x02))

	// RTI pulls the status and then the address
	mem.putInstructions(0x1100, 0xa9, 0x12, 0x48, 0xa9, 0x00, 0x48, 0xa9, 0xc3, 0x48, 0x40)
	mem.putInstructions(0x1200, 0x60)
	test.ExpectSuccess(t, mc.Interpret(0x1100, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.Status.String(), "SV-bdiZC")
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x1200))
}

func TestJumpRedirection(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mem.redirect[0xe000] = true

	// JSR $E000; LDA #$01; RTS
	mem.putInstructions(0x1000, 0x20, 0x00, 0xe0, 0xa9, 0x01, 0x60)
	mem.putInstructions(0xe000, 0xa9, 0xff, 0x60)
	test.ExpectSuccess(t, mc.Interpret(0x1000, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))

	// JMP $E000 behaves as RTS
	mem.putInstructions(0x1100, 0xa9, 0x02, 0x4c, 0x00, 0xe0)
	test.ExpectSuccess(t, mc.Interpret(0x1100, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))

	// JMP to an address that is not redirected
	delete(mem.redirect, 0xe000)
	test.ExpectSuccess(t, mc.Interpret(0x1100, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
}

func TestRunaways(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// PHA; JMP $1000
	mem.putInstructions(0x1000, 0x48, 0x4c, 0x00, 0x10)
	test.ExpectFailure(t, mc.Interpret(0x1000, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.Instructions, 511)

	// JMP $FFFF; NOP
	mem.putInstructions(0x1100, 0x4c, 0xff, 0xff)
	mem.putInstructions(0xffff, 0xea)
	test.ExpectFailure(t, mc.Interpret(0x1100, 0x37, 0, 0, 0))

	// JAM
	mem.putInstructions(0x1200, 0x02)
	test.ExpectFailure(t, mc.Interpret(0x1200, 0x37, 0, 0, 0))

	// JMP $1300 forever
	mem.putInstructions(0x1300, 0x4c, 0x00, 0x13)
	mc.Budget = 100
	test.ExpectFailure(t, mc.Interpret(0x1300, 0x37, 0, 0, 0))
	test.ExpectEquality(t, mc.Instructions, 100)
}

func TestUndocumented(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)

	// LXA #$0F
	mem.putInstructions(0x1000, 0xab, 0x0f)
	mc.A.Load(0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0e))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x0e))

	// ANE #$FF
	mem.putInstructions(0x1002, 0x8b, 0xff)
	mc.A.Load(0x00)
	mc.X.Load(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xee))
	test.ExpectSuccess(t, mc.Status.Sign)

	// LAX $2000
	mem.putInstructions(0x1004, 0xaf, 0x00, 0x20)
	mem.Write(0x2000, 0x55)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x55))

	// SAX $2001
	mem.putInstructions(0x1007, 0x8f, 0x01, 0x20)
	mc.A.Load(0xf0)
	mc.X.Load(0x3c)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2001), uint8(0x30))

	// DCP $2002
	mem.putInstructions(0x100a, 0xcf, 0x02, 0x20)
	mem.Write(0x2002, 0x10)
	mc.A.Load(0x0f)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2002), uint8(0x0f))
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// ISB $2003
	mem.putInstructions(0x100d, 0xef, 0x03, 0x20)
	mem.Write(0x2003, 0x00)
	mc.A.Load(0x05)
	mc.Status.Carry = true
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2003), uint8(0x01))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x04))
	test.ExpectSuccess(t, mc.Status.Carry)

	// SLO $2004
	mem.putInstructions(0x1010, 0x0f, 0x04, 0x20)
	mem.Write(0x2004, 0x81)
	mc.A.Load(0x00)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2004), uint8(0x02))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)

	// SBX #$02
	mem.putInstructions(0x1013, 0xcb, 0x02)
	mc.A.Load(0x0f)
	mc.X.Load(0x03)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x01))
	test.ExpectSuccess(t, mc.Status.Carry)

	// SHX $20F0,Y
	mem.putInstructions(0x1015, 0x9e, 0xf0, 0x20)
	mc.X.Load(0xff)
	mc.Y.Load(0x10)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x2100), uint8(0x21))

	// ANC #$80
	mem.putInstructions(0x1018, 0x0b, 0x80)
	mc.A.Load(0xff)
	mc.Status.Carry = false
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Carry)

	// ALR #$03
	mem.putInstructions(0x101a, 0x4b, 0x03)
	mc.A.Load(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectSuccess(t, mc.Status.Carry)

	// ARR #$FF
	mem.putInstructions(0x101c, 0x6b, 0xff)
	mc.A.Load(0xff)
	mc.Status.Carry = false
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x7f))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Overflow)

	// SBC #$01 undocumented opcode
	mem.putInstructions(0x101e, 0xeb, 0x01)
	mc.A.Load(0x05)
	mc.Status.Carry = true
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x04))

	// NOP $2000 is three bytes
	mem.putInstructions(0x1020, 0x0c, 0x00, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1023))
}

func TestString(t *testing.T) {
	mem := newMockMem()
	mc := prepare(mem, 0x1000)
	s := mc.String()
	test.ExpectSuccess(t, strings.Contains(s, "PC=0x1000"))
	test.ExpectSuccess(t, strings.Contains(s, "SR=sv-bdIzc"))

	mem.putInstructions(0x1000, 0xa9, 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.String(), "0x1000\tLDA\t#$42\t[2]")
}
