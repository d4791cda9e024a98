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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6581/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6581/logger"
)

// Sentinel error patterns returned by ExecuteInstruction(). Each one
// describes a runaway condition.
const (
	StackOverflow      = "cpu: stack overflow at %#04x"
	ProgramCounterWrap = "cpu: program counter wrapped at %#04x"
	Jammed             = "cpu: jam instruction (%#02x) at %#04x"
	BudgetExhausted    = "cpu: instruction budget (%d) exhausted"
)

// DefaultBudget is the number of instructions a single call to Interpret()
// may execute before it is considered a runaway. It is about two seconds of
// C64 time.
const DefaultBudget = 1000000

// the address of the processor port. the bank select value is written here
// at the start of each call to Interpret()
const processorPort = 0x0001

// CPU implements the 6510 found in the Commodore 64. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          Memory
	instructions []instructions.Definition

	// the result of the most recent call to ExecuteInstruction()
	LastResult Result

	// Returned is true when the most recent instruction has pulled from the
	// stack past the top of page one. ie. the routine called by Interpret()
	// has returned
	Returned bool

	// Budget is the maximum number of instructions executed by one call to
	// Interpret()
	Budget int

	// Permission for the CPU to log runaway conditions. Defaults to
	// logger.Allow
	Permission logger.Permission

	// the number of instructions and cycles in the most recent call to
	// Interpret()
	Instructions int
	Cycles       int
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
		Budget:       DefaultBudget,
		Permission:   logger.Allow,
	}
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The stack pointer is set to the top of
// page one.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Returned = false
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Reset()
	mc.Status.Reset()
}

// Interpret calls the routine at the start address. The bank select value is
// written to the processor port before the call and the A, X and Y registers
// are set to the values given.
//
// Returns true if the routine returned. Returns false if the routine ran
// away, in which case the reason is logged with the "cpu" tag.
func (mc *CPU) Interpret(start uint16, bankSelect uint8, a uint8, x uint8, y uint8) bool {
	mc.Reset()
	mc.PC.Load(start)
	mc.A.Load(a)
	mc.X.Load(x)
	mc.Y.Load(y)
	mc.mem.Write(processorPort, bankSelect)

	mc.Instructions = 0
	mc.Cycles = 0

	for mc.Instructions < mc.Budget {
		err := mc.ExecuteInstruction()
		mc.Instructions++
		mc.Cycles += mc.LastResult.Cycles
		if err != nil {
			logger.Logf(mc.Permission, "cpu", "routine at %#04x: %v", start, err)
			return false
		}
		if mc.Returned {
			return true
		}
	}

	logger.Logf(mc.Permission, "cpu", "routine at %#04x: %v", start,
		curated.Errorf(BudgetExhausted, mc.Budget))
	return false
}

// read8BitPC reads the byte at the PC and advances the PC by one.
func (mc *CPU) read8BitPC() (uint8, error) {
	v := mc.mem.Read(mc.PC.Address())
	if mc.PC.Add(1) {
		return v, curated.Errorf(ProgramCounterWrap, mc.LastResult.Address)
	}
	return v, nil
}

// read16BitPC reads the little-endian word at the PC and advances the PC by
// two.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage reads a word from the zero page. the high byte wraps
// around to the start of the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

func (mc *CPU) push(v uint8) error {
	mc.mem.Write(mc.SP.Address(), v)
	if !mc.SP.Push() {
		return curated.Errorf(StackOverflow, mc.LastResult.Address)
	}
	return nil
}

// pull returns false if the stack has been pulled past the top of page
// one. in that case the Returned flag is set.
func (mc *CPU) pull() (uint8, bool) {
	if !mc.SP.Pull() {
		mc.Returned = true
		return 0, false
	}
	return mc.mem.Read(mc.SP.Address()), true
}

// pullAddress pulls a little-endian word from the stack.
func (mc *CPU) pullAddress() (uint16, bool) {
	lo, ok := mc.pull()
	if !ok {
		return 0, false
	}
	hi, ok := mc.pull()
	if !ok {
		return 0, false
	}
	return (uint16(hi) << 8) | uint16(lo), true
}

func (mc *CPU) rts() {
	if address, ok := mc.pullAddress(); ok {
		mc.PC.Load(address + 1)
	}
}

func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.Cycles++

	from := mc.PC.Address()
	to := from + uint16(int16(int8(offset)))
	if from&0xff00 != to&0xff00 {
		mc.LastResult.Cycles++
		mc.LastResult.PageFault = true
	}

	mc.PC.Load(to)
}

func (mc *CPU) setZeroAndSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setZeroAndSign(mc.A)
	}
}

func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
	} else {
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setZeroAndSign(mc.A)
	}
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	cmp := registers.NewRegister(r.Value(), "")
	mc.Status.Carry, _ = cmp.Subtract(value, true)
	mc.setZeroAndSign(cmp)
}

// arr is the undocumented AND followed by ROR with its own flag rules.
func (mc *CPU) arr(value uint8) {
	t := mc.A.Value() & value
	var carry uint8
	if mc.Status.Carry {
		carry = 0x80
	}
	r := (t >> 1) | carry

	if !mc.Status.DecimalMode {
		mc.A.Load(r)
		mc.setZeroAndSign(mc.A)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r&0x40)^((r&0x20)<<1) != 0
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (r^t)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r = (r & 0x0f) | ((r + 0x60) & 0xf0)
		mc.Status.Carry = true
	} else {
		mc.Status.Carry = false
	}

	mc.A.Load(r)
}

// ExecuteInstruction steps the CPU forward one instruction. A non-nil error
// indicates a runaway condition. The Returned field should be checked after
// every call.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	// the address the instruction operates on and the value read from it
	var address uint16
	var value uint8

	// the unindexed address for the indexed modes. the undocumented SHA
	// family of instructions use the high byte
	var base uint16

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand

	case instructions.Immediate, instructions.Relative:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(value)

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = address

	case instructions.ZeroPage:
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(zp)
		address = uint16(zp)

	case instructions.Indirect:
		indirect, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = indirect

		// the high byte of the pointer is not incremented when the low byte
		// is 0xff. the pointer wraps around to the start of the same page
		lo := mc.mem.Read(indirect)
		hi := mc.mem.Read((indirect & 0xff00) | ((indirect + 1) & 0x00ff))
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(zp)
		address = mc.read16BitZeroPage(zp + mc.X.Value())

	case instructions.IndirectIndexed:
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(zp)
		base = mc.read16BitZeroPage(zp)
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = base
		address = base + mc.X.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = base
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(zp)
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		zp, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.Operand = uint16(zp)
		address = uint16(zp + mc.Y.Value())
	}

	if mc.LastResult.PageFault && defn.PageSensitive {
		mc.LastResult.Cycles++
	}

	// read value from memory for instructions that need it. immediate and
	// relative values have already been read
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		switch defn.Effect {
		case instructions.Read:
			value = mc.mem.Read(address)
		case instructions.RMW:
			value = mc.mem.Read(address)
			mc.acc8.Load(value)
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		if err := mc.push(mc.A.Value()); err != nil {
			return err
		}

	case instructions.Php:
		// the break flag is always set in the pushed value
		if err := mc.push(mc.Status.Value() | 0x10); err != nil {
			return err
		}

	case instructions.Pla:
		if v, ok := mc.pull(); ok {
			mc.A.Load(v)
			mc.setZeroAndSign(mc.A)
		}

	case instructions.Plp:
		// the break flag only exists in the pushed value
		if v, ok := mc.pull(); ok {
			mc.Status.Load(v &^ 0x10)
		}

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZeroAndSign(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZeroAndSign(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZeroAndSign(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZeroAndSign(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZeroAndSign(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZeroAndSign(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZeroAndSign(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZeroAndSign(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZeroAndSign(mc.Y)

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZeroAndSign(mc.X)

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZeroAndSign(mc.Y)

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZeroAndSign(mc.X)

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZeroAndSign(mc.Y)

	case instructions.Asl:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ASL()
			mc.setZeroAndSign(mc.A)
		} else {
			mc.Status.Carry = mc.acc8.ASL()
			mc.setZeroAndSign(mc.acc8)
		}

	case instructions.Lsr:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.LSR()
			mc.setZeroAndSign(mc.A)
		} else {
			mc.Status.Carry = mc.acc8.LSR()
			mc.setZeroAndSign(mc.acc8)
		}

	case instructions.Rol:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
			mc.setZeroAndSign(mc.A)
		} else {
			mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
			mc.setZeroAndSign(mc.acc8)
		}

	case instructions.Ror:
		if defn.AddressingMode == instructions.Implied {
			mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
			mc.setZeroAndSign(mc.A)
		} else {
			mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
			mc.setZeroAndSign(mc.acc8)
		}

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Inc:
		mc.acc8.Add(1, false)
		mc.setZeroAndSign(mc.acc8)

	case instructions.Dec:
		mc.acc8.Add(0xff, false)
		mc.setZeroAndSign(mc.acc8)

	case instructions.Jmp:
		if mc.mem.RedirectJump(address) {
			mc.rts()
		} else {
			mc.PC.Load(address)
		}

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		if mc.mem.RedirectJump(address) {
			break
		}

		// the address pushed is the address of the last byte of the JSR
		// instruction
		ret := mc.PC.Address() - 1
		if err := mc.push(uint8(ret >> 8)); err != nil {
			return err
		}
		if err := mc.push(uint8(ret)); err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts, instructions.Brk:
		mc.rts()

	case instructions.Rti:
		if v, ok := mc.pull(); ok {
			mc.Status.Load(v &^ 0x10)
			if address, ok := mc.pullAddress(); ok {
				mc.PC.Load(address)
			}
		}

	// undocumented instructions

	case instructions.Slo:
		mc.Status.Carry = mc.acc8.ASL()
		mc.A.ORA(mc.acc8.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Rla:
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.A.AND(mc.acc8.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Sre:
		mc.Status.Carry = mc.acc8.LSR()
		mc.A.EOR(mc.acc8.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Rra:
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.adc(mc.acc8.Value())

	case instructions.Dcp:
		mc.acc8.Add(0xff, false)
		mc.compare(mc.A, mc.acc8.Value())

	case instructions.Isb:
		mc.acc8.Add(1, false)
		mc.sbc(mc.acc8.Value())

	case instructions.Sax:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value())

	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZeroAndSign(mc.A)

	case instructions.Anc:
		mc.A.AND(value)
		mc.setZeroAndSign(mc.A)
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZeroAndSign(mc.A)

	case instructions.Arr:
		mc.arr(value)

	case instructions.Ane:
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setZeroAndSign(mc.A)

	case instructions.Lxa:
		mc.A.Load((mc.A.Value() | 0xee) & value)
		mc.X.Load(mc.A.Value())
		mc.setZeroAndSign(mc.A)

	case instructions.Sbx:
		ax := mc.A.Value() & mc.X.Value()
		mc.X.Load(ax - value)
		mc.Status.Carry = ax >= value
		mc.setZeroAndSign(mc.X)

	case instructions.Sha:
		mc.mem.Write(address, mc.A.Value()&mc.X.Value()&(uint8(base>>8)+1))

	case instructions.Shx:
		mc.mem.Write(address, mc.X.Value()&(uint8(base>>8)+1))

	case instructions.Shy:
		mc.mem.Write(address, mc.Y.Value()&(uint8(base>>8)+1))

	case instructions.Tas:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.mem.Write(address, mc.SP.Value()&(uint8(base>>8)+1))

	case instructions.Las:
		v := value & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZeroAndSign(mc.A)

	case instructions.Jam:
		return curated.Errorf(Jammed, opcode, mc.LastResult.Address)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.RMW {
		mc.mem.Write(address, mc.acc8.Value())
	}

	return nil
}
