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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6581/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6581/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Label(), "test")
	test.ExpectEquality(t, r8.String(), "test=0x00")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, _ = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 1)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)

	r8.Load(1)
	carry, _ = r8.Subtract(1, true)
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectSuccess(t, carry)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)

	r8.Load(0x40)
	test.ExpectSuccess(t, r8.IsBitV())
	test.ExpectEquality(t, r8.Address(), uint16(0x40))
}

func TestDecimalMode(t *testing.T) {
	var carry, zero, overflow, sign bool

	r8 := registers.NewRegister(0x09, "A")
	carry, _, _, _ = r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x10)
	test.ExpectFailure(t, carry)

	r8.Load(0x58)
	carry, _, _, _ = r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectSuccess(t, carry)

	// zero flag comes from the binary sum and sign flag from the half
	// adjusted result
	r8.Load(0x99)
	carry, zero, overflow, sign = r8.AddDecimal(0x01, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, zero)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, sign)

	r8.Load(0x46)
	carry, _, _, _ = r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectSuccess(t, carry)

	r8.Load(0x10)
	carry, _, _, _ = r8.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x09)
	test.ExpectSuccess(t, carry)

	r8.Load(0x00)
	carry, zero, _, sign = r8.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r8.Value(), 0x99)
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, zero)
	test.ExpectSuccess(t, sign)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.ExpectEquality(t, pc.Address(), uint16(0xfffe))
	test.ExpectFailure(t, pc.Add(1))
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
	pc.Load(0x1000)
	test.ExpectEquality(t, pc.String(), "0x1000")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer()
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))

	// pulling from a fresh stack moves out of the stack page
	test.ExpectFailure(t, sp.Pull())

	sp.Reset()
	test.ExpectSuccess(t, sp.Push())
	test.ExpectEquality(t, sp.Value(), uint8(0xfe))
	test.ExpectSuccess(t, sp.Pull())

	sp.Load(0x00)
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))
	test.ExpectFailure(t, sp.Push())
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "sv-bdIzc")
	test.ExpectEquality(t, sr.Value(), uint8(0x24))

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr.Load(0x00)
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.Label(), "SR")
}
