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

package registers

// AddDecimal adds value to register as though both are binary coded decimal.
// Returns the new carry, zero, overflow and sign states.
//
// The flags follow the NMOS behaviour. The zero flag is taken from the
// binary sum. The sign and overflow flags are taken after the low nibble has
// been adjusted but before the high nibble is adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	a := uint16(r.value)
	v := uint16(val)
	var c uint16
	if carry {
		c = 1
	}

	zero := uint8(a+v+c) == 0

	tmp := (a & 0x0f) + (v & 0x0f) + c
	if tmp > 0x09 {
		tmp += 0x06
	}
	if tmp <= 0x0f {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (v & 0xf0)
	} else {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (v & 0xf0) + 0x10
	}

	sign := tmp&0x80 == 0x80
	overflow := (a^tmp)&0x80 == 0x80 && (a^v)&0x80 == 0

	if tmp&0x1f0 > 0x90 {
		tmp += 0x60
	}

	r.value = uint8(tmp)

	return tmp&0xff0 > 0xf0, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal. Returns the new carry, zero, overflow and sign states.
//
// All flags are the same as they would be for a binary subtraction. Only the
// value left in the register differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	bin := NewRegister(r.value, "")
	rcarry, overflow := bin.Subtract(val, carry)

	a := uint16(r.value)
	v := uint16(val)
	var borrow uint16
	if !carry {
		borrow = 1
	}

	tmp := (a & 0x0f) - (v & 0x0f) - borrow
	if tmp&0x10 == 0x10 {
		tmp = ((tmp - 0x06) & 0x0f) | ((a & 0xf0) - (v & 0xf0) - 0x10)
	} else {
		tmp = (tmp & 0x0f) | ((a & 0xf0) - (v & 0xf0))
	}
	if tmp&0x100 == 0x100 {
		tmp -= 0x60
	}

	r.value = uint8(tmp)

	return rcarry, bin.IsZero(), overflow, bin.IsNegative()
}
