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

import (
	"fmt"
)

// the stack occupies page one of memory.
const (
	stackBottom = 0x0100
	stackTop    = 0x01ff
)

// StackPointer is the SP register. Unlike the real 8 bit register the value
// is held as a full address so that under and overflow of the stack page can
// be detected. Stack overflow in a player routine is a runaway. Pulling past
// the top of the stack is how a call into the player routine returns.
type StackPointer struct {
	value uint16
}

// NewStackPointer returns a StackPointer pointing at the top of the stack.
func NewStackPointer() StackPointer {
	return StackPointer{value: stackTop}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.Value())
}

// Reset the stack pointer to the top of the stack.
func (sp *StackPointer) Reset() {
	sp.value = stackTop
}

// Value returns the low byte of the stack pointer, as it would be seen by
// the TSX instruction.
func (sp StackPointer) Value() uint8 {
	return uint8(sp.value)
}

// Address returns the stack pointer as an address in page one.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load sets the low byte of the stack pointer. Used by the TXS instruction.
func (sp *StackPointer) Load(val uint8) {
	sp.value = stackBottom | uint16(val)
}

// Push moves the stack pointer down one place. Returns false if the stack
// pointer has moved below the stack page.
func (sp *StackPointer) Push() bool {
	sp.value--
	return sp.value >= stackBottom
}

// Pull moves the stack pointer up one place. Returns false if the stack
// pointer has moved above the stack page.
func (sp *StackPointer) Pull() bool {
	sp.value++
	return sp.value <= stackTop
}
