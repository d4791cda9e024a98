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

	"github.com/jetsetilly/gopher6581/hardware/cpu/instructions"
)

// Result records the outcome of the most recently executed instruction.
type Result struct {
	// the address at which the instruction was found
	Address uint16

	Defn instructions.Definition

	// the operand as it appeared in memory. only meaningful for instructions
	// of two or three bytes
	Operand uint16

	// number of cycles taken by the instruction, including any page fault or
	// branch penalty
	Cycles int

	// whether indexing or branching crossed a page boundary
	PageFault bool
}

// Reset the result to the zero value.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	var operand string

	switch r.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf("$%02x", r.Operand)
	case 3:
		operand = fmt.Sprintf("$%04x", r.Operand)
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	}

	var pf string
	if r.PageFault {
		pf = " page-fault"
	}

	return fmt.Sprintf("%#04x\t%s\t%s\t[%d]%s", r.Address, r.Defn.Operator, operand, r.Cycles, pf)
}
