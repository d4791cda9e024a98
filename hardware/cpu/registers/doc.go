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

// Package registers implements the 6510 register types. The 8 bit Register
// type is used for the accumulator and the index registers. The
// ProgramCounter, StackPointer and StatusRegister types are special purpose.
//
// Arithmetic and logical operations are methods on the Register type. Flags
// are not updated automatically. The CPU inspects the register after the
// operation and updates the StatusRegister itself. For example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
package registers
