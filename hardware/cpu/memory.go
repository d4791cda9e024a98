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

// Memory is the interface to the 64KB address space as seen by the CPU.
type Memory interface {
	// Read and Write the address space with the side effects of the
	// underlying hardware.
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// RedirectJump returns true if a JMP or JSR to the address would land in
	// ROM that should not be executed. A redirected JSR does nothing. A
	// redirected JMP behaves like an RTS.
	RedirectJump(address uint16) bool
}
