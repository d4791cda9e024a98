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

// Package cpu emulates the 6510 CPU found in the Commodore 64. The emulation
// is instruction accurate rather than cycle accurate. The cycle count of each
// instruction is recorded in the LastResult field but no other part of the
// system is clocked by the CPU.
//
// The CPU is used to call into the init and play routines of a C64 music
// player. The Interpret() function sets up the registers, points the stack at
// the top of page one and then executes instructions until the routine
// returns. A routine returns when an RTS, RTI or BRK instruction pulls from
// the stack past the point at which the call was made.
//
// A call can also end without the routine returning. This is called a
// runaway and happens when the stack overflows, when the program counter
// wraps around the top of memory, when a JAM instruction is executed or when
// the routine executes more instructions than the budget allows. A runaway
// is logged but is not an error. Badly behaved music players do this on
// purpose or by accident and the emulation must carry on regardless.
//
// Bank switching is left to the memory implementation. The only question the
// CPU asks of memory, other than read and write, is whether a jump to an
// address should be redirected. See the Memory interface for details.
package cpu
