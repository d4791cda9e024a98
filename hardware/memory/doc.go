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

// Package memory implements the 64KB address space of the Commodore 64 as
// seen by a music player routine. There are three memory modes.
//
// BankSwitching honours the bank select value written to address 0x0001.
// Each area in the map below is either RAM or the area named on the right,
// depending on that value. Writes always go to RAM except for writes to the
// I/O area when it is visible.
//
//	0000 -> 9fff    RAM
//	a000 -> bfff    BASIC ROM    (v & 3) == 3
//	c000 -> cfff    RAM
//	d000 -> dfff    I/O          (v & 7) > 4
//	e000 -> ffff    KERNAL ROM   (v & 2) != 0
//
// TransparentROM only ever maps the I/O area. BASIC and KERNAL areas always
// read from RAM.
//
// PlaySID is a single flat address space. The I/O area is always visible and
// is backed by RAM. This is the environment expected by tunes that use the
// extended SID registers to play samples.
//
// The ROM areas do not contain real ROM images. They are filled with RTS
// instructions and the hardware vectors are set so that interrupt handlers
// return immediately. In the banked modes, jumps into ROM are redirected by
// the CPU (see RedirectJump()) so the contents rarely matter.
//
// The SID is mapped at 0xd400 and repeated every 32 bytes up to 0xd7ff. Writes
// anywhere in that range are folded onto the first 29 bytes. The remaining
// three bytes of each 32 byte block are stored at their real address. These
// are the extended registers used by the PlaySID sample environment.
//
// A second SID can be mapped to another 32 byte block in the I/O area. Writes
// to that block are not folded.
package memory
