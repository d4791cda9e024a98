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

// Package hardware is the base package for the C64 music player emulation.
// The Engine type contains the CPU, the memory and the SID chips and produces
// PCM audio with the FillBuffer() function.
//
// A tune is loaded with Load(). Loading resets the memory and the chips,
// places the tune's program in memory and calls the tune's init routine. The
// engine then calls the play routine once per tick, where the length of a
// tick depends on the song's speed. A tick is either a video frame or the
// period of CIA 1 timer A.
//
// Audio is pulled from the engine. Each call to FillBuffer() runs as many
// ticks as necessary to fill the buffer. A tick that produces more samples
// than there is room for continues in the next call.
//
// The Engine is not safe for concurrent use.
package hardware
