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

// Package digi emulates the sample playback extensions of the PlaySID
// environment. Music players written for PlaySID trigger sample playback by
// writing to addresses in the SID area that are not SID registers.
//
// There are two channel slots. The registers for slot zero are in the
// extended bytes of the 0xd400 block and its repeats. The registers for slot
// one are in the same places in the 0xd500 block. The control byte for each
// slot is at offset 0x1d.
//
//	0xff    start sample playback
//	0xfe    start sample playback at half volume
//	0xfd    stop sample playback
//	0x00    no command
//
// Any other value written to the control byte of slot zero starts Galway
// noise playback. The value is the number of tones to play.
//
// Sample playback walks a range of memory and plays each byte as two 4 bit
// samples. Galway playback generates a ramped square wave from a table of
// tone lengths.
//
// CheckForInit() should be called once per tick, after the music player
// routine has been called, and before any samples are generated for the
// tick. The control byte is cleared after a command has been read.
package digi
