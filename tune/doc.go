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

// Package tune describes C64 music files. A Tune can be created directly or
// parsed from the contents of a PSID or RSID file with ParsePSID().
//
// PSID header fields are big-endian. When the load address in the header is
// zero, the first two bytes of the data (little-endian) are the load address.
//
// The speed of each song is given by one bit of the 32 bit speed field. Bit 0
// is the speed of the first song. Songs beyond the 32nd use bit 31. A clear
// bit means the song is played once per video frame (VBI), a set bit means
// the song is timed by CIA 1 timer A.
package tune
