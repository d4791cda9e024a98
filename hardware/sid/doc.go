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

// Package sid emulates the MOS 6581 and MOS 8580 sound chips.
//
// The emulation is not cycle accurate. Registers are read once per tick
// (usually once per video frame) after the music player routine has run.
// Samples are then generated at the output sample rate until the next tick.
//
// The Tables type contains everything that can be precomputed for a chip
// model and sample rate: waveform tables, noise output tables, filter
// coefficients and the envelope tables. A Tables instance is immutable and
// can be shared by more than one Chip.
//
// Each Chip has three voices. Voices are linked in a ring for ring
// modulation and hard sync: voice one is modulated by voice three, voice two
// by voice one and voice three by voice two.
//
// Register updates happen in two passes. The first pass updates the
// frequency, pulse width, control and envelope registers of all three
// voices. The second pass finalises the waveform and sync state. The second
// pass requires the frequency of the modulating voice, which is why it can
// not happen in the first pass.
package sid
