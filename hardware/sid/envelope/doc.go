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

// Package envelope implements the ADSR envelope generator of the SID.
//
// Each voice has a State. The State is advanced once per output sample and
// returns the current envelope volume in the range 0 to 255. The shape of
// the envelope is determined by the attack/decay and sustain/release
// registers of the voice and by the gate bit of the control register.
//
// The Tables type contains the rate tables and the release curve. Tables
// are built for a sample rate and are shared by every voice. They should be
// rebuilt (with NewTables()) whenever the sample rate changes.
//
// The attack phase climbs linearly towards 255. The decay and release phases
// follow the release curve, which is exponential-like in the same way as the
// real SID. Both decay and release count down from the current volume, not
// from the top of the curve. This means that releasing a note during the
// attack phase starts the release from wherever the attack had reached.
package envelope
