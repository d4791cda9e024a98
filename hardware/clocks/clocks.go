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

// Package clocks defines the CPU clock frequencies of the two television
// standards of the Commodore 64. The SID is clocked by the same signal so the
// values are used for oscillator frequencies as well as for calculating how
// often a music player routine is called.
//
// Values are the commonly quoted frequencies of the 6510 in PAL and NTSC
// machines.
package clocks

import "fmt"

// CPU clock frequencies in Hz.
const (
	PALHz  = 985248
	NTSCHz = 1022727
)

// Frame rates of the two standards. Music players driven by the vertical
// blank interrupt are called this many times per second.
const (
	PALFrameRate  = 50
	NTSCFrameRate = 60
)

// Clock identifies the television standard of a C64.
type Clock int

// List of valid Clock values.
const (
	PAL Clock = iota
	NTSC
)

func (c Clock) String() string {
	switch c {
	case PAL:
		return "PAL"
	case NTSC:
		return "NTSC"
	}
	return fmt.Sprintf("unknown clock (%d)", int(c))
}

// Hz returns the CPU frequency of the clock.
func (c Clock) Hz() int {
	if c == NTSC {
		return NTSCHz
	}
	return PALHz
}

// FrameRate returns the number of video frames per second.
func (c Clock) FrameRate() int {
	if c == NTSC {
		return NTSCFrameRate
	}
	return PALFrameRate
}

// Parse returns the Clock named by the string. Case is significant.
func Parse(s string) (Clock, error) {
	switch s {
	case "PAL":
		return PAL, nil
	case "NTSC":
		return NTSC, nil
	}
	return PAL, fmt.Errorf("clocks: unrecognised clock (%s)", s)
}
