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

package sid

import "fmt"

// filter modes in the upper nibble of register $d418.
const (
	filterLowPass  = 0x10
	filterBandPass = 0x20
	filterHighPass = 0x40
	voice3Off      = 0x80
)

// filter settings for a chip. each voice has its own integrators so that a
// voice can be routed through the filter independently of the others.
type filter struct {
	// filtering can be disabled entirely by the configuration
	enabled bool

	cutoff    uint16
	resonance uint8

	// voices routed through the filter. bit 0 is voice one
	routing uint8

	mode uint8

	// coefficients for the current cutoff and resonance values
	lowPass  float32
	bandPass float32
	damping  float32
}

func (f *filter) String() string {
	return fmt.Sprintf("cutoff=%#03x res=%#x route=%03b mode=%03b", f.cutoff, f.resonance, f.routing&0x07, f.mode>>4)
}

// set filter from registers $d415 to $d418.
func (f *filter) set(t *Tables, regs []uint8) {
	cutoff := uint16(regs[0]&0x07) | uint16(regs[1])<<3
	resonance := regs[2] >> 4

	if cutoff != f.cutoff || resonance != f.resonance || f.damping == 0 {
		f.cutoff = cutoff
		f.resonance = resonance
		f.lowPass = t.lowPass[cutoff]
		f.bandPass = t.bandPass[cutoff]
		f.damping = t.resonance[resonance]
	}

	f.routing = regs[2] & 0x07
	f.mode = regs[3] & (filterLowPass | filterBandPass | filterHighPass)
}

// routed returns true if the voice is being sent through the filter.
func (f *filter) routed(v int) bool {
	return f.enabled && f.routing&(1<<v) != 0
}

// process sample for voice. the integrators are leaky so that a filter left
// running without input settles at zero.
func (f *filter) process(vc *voice, in float32) float32 {
	const leak = 0.9999

	vc.low = (vc.low + f.lowPass*vc.band) * leak
	high := in - vc.low - f.damping*vc.band
	vc.band = (vc.band + f.bandPass*high) * leak

	var out float32
	if f.mode&filterLowPass == filterLowPass {
		out += vc.low
	}
	if f.mode&filterBandPass == filterBandPass {
		out += vc.band
	}
	if f.mode&filterHighPass == filterHighPass {
		out += high
	}
	return out
}
