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

package envelope

import (
	"math"
)

// attack times in milliseconds, indexed by the upper nibble of the
// attack/decay register.
var attackTimes = [16]int{
	2, 8, 16, 24, 38, 56, 68, 80, 100, 250, 500, 800, 1000, 3000, 5000, 8000,
}

// decay and release take three times as long as attack for the same
// register value
const decayReleaseFactor = 3

// the release curve is built from runs of equal volume. the real SID slows
// the envelope counter as the volume falls
var releaseRuns = []struct {
	from, to uint8
	length   int
}{
	{255, 94, 1},
	{93, 55, 2},
	{54, 27, 4},
	{26, 15, 8},
	{14, 7, 16},
	{6, 1, 30},
}

// ReleaseCurveLen is the number of entries in the release curve.
const ReleaseCurveLen = 757

// Tables contains the tables shared by all envelope generators.
type Tables struct {
	SampleRate int

	// per sample increments in 16.16 fixed point. attack rates increment the
	// volume. decay rates increment the position in the release curve
	attackRates [16]uint32
	decayRates  [16]uint32

	releaseCurve [ReleaseCurveLen]uint8

	// position in the release curve of the first occurance of a volume
	releasePos [256]uint32

	// scaled amplitude for each master volume and envelope volume
	amplitude [16][256]uint8

	// the number of samples a short attack lasts
	shortAttack int
}

// NewTables creates the envelope tables for the sample rate. If measured is
// true the amplitude table follows the response of the 6581 envelope DAC.
// Otherwise the response is linear.
func NewTables(sampleRate int, measured bool) *Tables {
	t := &Tables{
		SampleRate: sampleRate,
	}

	var p int
	for _, r := range releaseRuns {
		for v := int(r.from); v >= int(r.to); v-- {
			for range r.length {
				t.releaseCurve[p] = uint8(v)
				p++
			}
		}
	}
	// the final entry is zero

	for i := len(t.releaseCurve) - 1; i >= 0; i-- {
		t.releasePos[t.releaseCurve[i]] = uint32(i)
	}

	for i, ms := range attackTimes {
		t.attackRates[i] = rate(255, ms, sampleRate)
		t.decayRates[i] = rate(ReleaseCurveLen, ms*decayReleaseFactor, sampleRate)
	}

	for vol := range 16 {
		for env := range 256 {
			level := float64(env) / 255
			if measured {
				level = math.Pow(level, 1.3)
			}
			t.amplitude[vol][env] = uint8(math.Round(level * float64(vol) / 15 * 255))
		}
	}

	t.shortAttack = max(sampleRate/500, 1)

	return t
}

// rate returns the per sample increment, in 16.16 fixed point, that covers
// the distance in the number of milliseconds.
func rate(distance int, ms int, sampleRate int) uint32 {
	samples := max(uint64(ms)*uint64(sampleRate)/1000, 1)
	return uint32((uint64(distance) << 16) / samples)
}

// Amplitude returns the level of a voice for the master volume (0 to 15) and
// the envelope volume.
func (t *Tables) Amplitude(masterVolume uint8, envelope uint8) uint8 {
	return t.amplitude[masterVolume&0x0f][envelope]
}

// ReleaseCurve returns the value of the release curve at the position.
func (t *Tables) ReleaseCurve(pos int) uint8 {
	if pos >= ReleaseCurveLen {
		return 0
	}
	return t.releaseCurve[pos]
}

// ReleasePosition returns the first position in the release curve that has
// the volume.
func (t *Tables) ReleasePosition(volume uint8) int {
	return int(t.releasePos[volume])
}
