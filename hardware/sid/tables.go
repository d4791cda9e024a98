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

import (
	"math"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/sid/envelope"
)

// Sentinal error returned by ParseModel().
const (
	UnknownModel = "sid: unknown chip model: %s"
)

// Model of the SID chip being emulated.
type Model int

// List of valid Model values.
const (
	MOS6581 Model = iota
	MOS8580
)

func (m Model) String() string {
	switch m {
	case MOS6581:
		return "6581"
	case MOS8580:
		return "8580"
	}
	return "unknown model"
}

// ParseModel converts a string to a Model. The MOS prefix is optional.
func ParseModel(s string) (Model, error) {
	switch strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "MOS") {
	case "6581":
		return MOS6581, nil
	case "8580":
		return MOS8580, nil
	}
	return MOS6581, curated.Errorf(UnknownModel, s)
}

// the number of entries in a wavetable. the phase of a voice is an index into
// the wavetable in 16.16 fixed point.
const (
	wavetableLen   = 4096
	wavetableShift = 16
	wavetableMask  = wavetableLen<<wavetableShift - 1
)

// the number of wavetable entries between clocks of the noise generator. the
// real noise generator is clocked by bit 19 of the 24 bit oscillator, which is
// sixteen times per period.
const noiseShift = wavetableShift + 8

// the number of cutoff values (eleven bits from registers $d415 and $d416).
const cutoffLen = 2048

// Params specifies the chip tables to be built by NewTables().
type Params struct {
	Model          Model
	ClockHz        int
	SampleRate     int
	MeasuredVolume bool

	// filter curve parameters. used for the 6581 model only
	FilterFs float64
	FilterFm float64
	FilterFt float64
}

// Tables contains everything that can be precomputed for a model of chip at a
// specific sample rate. Once created, a Tables instance is never changed and
// can be shared by any number of Chip instances.
type Tables struct {
	Params

	// the envelope tables for the sample rate
	Envelope *envelope.Tables

	triangle [wavetableLen]uint8
	sawtooth [wavetableLen]uint8

	// combined waveforms for the model of chip
	triSaw      [wavetableLen]uint8
	triPulse    [wavetableLen]uint8
	sawPulse    [wavetableLen]uint8
	triSawPulse [wavetableLen]uint8

	// the noise output is composed of eight bits of the LFSR. each table maps
	// one byte of the LFSR to the output bits found in that byte
	noiseHi  [256]uint8
	noiseMid [256]uint8
	noiseLo  [256]uint8

	// filter coefficients
	resonance [16]float32
	lowPass   [cutoffLen]float32
	bandPass  [cutoffLen]float32
}

// NewTables is the preferred method of initialisation for the Tables type.
func NewTables(p Params) *Tables {
	t := &Tables{
		Params:   p,
		Envelope: envelope.NewTables(p.SampleRate, p.MeasuredVolume),
	}

	for i := range wavetableLen {
		// triangle rises over the first half of the period and falls over the
		// second half. in twelve bits
		tri := uint16(i << 1)
		if i >= wavetableLen/2 {
			tri = uint16((wavetableLen-1-i)<<1) & 0xfff
		}
		saw := uint16(i)

		t.triangle[i] = uint8(tri >> 4)
		t.sawtooth[i] = uint8(saw >> 4)

		// combined waveforms are only ever looked up when the pulse is high
		// so the pulse component is all ones
		t.triSaw[i] = combine(p.Model, tri, saw)
		t.triPulse[i] = combine(p.Model, tri, 0xfff)
		t.sawPulse[i] = combine(p.Model, saw, 0xfff)
		t.triSawPulse[i] = combine(p.Model, combineBits(p.Model, tri, saw), 0xfff)
	}

	// output bits 7 to 0 are taken from LFSR bits 22, 20, 16, 13, 11, 7, 4, 2
	for i := range 256 {
		v := uint8(i)
		t.noiseHi[i] = (v&0x40)<<1 | (v&0x10)<<2 | (v&0x01)<<5
		t.noiseMid[i] = (v&0x20)>>1 | (v & 0x08)
		t.noiseLo[i] = (v&0x80)>>5 | (v&0x10)>>3 | (v&0x04)>>2
	}

	for i := range t.resonance {
		// 2.0 is no resonance. the value is the damping factor of the filter
		t.resonance[i] = float32(2.0 - float64(i)/15.0)
	}

	switch p.Model {
	case MOS8580:
		// the 8580 cutoff is linear up to about 12.5kHz
		for i := range cutoffLen {
			fc := 30.0 + float64(i)*12500.0/float64(cutoffLen)
			h := 2.0 * math.Sin(math.Pi*fc/float64(p.SampleRate))
			t.lowPass[i] = clampCoefficient(h)
			t.bandPass[i] = clampCoefficient(h * 0.75)
		}
	default:
		// the 6581 cutoff curve is exponential and differs from chip to chip.
		// the fs, fm and ft parameters shape the curve
		fs := p.FilterFs
		if fs <= 1.0 {
			fs = 400.0
		}
		fm := p.FilterFm
		if fm == 0.0 {
			fm = 60.0
		}
		rate := float64(p.SampleRate)
		for i := range cutoffLen {
			h := (math.Exp(float64(i)/float64(cutoffLen)*math.Log(fs))/fm + p.FilterFt) * 44100.0 / rate
			t.lowPass[i] = clampCoefficient(h)
			t.bandPass[i] = clampCoefficient(h * 0.75)
		}
	}

	return t
}

func clampCoefficient(h float64) float32 {
	return float32(min(max(h, 0.01), 1.0))
}

// combineBits returns the twelve bit output of two waveforms selected at the
// same time. both waveforms pull bits low. the 6581 also pulls a bit low if
// the bit above it is low in either waveform.
func combineBits(model Model, a uint16, b uint16) uint16 {
	v := a & b
	if model == MOS6581 {
		v &= (v >> 1) | 0x800
	}
	return v & 0xfff
}

func combine(model Model, a uint16, b uint16) uint8 {
	return uint8(combineBits(model, a, b) >> 4)
}

// noiseOutput returns the eight bit output of the noise generator for the
// value in the LFSR.
func (t *Tables) noiseOutput(lfsr uint32) uint8 {
	return t.noiseHi[(lfsr>>16)&0xff] | t.noiseMid[(lfsr>>8)&0xff] | t.noiseLo[lfsr&0xff]
}

// Step returns the phase step per sample for the value in a frequency
// register. The result is 16.16 fixed point and indexes a wavetable of 4096
// entries.
func (t *Tables) Step(freq uint16) uint32 {
	if t.SampleRate == 0 {
		return 0
	}
	return uint32(uint64(freq) * uint64(t.ClockHz) * 16 / uint64(t.SampleRate))
}
