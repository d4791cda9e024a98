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
	"fmt"

	"github.com/jetsetilly/gopher6581/hardware/sid/envelope"
)

// bits in the control register of a voice.
const (
	ctrlGate     = 0x01
	ctrlSync     = 0x02
	ctrlRing     = 0x04
	ctrlTest     = 0x08
	ctrlTriangle = 0x10
	ctrlSawtooth = 0x20
	ctrlPulse    = 0x40
	ctrlNoise    = 0x80
)

// the seed value for the noise LFSR. the LFSR is reset to this value when the
// test bit is set.
const noiseSeed = 0x7ffff8

const noiseMask = 0x7fffff

// waveform is selected by the upper nibble of the control register.
type waveform uint8

const (
	waveNone waveform = iota
	waveTriangle
	waveSawtooth
	waveTriSaw
	wavePulse
	waveTriPulse
	waveSawPulse
	waveTriSawPulse
	waveNoise

	// noise combined with any other waveform. the output of a real chip
	// quickly falls to zero in this case
	waveNoiseCombined
)

func (w waveform) String() string {
	switch w {
	case waveNone:
		return "none"
	case waveTriangle:
		return "triangle"
	case waveSawtooth:
		return "sawtooth"
	case waveTriSaw:
		return "tri+saw"
	case wavePulse:
		return "pulse"
	case waveTriPulse:
		return "tri+pulse"
	case waveSawPulse:
		return "saw+pulse"
	case waveTriSawPulse:
		return "tri+saw+pulse"
	case waveNoise:
		return "noise"
	case waveNoiseCombined:
		return "noise+"
	}
	return "unknown waveform"
}

func selectWaveform(control uint8) waveform {
	if control&ctrlNoise == ctrlNoise {
		if control&(ctrlTriangle|ctrlSawtooth|ctrlPulse) != 0 {
			return waveNoiseCombined
		}
		return waveNoise
	}
	return waveform((control >> 4) & 0x07)
}

// the voice modulating each voice. used for both ring modulation and hard
// sync.
var modulator = [3]int{2, 0, 1}

type voice struct {
	freq       uint16
	pulseWidth uint16
	control    uint8

	wave waveform

	// hard sync is only possible if the modulating voice is running
	sync bool

	// phase of the voice in 16.16 fixed point
	pos  uint32
	step uint32

	// the phase wrapped around during the most recent sample
	wrapped bool

	noise uint32

	env envelope.State

	// filter integrators
	low  float32
	band float32
}

func (vc *voice) String() string {
	return fmt.Sprintf("freq=%#04x pw=%#03x ctrl=%#02x %s %s", vc.freq, vc.pulseWidth, vc.control, vc.wave, vc.env.String())
}

func (vc *voice) reset() {
	*vc = voice{}
	vc.noise = noiseSeed
	vc.env.Reset()
}

// set is the first update pass. it takes the seven registers of the voice.
func (vc *voice) set(t *Tables, regs []uint8, keyOn bool, keyOff bool) {
	freq := uint16(regs[0]) | uint16(regs[1])<<8
	if freq != vc.freq {
		vc.freq = freq
		if freq == 0 {
			vc.pos = 0
			vc.step = 0
		} else {
			vc.step = t.Step(freq)
		}
	}

	vc.pulseWidth = (uint16(regs[2]) | uint16(regs[3])<<8) & 0x0fff

	vc.env.SetAD(regs[5])
	vc.env.SetSR(regs[6])

	vc.control = regs[4]

	// the key latches record gate changes that happened during the tick. the
	// final state of the gate bit would miss a note that started and ended
	// between ticks
	vc.env.KeyLatch(keyOn, keyOff, vc.control&ctrlGate == ctrlGate)
}

// set2 is the second update pass. the modulating voice has been updated by
// the first pass by the time this is called.
func (vc *voice) set2(mod *voice) {
	vc.wave = selectWaveform(vc.control)
	vc.sync = vc.control&ctrlSync == ctrlSync && mod.freq != 0

	if vc.control&ctrlTest == ctrlTest {
		vc.pos = 0
		vc.noise = noiseSeed
	}
}

// advance moves the phase on by one sample. noise is clocked for every 256
// wavetable entries passed.
func (vc *voice) advance() {
	vc.wrapped = false

	if vc.freq == 0 || vc.control&ctrlTest == ctrlTest {
		return
	}

	next := vc.pos + vc.step
	clocks := next>>noiseShift - vc.pos>>noiseShift

	if next > wavetableMask {
		next &= wavetableMask
		vc.wrapped = true
	}
	vc.pos = next

	if clocks == 0 {
		return
	}

	for clocks > 16 {
		vc.noise = lockedAdvance(vc.noise, 16)
		clocks -= 16
	}
	if clocks == 1 {
		vc.noise = noiseAdvance(vc.noise)
	} else {
		vc.noise = lockedAdvance(vc.noise, clocks)
	}
}

// noiseAdvance clocks the LFSR once.
func noiseAdvance(lfsr uint32) uint32 {
	return ((lfsr << 1) | ((lfsr>>22 ^ lfsr>>17) & 0x01)) & noiseMask
}

// lockedAdvance clocks the LFSR n times in one operation. the feedback bits
// are never the bits shifted in for n up to 17, so the result is the same as
// calling noiseAdvance() n times.
func lockedAdvance(lfsr uint32, n uint32) uint32 {
	feedback := ((lfsr >> (23 - n)) ^ (lfsr >> (18 - n))) & (1<<n - 1)
	return ((lfsr << n) | feedback) & noiseMask
}

// output returns the eight bit unsigned output of the waveform.
func (vc *voice) output(t *Tables, mod *voice) uint8 {
	idx := vc.pos >> wavetableShift

	// ring modulation replaces the MSB of the triangle with the MSB of the
	// modulating voice. the effect is that the triangle is inverted
	ring := vc.control&ctrlRing == ctrlRing && mod.pos&(0x800<<wavetableShift) != 0

	pulse := vc.control&ctrlTest == ctrlTest || uint16(idx) >= vc.pulseWidth

	var v uint8

	switch vc.wave {
	case waveNone, waveNoiseCombined:
		return 0
	case waveTriangle:
		v = t.triangle[idx]
		if ring {
			v ^= 0xff
		}
		return v
	case waveSawtooth:
		return t.sawtooth[idx]
	case waveTriSaw:
		return t.triSaw[idx]
	case wavePulse:
		if pulse {
			return 0xff
		}
		return 0
	case waveTriPulse:
		if !pulse {
			return 0
		}
		v = t.triPulse[idx]
		if ring {
			v ^= 0xff
		}
		return v
	case waveSawPulse:
		if !pulse {
			return 0
		}
		return t.sawPulse[idx]
	case waveTriSawPulse:
		if !pulse {
			return 0
		}
		return t.triSawPulse[idx]
	case waveNoise:
		return t.noiseOutput(vc.noise)
	}

	return 0
}
