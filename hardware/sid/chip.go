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
	"strings"
)

// NumRegisters is the number of registers written by Registers(). The three
// read-only registers at the end of the register file are not included.
const NumRegisters = 0x19

// DigiSource is a fourth channel mixed with the output of the voices.
type DigiSource interface {
	Sample() int16
}

// Chip is an emulated SID chip.
type Chip struct {
	tables *Tables

	voices [3]voice
	filter filter
	mixer  mixer

	masterVolume uint8
	voice3Off    bool

	digi DigiSource
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip(t *Tables) *Chip {
	ch := &Chip{tables: t}
	ch.filter.enabled = true
	ch.mixer.configure(MixerConfig{Channels: 1})
	ch.Reset()
	return ch
}

func (ch *Chip) String() string {
	s := strings.Builder{}
	for v := range ch.voices {
		s.WriteString(fmt.Sprintf("%d: %s\n", v+1, ch.voices[v].String()))
	}
	s.WriteString(fmt.Sprintf("F: %s vol=%#x", ch.filter.String(), ch.masterVolume))
	return s.String()
}

// Reset chip to its power on state. Configuration is unchanged.
func (ch *Chip) Reset() {
	for v := range ch.voices {
		ch.voices[v].reset()
	}
	enabled := ch.filter.enabled
	ch.filter = filter{enabled: enabled}
	ch.masterVolume = 0
	ch.voice3Off = false
	ch.mixer.resetPanning()
}

// Model returns the model of the chip being emulated.
func (ch *Chip) Model() Model {
	return ch.tables.Model
}

// SetTables changes the chip tables. Used when the sample rate or the chip
// model has changed.
func (ch *Chip) SetTables(t *Tables) {
	ch.tables = t
	for v := range ch.voices {
		vc := &ch.voices[v]
		if vc.freq != 0 {
			vc.step = t.Step(vc.freq)
		}
	}
	ch.filter.damping = 0
}

// Configure filter and mixing.
func (ch *Chip) Configure(filter bool, cfg MixerConfig) {
	ch.filter.enabled = filter
	ch.mixer.configure(cfg)
}

// Channels returns the number of values produced per frame by Generate().
func (ch *Chip) Channels() int {
	return ch.mixer.Channels
}

// SetDigi sets the source of the fourth channel. A value of nil means that
// there is no fourth channel.
func (ch *Chip) SetDigi(d DigiSource) {
	ch.digi = d
}

// Registers updates the chip with the register file. The key on and key off
// latches record the gate bit changes that happened since the previous call.
func (ch *Chip) Registers(regs []uint8, keyOn [3]bool, keyOff [3]bool) {
	if len(regs) < NumRegisters {
		return
	}

	for v := range ch.voices {
		r := regs[v*7 : v*7+7]
		ch.voices[v].set(ch.tables, r, keyOn[v], keyOff[v])
	}
	for v := range ch.voices {
		ch.voices[v].set2(&ch.voices[modulator[v]])
	}

	ch.filter.set(ch.tables, regs[0x15:0x19])
	ch.masterVolume = regs[0x18] & 0x0f
	ch.voice3Off = regs[0x18]&voice3Off == voice3Off

	for v := range keyOn {
		if keyOn[v] {
			ch.mixer.keyOn(v)
		}
	}
}

// EnvelopeOutput returns the current output of the voice's envelope. This is
// the value read from register $d41c for voice three.
func (ch *Chip) EnvelopeOutput(v int) uint8 {
	return ch.voices[v].env.Volume()
}

// Generate n sample frames. The first value of each frame is placed stride
// values after the first value of the previous frame. The number of values in
// a frame is given by Channels().
func (ch *Chip) Generate(n int, out []int32, stride int) {
	var src [4]int32

	for i := range n {
		for v := range ch.voices {
			ch.voices[v].advance()
		}

		// hard sync resets the phase of a voice when the modulating voice
		// wrapped around during this sample
		for v := range ch.voices {
			vc := &ch.voices[v]
			if vc.sync && ch.voices[modulator[v]].wrapped {
				vc.pos = 0
			}
		}

		for v := range ch.voices {
			src[v] = ch.voiceSample(v)
		}

		if ch.digi != nil {
			src[3] = int32(ch.digi.Sample()) << 7
		} else {
			src[3] = 0
		}

		o := i * stride
		ch.mixer.mix(src, out[o:o+ch.mixer.Channels])
	}
}

func (ch *Chip) voiceSample(v int) int32 {
	vc := &ch.voices[v]

	// the envelope runs whatever the state of the oscillator
	env := vc.env.Advance(ch.tables.Envelope)

	var s float32

	if vc.freq != 0 && vc.wave != waveNone && vc.wave != waveNoiseCombined {
		w := int32(vc.output(ch.tables, &ch.voices[modulator[v]])) - 128
		s = float32(w * int32(ch.tables.Envelope.Amplitude(ch.masterVolume, env)))
	}

	if ch.filter.routed(v) {
		return clip(ch.filter.process(vc, s))
	}

	// voice three can be disconnected from the output but only if it isn't
	// being filtered
	if v == 2 && ch.voice3Off {
		return 0
	}

	return int32(s)
}

func clip(s float32) int32 {
	if s != s {
		return 0
	}
	return int32(min(max(s, -32768), 32767))
}
