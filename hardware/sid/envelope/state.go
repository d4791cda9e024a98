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
	"fmt"
)

// Mode is the phase of the envelope. The Start modes are transitory and
// move to the continuing mode on the next call to Advance().
type Mode uint8

// List of valid Mode values.
const (
	Mute Mode = iota
	StartAttack
	Attack
	Decay
	Sustain
	SustainDecay
	StartRelease
	Release
	StartShortAttack
	ShortAttack
)

// Altered is combined with a Mode to indicate that the registers have
// changed since the last sample. The rate for the current phase will be
// recalculated without resetting the position in the phase.
const Altered Mode = 0x10

func (m Mode) String() string {
	var s string
	switch m &^ Altered {
	case Mute:
		s = "Mute"
	case StartAttack:
		s = "StartAttack"
	case Attack:
		s = "Attack"
	case Decay:
		s = "Decay"
	case Sustain:
		s = "Sustain"
	case SustainDecay:
		s = "SustainDecay"
	case StartRelease:
		s = "StartRelease"
	case Release:
		s = "Release"
	case StartShortAttack:
		s = "StartShortAttack"
	case ShortAttack:
		s = "ShortAttack"
	default:
		s = fmt.Sprintf("unknown (%d)", uint8(m&^Altered))
	}
	if m&Altered == Altered {
		return s + "*"
	}
	return s
}

// State is the envelope state of a single voice.
type State struct {
	mode   Mode
	volume uint8

	attackDecay    uint8
	sustainRelease uint8
	sustainLevel   uint8

	// position in the current phase and the per sample step, in 16.16 fixed
	// point. the attack phase position is the volume. the decay and release
	// position is an index into the release curve
	pos  uint32
	step uint32

	// samples remaining in a short attack
	short int
}

func (st *State) String() string {
	return fmt.Sprintf("%s vol=%d", st.mode, st.volume)
}

// Reset the envelope to silence.
func (st *State) Reset() {
	*st = State{}
}

// Mode returns the current phase of the envelope.
func (st *State) Mode() Mode {
	return st.mode
}

// Volume returns the current envelope volume.
func (st *State) Volume() uint8 {
	return st.volume
}

// SetAD sets the value of the attack/decay register.
func (st *State) SetAD(v uint8) {
	if v != st.attackDecay {
		st.attackDecay = v
		st.mode |= Altered
	}
}

// SetSR sets the value of the sustain/release register.
func (st *State) SetSR(v uint8) {
	if v != st.sustainRelease {
		st.sustainRelease = v
		st.sustainLevel = (v >> 4) * 0x11
		st.mode |= Altered
	}
}

// Gate starts the attack phase when on is true and the release phase
// otherwise.
func (st *State) Gate(on bool) {
	if on {
		st.mode = StartAttack
	} else {
		st.mode = StartRelease
	}
}

// KeyLatch updates the envelope with the key-on and key-off events that
// happened since the last call. The gate argument is the state of the gate
// bit at the end of the period.
//
// If the gate was set and then cleared in the same period the envelope
// plays a short attack followed by the release.
func (st *State) KeyLatch(keyOn bool, keyOff bool, gate bool) {
	switch {
	case keyOn && keyOff && !gate:
		st.mode = StartShortAttack
	case keyOn && gate:
		st.mode = StartAttack
	case keyOff && !gate:
		st.mode = StartRelease
	}
}

// recalculate the step for the current phase. the position is unchanged
func (st *State) recalculate(t *Tables) {
	switch st.mode {
	case Attack, ShortAttack:
		st.step = t.attackRates[st.attackDecay>>4]
	case Decay, SustainDecay:
		st.step = t.decayRates[st.attackDecay&0x0f]
	case Release:
		st.step = t.decayRates[st.sustainRelease&0x0f]
	case Sustain:
		if st.volume > st.sustainLevel {
			st.startDecay(t, SustainDecay)
		}
	}
}

func (st *State) startDecay(t *Tables, mode Mode) {
	st.mode = mode
	st.pos = t.releasePos[st.volume] << 16
	st.step = t.decayRates[st.attackDecay&0x0f]
}

func (st *State) startRelease(t *Tables) {
	st.mode = Release
	st.pos = t.releasePos[st.volume] << 16
	st.step = t.decayRates[st.sustainRelease&0x0f]
}

// attack advances the volume. returns true when the volume has reached the
// top
func (st *State) attack() bool {
	st.pos += st.step
	if st.pos >= 0xff<<16 {
		st.volume = 0xff
		return true
	}
	st.volume = uint8(st.pos >> 16)
	return false
}

// fall advances along the release curve. returns the new volume
func (st *State) fall(t *Tables) uint8 {
	st.pos += st.step
	p := st.pos >> 16
	if p >= ReleaseCurveLen {
		p = ReleaseCurveLen - 1
		st.pos = p << 16
	}
	return t.releaseCurve[p]
}

// Advance the envelope by one sample and return the new volume.
func (st *State) Advance(t *Tables) uint8 {
	if st.mode&Altered == Altered {
		st.mode &^= Altered
		st.recalculate(t)
	}

	switch st.mode {
	case StartAttack:
		st.mode = Attack
		st.pos = uint32(st.volume) << 16
		st.step = t.attackRates[st.attackDecay>>4]
		fallthrough

	case Attack:
		if st.attack() {
			st.startDecay(t, Decay)
		}

	case Decay, SustainDecay:
		v := st.fall(t)
		if v <= st.sustainLevel {
			v = st.sustainLevel
			st.mode = Sustain
		}
		st.volume = v

	case Sustain:
		// the sustain level can only be lowered while sustaining. see
		// recalculate()

	case StartRelease:
		st.startRelease(t)
		fallthrough

	case Release:
		st.volume = st.fall(t)
		if st.volume == 0 {
			st.mode = Mute
		}

	case StartShortAttack:
		st.mode = ShortAttack
		st.pos = uint32(st.volume) << 16
		st.step = t.attackRates[st.attackDecay>>4]
		st.short = t.shortAttack
		fallthrough

	case ShortAttack:
		st.short--
		if st.attack() || st.short <= 0 {
			st.mode = StartRelease
		}

	case Mute:
		st.volume = 0
	}

	return st.volume
}
