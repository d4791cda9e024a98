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
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
)

// Sentinal errors returned by the parse functions.
const (
	UnknownMixing      = "sid: unknown volume control: %s"
	UnknownAutoPanning = "sid: unknown auto panning: %s"
)

// Mixing specifies how the voices are mixed into the output channels.
type Mixing int

// List of valid Mixing values.
const (
	// equal levels for all voices
	MixNone Mixing = iota

	// a level for each voice and each output channel
	MixVolControl

	// as MixVolControl but the levels are pan positions and the auto panning
	// setting applies
	MixFullPanning

	// each voice (and the digi channel) has its own output channel. four
	// channels are always produced
	MixHWMixing

	// the right channel is the left channel inverted
	MixStereoSurround
)

func (m Mixing) String() string {
	switch m {
	case MixNone:
		return "None"
	case MixVolControl:
		return "VolControl"
	case MixFullPanning:
		return "FullPanning"
	case MixHWMixing:
		return "HWMixing"
	case MixStereoSurround:
		return "StereoSurround"
	}
	return "unknown mixing"
}

// ParseMixing converts a string to a Mixing value. The comparison is case
// insensitive.
func ParseMixing(s string) (Mixing, error) {
	for m := MixNone; m <= MixStereoSurround; m++ {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return MixNone, curated.Errorf(UnknownMixing, s)
}

// AutoPanning moves the pan position of each voice on every new note.
type AutoPanning int

// List of valid AutoPanning values.
const (
	AutoPanningOff AutoPanning = iota
	AutoPanningCentered
)

func (a AutoPanning) String() string {
	switch a {
	case AutoPanningOff:
		return "Off"
	case AutoPanningCentered:
		return "Centered"
	}
	return "unknown auto panning"
}

// ParseAutoPanning converts a string to an AutoPanning value.
func ParseAutoPanning(s string) (AutoPanning, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return AutoPanningOff, nil
	case "centered", "centred":
		return AutoPanningCentered, nil
	}
	return AutoPanningOff, curated.Errorf(UnknownAutoPanning, s)
}

// Level of a voice in the left and right channels. A level of 256 is unity
// gain.
type Level struct {
	Left  uint16
	Right uint16
}

// MaxLevel is the maximum value for Left+Right of a Level.
const MaxLevel = 256

// auto panning sweeps between these pan positions. a pan position is the
// level of the right channel, the left channel level being MaxLevel minus the
// position.
const (
	panLeftLimit  = MaxLevel / 4
	panRightLimit = MaxLevel * 3 / 4
	panStep       = MaxLevel / 16
)

// MixerConfig is the part of the chip configuration concerned with mixing.
type MixerConfig struct {
	Mixing      Mixing
	AutoPanning AutoPanning
	Channels    int

	// levels for voice one, two, three and the digi channel
	Levels [4]Level

	// the four channel amplification profile is used when the tune has been
	// found to use the digi channel
	FourChannels bool
}

type mixer struct {
	MixerConfig

	// current pan positions for auto panning
	pan    [3]int
	panDir [3]int
}

func (mx *mixer) configure(cfg MixerConfig) {
	mx.MixerConfig = cfg
	if mx.Mixing == MixHWMixing {
		mx.Channels = 4
	}
	mx.resetPanning()
}

func (mx *mixer) resetPanning() {
	for v := range mx.pan {
		mx.pan[v] = MaxLevel / 2

		// neighbouring voices move in opposite directions
		if v&0x01 == 0x01 {
			mx.panDir[v] = -panStep
		} else {
			mx.panDir[v] = panStep
		}
	}
}

// keyOn steps the pan position of a voice.
func (mx *mixer) keyOn(v int) {
	if mx.AutoPanning != AutoPanningCentered || mx.Mixing != MixFullPanning {
		return
	}
	mx.pan[v] += mx.panDir[v]
	if mx.pan[v] >= panRightLimit {
		mx.pan[v] = panRightLimit
		mx.panDir[v] = -panStep
	} else if mx.pan[v] <= panLeftLimit {
		mx.pan[v] = panLeftLimit
		mx.panDir[v] = panStep
	}
}

// levels returns the left and right gain for a source. source 3 is the digi
// channel.
func (mx *mixer) levels(source int) (int32, int32) {
	if mx.Mixing == MixFullPanning && mx.AutoPanning == AutoPanningCentered && source < 3 {
		return int32(MaxLevel - mx.pan[source]), int32(mx.pan[source])
	}
	l := mx.Levels[source]
	return int32(l.Left), int32(l.Right)
}

// mix the four sources into the frame. sources are in the range of a signed
// sixteen bit value. the frame has room for the number of channels in the
// configuration.
func (mx *mixer) mix(src [4]int32, frame []int32) {
	// each source is a fraction of the output. the digi channel is always
	// mixed but is only given its own share when the tune is known to use it
	div := int32(3)
	if mx.FourChannels {
		div = 4
	}

	switch mx.Mixing {
	case MixHWMixing:
		frame[0] = src[0]
		frame[1] = src[1]
		frame[2] = src[2]
		frame[3] = src[3]
		return

	case MixVolControl, MixFullPanning:
		var left, right int32
		for s := range src {
			l, r := mx.levels(s)
			left += src[s] * l
			right += src[s] * r
		}
		if mx.Channels == 1 {
			frame[0] = (left + right) / (MaxLevel * div)
			return
		}

		// a centred voice has half of unity in each channel
		frame[0] = left * 2 / (MaxLevel * div)
		frame[1] = right * 2 / (MaxLevel * div)
		return
	}

	m := (src[0] + src[1] + src[2] + src[3]) / div

	switch mx.Channels {
	case 1:
		frame[0] = m
	default:
		frame[0] = m
		if mx.Mixing == MixStereoSurround {
			frame[1] = -m
		} else {
			frame[1] = m
		}
	}
}
