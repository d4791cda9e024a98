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

package preferences_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/preferences"
	"github.com/jetsetilly/gopher6581/hardware/sid"
	"github.com/jetsetilly/gopher6581/test"
)

func TestDefaultConfig(t *testing.T) {
	cfg := preferences.DefaultConfig()
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.String(), "44100Hz 16bit 1ch 6581 PAL None")
}

func TestValidate(t *testing.T) {
	cfg := preferences.DefaultConfig()
	cfg.SampleRate = 3999
	cfg.BitsPerSample = 12
	cfg.Channels = 3

	err := cfg.Validate()
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidConfig))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "SampleRate"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "BitsPerSample"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "Channels"))
	test.ExpectFailure(t, strings.Contains(err.Error(), "Model"))

	cfg = preferences.DefaultConfig()
	cfg.SampleRate = 48000
	test.ExpectSuccess(t, cfg.Validate())
	cfg.SampleRate = 48001
	test.ExpectFailure(t, cfg.Validate())
}

func TestVoiceLevels(t *testing.T) {
	cfg := preferences.DefaultConfig()
	cfg.Voices[0] = sid.Level{Left: 200, Right: 100}

	// levels are ignored unless the mixing mode uses them
	cfg.VolumeControl = sid.MixNone
	test.ExpectSuccess(t, cfg.Validate())
	cfg.VolumeControl = sid.MixHWMixing
	test.ExpectSuccess(t, cfg.Validate())

	cfg.VolumeControl = sid.MixVolControl
	test.ExpectFailure(t, cfg.Validate())
	cfg.VolumeControl = sid.MixFullPanning
	test.ExpectFailure(t, cfg.Validate())

	cfg.Voices[0] = sid.Level{Left: 256, Right: 0}
	test.ExpectSuccess(t, cfg.Validate())
}

func TestUpdate(t *testing.T) {
	cur := preferences.DefaultConfig()

	n := cur
	n.SampleRate = 22050
	n.Channels = 5
	n.ClockSpeed = clocks.NTSC
	n.FilterFt = 2.0

	cfg, err := cur.Update(n)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "Channels"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "FilterFt"))

	// valid fields are applied
	test.ExpectEquality(t, cfg.SampleRate, 22050)
	test.ExpectEquality(t, cfg.ClockSpeed, clocks.NTSC)

	// invalid fields keep the previous value
	test.ExpectEquality(t, cfg.Channels, 1)
	test.ExpectEquality(t, cfg.FilterFt, cur.FilterFt)
	test.ExpectSuccess(t, cfg.Validate())

	// a fully valid update
	n = cfg
	n.Channels = 2
	cfg, err = cfg.Update(n)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, n)
}

func TestUpdateLevels(t *testing.T) {
	cur := preferences.DefaultConfig()

	// levels that are too loud are rejected when the mode uses them
	n := cur
	n.VolumeControl = sid.MixVolControl
	n.Voices[2] = sid.Level{Left: 256, Right: 256}
	cfg, err := cur.Update(n)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, cfg.VolumeControl, sid.MixVolControl)
	test.ExpectEquality(t, cfg.Voices, cur.Voices)
	test.ExpectSuccess(t, cfg.Validate())
}
