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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/memory"
	"github.com/jetsetilly/gopher6581/hardware/sid"
)

// Sentinal error returned by Validate() and Update().
const (
	InvalidConfig = "preferences: invalid configuration: %s"
)

// range of valid sample rates.
const (
	MinSampleRate = 4000
	MaxSampleRate = 48000
)

// Config is the configuration of the emulation engine.
type Config struct {
	SampleRate    int
	BitsPerSample int
	Signed        bool
	Channels      int

	Model          sid.Model
	MeasuredVolume bool

	Filter   bool
	FilterFs float64
	FilterFm float64
	FilterFt float64

	MemoryMode memory.Mode

	// the clock speed to use if the tune doesn't specify one. or if
	// ForceSongSpeed is true, regardless of what the tune specifies
	ClockSpeed     clocks.Clock
	ForceSongSpeed bool

	// number of play ticks to run when looking for digi playback. zero
	// disables the scan
	DigiPlayerScans int

	AutoPanning   sid.AutoPanning
	VolumeControl sid.Mixing

	// levels for voice one, two, three and the digi channel. only used by
	// the VolControl and FullPanning modes
	Voices [4]sid.Level

	// seed for the values returned by reads of the raster and timer
	// registers
	Seed int64
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	cfg := Config{
		SampleRate:    44100,
		BitsPerSample: 16,
		Signed:        true,
		Channels:      1,
		Model:         sid.MOS6581,
		Filter:        true,
		FilterFs:      400.0,
		FilterFm:      60.0,
		FilterFt:      0.05,
		MemoryMode:    memory.BankSwitching,
		ClockSpeed:    clocks.PAL,
		AutoPanning:   sid.AutoPanningOff,
		VolumeControl: sid.MixNone,
	}
	for i := range cfg.Voices {
		cfg.Voices[i] = sid.Level{Left: sid.MaxLevel / 2, Right: sid.MaxLevel / 2}
	}
	return cfg
}

func (cfg Config) String() string {
	return fmt.Sprintf("%dHz %dbit %dch %s %s %s", cfg.SampleRate, cfg.BitsPerSample, cfg.Channels,
		cfg.Model, cfg.ClockSpeed, cfg.VolumeControl)
}

// usesLevels returns true if the voice levels apply to the mixing mode.
func usesLevels(m sid.Mixing) bool {
	return m == sid.MixVolControl || m == sid.MixFullPanning
}

// a field of the Config type. check returns a description of the problem or
// the empty string. apply copies the field from one Config to another
type field struct {
	name  string
	check func(cfg *Config) string
	apply func(dst *Config, src *Config)
}

var fields = []field{
	{
		name: "SampleRate",
		check: func(cfg *Config) string {
			if cfg.SampleRate < MinSampleRate || cfg.SampleRate > MaxSampleRate {
				return fmt.Sprintf("%d not in range %d to %d", cfg.SampleRate, MinSampleRate, MaxSampleRate)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.SampleRate = src.SampleRate },
	},
	{
		name: "BitsPerSample",
		check: func(cfg *Config) string {
			if cfg.BitsPerSample != 8 && cfg.BitsPerSample != 16 {
				return fmt.Sprintf("%d is not 8 or 16", cfg.BitsPerSample)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.BitsPerSample = src.BitsPerSample },
	},
	{
		name:  "Signed",
		check: func(cfg *Config) string { return "" },
		apply: func(dst *Config, src *Config) { dst.Signed = src.Signed },
	},
	{
		name: "Channels",
		check: func(cfg *Config) string {
			if cfg.Channels != 1 && cfg.Channels != 2 {
				return fmt.Sprintf("%d is not 1 or 2", cfg.Channels)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.Channels = src.Channels },
	},
	{
		name: "Model",
		check: func(cfg *Config) string {
			if cfg.Model != sid.MOS6581 && cfg.Model != sid.MOS8580 {
				return fmt.Sprintf("%d is not a chip model", int(cfg.Model))
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.Model = src.Model },
	},
	{
		name:  "MeasuredVolume",
		check: func(cfg *Config) string { return "" },
		apply: func(dst *Config, src *Config) { dst.MeasuredVolume = src.MeasuredVolume },
	},
	{
		name:  "Filter",
		check: func(cfg *Config) string { return "" },
		apply: func(dst *Config, src *Config) { dst.Filter = src.Filter },
	},
	{
		name: "FilterFs",
		check: func(cfg *Config) string {
			if cfg.FilterFs <= 1.0 {
				return fmt.Sprintf("%.2f is not more than 1.0", cfg.FilterFs)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.FilterFs = src.FilterFs },
	},
	{
		name: "FilterFm",
		check: func(cfg *Config) string {
			if cfg.FilterFm <= 0.0 {
				return fmt.Sprintf("%.2f is not more than 0.0", cfg.FilterFm)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.FilterFm = src.FilterFm },
	},
	{
		name: "FilterFt",
		check: func(cfg *Config) string {
			if cfg.FilterFt < 0.0 || cfg.FilterFt > 1.0 {
				return fmt.Sprintf("%.2f not in range 0.0 to 1.0", cfg.FilterFt)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.FilterFt = src.FilterFt },
	},
	{
		name: "MemoryMode",
		check: func(cfg *Config) string {
			switch cfg.MemoryMode {
			case memory.BankSwitching, memory.TransparentROM, memory.PlaySID:
				return ""
			}
			return fmt.Sprintf("%d is not a memory mode", int(cfg.MemoryMode))
		},
		apply: func(dst *Config, src *Config) { dst.MemoryMode = src.MemoryMode },
	},
	{
		name: "ClockSpeed",
		check: func(cfg *Config) string {
			if cfg.ClockSpeed != clocks.PAL && cfg.ClockSpeed != clocks.NTSC {
				return fmt.Sprintf("%d is not a clock", int(cfg.ClockSpeed))
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.ClockSpeed = src.ClockSpeed },
	},
	{
		name:  "ForceSongSpeed",
		check: func(cfg *Config) string { return "" },
		apply: func(dst *Config, src *Config) { dst.ForceSongSpeed = src.ForceSongSpeed },
	},
	{
		name: "DigiPlayerScans",
		check: func(cfg *Config) string {
			if cfg.DigiPlayerScans < 0 {
				return fmt.Sprintf("%d is negative", cfg.DigiPlayerScans)
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.DigiPlayerScans = src.DigiPlayerScans },
	},
	{
		name:  "Seed",
		check: func(cfg *Config) string { return "" },
		apply: func(dst *Config, src *Config) { dst.Seed = src.Seed },
	},
	{
		name: "AutoPanning",
		check: func(cfg *Config) string {
			if cfg.AutoPanning != sid.AutoPanningOff && cfg.AutoPanning != sid.AutoPanningCentered {
				return fmt.Sprintf("%d is not an auto panning mode", int(cfg.AutoPanning))
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.AutoPanning = src.AutoPanning },
	},
	{
		name: "VolumeControl",
		check: func(cfg *Config) string {
			if cfg.VolumeControl < sid.MixNone || cfg.VolumeControl > sid.MixStereoSurround {
				return fmt.Sprintf("%d is not a volume control mode", int(cfg.VolumeControl))
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.VolumeControl = src.VolumeControl },
	},
	{
		// checked against the volume control mode of the Config being
		// checked. see Update() for how this works when the mode itself is
		// being changed
		name: "Voices",
		check: func(cfg *Config) string {
			if !usesLevels(cfg.VolumeControl) {
				return ""
			}
			for i, l := range cfg.Voices {
				if int(l.Left)+int(l.Right) > sid.MaxLevel {
					return fmt.Sprintf("voice %d levels (%d+%d) more than %d", i+1, l.Left, l.Right, sid.MaxLevel)
				}
			}
			return ""
		},
		apply: func(dst *Config, src *Config) { dst.Voices = src.Voices },
	},
}

func invalid(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return curated.Errorf(InvalidConfig, strings.Join(problems, "; "))
}

// Validate checks every field of the Config. The returned error lists every
// invalid field.
func (cfg Config) Validate() error {
	var problems []string
	for _, f := range fields {
		if p := f.check(&cfg); p != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", f.name, p))
		}
	}
	return invalid(problems)
}

// Update returns a copy of the Config with the valid fields of the new Config
// applied. Invalid fields keep their current value. The returned error lists
// every field that was rejected.
//
// Fields are checked in the context of the Config being built. For example,
// voice levels are checked against the volume control mode that results from
// the update.
func (cfg Config) Update(n Config) (Config, error) {
	var problems []string
	for _, f := range fields {
		candidate := cfg
		f.apply(&candidate, &n)
		if p := f.check(&candidate); p != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", f.name, p))
			continue
		}
		cfg = candidate
	}

	// a change of volume control mode can make the existing levels invalid.
	// the levels are reset in that case
	if fields[len(fields)-1].check(&cfg) != "" {
		cfg.Voices = DefaultConfig().Voices
	}

	return cfg, invalid(problems)
}
