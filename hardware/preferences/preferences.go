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
	"github.com/jetsetilly/gopher6581/paths"
	"github.com/jetsetilly/gopher6581/prefs"
)

// Preferences stores an engine configuration in the preferences file.
type Preferences struct {
	dsk *prefs.Disk

	SampleRate    prefs.Int
	BitsPerSample prefs.Int
	Signed        prefs.Bool
	Channels      prefs.Int

	Model          prefs.String
	MeasuredVolume prefs.Bool

	Filter   prefs.Bool
	FilterFs prefs.Float
	FilterFm prefs.Float
	FilterFt prefs.Float

	MemoryMode      prefs.String
	ClockSpeed      prefs.String
	ForceSongSpeed  prefs.Bool
	DigiPlayerScans prefs.Int

	AutoPanning   prefs.String
	VolumeControl prefs.String

	// levels in the form "left,right"
	Voices [4]*prefs.Generic
	levels [4]sid.Level

	Seed prefs.Int

	// string values as parsed by the hook functions
	model         sid.Model
	memoryMode    memory.Mode
	clockSpeed    clocks.Clock
	autoPanning   sid.AutoPanning
	volumeControl sid.Mixing
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	// string values must parse to the type they represent. the parsed value
	// is kept for Config()
	p.Model.SetHookPre(func(v prefs.Value) error {
		m, err := sid.ParseModel(v.(string))
		if err == nil {
			p.model = m
		}
		return err
	})
	p.MemoryMode.SetHookPre(func(v prefs.Value) error {
		m, err := memory.ParseMode(v.(string))
		if err == nil {
			p.memoryMode = m
		}
		return err
	})
	p.ClockSpeed.SetHookPre(func(v prefs.Value) error {
		c, err := clocks.Parse(strings.ToUpper(v.(string)))
		if err == nil {
			p.clockSpeed = c
		}
		return err
	})
	p.AutoPanning.SetHookPre(func(v prefs.Value) error {
		a, err := sid.ParseAutoPanning(v.(string))
		if err == nil {
			p.autoPanning = a
		}
		return err
	})
	p.VolumeControl.SetHookPre(func(v prefs.Value) error {
		m, err := sid.ParseMixing(v.(string))
		if err == nil {
			p.volumeControl = m
		}
		return err
	})

	for i := range p.Voices {
		p.Voices[i] = prefs.NewGeneric(
			func(s string) error {
				var l sid.Level
				if _, err := fmt.Sscanf(s, "%d,%d", &l.Left, &l.Right); err != nil {
					return err
				}
				p.levels[i] = l
				return nil
			},
			func() string {
				return fmt.Sprintf("%d,%d", p.levels[i].Left, p.levels[i].Right)
			},
		)
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key  string
		pref interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"engine.samplerate", &p.SampleRate},
		{"engine.bitspersample", &p.BitsPerSample},
		{"engine.signed", &p.Signed},
		{"engine.channels", &p.Channels},
		{"engine.model", &p.Model},
		{"engine.measuredvolume", &p.MeasuredVolume},
		{"engine.filter", &p.Filter},
		{"engine.filter.fs", &p.FilterFs},
		{"engine.filter.fm", &p.FilterFm},
		{"engine.filter.ft", &p.FilterFt},
		{"engine.memorymode", &p.MemoryMode},
		{"engine.clockspeed", &p.ClockSpeed},
		{"engine.forcesongspeed", &p.ForceSongSpeed},
		{"engine.digiplayerscans", &p.DigiPlayerScans},
		{"engine.autopanning", &p.AutoPanning},
		{"engine.volumecontrol", &p.VolumeControl},
		{"engine.voice1", p.Voices[0]},
		{"engine.voice2", p.Voices[1]},
		{"engine.voice3", p.Voices[2]},
		{"engine.digi", p.Voices[3]},
		{"engine.seed", &p.Seed},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all engine preferences to the values of
// DefaultConfig().
func (p *Preferences) SetDefaults() error {
	return p.SetConfig(DefaultConfig())
}

// SetConfig sets the preference values from the Config.
func (p *Preferences) SetConfig(cfg Config) error {
	set := []struct {
		pref interface{ Set(prefs.Value) error }
		v    prefs.Value
	}{
		{&p.SampleRate, cfg.SampleRate},
		{&p.BitsPerSample, cfg.BitsPerSample},
		{&p.Signed, cfg.Signed},
		{&p.Channels, cfg.Channels},
		{&p.Model, cfg.Model.String()},
		{&p.MeasuredVolume, cfg.MeasuredVolume},
		{&p.Filter, cfg.Filter},
		{&p.FilterFs, cfg.FilterFs},
		{&p.FilterFm, cfg.FilterFm},
		{&p.FilterFt, cfg.FilterFt},
		{&p.MemoryMode, cfg.MemoryMode.String()},
		{&p.ClockSpeed, cfg.ClockSpeed.String()},
		{&p.ForceSongSpeed, cfg.ForceSongSpeed},
		{&p.DigiPlayerScans, cfg.DigiPlayerScans},
		{&p.AutoPanning, cfg.AutoPanning.String()},
		{&p.VolumeControl, cfg.VolumeControl.String()},
		{&p.Seed, int(cfg.Seed)},
	}
	for _, s := range set {
		if err := s.pref.Set(s.v); err != nil {
			return err
		}
	}
	for i, l := range cfg.Voices {
		if err := p.Voices[i].Set(fmt.Sprintf("%d,%d", l.Left, l.Right)); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the engine configuration described by the preference
// values. The Config has not been validated.
func (p *Preferences) Config() Config {
	cfg := Config{
		SampleRate:      p.SampleRate.Get().(int),
		BitsPerSample:   p.BitsPerSample.Get().(int),
		Signed:          p.Signed.Get().(bool),
		Channels:        p.Channels.Get().(int),
		MeasuredVolume:  p.MeasuredVolume.Get().(bool),
		Filter:          p.Filter.Get().(bool),
		FilterFs:        p.FilterFs.Get().(float64),
		FilterFm:        p.FilterFm.Get().(float64),
		FilterFt:        p.FilterFt.Get().(float64),
		ForceSongSpeed:  p.ForceSongSpeed.Get().(bool),
		DigiPlayerScans: p.DigiPlayerScans.Get().(int),
	}

	cfg.Model = p.model
	cfg.MemoryMode = p.memoryMode
	cfg.ClockSpeed = p.clockSpeed
	cfg.AutoPanning = p.autoPanning
	cfg.VolumeControl = p.volumeControl
	cfg.Seed = int64(p.Seed.Get().(int))

	cfg.Voices = p.levels

	return cfg
}

// Reset all engine preferences to the default values.
func (p *Preferences) Reset() error {
	return p.SetDefaults()
}

// Load engine preferences from disk. If the file does not exist it is created
// with the current values and the prefs.NoPrefsFile error is returned.
func (p *Preferences) Load() error {
	return p.dsk.Load(true)
}

// Save engine preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
