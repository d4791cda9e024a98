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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/cpu"
	"github.com/jetsetilly/gopher6581/hardware/memory"
	"github.com/jetsetilly/gopher6581/hardware/preferences"
	"github.com/jetsetilly/gopher6581/hardware/sid"
	"github.com/jetsetilly/gopher6581/hardware/sid/digi"
	"github.com/jetsetilly/gopher6581/logger"
	"github.com/jetsetilly/gopher6581/random"
	"github.com/jetsetilly/gopher6581/tune"
)

// Sentinal errors returned by the Engine.
const (
	NoTune         = "engine: no tune loaded"
	SongOutOfRange = "engine: song %d not in range 1 to %d"
)

// Engine is the main container for the emulated components.
type Engine struct {
	cfg preferences.Config

	rnd *random.Random

	Mem *memory.Memory
	CPU *cpu.CPU

	tables *sid.Tables
	chips  [2]*sid.Chip
	digi   *digi.Emulator

	// the tune loaded with Load() and the current song of that tune
	tune *tune.Tune
	song int

	// the clock used for the current tune
	clock clocks.Clock

	speed          tune.Speed
	callsPerSecond int

	// zero if the play routine is found through the IRQ vector
	playAddress uint16

	// set by the digi scan
	digiDetected bool

	// samples per tick in 16.16 fixed point and the accumulated fraction
	samplesPerTick uint32
	fraction       uint32

	// frames remaining in the current tick
	pending int

	// logging is disabled during the digi scan
	logging bool

	// sample buffers for Generate()
	mix    []int32
	second []int32
}

// NewEngine is the preferred method of initialisation for the Engine type.
// An invalid configuration is an error and no Engine is returned.
func NewEngine(cfg preferences.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		rnd:     random.NewRandom(cfg.Seed),
		clock:   cfg.ClockSpeed,
		logging: true,
	}

	e.Mem = memory.NewMemory(cfg.MemoryMode, e.rnd)
	e.CPU = cpu.NewCPU(e.Mem)
	e.CPU.Permission = e

	e.digi = digi.NewEmulator(e.clock.Hz(), cfg.SampleRate)

	e.tables = e.newTables()
	e.chips[0] = sid.NewChip(e.tables)
	e.chips[1] = sid.NewChip(e.tables)
	e.chips[0].SetDigi(e.digi)
	e.configureChips()

	return e, nil
}

func (e *Engine) String() string {
	if e.tune == nil {
		return "no tune"
	}
	return fmt.Sprintf("%s [song %d/%d]", e.tune.String(), e.song, e.tune.Songs)
}

// AllowLogging implements the logger.Permission interface.
func (e *Engine) AllowLogging() bool {
	return e.logging
}

// Config returns the current configuration.
func (e *Engine) Config() preferences.Config {
	return e.cfg
}

func (e *Engine) newTables() *sid.Tables {
	return sid.NewTables(sid.Params{
		Model:          e.cfg.Model,
		ClockHz:        e.clock.Hz(),
		SampleRate:     e.cfg.SampleRate,
		MeasuredVolume: e.cfg.MeasuredVolume,
		FilterFs:       e.cfg.FilterFs,
		FilterFm:       e.cfg.FilterFm,
		FilterFt:       e.cfg.FilterFt,
	})
}

// Channels returns the number of values in each frame of output. This is
// four when the volume control is sid.MixHWMixing.
func (e *Engine) Channels() int {
	if e.cfg.VolumeControl == sid.MixHWMixing {
		return 4
	}
	return e.cfg.Channels
}

// the second chip is only used if the tune asks for it
func (e *Engine) secondChip() bool {
	return e.tune != nil && e.tune.SecondSID != 0
}

func (e *Engine) configureChips() {
	mc := sid.MixerConfig{
		Mixing:       e.cfg.VolumeControl,
		AutoPanning:  e.cfg.AutoPanning,
		Channels:     e.Channels(),
		Levels:       e.cfg.Voices,
		FourChannels: e.digiDetected,
	}

	// each chip is mixed to its own side in stereo
	if e.secondChip() && mc.Channels == 2 {
		mc.Channels = 1
	}

	e.chips[0].Configure(e.cfg.Filter, mc)

	mc.FourChannels = false
	e.chips[1].Configure(e.cfg.Filter, mc)
}

// SetConfig applies a new configuration. Valid fields are applied and invalid
// fields are ignored. The returned error lists the invalid fields.
//
// Changes to the memory mode, the clock speed and the seed take effect when
// the next tune or song is loaded.
func (e *Engine) SetConfig(cfg preferences.Config) error {
	n, err := e.cfg.Update(cfg)

	rebuild := n.SampleRate != e.cfg.SampleRate || n.Model != e.cfg.Model ||
		n.MeasuredVolume != e.cfg.MeasuredVolume || n.FilterFs != e.cfg.FilterFs ||
		n.FilterFm != e.cfg.FilterFm || n.FilterFt != e.cfg.FilterFt

	if n.Seed != e.cfg.Seed {
		e.rnd.Reseed(n.Seed)
	}

	e.cfg = n

	if rebuild {
		e.setTables()
	}
	e.configureChips()
	e.setSamplesPerTick()

	if err != nil {
		logger.Log(e, "engine", err)
	}

	return err
}

// setTables creates new chip tables for the current configuration and
// clock. the chips keep their state
func (e *Engine) setTables() {
	e.tables = e.newTables()
	e.chips[0].SetTables(e.tables)
	e.chips[1].SetTables(e.tables)
	e.digi.Configure(e.clock.Hz(), e.cfg.SampleRate)
}

// Info describes the state of the engine.
type Info struct {
	Song           int
	Songs          int
	Speed          tune.Speed
	CallsPerSecond int
	Clock          clocks.Clock
	Model          sid.Model
	MemoryMode     memory.Mode
	DigiDetected   bool

	// the play address in use. when IRQ is true the address is the value of
	// the IRQ vector after the most recent tick
	PlayAddress uint16
	IRQ         bool
}

func (inf Info) String() string {
	play := fmt.Sprintf("%#04x", inf.PlayAddress)
	if inf.IRQ {
		play = fmt.Sprintf("%s (irq)", play)
	}
	return fmt.Sprintf("song %d/%d %s %dHz %s %s play=%s digi=%v",
		inf.Song, inf.Songs, inf.Speed, inf.CallsPerSecond, inf.Clock, inf.Model, play, inf.DigiDetected)
}

// Info returns information about the current song.
func (e *Engine) Info() Info {
	inf := Info{
		Song:           e.song,
		Speed:          e.speed,
		CallsPerSecond: e.callsPerSecond,
		Clock:          e.clock,
		Model:          e.cfg.Model,
		MemoryMode:     e.Mem.Mode(),
		DigiDetected:   e.digiDetected,
		PlayAddress:    e.playAddress,
	}
	if e.tune != nil {
		inf.Songs = e.tune.Songs
		if e.playAddress == 0 {
			inf.IRQ = true
			inf.PlayAddress = e.irqAddress()
		}
	}
	return inf
}

// CurrentSong returns the song being played. Songs are numbered from one.
// Returns zero if no tune is loaded.
func (e *Engine) CurrentSong() int {
	return e.song
}

// SetSong loads another song of the current tune.
func (e *Engine) SetSong(song int) error {
	if e.tune == nil {
		return curated.Errorf(NoTune)
	}
	return e.Load(e.tune, song)
}
