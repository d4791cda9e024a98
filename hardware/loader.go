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
	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/hardware/memory"
	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6581/logger"
	"github.com/jetsetilly/gopher6581/tune"
)

// InitBank returns the value written to the processor port before calling a
// routine at the address. The value maps out as much ROM as is necessary for
// the routine to be visible.
func InitBank(address uint16) uint8 {
	switch {
	case address < addresses.BasicOrigin:
		return 0x37
	case address < addresses.IOOrigin:
		return 0x36
	case address >= addresses.KernalOrigin:
		return 0x35
	}
	return 0x34
}

// Load a tune and prepare the song for playback. Songs are numbered from
// one. A song value of zero selects the tune's start song.
//
// If the DigiPlayerScans field of the configuration is not zero, the song is
// played silently for that many ticks to see if it uses the sample channels.
// The song is then loaded again from scratch.
func (e *Engine) Load(t *tune.Tune, song int) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if song == 0 {
		song = t.StartSong
	}
	if song < 1 || song > t.Songs {
		return curated.Errorf(SongOutOfRange, song, t.Songs)
	}

	e.tune = t
	e.song = song
	e.digiDetected = false

	if err := e.initialise(); err != nil {
		e.tune = nil
		e.song = 0
		return err
	}

	if e.cfg.DigiPlayerScans > 0 {
		e.digiDetected = e.digiScan(e.cfg.DigiPlayerScans)
		if e.digiDetected {
			logger.Logf(e, "engine", "sample player detected after %d ticks", e.cfg.DigiPlayerScans)
		}
		if err := e.initialise(); err != nil {
			e.tune = nil
			e.song = 0
			return err
		}
	}

	logger.Log(e, "engine", e.Info())

	return nil
}

// the clock used for the tune. the configured clock is used if the tune has
// no preference or if the configuration forces it
func (e *Engine) tuneClock() clocks.Clock {
	if e.cfg.ForceSongSpeed {
		return e.cfg.ClockSpeed
	}
	switch e.tune.Clock {
	case tune.ClockPAL:
		return clocks.PAL
	case tune.ClockNTSC:
		return clocks.NTSC
	}
	return e.cfg.ClockSpeed
}

// initialise memory and chips and call the init routine of the current song
func (e *Engine) initialise() error {
	t := e.tune

	if clock := e.tuneClock(); clock != e.clock {
		e.clock = clock
		e.setTables()
	}

	// RSID tunes expect a real machine and so must see the I/O area at all
	// times
	mode := e.cfg.MemoryMode
	if t.IsRSID() {
		mode = memory.PlaySID
	}
	e.Mem.SetMode(mode)
	e.Mem.Reset(e.clock)

	if err := e.Mem.SetSecondSID(t.SecondSID); err != nil {
		return err
	}
	if err := e.Mem.Load(t.LoadAddress, t.Data); err != nil {
		return err
	}

	e.chips[0].Reset()
	e.chips[1].Reset()
	e.digi.Reset()
	e.configureChips()

	e.CPU.Interpret(t.InitAddress, InitBank(t.InitAddress), uint8(e.song-1), 0, 0)

	e.playAddress = t.PlayAddress
	e.speed = t.SongSpeed(e.song)
	if e.cfg.ForceSongSpeed {
		e.speed = tune.SpeedVBI
	}

	e.callsPerSecond = e.clock.FrameRate()
	if e.speed == tune.SpeedCIA {
		timer := uint16(e.Mem.PeekIO(addresses.CIA1TimerALo)) | uint16(e.Mem.PeekIO(addresses.CIA1TimerAHi))<<8
		if timer != 0 {
			e.callsPerSecond = max(e.clock.Hz()/int(timer), 1)
		} else {
			logger.Log(e, "engine", "CIA timer is zero. using VBI speed")
		}
	}

	e.setSamplesPerTick()
	e.fraction = 0
	e.pending = 0

	return nil
}

func (e *Engine) setSamplesPerTick() {
	if e.callsPerSecond == 0 {
		return
	}
	e.samplesPerTick = uint32((uint64(e.cfg.SampleRate) << 16) / uint64(e.callsPerSecond))
}

// the play address found through the interrupt vector. the KERNAL vector is
// used if the KERNAL is visible, otherwise the hardware vector
func (e *Engine) irqAddress() uint16 {
	vector := addresses.IRQ
	if _, _, kernal := e.Mem.Banks(); kernal {
		vector = addresses.IRQVector
	}
	return uint16(e.Mem.Peek(vector)) | uint16(e.Mem.Peek(vector+1))<<8
}

// the extended SID registers used by sample players in both SID areas
var extendedRegisters = [...]uint16{
	0xd41d, 0xd41e, 0xd41f, 0xd43d, 0xd43e, 0xd43f,
	0xd45d, 0xd45e, 0xd45f, 0xd47d, 0xd47e, 0xd47f,
	0xd51d, 0xd51e, 0xd51f, 0xd53d, 0xd53e, 0xd53f,
	0xd55d, 0xd55e, 0xd55f, 0xd57d, 0xd57e, 0xd57f,
}

func (e *Engine) readExtended() [len(extendedRegisters)]uint8 {
	var v [len(extendedRegisters)]uint8
	for i, a := range extendedRegisters {
		v[i] = e.Mem.PeekIO(a)
	}
	return v
}

// digiScan runs the play routine for the number of ticks. Returns true if
// any of the extended SID registers changed value between ticks. No audio is
// generated and logging is muted.
func (e *Engine) digiScan(ticks int) bool {
	e.logging = false
	defer func() {
		e.logging = true
	}()

	detected := false
	prev := e.readExtended()
	for range ticks {
		// the registers are read before the sample emulator sees them
		e.play()
		curr := e.readExtended()
		e.update()

		if curr != prev {
			detected = true
		}
		prev = e.readExtended()
	}

	return detected
}
