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

package digi

import (
	"fmt"
)

// Memory is the interface to the C64 memory required by the emulator.
type Memory interface {
	// read and write the I/O area without side effects
	PeekIO(address uint16) uint8
	PokeIO(address uint16, data uint8)

	// read RAM without side effects. sample data is always read from RAM
	PeekRAM(address uint16) uint8
}

// register offsets from the slot base.
const (
	regControl     = 0x1d
	regStartLo     = 0x1e
	regStartHi     = 0x1f
	regEndLo       = 0x3d
	regEndHi       = 0x3e
	regRepeats     = 0x3f
	regPeriodLo    = 0x5d
	regPeriodHi    = 0x5e
	regScale       = 0x5f
	regOrder       = 0x7d
	regRepeatLo    = 0x7e
	regRepeatHi    = 0x7f
	regGalwayTones = 0x1d
	regGalwayTable = 0x1e
	regVolumeAdd   = 0x3e
	regLoopWait    = 0x3f
	regNullWait    = 0x5d
)

// control byte commands.
const (
	cmdIdle      = 0x00
	cmdStop      = 0xfd
	cmdStartHalf = 0xfe
	cmdStart     = 0xff
)

// slot base addresses.
var slotBase = [2]uint16{0xd400, 0xd500}

// conversion of 4 bit samples to signed 8 bit values
var nibbleTable = [16]int16{
	-128, -119, -102, -85, -68, -51, -34, -17, 0, 17, 34, 51, 68, 85, 102, 119,
}

// Mode of a channel.
type Mode int

// List of valid Mode values.
const (
	Idle Mode = iota
	Huelsbeck
	Galway
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Huelsbeck:
		return "Huelsbeck"
	case Galway:
		return "Galway"
	}
	return fmt.Sprintf("unknown mode (%d)", int(m))
}

type channel struct {
	mode Mode
	base uint16

	// the current output of the channel
	output int16

	// cycles remaining until the next change to the output, in 16.16 fixed
	// point
	wait uint32

	// sample playback
	address    uint16
	end        uint16
	repeatAddr uint16
	repeats    uint8
	lowFirst   bool
	highNibble bool
	period     uint32
	volShift   uint

	// galway playback
	tones       int
	table       uint16
	volume      uint8
	volumeAdd   uint8
	loopWait    uint32
	nullWait    uint32
	halfPeriods int
}

// Emulator is the sample playback emulator for both channel slots.
type Emulator struct {
	channels [2]channel

	// C64 cycles per output sample in 16.16 fixed point
	cyclesPerSample uint32

	mem Memory
}

// NewEmulator is the preferred method of initialisation for the Emulator
// type.
func NewEmulator(clockHz int, sampleRate int) *Emulator {
	e := &Emulator{}
	e.Configure(clockHz, sampleRate)
	e.Reset()
	return e
}

// Configure the emulator for the C64 clock speed and the output sample rate.
func (e *Emulator) Configure(clockHz int, sampleRate int) {
	e.cyclesPerSample = uint32((uint64(clockHz) << 16) / uint64(sampleRate))
}

// Reset all channels to idle.
func (e *Emulator) Reset() {
	for i := range e.channels {
		e.channels[i] = channel{base: slotBase[i]}
	}
}

// Mode returns the mode of the channel in the slot.
func (e *Emulator) Mode(slot int) Mode {
	return e.channels[slot].mode
}

// Active returns true if any channel is playing.
func (e *Emulator) Active() bool {
	return e.channels[0].mode != Idle || e.channels[1].mode != Idle
}

func word(mem Memory, address uint16) uint16 {
	return uint16(mem.PeekIO(address)) | uint16(mem.PeekIO(address+1))<<8
}

// CheckForInit reads the control byte of each slot and starts or stops the
// channel accordingly.
func (e *Emulator) CheckForInit(mem Memory) {
	e.mem = mem

	for i := range e.channels {
		ch := &e.channels[i]

		ctrl := mem.PeekIO(ch.base + regControl)
		switch ctrl {
		case cmdIdle:
			continue
		case cmdStart, cmdStartHalf:
			ch.startSample(mem, ctrl == cmdStartHalf)
		case cmdStop:
			ch.stop()
		default:
			if i != 0 {
				continue
			}
			ch.startGalway(mem)
		}

		mem.PokeIO(ch.base+regControl, cmdIdle)
	}
}

func (ch *channel) stop() {
	ch.mode = Idle
	ch.output = 0
}

func (ch *channel) startSample(mem Memory, half bool) {
	ch.address = word(mem, ch.base+regStartLo)
	ch.end = word(mem, ch.base+regEndLo)
	ch.repeats = mem.PeekIO(ch.base + regRepeats)
	ch.repeatAddr = word(mem, ch.base+regRepeatLo)
	ch.lowFirst = mem.PeekIO(ch.base+regOrder) == 0
	ch.highNibble = !ch.lowFirst

	period := uint32(word(mem, ch.base+regPeriodLo))
	period <<= mem.PeekIO(ch.base+regScale) & 0x0f
	ch.period = min(max(period, 1), 0xffff) << 16

	ch.volShift = 0
	if half {
		ch.volShift = 1
	}

	if ch.address >= ch.end {
		ch.stop()
		return
	}

	ch.mode = Huelsbeck
	ch.wait = 0
	ch.nextNibble(mem)
}

// advance to the next nibble of the sample data
func (ch *channel) nextNibble(mem Memory) {
	if ch.address >= ch.end {
		if ch.repeats == 0 {
			ch.stop()
			return
		}
		ch.repeats--
		ch.address = ch.repeatAddr
		ch.highNibble = !ch.lowFirst
		if ch.address >= ch.end {
			ch.stop()
			return
		}
	}

	b := mem.PeekRAM(ch.address)
	var n uint8
	if ch.highNibble {
		n = b >> 4
	} else {
		n = b & 0x0f
	}

	// the address advances after both nibbles have been played
	if ch.highNibble == ch.lowFirst {
		ch.address++
	}
	ch.highNibble = !ch.highNibble

	ch.output = nibbleTable[n] >> ch.volShift
	ch.wait += ch.period
}

func (ch *channel) startGalway(mem Memory) {
	ch.tones = int(mem.PeekIO(ch.base + regGalwayTones))
	ch.table = word(mem, ch.base+regGalwayTable)
	ch.volumeAdd = mem.PeekIO(ch.base+regVolumeAdd) & 0x0f
	ch.loopWait = uint32(mem.PeekIO(ch.base + regLoopWait))
	ch.nullWait = uint32(mem.PeekIO(ch.base + regNullWait))
	ch.volume = 0
	ch.halfPeriods = 0
	ch.mode = Galway
	ch.wait = 0
	ch.nextHalfPeriod(mem)
}

// galway playback plays each tone for 16 half periods. the volume is stepped
// at the start of each half period
func (ch *channel) nextHalfPeriod(mem Memory) {
	if ch.halfPeriods == 0 {
		if ch.tones == 0 {
			ch.stop()
			return
		}
		ch.tones--
		tone := uint32(mem.PeekRAM(ch.table))
		ch.table++
		ch.period = max(tone*ch.loopWait+ch.nullWait, 1) << 16
		ch.halfPeriods = 16
	}

	ch.halfPeriods--
	ch.volume = (ch.volume + ch.volumeAdd) & 0x0f
	ch.output = nibbleTable[ch.volume]
	ch.wait += ch.period
}

func (ch *channel) sample(mem Memory, cycles uint32) int16 {
	if ch.mode == Idle {
		return 0
	}

	out := ch.output

	for ch.mode != Idle && ch.wait <= cycles {
		cycles -= ch.wait
		ch.wait = 0
		switch ch.mode {
		case Huelsbeck:
			ch.nextNibble(mem)
		case Galway:
			ch.nextHalfPeriod(mem)
		}
	}
	ch.wait -= min(cycles, ch.wait)

	return out
}

// Sample returns the next output sample, the sum of both channels. The
// range of the value is that of a signed 8 bit sample for each channel.
func (e *Emulator) Sample() int16 {
	if e.mem == nil {
		return 0
	}
	return e.channels[0].sample(e.mem, e.cyclesPerSample) +
		e.channels[1].sample(e.mem, e.cyclesPerSample)
}
