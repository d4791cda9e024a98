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
	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
)

// tick calls the play routine and updates the SID chips. The number of
// frames to generate before the next tick is added to pending.
func (e *Engine) tick() {
	e.play()
	e.update()

	e.fraction += e.samplesPerTick
	e.pending += int(e.fraction >> 16)
	e.fraction &= 0xffff
}

func (e *Engine) play() {
	e.Mem.ClearKeyLatches()

	address := e.playAddress
	var bank uint8
	if address == 0 {
		address = e.irqAddress()
		bank = e.Mem.Peek(addresses.ProcessorPort)
	} else {
		bank = InitBank(address)
	}

	e.CPU.Interpret(address, bank, 0, 0, 0)
}

// update the SID chips and the sample emulator with the state of the memory
// after the play routine
func (e *Engine) update() {
	for c := range e.chips {
		regs := e.Mem.SIDRegisters(c)
		if regs == nil {
			continue
		}
		keyOn, keyOff := e.Mem.KeyLatches(c)
		e.chips[c].Registers(regs, keyOn, keyOff)
	}

	e.digi.CheckForInit(e.Mem)

	// voice 3 envelope is readable by the play routine
	e.Mem.PokeIO(addresses.SIDOrigin+addresses.Env3, e.chips[0].EnvelopeOutput(2))
}

// FrameSize returns the number of bytes in one frame of output.
func (e *Engine) FrameSize() int {
	return e.Channels() * e.cfg.BitsPerSample / 8
}

// FillBuffer fills the buffer with audio. Only whole frames are written and
// the number of bytes written is returned. If no tune is loaded the frames
// are silent.
func (e *Engine) FillBuffer(buf []byte) int {
	channels := e.Channels()
	frames := len(buf) / e.FrameSize()
	if frames == 0 {
		return 0
	}

	values := frames * channels
	if cap(e.mix) < values {
		e.mix = make([]int32, values)
	}
	mix := e.mix[:values]

	if e.tune == nil {
		clear(mix)
	} else {
		done := 0
		for done < frames {
			if e.pending == 0 {
				e.tick()
				continue
			}
			n := min(e.pending, frames-done)
			e.generate(n, mix[done*channels:])
			done += n
			e.pending -= n
		}
	}

	return e.convert(mix, buf)
}

// generate n frames from the SID chips
func (e *Engine) generate(n int, out []int32) {
	channels := e.Channels()

	if !e.secondChip() {
		e.chips[0].Generate(n, out, channels)
		return
	}

	// in stereo each chip is on its own side
	if channels == 2 {
		e.chips[0].Generate(n, out, 2)
		e.chips[1].Generate(n, out[1:], 2)
		return
	}

	values := n * channels
	if cap(e.second) < values {
		e.second = make([]int32, values)
	}
	second := e.second[:values]

	e.chips[0].Generate(n, out, channels)
	e.chips[1].Generate(n, second, channels)
	for i := range second {
		out[i] = (out[i] + second[i]) / 2
	}
}

// convert values to the configured sample format. returns the number of
// bytes written
func (e *Engine) convert(mix []int32, buf []byte) int {
	i := 0
	switch e.cfg.BitsPerSample {
	case 8:
		for _, v := range mix {
			s := int8(min(max(v>>8, -128), 127))
			if e.cfg.Signed {
				buf[i] = uint8(s)
			} else {
				buf[i] = uint8(int(s) + 128)
			}
			i++
		}
	default:
		for _, v := range mix {
			s := int16(min(max(v, -32768), 32767))
			var u uint16
			if e.cfg.Signed {
				u = uint16(s)
			} else {
				u = uint16(int(s) + 32768)
			}
			buf[i] = uint8(u)
			buf[i+1] = uint8(u >> 8)
			i += 2
		}
	}
	return i
}
