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

package digi_test

import (
	"testing"

	"github.com/jetsetilly/gopher6581/hardware/sid/digi"
	"github.com/jetsetilly/gopher6581/test"
)

type mockMem struct {
	ram [0x10000]uint8
	io  [0x10000]uint8
}

func (mem *mockMem) PeekIO(address uint16) uint8 {
	return mem.io[address]
}

func (mem *mockMem) PokeIO(address uint16, data uint8) {
	mem.io[address] = data
}

func (mem *mockMem) PeekRAM(address uint16) uint8 {
	return mem.ram[address]
}

func (mem *mockMem) setupSample(repeats uint8, repeatAddr uint16) {
	mem.ram[0x3000] = 0x1f
	mem.ram[0x3001] = 0x0a
	mem.io[0xd41e] = 0x00
	mem.io[0xd41f] = 0x30
	mem.io[0xd43d] = 0x02
	mem.io[0xd43e] = 0x30
	mem.io[0xd43f] = repeats
	mem.io[0xd45d] = 0x02
	mem.io[0xd45e] = 0x00
	mem.io[0xd45f] = 0x00
	mem.io[0xd47d] = 0x00
	mem.io[0xd47e] = uint8(repeatAddr)
	mem.io[0xd47f] = uint8(repeatAddr >> 8)
}

func samples(e *digi.Emulator, n int) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = e.Sample()
	}
	return s
}

func TestSamplePlayback(t *testing.T) {
	mem := &mockMem{}
	mem.setupSample(0, 0)

	// one cycle per sample
	e := digi.NewEmulator(1000, 1000)
	test.ExpectEquality(t, e.Sample(), int16(0))

	mem.io[0xd41d] = 0xff
	e.CheckForInit(mem)
	test.ExpectEquality(t, e.Mode(0), digi.Huelsbeck)
	test.ExpectSuccess(t, e.Active())

	// control byte is cleared after it has been read
	test.ExpectEquality(t, mem.io[0xd41d], uint8(0x00))

	expected := []int16{119, 119, -119, -119, 34, 34, -128, -128, 0, 0}
	for i, s := range samples(e, len(expected)) {
		test.ExpectEquality(t, s, expected[i], i)
	}
	test.ExpectEquality(t, e.Mode(0), digi.Idle)
	test.ExpectFailure(t, e.Active())
}

func TestSampleOrderAndVolume(t *testing.T) {
	mem := &mockMem{}
	mem.setupSample(0, 0)
	mem.io[0xd47d] = 0x01
	mem.io[0xd41d] = 0xfe

	e := digi.NewEmulator(1000, 1000)
	e.CheckForInit(mem)

	// high nibble first at half volume
	expected := []int16{-60, -60, 59, 59, -64, -64, 17, 17, 0}
	for i, s := range samples(e, len(expected)) {
		test.ExpectEquality(t, s, expected[i], i)
	}
}

func TestSampleRepeat(t *testing.T) {
	mem := &mockMem{}
	mem.setupSample(1, 0x3001)
	mem.io[0xd41d] = 0xff

	e := digi.NewEmulator(1000, 1000)
	e.CheckForInit(mem)

	expected := []int16{119, 119, -119, -119, 34, 34, -128, -128, 34, 34, -128, -128, 0}
	for i, s := range samples(e, len(expected)) {
		test.ExpectEquality(t, s, expected[i], i)
	}
}

func TestSampleStop(t *testing.T) {
	mem := &mockMem{}
	mem.setupSample(0xff, 0x3000)
	mem.io[0xd41d] = 0xff

	e := digi.NewEmulator(1000, 1000)
	e.CheckForInit(mem)
	samples(e, 3)
	test.ExpectEquality(t, e.Mode(0), digi.Huelsbeck)

	// no command leaves the channel playing
	e.CheckForInit(mem)
	test.ExpectEquality(t, e.Mode(0), digi.Huelsbeck)

	mem.io[0xd41d] = 0xfd
	e.CheckForInit(mem)
	test.ExpectEquality(t, e.Mode(0), digi.Idle)
	test.ExpectEquality(t, e.Sample(), int16(0))
}

func TestGalway(t *testing.T) {
	mem := &mockMem{}
	mem.ram[0x4000] = 1
	mem.ram[0x4001] = 2
	mem.io[0xd41d] = 2
	mem.io[0xd41e] = 0x00
	mem.io[0xd41f] = 0x40
	mem.io[0xd43e] = 1
	mem.io[0xd43f] = 1
	mem.io[0xd45d] = 1

	// galway values in the second slot are ignored
	mem.io[0xd51d] = 5

	e := digi.NewEmulator(1000, 1000)
	e.CheckForInit(mem)
	test.ExpectEquality(t, e.Mode(0), digi.Galway)
	test.ExpectEquality(t, e.Mode(1), digi.Idle)
	test.ExpectEquality(t, mem.io[0xd51d], uint8(5))

	s := samples(e, 3)
	test.ExpectEquality(t, s[0], int16(-119))
	test.ExpectEquality(t, s[1], int16(-119))
	test.ExpectEquality(t, s[2], int16(-102))

	// two tones of 16 half periods of 2 and 3 cycles
	samples(e, 76)
	test.ExpectEquality(t, e.Mode(0), digi.Galway)
	samples(e, 1)
	test.ExpectEquality(t, e.Mode(0), digi.Idle)
	test.ExpectEquality(t, e.Mode(0).String(), "Idle")
}
