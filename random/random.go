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

package random

// Random is the source of pseudo-random values for the emulation.
type Random struct {
	seed  int64
	timer uint16
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	rnd := &Random{seed: seed}
	rnd.Reset()
	return rnd
}

// Reseed changes the seed and restarts the sequence.
func (rnd *Random) Reseed(seed int64) {
	rnd.seed = seed
	rnd.Reset()
}

// Reset restarts the sequence from the beginning.
func (rnd *Random) Reset() {
	// fold the 64bit seed into the width of the timer
	s := uint64(rnd.seed)
	rnd.timer = uint16(s ^ s>>16 ^ s>>32 ^ s>>48)
}

// FakeRead returns the next value in the fake read timer sequence.
func (rnd *Random) FakeRead() uint8 {
	rnd.timer = rnd.timer*13 + 1
	return uint8(rnd.timer >> 3)
}
