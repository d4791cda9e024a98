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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Player routines often poll the raster line or a CIA timer while waiting for
// the hardware to change state. There is no video chip or CIA in the
// emulation so those reads are answered by the FakeRead() function, which
// returns the next value of a short multiply-accumulate sequence.
//
// The sequence is entirely determined by the seed given to NewRandom(). Two
// instances created with the same seed will always return the same sequence
// of numbers, which is what makes rendering a tune repeatable.
package random
