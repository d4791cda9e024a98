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

// Package playback sends the audio produced by the engine to the sound card.
// The engine is pulled on the goroutine of the audio library whenever the
// sound card needs more data. Changes to the engine, a change of song for
// example, should be made with the Do() function so that they never happen
// in the middle of a call to FillBuffer().
//
// The package is not available when built with the headless build tag.
package playback
