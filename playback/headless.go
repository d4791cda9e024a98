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

//go:build headless

package playback

import (
	"github.com/jetsetilly/gopher6581/curated"
)

// Player is not available in headless builds.
type Player struct {
	r *reader
}

// NewPlayer always returns an error in headless builds.
func NewPlayer(_ Source, _ int, _ int, _ bool, _ int) (*Player, error) {
	return nil, curated.Errorf(NotAvailable)
}

// Play does nothing in headless builds.
func (p *Player) Play() {
}

// Close does nothing in headless builds.
func (p *Player) Close() error {
	return nil
}
