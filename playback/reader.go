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

package playback

import (
	"sync"
)

// Sentinal errors returned by NewPlayer().
const (
	UnsupportedFormat = "playback: unsupported format: %s"
	NotAvailable      = "playback: not available in this build"
)

// Source is the interface to the producer of audio.
type Source interface {
	FillBuffer(buf []byte) int
}

// reader implements the io.Reader interface for the audio library
type reader struct {
	mu  sync.Mutex
	src Source

	// the value of a silent byte
	silence byte
}

// Read always fills the buffer. if the source can't produce a single frame
// the buffer is filled with silence
func (r *reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := r.src.FillBuffer(p); n > 0 {
		return n, nil
	}

	for i := range p {
		p[i] = r.silence
	}
	return len(p), nil
}

// Do runs the function while the source is not being read.
func (p *Player) Do(f func()) {
	p.r.mu.Lock()
	defer p.r.mu.Unlock()
	f()
}
