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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// number of bytes of audio in each block
const blockLength = 1024

// Audio implements the io.Writer interface.
type Audio struct {
	digest [sha1.Size]byte

	// the previous digest followed by the audio in the current block
	buffer []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.Reset()
	return dig
}

// Hash returns the digest of the audio written so far, including any
// incomplete block.
func (dig *Audio) Hash() string {
	if len(dig.buffer) > sha1.Size {
		return fmt.Sprintf("%x", sha1.Sum(dig.buffer))
	}
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Reset the digest to its initial state.
func (dig *Audio) Reset() {
	clear(dig.digest[:])
	dig.buffer = make([]uint8, sha1.Size, sha1.Size+blockLength)
}

// Write implements the io.Writer interface.
func (dig *Audio) Write(p []byte) (int, error) {
	for _, v := range p {
		dig.buffer = append(dig.buffer, v)
		if len(dig.buffer) == cap(dig.buffer) {
			dig.digest = sha1.Sum(dig.buffer)
			copy(dig.buffer, dig.digest[:])
			dig.buffer = dig.buffer[:sha1.Size]
		}
	}
	return len(p), nil
}
