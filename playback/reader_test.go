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
	"testing"
	"time"

	"github.com/jetsetilly/gopher6581/test"
)

// produces frames of four bytes with an increasing value
type frames struct {
	ready bool
	v     byte
}

func (f *frames) FillBuffer(buf []byte) int {
	if !f.ready {
		return 0
	}
	n := len(buf) / 4 * 4
	for i := range n {
		buf[i] = f.v
		f.v++
	}
	return n
}

func TestRead(t *testing.T) {
	src := &frames{}
	p := &Player{r: &reader{src: src, silence: 0x80}}

	// silence until the source is ready
	buf := make([]byte, 10)
	n, err := p.r.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	for _, b := range buf {
		test.ExpectEquality(t, b, uint8(0x80))
	}

	p.Do(func() {
		src.ready = true
	})

	// only whole frames
	n, err = p.r.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)
	test.ExpectEquality(t, buf[7], uint8(7))
}

func TestDo(t *testing.T) {
	src := &frames{ready: true}
	p := &Player{r: &reader{src: src}}

	// the reader waits for Do() to complete
	done := make(chan bool)
	p.Do(func() {
		go func() {
			p.r.Read(make([]byte, 4))
			done <- true
		}()

		select {
		case <-done:
			t.Errorf("read during Do()")
		case <-time.After(10 * time.Millisecond):
		}
	})
	<-done

	test.ExpectEquality(t, src.v, uint8(4))
}
