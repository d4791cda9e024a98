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


package test

import (
	"fmt"
	"io"
	"strings"
)

// CappedWriter accepts output up to a fixed number of bytes. Output beyond
// that is discarded and the writer is marked as overflowed, which a test can
// check to make sure that nothing it expects to see has been lost.
type CappedWriter struct {
	buffer     []byte
	size       int
	overflowed bool
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("capped writer: invalid size (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Overflowed returns true if any output has been discarded since the last
// call to Reset().
func (c *CappedWriter) Overflowed() bool {
	return c.overflowed
}

// Contains returns true if all the strings are in the captured output.
func (c *CappedWriter) Contains(s ...string) bool {
	for _, v := range s {
		if !strings.Contains(string(c.buffer), v) {
			return false
		}
	}
	return true
}

// Reset discards the captured output and clears the overflow flag.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
	c.overflowed = false
}

// Write implements the io.Writer interface. A write that does not fit
// completely returns io.ErrShortWrite.
func (c *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), c.size-len(c.buffer))
	c.buffer = append(c.buffer, p[:n]...)
	if n < len(p) {
		c.overflowed = true
		return n, io.ErrShortWrite
	}
	return n, nil
}
