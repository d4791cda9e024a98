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
	"strings"
)

// RingWriter keeps the most recent lines written to it. Output that does not
// end with a newline is held until the line is completed. Useful for
// capturing the echo of the central log, where only the latest entries are
// of interest.
type RingWriter struct {
	lines   []string
	next    int
	full    bool
	partial strings.Builder
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The lines argument is the number of complete lines kept.
func NewRingWriter(lines int) (*RingWriter, error) {
	if lines <= 0 {
		return nil, fmt.Errorf("ring writer: invalid number of lines (%d)", lines)
	}
	return &RingWriter{
		lines: make([]string, lines),
	}, nil
}

// Lines returns the complete lines in the order they were written, without
// their newline characters.
func (r *RingWriter) Lines() []string {
	if !r.full {
		return append([]string{}, r.lines[:r.next]...)
	}
	l := append([]string{}, r.lines[r.next:]...)
	return append(l, r.lines[:r.next]...)
}

// Last returns the most recent complete line. The empty string is returned
// if no line has been completed.
func (r *RingWriter) Last() string {
	if !r.full && r.next == 0 {
		return ""
	}
	return r.lines[(r.next+len(r.lines)-1)%len(r.lines)]
}

// String returns the kept lines joined with a newline. The final line is
// also terminated with a newline.
func (r *RingWriter) String() string {
	l := r.Lines()
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}

// Reset removes all lines, including any incomplete line.
func (r *RingWriter) Reset() {
	r.next = 0
	r.full = false
	r.partial.Reset()
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	s := string(p)
	for {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			r.partial.WriteString(s)
			break
		}
		r.partial.WriteString(s[:i])
		r.push(r.partial.String())
		r.partial.Reset()
		s = s[i+1:]
	}
	return len(p), nil
}

func (r *RingWriter) push(line string) {
	r.lines[r.next] = line
	r.next++
	if r.next >= len(r.lines) {
		r.next = 0
		r.full = true
	}
}
