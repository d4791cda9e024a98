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

package easyterm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/pkg/term/termios"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the Terminal with the files for input and output. The terminal
// is in canonical mode after initialisation.
func (pt *Terminal) Initialise(input *os.File, output *os.File) error {
	if input == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if output == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// cbreak is canonical mode without line buffering or echo
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
	pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// ReadKey waits for a single key press. Should be used in cbreak mode.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Keys starts a goroutine that sends every key press to the returned
// channel. The channel is closed when the input is closed or cannot be read.
func (pt *Terminal) Keys() <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		for {
			k, err := pt.ReadKey()
			if err != nil {
				return
			}
			keys <- k
		}
	}()
	return keys
}
