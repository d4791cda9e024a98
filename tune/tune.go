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

package tune

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
)

// Sentinal errors returned by Validate().
const (
	InvalidTune = "tune: invalid: %s"
)

// Speed of a song.
type Speed int

// List of valid Speed values.
const (
	SpeedVBI Speed = iota
	SpeedCIA
)

func (s Speed) String() string {
	if s == SpeedCIA {
		return "CIA"
	}
	return "VBI"
}

// Clock is the video standard the tune was written for.
type Clock int

// List of valid Clock values.
const (
	ClockUnknown Clock = iota
	ClockPAL
	ClockNTSC
	ClockAny
)

func (c Clock) String() string {
	switch c {
	case ClockPAL:
		return "PAL"
	case ClockNTSC:
		return "NTSC"
	case ClockAny:
		return "PAL/NTSC"
	}
	return "unknown"
}

// Model is the SID model the tune was written for.
type Model int

// List of valid Model values.
const (
	ModelUnknown Model = iota
	Model6581
	Model8580
	ModelAny
)

func (m Model) String() string {
	switch m {
	case Model6581:
		return "6581"
	case Model8580:
		return "8580"
	case ModelAny:
		return "6581/8580"
	}
	return "unknown"
}

// Tune describes a C64 music program. A Tune should not be changed once it
// has been given to the engine.
type Tune struct {
	// "PSID" or "RSID". empty for tunes not created by ParsePSID()
	Format  string
	Version int

	LoadAddress uint16
	InitAddress uint16

	// zero means the play routine is installed by the init routine as an
	// interrupt handler
	PlayAddress uint16

	Songs     int
	StartSong int

	// one bit per song. see the package documentation
	Speed uint32

	Clock Clock
	Model Model

	// address of a second SID chip. zero if there is no second chip
	SecondSID uint16

	Name     string
	Author   string
	Released string

	// the tune requires the PlaySID specific sample registers
	PlaySIDSpecific bool

	// the program, to be placed at LoadAddress
	Data []uint8
}

func (t *Tune) String() string {
	return fmt.Sprintf("%s by %s (%s)", t.Name, t.Author, t.Released)
}

// SongSpeed returns the speed of the song. Songs are numbered from one.
func (t *Tune) SongSpeed(song int) Speed {
	bit := min(max(song-1, 0), 31)
	if t.Speed&(1<<bit) != 0 {
		return SpeedCIA
	}
	return SpeedVBI
}

// IsRSID returns true if the tune was parsed from an RSID file.
func (t *Tune) IsRSID() bool {
	return t.Format == "RSID"
}

// Validate checks that the tune can be loaded.
func (t *Tune) Validate() error {
	if len(t.Data) == 0 {
		return curated.Errorf(InvalidTune, "no data")
	}
	if int(t.LoadAddress)+len(t.Data) > 0x10000 {
		return curated.Errorf(InvalidTune, fmt.Sprintf("data (%d bytes) does not fit at %#04x", len(t.Data), t.LoadAddress))
	}
	if t.Songs < 1 {
		return curated.Errorf(InvalidTune, "no songs")
	}
	if t.StartSong < 1 || t.StartSong > t.Songs {
		return curated.Errorf(InvalidTune, fmt.Sprintf("start song %d not in range 1 to %d", t.StartSong, t.Songs))
	}
	return nil
}

// Info returns a multiline description of the tune.
func (t *Tune) Info() string {
	s := strings.Builder{}
	if t.Format != "" {
		fmt.Fprintf(&s, "format:    %s v%d\n", t.Format, t.Version)
	}
	fmt.Fprintf(&s, "name:      %s\n", t.Name)
	fmt.Fprintf(&s, "author:    %s\n", t.Author)
	fmt.Fprintf(&s, "released:  %s\n", t.Released)
	fmt.Fprintf(&s, "load:      %#04x-%#04x\n", t.LoadAddress, int(t.LoadAddress)+len(t.Data)-1)
	fmt.Fprintf(&s, "init:      %#04x\n", t.InitAddress)
	fmt.Fprintf(&s, "play:      %#04x\n", t.PlayAddress)
	fmt.Fprintf(&s, "songs:     %d (start %d)\n", t.Songs, t.StartSong)
	fmt.Fprintf(&s, "clock:     %s\n", t.Clock)
	fmt.Fprintf(&s, "model:     %s\n", t.Model)
	if t.SecondSID != 0 {
		fmt.Fprintf(&s, "second sid: %#04x\n", t.SecondSID)
	}
	return s.String()
}
