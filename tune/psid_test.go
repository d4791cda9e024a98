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

package tune_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/test"
	"github.com/jetsetilly/gopher6581/tune"
)

type header struct {
	magic     string
	version   uint16
	load      uint16
	init      uint16
	play      uint16
	songs     uint16
	start     uint16
	speed     uint32
	flags     uint16
	secondSID uint8
}

func (h header) build(name string, data []byte) []byte {
	offset := 0x7c
	if h.version == 1 {
		offset = 0x76
	}

	b := make([]byte, offset)
	copy(b, h.magic)
	be := binary.BigEndian
	be.PutUint16(b[0x04:], h.version)
	be.PutUint16(b[0x06:], uint16(offset))
	be.PutUint16(b[0x08:], h.load)
	be.PutUint16(b[0x0a:], h.init)
	be.PutUint16(b[0x0c:], h.play)
	be.PutUint16(b[0x0e:], h.songs)
	be.PutUint16(b[0x10:], h.start)
	be.PutUint32(b[0x12:], h.speed)
	copy(b[0x16:], name)
	copy(b[0x36:], "Composer")
	copy(b[0x56:], "1987 \xa9 Someone")
	if h.version >= 2 {
		be.PutUint16(b[0x76:], h.flags)
		b[0x7a] = h.secondSID
	}
	return append(b, data...)
}

func TestParsePSID(t *testing.T) {
	h := header{
		magic:   "PSID",
		version: 2,
		load:    0x1000,
		init:    0x1000,
		play:    0x1003,
		songs:   3,
		start:   2,
		speed:   0x00000002,
		flags:   0x0014,
	}
	tn, err := tune.ParsePSID(h.build("Test Tune", []byte{0x4c, 0x06, 0x10, 0x4c, 0x07, 0x10, 0x60, 0x60}))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tn.Format, "PSID")
	test.ExpectEquality(t, tn.Version, 2)
	test.ExpectEquality(t, tn.LoadAddress, uint16(0x1000))
	test.ExpectEquality(t, tn.InitAddress, uint16(0x1000))
	test.ExpectEquality(t, tn.PlayAddress, uint16(0x1003))
	test.ExpectEquality(t, tn.Songs, 3)
	test.ExpectEquality(t, tn.StartSong, 2)
	test.ExpectEquality(t, tn.Name, "Test Tune")
	test.ExpectEquality(t, tn.Author, "Composer")
	test.ExpectEquality(t, tn.Released, "1987 © Someone")
	test.ExpectEquality(t, tn.Clock, tune.ClockPAL)
	test.ExpectEquality(t, tn.Model, tune.Model6581)
	test.ExpectEquality(t, len(tn.Data), 8)
	test.ExpectFailure(t, tn.IsRSID())

	test.ExpectEquality(t, tn.SongSpeed(1), tune.SpeedVBI)
	test.ExpectEquality(t, tn.SongSpeed(2), tune.SpeedCIA)
	test.ExpectEquality(t, tn.SongSpeed(3), tune.SpeedVBI)
}

func TestSongSpeedBeyond32(t *testing.T) {
	tn := &tune.Tune{Speed: 0x80000000}
	test.ExpectEquality(t, tn.SongSpeed(31), tune.SpeedVBI)
	test.ExpectEquality(t, tn.SongSpeed(32), tune.SpeedCIA)
	test.ExpectEquality(t, tn.SongSpeed(33), tune.SpeedCIA)
	test.ExpectEquality(t, tn.SongSpeed(256), tune.SpeedCIA)
}

func TestEmbeddedLoadAddress(t *testing.T) {
	h := header{magic: "PSID", version: 1, songs: 1, start: 1}
	tn, err := tune.ParsePSID(h.build("v1", []byte{0x00, 0xc0, 0x60}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.LoadAddress, uint16(0xc000))
	test.ExpectEquality(t, tn.InitAddress, uint16(0xc000))
	test.ExpectEquality(t, len(tn.Data), 1)
	test.ExpectEquality(t, tn.Clock, tune.ClockUnknown)
}

func TestSecondSID(t *testing.T) {
	h := header{magic: "PSID", version: 3, load: 0x1000, songs: 1, start: 1, secondSID: 0x50}
	tn, err := tune.ParsePSID(h.build("2sid", []byte{0x60}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.SecondSID, uint16(0xd500))

	h.secondSID = 0xe0
	tn, err = tune.ParsePSID(h.build("2sid", []byte{0x60}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.SecondSID, uint16(0xde00))

	// odd values are invalid
	h.secondSID = 0x51
	tn, err = tune.ParsePSID(h.build("2sid", []byte{0x60}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.SecondSID, uint16(0))

	// ignored for version 2
	h.version = 2
	h.secondSID = 0x50
	tn, err = tune.ParsePSID(h.build("2sid", []byte{0x60}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.SecondSID, uint16(0))
}

func TestRSID(t *testing.T) {
	h := header{magic: "RSID", version: 2, load: 0x0801, songs: 1, start: 1}
	tn, err := tune.ParsePSID(h.build("rsid", []byte{0x60}))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tn.IsRSID())
}

func TestInvalidFiles(t *testing.T) {
	_, err := tune.ParsePSID([]byte("MThd"))
	test.ExpectSuccess(t, curated.Is(err, tune.UnsupportedFormat))

	_, err = tune.ParsePSID([]byte("PSID"))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidHeader))

	h := header{magic: "PSID", version: 5, load: 0x1000, songs: 1, start: 1}
	_, err = tune.ParsePSID(h.build("v5", []byte{0x60}))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidHeader))

	// no data
	h.version = 2
	_, err = tune.ParsePSID(h.build("empty", nil))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidTune))

	// no songs
	h.songs = 0
	_, err = tune.ParsePSID(h.build("nosongs", []byte{0x60}))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidTune))

	// start song out of range
	h.songs = 2
	h.start = 3
	_, err = tune.ParsePSID(h.build("start", []byte{0x60}))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidTune))

	// data beyond end of memory
	h.start = 1
	h.load = 0xfff0
	_, err = tune.ParsePSID(h.build("toolong", make([]byte, 0x20)))
	test.ExpectSuccess(t, curated.Is(err, tune.InvalidTune))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.sid")
	h := header{magic: "PSID", version: 2, load: 0x1000, init: 0x1000, play: 0x1003, songs: 1, start: 1}
	test.DemandSuccess(t, os.WriteFile(fn, h.build("file", []byte{0x60, 0x00, 0x00, 0x60}), 0o600))

	tn, err := tune.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tn.Name, "file")
	test.ExpectEquality(t, tn.String(), "file by Composer (1987 © Someone)")

	_, err = tune.Load(filepath.Join(t.TempDir(), "missing.sid"))
	test.ExpectFailure(t, err)
}
