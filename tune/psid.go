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
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/logger"
)

// Sentinal errors returned by ParsePSID().
const (
	UnsupportedFormat = "tune: unsupported format (%s)"
	InvalidHeader     = "tune: invalid header: %s"
)

// header offsets
const (
	offVersion    = 0x04
	offDataOffset = 0x06
	offLoad       = 0x08
	offInit       = 0x0a
	offPlay       = 0x0c
	offSongs      = 0x0e
	offStartSong  = 0x10
	offSpeed      = 0x12
	offName       = 0x16
	offAuthor     = 0x36
	offReleased   = 0x56
	offFlags      = 0x76
	offSecondSID  = 0x7a
	offThirdSID   = 0x7b

	// length of a version one header. later versions are 0x7c bytes
	headerV1 = 0x76
	headerV2 = 0x7c

	stringLen = 32
)

// Load reads and parses the PSID or RSID file.
func Load(filename string) (*Tune, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParsePSID(data)
}

// ParsePSID parses the contents of a PSID or RSID file. Versions one to four
// of the header are supported.
func ParsePSID(data []byte) (*Tune, error) {
	if len(data) < 4 {
		return nil, curated.Errorf(UnsupportedFormat, "too short")
	}

	t := &Tune{
		Format: string(data[:4]),
	}

	switch t.Format {
	case "PSID", "RSID":
	default:
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("%q", data[:4]))
	}

	if len(data) < headerV1 {
		return nil, curated.Errorf(InvalidHeader, "too short")
	}

	be := binary.BigEndian

	t.Version = int(be.Uint16(data[offVersion:]))
	if t.Version < 1 || t.Version > 4 {
		return nil, curated.Errorf(InvalidHeader, fmt.Sprintf("version %d", t.Version))
	}

	dataOffset := int(be.Uint16(data[offDataOffset:]))
	expected := headerV2
	if t.Version == 1 {
		expected = headerV1
	}
	if dataOffset != expected {
		return nil, curated.Errorf(InvalidHeader, fmt.Sprintf("data offset %#04x for version %d", dataOffset, t.Version))
	}
	if dataOffset > len(data) {
		return nil, curated.Errorf(InvalidHeader, "data offset beyond end of file")
	}

	t.LoadAddress = be.Uint16(data[offLoad:])
	t.InitAddress = be.Uint16(data[offInit:])
	t.PlayAddress = be.Uint16(data[offPlay:])
	t.Songs = int(be.Uint16(data[offSongs:]))
	t.StartSong = int(be.Uint16(data[offStartSong:]))
	t.Speed = be.Uint32(data[offSpeed:])
	t.Name = latin1(data[offName : offName+stringLen])
	t.Author = latin1(data[offAuthor : offAuthor+stringLen])
	t.Released = latin1(data[offReleased : offReleased+stringLen])

	if t.StartSong == 0 {
		t.StartSong = 1
	}

	if t.Version >= 2 {
		flags := be.Uint16(data[offFlags:])
		t.PlaySIDSpecific = flags&0x02 == 0x02
		t.Clock = Clock((flags >> 2) & 0x03)
		t.Model = Model((flags >> 4) & 0x03)

		if t.Version >= 3 {
			t.SecondSID = sidAddress(data[offSecondSID])
		}
		if t.Version >= 4 && sidAddress(data[offThirdSID]) != 0 {
			logger.Logf(logger.Allow, "tune", "third SID at %#04x is not supported", sidAddress(data[offThirdSID]))
		}
	}

	img := data[dataOffset:]
	if t.LoadAddress == 0 {
		if len(img) < 2 {
			return nil, curated.Errorf(InvalidHeader, "missing embedded load address")
		}
		t.LoadAddress = binary.LittleEndian.Uint16(img)
		img = img[2:]
	}

	t.Data = make([]uint8, len(img))
	copy(t.Data, img)

	// the init address of zero means the start of the data
	if t.InitAddress == 0 {
		t.InitAddress = t.LoadAddress
	}

	if t.IsRSID() {
		logger.Log(logger.Allow, "tune", "RSID tune will be played in PlaySID memory mode")
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// sidAddress converts the value in the header to the address of a SID
// chip. only even values in the ranges 0x42 to 0x7f and 0xe0 to 0xfe are
// valid. the address of an invalid value is zero
func sidAddress(v uint8) uint16 {
	if v&0x01 == 0x01 {
		return 0
	}
	if (v >= 0x42 && v <= 0x7f) || (v >= 0xe0 && v <= 0xfe) {
		return 0xd000 | uint16(v)<<4
	}
	return 0
}

// strings in the header are Latin-1 and padded with zero bytes
func latin1(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0x00 {
			break
		}
		s.WriteRune(rune(c))
	}
	return s.String()
}
