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

package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/logger"
)

// Sentinal error returned by New().
const (
	UnsupportedFormat = "wavwriter: unsupported format: %s"
)

// the PCM audio format value of the WAV header
const pcmFormat = 1

// WavWriter implements the io.WriteCloser interface.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer

	bitsPerSample int
	channels      int

	// the number of frames written
	frames int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int, bitsPerSample int, channels int) (*WavWriter, error) {
	if bitsPerSample != 8 && bitsPerSample != 16 {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("%d bits per sample", bitsPerSample))
	}
	if channels < 1 || channels > 4 {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("%d channels", channels))
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename:      filename,
		f:             f,
		enc:           wav.NewEncoder(f, sampleRate, bitsPerSample, channels, pcmFormat),
		bitsPerSample: bitsPerSample,
		channels:      channels,
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitsPerSample,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// Write implements the io.Writer interface. The data should be whole frames
// of little-endian samples. Any trailing partial sample is ignored.
func (aw *WavWriter) Write(p []byte) (int, error) {
	aw.buf.Data = aw.buf.Data[:0]

	switch aw.bitsPerSample {
	case 8:
		for _, v := range p {
			aw.buf.Data = append(aw.buf.Data, int(v))
		}
	case 16:
		for i := 0; i+1 < len(p); i += 2 {
			aw.buf.Data = append(aw.buf.Data, int(int16(uint16(p[i])|uint16(p[i+1])<<8)))
		}
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return 0, curated.Errorf("wavwriter: %v", err)
	}

	aw.frames += len(aw.buf.Data) / aw.channels

	return len(p), nil
}

// Frames returns the number of frames written so far.
func (aw *WavWriter) Frames() int {
	return aw.frames
}

// Close implements the io.Closer interface. The WAV header is completed and
// the file is closed.
func (aw *WavWriter) Close() (rerr error) {
	defer func() {
		if err := aw.f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d frames written to %s", aw.frames, aw.filename)

	return nil
}
