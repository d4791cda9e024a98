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

//go:build !headless

package playback

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/logger"
)

// the amount of audio buffered by the sound card
const bufferSize = 100 * time.Millisecond

// Player sends audio from a Source to the sound card.
type Player struct {
	r *reader

	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The sound card only supports unsigned eight bit samples and signed sixteen
// bit samples, in mono or stereo.
//
// Only one Player can be created during the lifetime of the program.
func NewPlayer(src Source, sampleRate int, bitsPerSample int, signed bool, channels int) (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		BufferSize:   bufferSize,
	}

	r := &reader{src: src}

	switch {
	case bitsPerSample == 8 && !signed:
		opts.Format = oto.FormatUnsignedInt8
		r.silence = 0x80
	case bitsPerSample == 16 && signed:
		opts.Format = oto.FormatSignedInt16LE
	default:
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("%d bits signed=%v", bitsPerSample, signed))
	}

	if channels != 1 && channels != 2 {
		return nil, curated.Errorf(UnsupportedFormat, fmt.Sprintf("%d channels", channels))
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	<-ready

	logger.Logf(logger.Allow, "playback", "%dHz %dbit %dch", sampleRate, bitsPerSample, channels)

	return &Player{
		r:      r,
		ctx:    ctx,
		player: ctx.NewPlayer(r),
	}, nil
}

// Play starts the audio.
func (p *Player) Play() {
	p.player.Play()
}

// Close stops the audio.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return curated.Errorf("playback: %v", err)
	}
	return nil
}
