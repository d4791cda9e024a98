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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher6581/easyterm"
	"github.com/jetsetilly/gopher6581/modalflag"
	"github.com/jetsetilly/gopher6581/playback"
	"github.com/jetsetilly/gopher6581/tune"
)

type keyCommand int

const (
	keyNone keyCommand = iota
	keyQuit
	keySong
)

// command returns the command for a key press. the song number is returned
// with the keySong command
func command(key byte, current int, songs int) (keyCommand, int) {
	switch key {
	case 'q', 'Q', 0x1b:
		return keyQuit, 0
	case 'n', 'N', '+':
		if current < songs {
			return keySong, current + 1
		}
	case 'p', 'P', '-':
		if current > 1 {
			return keySong, current - 1
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n := int(key - '0'); n <= songs {
			return keySong, n
		}
	}
	return keyNone, 0
}

const playHelp = "keys: 1-9 select song, n next, p previous, q quit\n"

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	song := md.AddInt("song", 0, "song to play. zero for the start song of the tune")
	override := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one tune file required")
	}

	t, err := tune.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	e, err := newEngine(*override, standardSignedness)
	if err != nil {
		return err
	}

	if err := e.Load(t, *song); err != nil {
		return err
	}

	cfg := e.Config()
	pl, err := playback.NewPlayer(e, cfg.SampleRate, cfg.BitsPerSample, cfg.Signed, e.Channels())
	if err != nil {
		return err
	}
	defer pl.Close()

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	term.CBreakMode()
	defer term.CanonicalMode()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	fmt.Fprintln(output, t)
	fmt.Fprint(output, playHelp)
	fmt.Fprintln(output, e.Info())

	pl.Play()

	keys := term.Keys()
	for {
		select {
		case <-intChan:
			return nil

		case k, ok := <-keys:
			if !ok {
				return nil
			}

			var cmd keyCommand
			var status string
			pl.Do(func() {
				var n int
				cmd, n = command(k, e.CurrentSong(), t.Songs)
				if cmd == keySong {
					err = e.SetSong(n)
					status = e.Info().String()
				}
			})

			switch cmd {
			case keyQuit:
				return nil
			case keySong:
				if err != nil {
					return err
				}
				term.Print("%s\n", status)
			}
		}
	}
}
