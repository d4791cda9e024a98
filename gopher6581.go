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
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/digest"
	"github.com/jetsetilly/gopher6581/hardware"
	"github.com/jetsetilly/gopher6581/hardware/preferences"
	"github.com/jetsetilly/gopher6581/logger"
	"github.com/jetsetilly/gopher6581/modalflag"
	"github.com/jetsetilly/gopher6581/paths"
	"github.com/jetsetilly/gopher6581/prefs"
	"github.com/jetsetilly/gopher6581/statsview"
	"github.com/jetsetilly/gopher6581/tune"
	"github.com/jetsetilly/gopher6581/version"
	"github.com/jetsetilly/gopher6581/wavwriter"
)

// number of frames passed to FillBuffer() at once when rendering
const renderFrames = 4096

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the value to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RENDER", "PLAY", "INFO")

	echo := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "show version information")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md, output)
	case "PLAY":
		err = play(md, output)
	case "INFO":
		err = info(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// newEngine creates an engine with the configuration from the preferences
// file. the override string is in the format accepted by
// prefs.PushCommandLineStack(). the adjust function is applied to the
// configuration before the engine is created
func newEngine(override string, adjust func(*preferences.Config)) (*hardware.Engine, error) {
	if override != "" {
		prefs.PushCommandLineStack(override)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	if err := p.Load(); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	cfg := p.Config()
	if adjust != nil {
		adjust(&cfg)
	}

	return hardware.NewEngine(cfg)
}

// eight bit WAV data and eight bit sound card data are unsigned
func standardSignedness(cfg *preferences.Config) {
	cfg.Signed = cfg.BitsPerSample == 16
}

// the file name with the path and extension removed
func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	engine := md.AddBool("engine", false, "load the start song and show engine information")
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

	fmt.Fprint(output, t.Info())

	if *engine {
		e, err := newEngine(*override, nil)
		if err != nil {
			return err
		}
		if err := e.Load(t, 0); err != nil {
			return err
		}
		fmt.Fprintln(output, e.Info())
		fmt.Fprint(output, e.RegisterDump())
	}

	return nil
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	song := md.AddInt("song", 0, "song to render. zero for the start song of the tune")
	all := md.AddBool("all", false, "render every song of the tune")
	duration := md.AddDuration("duration", 3*time.Minute, "length of the rendering of each song")
	override := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	memviz := md.AddString("memviz", "", "write a graphviz description of the engine to the file")
	regs := md.AddBool("regs", false, "show the SID registers at the end of each song")
	showDigest := md.AddBool("digest", false, "show the SHA-1 digest of the audio of each song")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var wavname string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("tune file required")
	case 1:
	case 2:
		wavname = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	filename := md.GetArg(0)
	t, err := tune.Load(filename)
	if err != nil {
		return err
	}

	e, err := newEngine(*override, standardSignedness)
	if err != nil {
		return err
	}

	songs := []int{*song}
	if *all {
		songs = songs[:0]
		for s := 1; s <= t.Songs; s++ {
			songs = append(songs, s)
		}
	}

	for _, s := range songs {
		var name string
		switch {
		case wavname == "":
			name = fmt.Sprintf("%s.wav", paths.UniqueFilename("render", baseName(filename)))
			if *all {
				name = fmt.Sprintf("%s_%02d.wav", strings.TrimSuffix(name, ".wav"), s)
			}
		case *all:
			name = fmt.Sprintf("%s_%02d%s", strings.TrimSuffix(wavname, filepath.Ext(wavname)), s, filepath.Ext(wavname))
		default:
			name = wavname
		}

		dig := digest.NewAudio()
		if err := renderSong(e, t, s, *duration, name, dig); err != nil {
			return err
		}

		fmt.Fprintf(output, "%s [song %d] -> %s\n", t, e.CurrentSong(), name)
		if *showDigest {
			fmt.Fprintf(output, "digest: %s\n", dig)
		}
		if *regs {
			fmt.Fprint(output, e.RegisterDump())
		}
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		e.Memviz(f)
	}

	return nil
}

// renderSong writes the song to a WAV file. the audio is also written to the
// digest
func renderSong(e *hardware.Engine, t *tune.Tune, song int, duration time.Duration, filename string, dig *digest.Audio) (rerr error) {
	if err := e.Load(t, song); err != nil {
		return err
	}

	cfg := e.Config()

	aw, err := wavwriter.New(filename, cfg.SampleRate, cfg.BitsPerSample, e.Channels())
	if err != nil {
		return err
	}
	defer func() {
		if err := aw.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	remaining := int(duration.Seconds() * float64(cfg.SampleRate))
	buf := make([]byte, renderFrames*e.FrameSize())

	for remaining > 0 {
		n := min(remaining, renderFrames)
		m := e.FillBuffer(buf[:n*e.FrameSize()])
		if _, err := aw.Write(buf[:m]); err != nil {
			return err
		}
		dig.Write(buf[:m])
		remaining -= n
	}

	return nil
}
