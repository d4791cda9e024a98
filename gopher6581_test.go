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
	"encoding/binary"
	"os"
	"strings"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher6581/test"
)

// a two song PSID file. each song plays a triangle wave on voice one
func testPSID() []byte {
	hdr := make([]byte, 0x7c)
	copy(hdr, "PSID")

	be := binary.BigEndian
	be.PutUint16(hdr[0x04:], 2)
	be.PutUint16(hdr[0x06:], 0x7c)
	be.PutUint16(hdr[0x08:], 0x1000)
	be.PutUint16(hdr[0x0a:], 0x1000)
	be.PutUint16(hdr[0x0c:], 0x1020)
	be.PutUint16(hdr[0x0e:], 2)
	be.PutUint16(hdr[0x10:], 1)
	copy(hdr[0x16:], "Test Tune")
	copy(hdr[0x36:], "Tester")
	copy(hdr[0x56:], "2026")

	prg := make([]byte, 0x24)
	copy(prg, []byte{
		0xa9, 0x0f, 0x8d, 0x18, 0xd4, // LDA #$0f; STA $d418
		0xa9, 0xf0, 0x8d, 0x06, 0xd4, // LDA #$f0; STA $d406
		0xa9, 0x10, 0x8d, 0x01, 0xd4, // LDA #$10; STA $d401
		0xa9, 0x11, 0x8d, 0x04, 0xd4, // LDA #$11; STA $d404
		0x60, // RTS
	})
	prg[0x20] = 0x60

	return append(hdr, prg...)
}

func setup(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.WriteFile("tune.sid", testPSID(), 0o644))
}

func decodeWav(t *testing.T, filename string) (*wav.Decoder, int) {
	t.Helper()

	f, err := os.Open(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	return dec, len(buf.Data)
}

func TestCommand(t *testing.T) {
	cmd, _ := command('q', 1, 3)
	test.ExpectEquality(t, cmd, keyQuit)

	cmd, n := command('n', 1, 3)
	test.ExpectEquality(t, cmd, keySong)
	test.ExpectEquality(t, n, 2)

	cmd, _ = command('n', 3, 3)
	test.ExpectEquality(t, cmd, keyNone)

	cmd, n = command('p', 3, 3)
	test.ExpectEquality(t, cmd, keySong)
	test.ExpectEquality(t, n, 2)

	cmd, _ = command('p', 1, 3)
	test.ExpectEquality(t, cmd, keyNone)

	cmd, n = command('3', 1, 3)
	test.ExpectEquality(t, cmd, keySong)
	test.ExpectEquality(t, n, 3)

	cmd, _ = command('4', 1, 3)
	test.ExpectEquality(t, cmd, keyNone)

	cmd, _ = command('x', 1, 3)
	test.ExpectEquality(t, cmd, keyNone)
}

func TestRender(t *testing.T) {
	setup(t)

	var w strings.Builder
	r := launch([]string{"RENDER", "-duration", "1s",
		"-prefs", "engine.samplerate::22050; engine.channels::2",
		"tune.sid", "out.wav"}, &w)
	test.DemandEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "Test Tune by Tester (2026) [song 1] -> out.wav"))

	dec, n := decodeWav(t, "out.wav")
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.ExpectEquality(t, n, 22050*2)
}

func TestRenderAll(t *testing.T) {
	setup(t)

	var w strings.Builder
	r := launch([]string{"-duration", "1s", "-all", "-prefs", "engine.bitspersample::8", "tune.sid", "out.wav"}, &w)
	test.DemandEquality(t, r, 0)

	for _, fn := range []string{"out_01.wav", "out_02.wav"} {
		dec, n := decodeWav(t, fn)
		test.ExpectEquality(t, int(dec.BitDepth), 8, fn)
		test.ExpectEquality(t, n, 44100, fn)
	}
}

func TestRenderDigest(t *testing.T) {
	setup(t)

	digests := make([]string, 2)
	for i := range digests {
		var w strings.Builder
		r := launch([]string{"-duration", "2s", "-digest", "tune.sid", "out.wav"}, &w)
		test.DemandEquality(t, r, 0)

		_, d, ok := strings.Cut(w.String(), "digest: ")
		test.DemandSuccess(t, ok)
		digests[i] = d
	}
	test.ExpectEquality(t, digests[0], digests[1])
	test.ExpectEquality(t, len(digests[0]), 41)
}

func TestInfo(t *testing.T) {
	setup(t)

	w, err := test.NewCappedWriter(4096)
	test.DemandSuccess(t, err)
	r := launch([]string{"INFO", "-engine", "tune.sid"}, w)
	test.DemandEquality(t, r, 0)
	test.ExpectFailure(t, w.Overflowed())
	test.ExpectSuccess(t, w.Contains("Test Tune", "song 1/2", "SIGVOL  0f"))
}

func TestArguments(t *testing.T) {
	setup(t)

	var w strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &w), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RENDER, PLAY, INFO"))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"-version"}, &w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Gopher6581 "))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &w), 20)

	w.Reset()
	test.ExpectEquality(t, launch([]string{"RENDER"}, &w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "tune file required"))

	w.Reset()
	test.ExpectEquality(t, launch([]string{"INFO", "nosuchfile.sid"}, &w), 20)
}
