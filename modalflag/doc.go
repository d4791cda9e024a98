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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be made of modes, with each mode having its own set of
// flags.
//
// Arguments are given with NewArgs() and the flags for the first mode are
// added before calling Parse(). If sub-modes have been added with
// AddSubModes(), the first non-flag argument is compared against the list of
// sub-modes. The first sub-mode in the list is the default and is used if
// the argument doesn't match.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY", "INFO")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		song := md.AddInt("song", 0, "song to play")
//		...
//	}
//
// Sub-mode comparisons are not case sensitive. Modes are always reported in
// upper case.
package modalflag
