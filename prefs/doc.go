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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are one of the types Bool, Int, Float, String or Generic.
// A value is added to a Disk instance with a key and is then saved to and
// loaded from the file named when the Disk was created:
//
//	dsk, _ := prefs.NewDisk(pth)
//	var rate prefs.Int
//	dsk.Add("engine.samplerate", &rate)
//	dsk.Load(true)
//
// The file is a simple text file of "key :: value" lines. Keys not added to a
// Disk instance are preserved when the file is saved, so more than one Disk
// instance can share the same file.
//
// Values can be overridden from the command line. A command line group is
// pushed with PushCommandLineStack() before the Disk instance is loaded. Any
// key found in the group replaces the value loaded from the file. The value
// is then removed from the group so that PopCommandLineStack() can report the
// unused entries.
package prefs
