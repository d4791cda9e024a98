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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher6581/curated"
	"github.com/jetsetilly/gopher6581/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates a key from its value in the preferences file.
const separator = " :: "

// Sentinal errors returned by Disk functions.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	InvalidEntry  = "prefs: invalid entry in prefs file (line %d)"
	NotAPrefsFile = "prefs: not a prefs file (%s)"
	ValueRejected = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k].String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(ValueRejected, k, err)
		}
	}
	return nil
}

// read the preferences file into a map of key/value strings
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	line := 1
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}

		k, v, ok := strings.Cut(s, separator)
		if !ok {
			return nil, curated.Errorf(InvalidEntry, line)
		}
		entries[strings.TrimSpace(k)] = v
	}

	return entries, scanner.Err()
}

// Save current preference values to disk. Entries in the existing file that
// are not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load preference values from disk. If the file does not exist and
// saveOnFail is true then the current values are saved to create the file.
// The NoPrefsFile error is still returned in that case.
//
// Values on the top of the command line stack replace those in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	entries, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		dsk.applyCommandLine()
		return err
	}

	for _, k := range dsk.keys() {
		if v, ok := entries[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(ValueRejected, k, err)
			}
		}
	}

	dsk.applyCommandLine()

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			// values that can't be set are dropped
			if err := dsk.entries[k].Set(v); err != nil {
				logger.Log(logger.Allow, "prefs", curated.Errorf(ValueRejected, k, err))
			}
		}
	}
}
