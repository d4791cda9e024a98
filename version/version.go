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

// Package version reports the version of the program. The version number is
// set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6581/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Gopher6581"

var number string

// Version returns the version number and the VCS revision. Builds without a
// version number are "unreleased" if there is VCS information and "local" if
// there is not. A revision with uncommitted changes is suffixed with +dirty.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, nil)
	}
	return versionString(number, info.Settings)
}

func versionString(number string, settings []debug.BuildSetting) (string, string) {
	var vcs, modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}
