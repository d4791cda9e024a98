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

// Package preferences contains the configuration of the emulation engine.
//
// The Config type is a plain value that is passed to hardware.NewEngine() and
// to the SetConfig() function of a running engine. Validation happens field by
// field. A Config with invalid fields can still be applied to an existing
// Config with the Update() function: valid fields are applied and invalid
// fields keep their existing value.
//
// The Preferences type stores a Config in the preferences file on disk by way
// of the prefs package.
package preferences
