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

// Package paths contains functions to prepare paths to gopher6581 resources.
//
// The ResourcePath() function joins the supplied resource to the base
// resource path. For example, the following returns the path to the
// preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// In development builds the base resource path is ".gopher6581" in the
// current directory. In release builds (build tag "release") the base path is
// "gopher6581" in the user's configuration directory, as returned by
// os.UserConfigDir().
//
// Directories in the path are created as required. The file itself is not
// created.
package paths
