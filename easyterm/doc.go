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

// Package easyterm wraps "github.com/pkg/term/termios" with functions that
// put the terminal into the modes needed for reading single key presses.
package easyterm
