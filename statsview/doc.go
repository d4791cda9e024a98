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

// Package statsview runs an HTTP server offering runtime statistics. It is
// only available when built with the statsview build tag.
//
// The statistics are viewable at:
//
//	localhost:16581/debug/statsview
//
// and the standard pprof statistics at:
//
//	localhost:16581/debug/pprof/
package statsview
