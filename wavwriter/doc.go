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

// Package wavwriter writes the audio produced by the engine to disk as a WAV
// file. Audio is encoded as it is written, so there is no limit to the length
// of the recording.
//
// The WAV format expects eight bit samples to be unsigned and sixteen bit
// samples to be signed. The engine should be configured accordingly.
package wavwriter
