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

// Package digest creates a SHA-1 digest of an audio stream. Two renderings
// of the same song with the same configuration should produce the same
// digest.
//
// The digest is chained. Each block of audio is hashed together with the
// digest of the previous block, so the final digest depends on the order of
// every byte in the stream.
package digest
