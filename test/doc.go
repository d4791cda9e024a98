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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions use t.Fatalf() and should be used
// when the value being tested is required by the rest of the test. For
// example, when the length of a slice must be correct before iterating over
// it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. A bool is a success if it is true; an error is a success if it is
// nil. A nil value is always a success, because of how errors are usually
// returned in Go.
//
// The writer types implement io.Writer and are used to capture output for
// comparison: CompareWriter buffers everything, CappedWriter stops after a
// fixed number of bytes and RingWriter keeps only the most recent bytes.
package test
