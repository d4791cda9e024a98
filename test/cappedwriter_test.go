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


package test_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher6581/test"
)

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(8)
	test.DemandSuccess(t, err)

	n, err := c.Write([]byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectFailure(t, c.Overflowed())

	// only part of this write fits
	n, err = fmt.Fprint(c, "defghijk")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, c.String(), "abcdefgh")
	test.ExpectSuccess(t, c.Overflowed())
	test.ExpectSuccess(t, c.Contains("abc", "fgh"))
	test.ExpectFailure(t, c.Contains("ijk"))

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
	test.ExpectFailure(t, c.Overflowed())

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("sid "))
	w.Write([]byte("6581"))
	test.ExpectSuccess(t, w.Compare("sid 6581"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
