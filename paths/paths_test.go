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

package paths

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gopher6581/test"
)

func TestPaths(t *testing.T) {
	t.Cleanup(func() {
		os.RemoveAll(gopherConfigDir)
	})

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher6581/foo/bar/baz")

	pth, err = ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher6581/foo/bar")

	pth, err = ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher6581/baz")

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher6581")

	// subdirectories are created
	info, err := os.Stat(".gopher6581/foo/bar")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(1987, time.March, 4, 13, 5, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("render", "Cybernoid II", n), "render_Cybernoid_II_19870304_130509")
	test.ExpectEquality(t, uniqueFilename("render", "  ", n), "render_19870304_130509")
}
