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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher6581/hardware/clocks"
	"github.com/jetsetilly/gopher6581/test"
)

func TestClocks(t *testing.T) {
	test.ExpectEquality(t, clocks.PAL.Hz(), 985248)
	test.ExpectEquality(t, clocks.NTSC.Hz(), 1022727)
	test.ExpectEquality(t, clocks.PAL.FrameRate(), 50)
	test.ExpectEquality(t, clocks.NTSC.FrameRate(), 60)

	c, err := clocks.Parse("NTSC")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, clocks.NTSC)
	test.ExpectEquality(t, c.String(), "NTSC")

	_, err = clocks.Parse("SECAM")
	test.ExpectFailure(t, err)
}
