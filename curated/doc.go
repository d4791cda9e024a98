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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that return
// curated errors export the patterns they use so that callers can test for
// them:
//
//	const UnsupportedFormat = "tune: unsupported format: %s"
//
//	err := curated.Errorf(UnsupportedFormat, "MUS")
//	if curated.Is(err, UnsupportedFormat) {
//		...
//	}
//
// Has() is similar to Is() but searches the chain of wrapped curated errors:
//
//	f := curated.Errorf("engine: %v", err)
//	curated.Has(f, UnsupportedFormat) // true
//	curated.Is(f, UnsupportedFormat)  // false
//
// IsAny() answers whether an error was created by Errorf() at all. It is
// useful for separating expected errors (curated) from unexpected ones.
//
// The Error() implementation normalises the message by removing adjacent
// duplicate parts. This means a function can wrap an error with its package
// prefix without worrying whether the error it received already carries the
// same prefix:
//
//	e := curated.Errorf("tune: %v", curated.Errorf("tune: file too short"))
//	e.Error() // "tune: file too short"
package curated
