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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
)

// Area returns the name of the memory area visible to the CPU at the
// address.
func (mem *Memory) Area(address uint16) string {
	basic, io, kernal := mem.Banks()

	switch {
	case address >= addresses.BasicOrigin && address <= addresses.BasicMemtop:
		if basic {
			return "BASIC"
		}
	case address >= addresses.IOOrigin && address <= addresses.IOMemtop:
		if io {
			if _, _, ok := mem.sidAddress(address); ok {
				return "SID"
			}
			return "I/O"
		}
	case address >= addresses.KernalOrigin:
		if kernal {
			return "KERNAL"
		}
	}

	return "RAM"
}

// MemoryMap returns the current memory map as a string.
func (mem *Memory) MemoryMap() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("C64 Memory Map (%s)\n----------\n", mem.mode))

	var area string
	var sr int

	for er := 0; er <= 0x10000; er++ {
		var a string
		if er < 0x10000 {
			a = mem.Area(uint16(er))
		}
		if a != area {
			if area != "" {
				s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sr, er-1, area))
			}
			area = a
			sr = er
		}
	}

	return s.String()
}
