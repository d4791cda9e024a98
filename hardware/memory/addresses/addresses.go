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

package addresses

// the 6510 processor port. address zero is the data direction register and
// address one selects the memory banks
const (
	DataDirection = uint16(0x0000)
	ProcessorPort = uint16(0x0001)
)

// RAM vectors used by the Kernal interrupt handlers.
const (
	IRQVector = uint16(0x0314)
	NMIVector = uint16(0x0318)
)

// PALFlag is set by the Kernal during reset. 1 for PAL and 0 for NTSC.
const PALFlag = uint16(0x02a6)

// Hardware vectors at the top of memory.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Entry points of the Kernal interrupt handlers. The RAM vectors point here
// after a reset.
const (
	KernalIRQ       = uint16(0xea31)
	KernalNMI       = uint16(0xfe47)
	KernalNMIEntry  = uint16(0xfe43)
	KernalReset     = uint16(0xfce2)
	KernalIRQEntry  = uint16(0xff48)
	KernalIRQReturn = uint16(0xea81)
)

// Memory areas.
const (
	BasicOrigin  = uint16(0xa000)
	BasicMemtop  = uint16(0xbfff)
	IOOrigin     = uint16(0xd000)
	IOMemtop     = uint16(0xdfff)
	KernalOrigin = uint16(0xe000)
)

// VIC-II registers that player routines poll.
const (
	VICControl = uint16(0xd011)
	VICRaster  = uint16(0xd012)
)

// CIA timer registers.
const (
	CIA1TimerALo = uint16(0xdc04)
	CIA1TimerAHi = uint16(0xdc05)
	CIA1TimerBLo = uint16(0xdc06)
	CIA1TimerBHi = uint16(0xdc07)
	CIA2TimerALo = uint16(0xdd04)
	CIA2TimerAHi = uint16(0xdd05)
)

// CIA1 timer value after a reset of a PAL machine.
const CIA1TimerReset = uint16(0x4025)

// SID chip addresses. The SID occupies 32 bytes and the block is repeated
// through the 1KB from SIDOrigin to SIDMemtop.
const (
	SIDOrigin = uint16(0xd400)
	SIDMemtop = uint16(0xd7ff)
	SIDSize   = 0x20

	// offsets 0x1d to 0x1f of each repeated block are not SID registers. the
	// PlaySID environment uses them to control sample playback
	SIDExtended = 0x1d
)
