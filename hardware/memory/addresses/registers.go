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

// SID register offsets. Voice registers are for voice one; add VoiceOffset
// for voices two and three.
const (
	FreqLo     = 0x00
	FreqHi     = 0x01
	PulseLo    = 0x02
	PulseHi    = 0x03
	Control    = 0x04
	AttackDec  = 0x05
	SustainRel = 0x06

	VoiceOffset = 0x07

	CutoffLo  = 0x15
	CutoffHi  = 0x16
	ResFilt   = 0x17
	ModeVol   = 0x18
	PotX      = 0x19
	PotY      = 0x1a
	Osc3      = 0x1b
	Env3      = 0x1c
	NumVoices = 3
)

// SIDSymbols are the canonical names of the SID registers, indexed by
// offset from the start of the SID.
var SIDSymbols = [...]string{
	"FRELO1", "FREHI1", "PWLO1", "PWHI1", "VCREG1", "ATDCY1", "SUREL1",
	"FRELO2", "FREHI2", "PWLO2", "PWHI2", "VCREG2", "ATDCY2", "SUREL2",
	"FRELO3", "FREHI3", "PWLO3", "PWHI3", "VCREG3", "ATDCY3", "SUREL3",
	"CUTLO", "CUTHI", "RESON", "SIGVOL", "POTX", "POTY", "RANDOM", "ENV3",
}

// SIDSymbol returns the canonical name for the SID register at the offset.
// Returns the empty string for offsets that are not SID registers.
func SIDSymbol(offset int) string {
	if offset < 0 || offset >= len(SIDSymbols) {
		return ""
	}
	return SIDSymbols[offset]
}
