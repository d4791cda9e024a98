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

package hardware

import (
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6581/hardware/memory/addresses"
)

// state of the engine as shown by Memviz()
type state struct {
	Tune    string
	Info    Info
	CPU     string
	Chips   [2]string
	Pending int
}

// Memviz writes a graphviz description of the engine's state.
func (e *Engine) Memviz(w io.Writer) {
	st := &state{
		Tune:    e.String(),
		Info:    e.Info(),
		CPU:     e.CPU.String(),
		Pending: e.pending,
	}
	for c := range e.chips {
		st.Chips[c] = e.chips[c].String()
	}
	memviz.Map(w, st)
}

// RegisterDump returns a table of the SID registers. The second SID is
// included if the tune uses one.
func (e *Engine) RegisterDump() string {
	var s strings.Builder

	for c := range e.chips {
		regs := e.Mem.SIDRegisters(c)
		if regs == nil {
			continue
		}

		origin := addresses.SIDOrigin
		if c == 1 {
			origin = e.Mem.SecondSID()
		}
		fmt.Fprintf(&s, "SID %d (%#04x)\n", c+1, origin)

		for i, sym := range addresses.SIDSymbols {
			fmt.Fprintf(&s, "%-7s %02x", sym, regs[i])
			if i%addresses.VoiceOffset == addresses.VoiceOffset-1 || i == len(addresses.SIDSymbols)-1 {
				s.WriteRune('\n')
			} else {
				s.WriteString("  ")
			}
		}
	}

	return s.String()
}
