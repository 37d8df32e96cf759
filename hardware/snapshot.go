// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/jetsetilly/freya2600/hardware/cpu"
	"github.com/jetsetilly/freya2600/hardware/memory"
	"github.com/jetsetilly/freya2600/hardware/riot"
	"github.com/jetsetilly/freya2600/hardware/tia"
)

// State stores the VCS sub-systems. It is produced by the Snapshot()
// function. The sub-systems in a State are copies and are not connected to
// each other. In particular, the TIA and RIOT fields of the Mem field are nil.
type State struct {
	CPU  *cpu.CPU
	Mem  *memory.Memory
	RIOT *riot.RIOT
	TIA  *tia.TIA
}

// Snapshot creates a copy of a previously snapshotted VCS State.
func (s *State) Snapshot() *State {
	return &State{
		CPU:  s.CPU.Snapshot(),
		Mem:  s.Mem.Snapshot(),
		RIOT: s.RIOT.Snapshot(),
		TIA:  s.TIA.Snapshot(),
	}
}

// FrameNum returns the frame number of the snapshotted TIA.
func (s *State) FrameNum() int {
	return s.TIA.FrameNum
}
