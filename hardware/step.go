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
	"errors"

	"github.com/jetsetilly/freya2600/hardware/cpu"
	"github.com/jetsetilly/freya2600/logger"
)

// replay the CPU cycles consumed since the from cycle. for every CPU cycle
// the RIOT is stepped once and the TIA is stepped three colour clocks.
func (vcs *VCS) replay(from uint64) {
	to := vcs.Mem.Cycles()
	for c := from + 1; c <= to; c++ {
		vcs.RIOT.Step()
		vcs.TIA.Step(c)
	}
}

// illegal opcode errors are returned unless the preferences say that they
// should be ignored
func (vcs *VCS) filterIllegal(err error) error {
	if !errors.Is(err, cpu.ErrIllegalOpcode) || !vcs.Prefs.IllegalAsNOP() {
		return err
	}

	key := struct {
		address uint16
		opcode  uint8
	}{
		address: vcs.CPU.LastResult.Address,
		opcode:  vcs.CPU.LastResult.Opcode,
	}
	logger.Log(vcs.illegal.Key(key), "vcs", err)

	return nil
}

// stall idles the CPU for as long as WSYNC is set. Returns false if the stop
// function returned true before the stall was resolved. The stall is then
// resolved by the next call to step()
func (vcs *VCS) stall(stop func() bool) bool {
	for vcs.TIA.WSYNC {
		if stop != nil && stop() {
			return false
		}
		before := vcs.Mem.Cycles()
		vcs.Mem.Idle()
		vcs.replay(before)
	}
	return true
}

func (vcs *VCS) step(stop func() bool) error {
	if vcs.Mem.Cart == nil {
		return ErrNoCartridge
	}

	// a stall left over from an earlier DoLine() or DoFrame()
	if !vcs.stall(stop) {
		return nil
	}

	before := vcs.Mem.Cycles()
	err := vcs.CPU.ExecuteInstruction()
	vcs.replay(before)

	if err != nil {
		if err := vcs.filterIllegal(err); err != nil {
			return err
		}
	}

	vcs.stall(stop)

	return nil
}

// DoStep executes one CPU instruction and replays the consumed cycles against
// the RIOT and the TIA. If the instruction writes to WSYNC then the function
// does not return until the TIA has reached the start of the next scanline.
func (vcs *VCS) DoStep() error {
	return vcs.step(nil)
}

// DoLine steps the emulation until the TIA scanline changes. A WSYNC stall
// that crosses the end of the scanline is interrupted at the start of the
// new scanline.
func (vcs *VCS) DoLine() error {
	line := vcs.TIA.Line
	stop := func() bool {
		return vcs.TIA.Line != line
	}
	for !stop() {
		if err := vcs.step(stop); err != nil {
			return err
		}
	}
	return nil
}

// DoFrame steps the emulation until the TIA scanline wraps around to zero.
// As with DoLine(), a WSYNC stall is interrupted when the frame ends.
func (vcs *VCS) DoFrame() error {
	frame := vcs.TIA.FrameNum
	stop := func() bool {
		return vcs.TIA.FrameNum != frame
	}
	for !stop() {
		if err := vcs.step(stop); err != nil {
			return err
		}
	}
	return nil
}
