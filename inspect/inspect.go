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

// Package inspect creates a graph of the state of the emulation. The graph
// is in the DOT language and can be rendered with Graphviz.
//
// The graph is made from a View of a hardware.State rather than the State
// itself. The View leaves out the ROM and the screen buffer, which would make
// the graph too large to be useful.
package inspect

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/cpu/execution"
	"github.com/jetsetilly/freya2600/hardware/riot"
	"github.com/jetsetilly/freya2600/hardware/tia"
	"github.com/jetsetilly/freya2600/hardware/tia/video"
)

// CPU registers and the most recent instruction.
type CPU struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status string
	Last   execution.Result
}

// Cartridge is the bank switching state of the cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Mapping  string
	Bank     int
	NumBanks int
}

// Memory is the RAM and cartridge state.
type Memory struct {
	Cycles uint64
	RAM    [128]uint8
	Cart   *Cartridge
}

// TIA is the TIA state without the screen buffer.
type TIA struct {
	FrameNum int
	Line     int
	Column   int
	WSYNC    bool
	Video    *video.Video
	Audio    tia.Audio
}

// View is the state of the emulation as it appears in the graph.
type View struct {
	CPU  CPU
	Mem  Memory
	RIOT *riot.RIOT
	TIA  TIA
}

// NewView creates a View of the State.
func NewView(state *hardware.State) *View {
	v := &View{
		CPU: CPU{
			PC:     state.CPU.PC.Address(),
			A:      state.CPU.A.Value(),
			X:      state.CPU.X.Value(),
			Y:      state.CPU.Y.Value(),
			SP:     state.CPU.SP.Value(),
			Status: state.CPU.Status.String(),
			Last:   state.CPU.LastResult,
		},
		Mem: Memory{
			Cycles: state.Mem.Cycles(),
			RAM:    state.Mem.RAM.RAM,
		},
		RIOT: state.RIOT,
		TIA: TIA{
			FrameNum: state.TIA.FrameNum,
			Line:     state.TIA.Line,
			Column:   state.TIA.Column,
			WSYNC:    state.TIA.WSYNC,
			Video:    state.TIA.Video,
			Audio:    state.TIA.Audio,
		},
	}

	if cart := state.Mem.Cart; cart != nil {
		v.Mem.Cart = &Cartridge{
			Filename: cart.Filename,
			Hash:     cart.Hash,
			Mapping:  cart.ID(),
			Bank:     cart.Bank(),
			NumBanks: cart.NumBanks(),
		}
	}

	return v
}

// errWriter keeps the first error returned by the underlying writer. memviz
// does not report write errors
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Graph writes the DOT graph of the State to the io.Writer.
func Graph(output io.Writer, state *hardware.State) error {
	w := &errWriter{w: output}
	memviz.Map(w, NewView(state))
	return w.err
}
