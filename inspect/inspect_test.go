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

package inspect_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/inspect"
	"github.com/jetsetilly/freya2600/test"
)

func newState(t *testing.T) *hardware.State {
	t.Helper()

	// LDA #$42; STA $80; JMP $f004
	rom := make([]byte, 8192)
	copy(rom[4096:], []uint8{0xa9, 0x42, 0x85, 0x80, 0x4c, 0x04, 0xf0})
	rom[0x1ffc] = 0x00
	rom[0x1ffd] = 0xf0

	vcs, err := hardware.NewVCS(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vcs.LoadCartridge(cartridgeloader.Loader{
		Filename: "test.bin",
		Mapping:  "AUTO",
		Data:     rom,
	}))
	for range 2 {
		test.DemandSuccess(t, vcs.DoStep())
	}

	return vcs.Snapshot()
}

func TestView(t *testing.T) {
	v := inspect.NewView(newState(t))
	test.ExpectEquality(t, v.CPU.PC, 0xf004)
	test.ExpectEquality(t, v.CPU.A, 0x42)
	test.ExpectEquality(t, v.Mem.RAM[0], 0x42)
	test.ExpectEquality(t, v.Mem.Cycles, 7)
	test.ExpectEquality(t, v.Mem.Cart.Mapping, "F8")
	test.ExpectEquality(t, v.Mem.Cart.Bank, 1)
	test.ExpectEquality(t, v.Mem.Cart.NumBanks, 2)
	test.ExpectEquality(t, v.TIA.Column, 21)
}

func TestGraph(t *testing.T) {
	b := &bytes.Buffer{}
	test.DemandSuccess(t, inspect.Graph(b, newState(t)))

	s := b.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "digraph"))
	test.ExpectSuccess(t, strings.Contains(s, "test.bin"))
}

type failWriter struct{}

var errFail = errors.New("fail")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errFail
}

func TestGraphError(t *testing.T) {
	err := inspect.Graph(failWriter{}, newState(t))
	test.ExpectSuccess(t, errors.Is(err, errFail))
}
