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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/freya2600/hardware/cpu"
)

type mockMem struct {
	internal []uint8
	cycles   int
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.cycles++
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.cycles++
	mem.internal[address] = data
}

func (mem *mockMem) Idle() {
	mem.cycles++
}

// step executes one instruction and checks that the result is consistent with
// the instruction definition
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func newCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.putInstructions(0xfffc, uint8(origin), uint8(origin>>8))
	mc := cpu.NewCPU(mem)
	mc.Reset()
	mem.cycles = 0
	return mc, mem
}
