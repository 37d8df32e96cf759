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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
	"github.com/jetsetilly/freya2600/test"
)

func TestLegalCount(t *testing.T) {
	var n int
	for _, defn := range instructions.Definitions {
		if defn != nil {
			n++
		}
	}
	test.ExpectEquality(t, n, 151)
}

func TestGroup11(t *testing.T) {
	for i := range instructions.Definitions {
		if bitfield.Opcode(i).Group() == 0b11 {
			test.ExpectEquality(t, instructions.Definitions[i] == nil, true, i)
		}
	}
}

func TestDefinitions(t *testing.T) {
	type entry struct {
		opcode uint8
		op     instructions.Operator
		mode   instructions.AddressingMode
		bytes  int
		cycles int
	}

	entries := []entry{
		{0x00, instructions.Brk, instructions.Implied, 2, 7},
		{0x20, instructions.Jsr, instructions.Absolute, 3, 6},
		{0x40, instructions.Rti, instructions.Implied, 1, 6},
		{0x48, instructions.Pha, instructions.Implied, 1, 3},
		{0x68, instructions.Pla, instructions.Implied, 1, 4},
		{0xea, instructions.Nop, instructions.Implied, 1, 2},
		{0xa9, instructions.Lda, instructions.Immediate, 2, 2},
		{0xa1, instructions.Lda, instructions.IndexedIndirect, 2, 6},
		{0xb1, instructions.Lda, instructions.IndirectIndexed, 2, 5},
		{0x91, instructions.Sta, instructions.IndirectIndexed, 2, 6},
		{0x9d, instructions.Sta, instructions.AbsoluteIndexedX, 3, 5},
		{0x0a, instructions.Asl, instructions.Accumulator, 1, 2},
		{0x06, instructions.Asl, instructions.ZeroPage, 2, 5},
		{0x16, instructions.Asl, instructions.ZeroPageIndexedX, 2, 6},
		{0x0e, instructions.Asl, instructions.Absolute, 3, 6},
		{0x1e, instructions.Asl, instructions.AbsoluteIndexedX, 3, 7},
		{0xa2, instructions.Ldx, instructions.Immediate, 2, 2},
		{0xb6, instructions.Ldx, instructions.ZeroPageIndexedY, 2, 4},
		{0xbe, instructions.Ldx, instructions.AbsoluteIndexedY, 3, 4},
		{0x96, instructions.Stx, instructions.ZeroPageIndexedY, 2, 4},
		{0x24, instructions.Bit, instructions.ZeroPage, 2, 3},
		{0x4c, instructions.Jmp, instructions.Absolute, 3, 3},
		{0x6c, instructions.Jmp, instructions.Indirect, 3, 5},
		{0xbc, instructions.Ldy, instructions.AbsoluteIndexedX, 3, 4},
		{0xe0, instructions.Cpx, instructions.Immediate, 2, 2},
		{0xf0, instructions.Beq, instructions.Relative, 2, 2},
		{0x10, instructions.Bpl, instructions.Relative, 2, 2},
		{0x50, instructions.Bvc, instructions.Relative, 2, 2},
		{0xb0, instructions.Bcs, instructions.Relative, 2, 2},
	}

	for _, e := range entries {
		defn := instructions.Definitions[e.opcode]
		if defn == nil {
			t.Fatalf("opcode %#02x should be legal", e.opcode)
		}
		test.ExpectEquality(t, defn.OpCode, e.opcode)
		test.ExpectEquality(t, defn.Operator, e.op, e.opcode)
		test.ExpectEquality(t, defn.Mode, e.mode, e.opcode)
		test.ExpectEquality(t, defn.Bytes, e.bytes, e.opcode)
		test.ExpectEquality(t, defn.Cycles, e.cycles, e.opcode)
	}
}

func TestIllegal(t *testing.T) {
	for _, opcode := range []uint8{0x89, 0x02, 0x03, 0x04, 0x80, 0x9e, 0x9c, 0x34, 0xff, 0x1a} {
		test.ExpectEquality(t, instructions.Definitions[opcode] == nil, true, opcode)
	}
}

func TestBranches(t *testing.T) {
	for i, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}
		test.ExpectEquality(t, defn.IsBranch(), bitfield.Opcode(i).IsBranch(), i)
		if defn.IsBranch() {
			test.ExpectEquality(t, defn.PageSensitive, true)
		}
	}
}
