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

package disassembly

import (
	"github.com/jetsetilly/freya2600/hardware/cpu/execution"
	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
)

// Peeker is the interface to memory required by the Disassemble() function.
// Peek must not cause side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Disassemble the instruction at the address. The returned entry has a level
// of EntryLevelDecoded and a bank of zero.
func Disassemble(mem Peeker, address uint16) Entry {
	opcode := mem.Peek(address)
	e := Entry{
		Address: address,
		Defn:    instructions.Definitions[opcode],
		Bytes:   []uint8{opcode},
	}

	if e.Defn == nil {
		return e
	}

	switch e.Defn.Bytes {
	case 2:
		lo := mem.Peek(address + 1)
		e.Bytes = append(e.Bytes, lo)
		e.Operand = uint16(lo)
	case 3:
		lo := mem.Peek(address + 1)
		hi := mem.Peek(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		e.Operand = uint16(hi)<<8 | uint16(lo)
	}

	if e.Defn.Mode == instructions.Relative {
		e.Operand = branchTarget(address, uint8(e.Operand))
	}

	return e
}

func branchTarget(address uint16, offset uint8) uint16 {
	return address + 2 + uint16(int16(int8(offset)))
}

// FromResult creates an entry from a CPU result. The level of the entry is
// EntryLevelExecuted.
func FromResult(bank int, result execution.Result) Entry {
	e := Entry{
		Level:   EntryLevelExecuted,
		Bank:    bank,
		Address: result.Address,
		Defn:    result.Defn,
		Bytes:   []uint8{result.Opcode},
		Operand: result.InstructionData,
	}

	if e.Defn == nil {
		return e
	}

	switch result.ByteCount {
	case 2:
		e.Bytes = append(e.Bytes, uint8(result.InstructionData))
	case 3:
		e.Bytes = append(e.Bytes, uint8(result.InstructionData), uint8(result.InstructionData>>8))
	}

	if e.Defn.Mode == instructions.Relative {
		e.Operand = branchTarget(result.Address, uint8(result.InstructionData))
	}

	return e
}
