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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode        uint8
	Operator      Operator
	Mode          AddressingMode
	Bytes         int
	Cycles        int
	PageSensitive bool
	Effect        EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.Mode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Mode == Relative && defn.Effect == Flow
}

// Definitions is indexed by opcode. Illegal opcodes have a nil entry.
var Definitions [256]*Definition

func init() {
	for i := range Definitions {
		if defn, ok := decode(uint8(i)); ok {
			Definitions[i] = &defn
		}
	}
}

// newDefinition completes the definition of an operator/mode pair with the
// byte count and the cycle count of the instruction.
func newDefinition(opcode uint8, op Operator, mode AddressingMode) Definition {
	defn := Definition{
		OpCode:   opcode,
		Operator: op,
		Mode:     mode,
		Bytes:    1 + mode.OperandBytes(),
		Effect:   effect(op),
	}

	// BRK is followed by a padding byte that is skipped over
	if op == Brk {
		defn.Bytes = 2
	}

	switch mode {
	case Implied:
		switch op {
		case Pha, Php:
			defn.Cycles = 3
		case Pla, Plp:
			defn.Cycles = 4
		case Rts, Rti:
			defn.Cycles = 6
		case Brk:
			defn.Cycles = 7
		default:
			defn.Cycles = 2
		}

	case Accumulator, Immediate:
		defn.Cycles = 2

	case Relative:
		defn.Cycles = 2
		defn.PageSensitive = true

	case ZeroPage:
		defn.Cycles = 3

	case ZeroPageIndexedX, ZeroPageIndexedY:
		defn.Cycles = 4

	case Absolute:
		switch op {
		case Jmp:
			defn.Cycles = 3
		case Jsr:
			defn.Cycles = 6
		default:
			defn.Cycles = 4
		}

	case Indirect:
		defn.Cycles = 5

	case AbsoluteIndexedX, AbsoluteIndexedY:
		defn.Cycles = 4
		if defn.Effect == Read {
			defn.PageSensitive = true
		} else {
			defn.Cycles++
		}

	case IndexedIndirect:
		defn.Cycles = 6

	case IndirectIndexed:
		defn.Cycles = 5
		if defn.Effect == Read {
			defn.PageSensitive = true
		} else {
			defn.Cycles++
		}
	}

	// read-modify-write instructions take two more cycles than a read
	// with the same addressing mode
	if defn.Effect == RMW && mode != Accumulator {
		defn.Cycles += 2
	}

	return defn
}
