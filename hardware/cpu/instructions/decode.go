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

import (
	"github.com/jetsetilly/freya2600/hardware/bitfield"
)

// single byte instructions with no addressing mode, plus JSR. these are
// matched exactly before any field decoding takes place.
var exact = map[uint8]Operator{
	0x00: Brk, 0x20: Jsr, 0x40: Rti, 0x60: Rts,
	0x08: Php, 0x28: Plp, 0x48: Pha, 0x68: Pla,
	0x88: Dey, 0xa8: Tay, 0xc8: Iny, 0xe8: Inx,
	0x18: Clc, 0x38: Sec, 0x58: Cli, 0x78: Sei,
	0x98: Tya, 0xb8: Clv, 0xd8: Cld, 0xf8: Sed,
	0x8a: Txa, 0x9a: Txs, 0xaa: Tax, 0xba: Tsx,
	0xca: Dex, 0xea: Nop,
}

// group 01 (cc == 01) is the most regular group. every mode is valid for
// every instruction except for STA immediate.
var group01Modes = [8]AddressingMode{
	IndexedIndirect, ZeroPage, Immediate, Absolute,
	IndirectIndexed, ZeroPageIndexedX, AbsoluteIndexedY, AbsoluteIndexedX,
}

var group01Ops = [8]Operator{Ora, And, Eor, Adc, Sta, Lda, Cmp, Sbc}

// group 10 (cc == 10) contains the shifts, rotates, X register
// loads/stores and the memory increment/decrement instructions.
var group10Modes = [8]AddressingMode{
	Immediate, ZeroPage, Accumulator, Absolute,
	noMode, ZeroPageIndexedX, noMode, AbsoluteIndexedX,
}

var group10Ops = [8]Operator{Asl, Rol, Lsr, Ror, Stx, Ldx, Dec, Inc}

// bit n is set if addressing mode n is valid for the instruction
var group10Valid = [8]uint8{0xae, 0xae, 0xae, 0xae, 0x2a, 0xab, 0xaa, 0xaa}

// group 00 (cc == 00) contains the Y register instructions, BIT and the
// jumps. mode 100 is the relative mode of the branch instructions, which
// are decoded separately.
var group00Modes = [8]AddressingMode{
	Immediate, ZeroPage, noMode, Absolute,
	Relative, ZeroPageIndexedX, noMode, AbsoluteIndexedX,
}

// instruction 000 has no meaning in group 00 outside of the exact table. the
// indirect JMP is given its own entry.
var group00Ops = [8]Operator{Nop, Bit, Jmp, Jmp, Sty, Ldy, Cpy, Cpx}

var group00Valid = [8]uint8{0x00, 0x0a, 0x08, 0x08, 0x2a, 0xab, 0x0b, 0x0b}

// branch operators indexed by flag select (N, V, C, Z) and test value
var branches = [4][2]Operator{
	{Bpl, Bmi},
	{Bvc, Bvs},
	{Bcc, Bcs},
	{Bne, Beq},
}

// decode an opcode into an instruction definition. returns false if the
// opcode is illegal.
func decode(opcode uint8) (Definition, bool) {
	if op, ok := exact[opcode]; ok {
		mode := Implied
		if op == Jsr {
			mode = Absolute
		}
		return newDefinition(opcode, op, mode), true
	}

	o := bitfield.Opcode(opcode)
	mode := o.Mode()
	inst := o.Instruction()

	switch o.Group() {
	case 0b01:
		if group01Ops[inst] == Sta && group01Modes[mode] == Immediate {
			return Definition{}, false
		}
		return newDefinition(opcode, group01Ops[inst], group01Modes[mode]), true

	case 0b10:
		if group10Valid[inst]&(1<<mode) == 0 {
			return Definition{}, false
		}
		op := group10Ops[inst]
		m := group10Modes[mode]

		// instructions using the X register are indexed by Y instead
		if op == Stx || op == Ldx {
			switch m {
			case ZeroPageIndexedX:
				m = ZeroPageIndexedY
			case AbsoluteIndexedX:
				m = AbsoluteIndexedY
			}
		}
		return newDefinition(opcode, op, m), true

	case 0b00:
		if o.IsBranch() {
			test := 0
			if o.TestValue() {
				test = 1
			}
			return newDefinition(opcode, branches[o.FlagSelect()][test], Relative), true
		}
		if group00Valid[inst]&(1<<mode) == 0 {
			return Definition{}, false
		}
		m := group00Modes[mode]
		if inst == 0b011 {
			m = Indirect
		}
		return newDefinition(opcode, group00Ops[inst], m), true
	}

	// group 11 contains no legal instructions
	return Definition{}, false
}
