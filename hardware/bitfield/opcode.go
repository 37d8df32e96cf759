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

package bitfield

// Opcode is an instruction byte viewed as the three fields used for decoding:
//
//	aaabbbcc
//
// where aaa is the instruction, bbb is the addressing mode and cc is the
// group. For branch instructions the upper three bits are instead:
//
//	xxy
//
// where xx selects the flag and y is the value the flag is tested against.
type Opcode uint8

// Group is bits 0 and 1.
func (o Opcode) Group() uint8 {
	return field(uint8(o), 0, 2)
}

// Mode is bits 2 to 4.
func (o Opcode) Mode() uint8 {
	return field(uint8(o), 2, 3)
}

// Instruction is bits 5 to 7.
func (o Opcode) Instruction() uint8 {
	return field(uint8(o), 5, 3)
}

// IsBranch is true if the opcode is one of the eight conditional branches.
func (o Opcode) IsBranch() bool {
	return o.Group() == 0b00 && o.Mode() == 0b100
}

// FlagSelect is bits 6 and 7. Only meaningful for branch instructions.
func (o Opcode) FlagSelect() uint8 {
	return field(uint8(o), 6, 2)
}

// TestValue is bit 5. Only meaningful for branch instructions.
func (o Opcode) TestValue() bool {
	return bit(uint8(o), 5)
}

// NewOpcode composes an opcode from the three fields.
func NewOpcode(group, mode, instruction uint8) Opcode {
	var v uint8
	v = replace(v, 0, 2, group)
	v = replace(v, 2, 3, mode)
	v = replace(v, 5, 3, instruction)
	return Opcode(v)
}
