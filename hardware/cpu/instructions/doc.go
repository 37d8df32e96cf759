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

// Package instructions defines the 6507 instruction set. Opcodes are decoded
// once, at package initialisation, into the Definitions table.
//
// Decoding first checks the small set of single byte instructions (stack
// operations, register transfers, flag changes, BRK, JSR, RTI, RTS and NOP) by
// exact match. All remaining opcodes are split into the group, addressing mode
// and instruction fields of the opcode byte and resolved through the tables in
// decode.go, one table per group.
//
// Opcodes that do not resolve to a legal instruction have a nil entry in the
// Definitions table.
package instructions
