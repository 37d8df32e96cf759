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
	"fmt"
	"strings"

	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values. The order is significant: an entry is
// never replaced by an entry of a lower level.
const (
	// the entry has been decoded but there is no indication that it is
	// reachable by the program
	EntryLevelDecoded EntryLevel = iota

	// the entry has been reached by following the flow of the program
	EntryLevelBlessed

	// the entry has been executed by the emulation
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassambled instruction.
type Entry struct {
	Level EntryLevel
	Bank  int

	// address of the instruction as seen by the CPU. ie. with the high bits
	// that the program uses to address the cartridge
	Address uint16

	// nil if the opcode is illegal
	Defn *instructions.Definition

	// opcode followed by the operand bytes
	Bytes []uint8

	// the operand value. for relative addressing this is the branch target
	// rather than the offset
	Operand uint16
}

// Illegal returns true if the entry does not represent a legal instruction.
func (e Entry) Illegal() bool {
	return e.Defn == nil
}

// Bytecode returns the bytes of the instruction as a hex string.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Operator returns the mnemonic of the instruction.
func (e Entry) Operator() string {
	if e.Defn == nil {
		return "???"
	}
	return e.Defn.Operator.String()
}

// OperandString returns the operand decorated according to the addressing
// mode. Addresses of chip registers are replaced with the register name if
// the symbols argument is true.
func (e Entry) OperandString(symbols bool) string {
	if e.Defn == nil {
		return ""
	}

	var s string
	switch e.Defn.Mode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.Operand)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", e.Operand)
	}

	if e.Defn.Mode.OperandBytes() == 1 {
		s = fmt.Sprintf("$%02x", e.Operand)
	} else {
		s = fmt.Sprintf("$%04x", e.Operand)
	}

	if symbols {
		if sym, ok := symbol(e.Operand, e.Defn.Effect != instructions.Write); ok {
			s = sym
		}
	}

	switch e.Defn.Mode {
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", s)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", s)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", s)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", s)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", s)
	}

	return s
}

// the register name for the address, if the address is in the TIA or RIOT
// areas
func symbol(address uint16, read bool) (string, bool) {
	ma, area := memorymap.MapAddress(address, read)
	if area != memorymap.TIA && area != memorymap.RIOT {
		return "", false
	}
	if read {
		s, ok := cpubus.ReadSymbols[ma]
		return s, ok
	}
	s, ok := cpubus.WriteSymbols[ma]
	return s, ok
}

// String returns the entry with register symbols.
func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("$%04x  %-8s  %s %s", e.Address, e.Bytecode(), e.Operator(), e.OperandString(true)))
}
