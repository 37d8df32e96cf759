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

package execution

import (
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode is illegal
	Defn *instructions.Definition

	// the opcode byte. useful when Defn is nil
	Opcode uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. for branch instructions, it is the
	// offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether this data has been finalised
	Final bool

	// the opcode was not a legal instruction
	Illegal bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Illegal {
		return fmt.Sprintf("%#04x: illegal opcode %#02x", r.Address, r.Opcode)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: ???", r.Address)
	}
	return fmt.Sprintf("%#04x: %s [%d cycles]", r.Address, r.Defn.Operator, r.Cycles)
}
