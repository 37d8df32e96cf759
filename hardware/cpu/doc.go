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

// Package cpu emulates the 6507 microprocessor found in the Atari 2600. Only
// the documented instructions are supported. Illegal opcodes cause
// ExecuteInstruction() to return an error wrapping ErrIllegalOpcode.
//
// Decimal mode is not supported. The D flag can be set and cleared but it
// has no effect on the ADC and SBC instructions.
//
// The CPU executes a whole instruction at a time. Every bus access, including
// the dummy accesses of the real hardware, consumes one cycle of the
// cpubus.Memory implementation and the number of cycles used by the
// instruction is recorded in LastResult.
package cpu
