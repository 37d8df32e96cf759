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

// Package cpubus defines how the CPU sees memory and names the addresses of
// the chip registers that are visible on the bus.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Read and Write count as one CPU cycle each. Idle counts a CPU cycle in
// which the bus is not used by the instruction.
//
// Bus operations never fail. Accesses to unmapped addresses, writes to
// read-only areas and so on are ignored.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Idle()
}

// Reset is the address where the reset address is stored. Used by VCS.Reset()
// and the disassembly package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt/break address is stored.
const IRQ = uint16(0xfffe)
