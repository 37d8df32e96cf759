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

// Package memory implements the address bus shared by the CPU, the TIA, the
// RIOT and the cartridge. Addresses are masked to 13 bits and mirrors are
// resolved with the memorymap package before being dispatched to the area
// responsible for the address.
//
// Every Read(), Write() and Idle() call counts as one CPU cycle. The Peek()
// and Poke() functions are for debuggers and do not count cycles or trigger
// side effects (bank switching, timer flag clearing, etc.)
package memory

import (
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// Chip is the interface to the registers of the TIA and RIOT. Addresses
// passed to these functions have already been normalised by the memorymap
// package.
type Chip interface {
	// Read a register as the CPU would. There may be side effects
	Read(address uint16) uint8

	// Write a register as the CPU would
	Write(address uint16, data uint8)

	// Peek returns the value of a register without side effects
	Peek(address uint16) uint8
}

// Memory is the bus. The TIA and RIOT fields should be set before the bus is
// used; a nil Chip reads as zero and ignores writes.
type Memory struct {
	RAM  *RAM
	TIA  Chip
	RIOT Chip

	// the cartridge is nil when no cartridge has been attached. reads from the
	// cartridge area return zero in that case
	Cart *cartridge.Cartridge

	// the number of CPU cycles since the creation of the bus
	cycles uint64

	// the most recent access made by the CPU. useful for debugging
	LastAccessAddress uint16
	LastAccessValue   uint8
	LastAccessWrite   bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		RAM: NewRAM(),
	}
}

// Reset contents of memory. The cycle count is not reset.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	if mem.Cart != nil {
		mem.Cart.Reset()
	}
}

// Attach a cartridge to the bus. A nil value ejects the current cartridge.
func (mem *Memory) Attach(cart *cartridge.Cartridge) {
	mem.Cart = cart
}

// Cycles returns the number of CPU cycles consumed since the creation of the
// bus.
func (mem *Memory) Cycles() uint64 {
	return mem.cycles
}

// Idle implements the cpubus.Memory interface.
func (mem *Memory) Idle() {
	mem.cycles++
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	mem.cycles++

	ma, area := memorymap.MapAddress(address, true)

	var data uint8
	switch area {
	case memorymap.Cartridge:
		if mem.Cart != nil {
			data = mem.Cart.Read(ma)
		}
	case memorymap.RAM:
		data = mem.RAM.Read(ma)
	case memorymap.TIA:
		if mem.TIA != nil {
			data = mem.TIA.Read(ma)
		}
	case memorymap.RIOT:
		if mem.RIOT != nil {
			data = mem.RIOT.Read(ma)
		}
	}

	mem.LastAccessAddress = ma
	mem.LastAccessValue = data
	mem.LastAccessWrite = false

	return data
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.cycles++

	ma, area := memorymap.MapAddress(address, false)

	switch area {
	case memorymap.Cartridge:
		if mem.Cart != nil {
			mem.Cart.Write(ma, data)
		}
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	case memorymap.TIA:
		if mem.Cart != nil {
			mem.Cart.Listen(ma, data)
		}
		if mem.TIA != nil {
			mem.TIA.Write(ma, data)
		}
	case memorymap.RIOT:
		if mem.RIOT != nil {
			mem.RIOT.Write(ma, data)
		}
	}

	mem.LastAccessAddress = ma
	mem.LastAccessValue = data
	mem.LastAccessWrite = true
}

// Peek returns the value at the address without side effects and without
// consuming a cycle.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address, true)

	switch area {
	case memorymap.Cartridge:
		if mem.Cart != nil {
			return mem.Cart.Peek(ma)
		}
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.TIA:
		if mem.TIA != nil {
			return mem.TIA.Peek(ma)
		}
	case memorymap.RIOT:
		if mem.RIOT != nil {
			return mem.RIOT.Peek(ma)
		}
	}

	return 0
}

// Poke changes RAM or cartridge ROM without side effects and without
// consuming a cycle. Chip registers can not be poked.
func (mem *Memory) Poke(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address, false)

	switch area {
	case memorymap.Cartridge:
		if mem.Cart != nil {
			mem.Cart.Poke(ma, data)
		}
	case memorymap.RAM:
		mem.RAM.Write(ma, data)
	}
}

// PeekWord returns the little-endian word at the address without side
// effects.
func (mem *Memory) PeekWord(address uint16) uint16 {
	lo := mem.Peek(address)
	hi := mem.Peek(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Snapshot creates a copy of RAM and the cartridge. The TIA and RIOT fields
// of the copy are nil. They should be snapshotted separately.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = &RAM{RAM: mem.RAM.RAM}
	if mem.Cart != nil {
		n.Cart = mem.Cart.Snapshot()
	}
	n.TIA = nil
	n.RIOT = nil
	return &n
}
