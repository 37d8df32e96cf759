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

// Package memorymap describes the layout of the 13 bit address space and
// resolves mirrored addresses to their primary address.
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case TIA:
		return "TIA"
	case RAM:
		return "RAM"
	case RIOT:
		return "RIOT"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the VCS.
const (
	Undefined Area = iota
	TIA
	RAM
	RIOT
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
//
// Implementations of the different memory areas may need to drag the address
// down into the the range of an array. This can be done with (address^origin)
// rather than subtraction.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x003f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Memtop is the top most address of memory in the VCS. It is also the mask
// applied to every address: the 6507 has only 13 address lines so the top
// three bits of a 16 bit address are never seen by the rest of the system.
const Memtop = uint16(0x1fff)

// Within the TIA and RIOT areas only some bits of the address are relevant.
// The TIA read registers are selected by the lowest four bits and the write
// registers by the lowest six bits.
const (
	MaskTIARead  = uint16(0x000f)
	MaskTIAWrite = uint16(0x003f)
)

// CartridgeBits identifies the bits in an address that are relevent to the
// cartridge address. For example, the following will be true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const CartridgeBits = OriginCart ^ MemtopCart

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16, read bool) (uint16, Area) {
	address &= Memtop

	// note that the order of these filters is important

	if address&OriginCart == OriginCart {
		return address, Cartridge
	}

	if address&OriginRIOT == OriginRIOT {
		return address & MemtopRIOT, RIOT
	}

	if address&OriginRAM == OriginRAM {
		return address & MemtopRAM, RAM
	}

	// everything else is in TIA space
	if read {
		return address & MaskTIARead, TIA
	}
	return address & MaskTIAWrite, TIA
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address, true)
	return area == a
}
