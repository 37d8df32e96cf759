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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// RAM represents the 128 bytes of RAM in the PIA 6532 chip.
type RAM struct {
	RAM [128]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.RAM[:])
}

// Read returns the value at the normalised address.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.RAM[address^memorymap.OriginRAM]
}

// Write the value to the normalised address.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address^memorymap.OriginRAM] = data
}

// String returns the contents of RAM as a hex dump, 16 bytes per row.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 8; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y+8))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.RAM[uint16((y*16)+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}
