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

package cartridge

import (
	"fmt"
	"strings"
)

// Scheme describes how the banks of a cartridge are switched.
type Scheme struct {
	ID string

	// the number of banks that can be addressed by the scheme
	Banks int

	// accessing Hotspot+n selects bank n. the address is in the primary
	// cartridge mirror (0x1000 to 0x1fff). zero if the scheme has no hotspots
	Hotspot uint16

	// writing to Register (a normalised TIA address) selects the bank with
	// the written value masked by Mask. zero if the scheme has no register
	Register uint16
	Mask     uint8
}

// HasHotspots returns true if the scheme switches banks by address.
func (s Scheme) HasHotspots() bool {
	return s.Hotspot != 0
}

// HasRegister returns true if the scheme switches banks by value.
func (s Scheme) HasRegister() bool {
	return s.Register != 0
}

// IsHotspot returns the bank selected by accessing the address. The address
// should be in the primary cartridge mirror.
func (s Scheme) IsHotspot(address uint16) (int, bool) {
	if s.Hotspot == 0 || address < s.Hotspot || address >= s.Hotspot+uint16(s.Banks) {
		return 0, false
	}
	return int(address - s.Hotspot), true
}

func (s Scheme) String() string {
	return s.ID
}

// List of supported schemes.
var (
	Scheme2K = Scheme{ID: "2K", Banks: 1}
	Scheme4K = Scheme{ID: "4K", Banks: 1}
	SchemeF8 = Scheme{ID: "F8", Banks: 2, Hotspot: 0x1ff8}
	SchemeFA = Scheme{ID: "FA", Banks: 3, Hotspot: 0x1ff8}
	SchemeF6 = Scheme{ID: "F6", Banks: 4, Hotspot: 0x1ff6}
	SchemeF4 = Scheme{ID: "F4", Banks: 8, Hotspot: 0x1ff4}
	Scheme3F = Scheme{ID: "3F", Banks: 4, Register: 0x3f, Mask: 0x03}
)

// SchemeList is the list of scheme IDs that can be specified when loading a
// cartridge. AUTO selects the scheme based on the size of the data.
var SchemeList = []string{"AUTO", "2K", "4K", "F8", "FA", "F6", "F4", "3F"}

// SearchScheme returns the scheme for the mapping ID. The number of bytes in
// the cartridge data is used to decide on the scheme when the mapping is AUTO
// or empty.
func SearchScheme(mapping string, size int) (Scheme, error) {
	switch strings.ToUpper(strings.TrimSpace(mapping)) {
	case "", "AUTO":
		return fingerprint(size)
	case "2K":
		return Scheme2K, nil
	case "4K":
		return Scheme4K, nil
	case "F8":
		return SchemeF8, nil
	case "FA":
		return SchemeFA, nil
	case "F6":
		return SchemeF6, nil
	case "F4":
		return SchemeF4, nil
	case "3F":
		s := Scheme3F
		if numBanks(size) > s.Banks {
			s.Banks = MaxBanks
			s.Mask = MaxBanks - 1
		}
		return s, nil
	}
	return Scheme{}, fmt.Errorf("%w: %s", ErrUnknownMapping, mapping)
}

// fingerprint chooses a scheme based only on the size of the data. sizes that
// are not a whole number of banks are rounded up.
func fingerprint(size int) (Scheme, error) {
	if size == 2048 {
		return Scheme2K, nil
	}

	switch n := numBanks(size); {
	case n <= 1:
		return Scheme4K, nil
	case n == 2:
		return SchemeF8, nil
	case n == 3:
		return SchemeFA, nil
	case n == 4:
		return SchemeF6, nil
	case n <= MaxBanks:
		return SchemeF4, nil
	}

	return Scheme{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
}

// numBanks returns the number of 4K banks required for size bytes.
func numBanks(size int) int {
	return (size + BankSize - 1) / BankSize
}
