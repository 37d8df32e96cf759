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

// Package bitfield provides typed views of the hardware register bytes. Each
// type is a plain byte with methods to extract or replace the named bit
// ranges. There is no behaviour beyond that.
package bitfield

// bit returns true if bit n of v is set.
func bit(v uint8, n uint) bool {
	return v&(1<<n) != 0
}

// set returns v with bit n set or cleared.
func set(v uint8, n uint, on bool) uint8 {
	if on {
		return v | (1 << n)
	}
	return v &^ (1 << n)
}

// field returns the value of the bit range starting at bit lo of the given
// width.
func field(v uint8, lo uint, width uint) uint8 {
	return (v >> lo) & ((1 << width) - 1)
}

// replace returns v with the bit range starting at bit lo replaced with f.
func replace(v uint8, lo uint, width uint, f uint8) uint8 {
	m := uint8((1<<width)-1) << lo
	return (v &^ m) | ((f << lo) & m)
}
