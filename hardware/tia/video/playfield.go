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

package video

import (
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
)

// Playfield is the 20 bit background pattern formed by the PF0, PF1 and PF2
// registers. The pattern covers the left half of the screen and is either
// repeated or reflected for the right half.
type Playfield struct {
	PF0   uint8
	PF1   uint8
	PF2   uint8
	Ctrl  bitfield.PlayfieldControl
	Color uint8
}

func (pf Playfield) String() string {
	return fmt.Sprintf("playfield: %04b %08b %08b ctrl=%#02x", pf.PF0>>4, pf.PF1, pf.PF2, uint8(pf.Ctrl))
}

// the register and bit for each of the 20 playfield dots. PF0 uses only the
// upper nibble, in ascending order. PF1 is in descending order and PF2 in
// ascending order
var playfieldBits = [20]struct {
	reg int
	bit uint
}{
	{0, 4}, {0, 5}, {0, 6}, {0, 7},
	{1, 7}, {1, 6}, {1, 5}, {1, 4}, {1, 3}, {1, 2}, {1, 1}, {1, 0},
	{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7},
}

// IsSet returns true if the playfield is set at visible column x. Each
// playfield dot is four pixels wide.
func (pf Playfield) IsSet(x int) bool {
	dot := x / 4
	if dot >= 20 {
		dot -= 20
		if pf.Ctrl.Reflect() {
			dot = 19 - dot
		}
	}

	b := playfieldBits[dot]
	var v uint8
	switch b.reg {
	case 0:
		v = pf.PF0
	case 1:
		v = pf.PF1
	case 2:
		v = pf.PF2
	}
	return v&(1<<b.bit) != 0
}
