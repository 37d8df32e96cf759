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
	"github.com/jetsetilly/freya2600/hardware/television/specification"
)

// Player is one of the two eight pixel wide player sprites.
type Player struct {
	sprite

	NUSIZ   bitfield.NumberSize
	Color   uint8
	Reflect bool

	// the graphics register and the copy of the previous value used when
	// vertical delay is enabled. the old value is updated when the GRP
	// register of the other player is written to
	GfxNew        uint8
	GfxOld        uint8
	VerticalDelay bool

	// the number of pixels of the current copy still to be drawn. zero if no
	// copy is being drawn
	countdown int
}

func newPlayer(label string) Player {
	return Player{sprite: sprite{label: label}}
}

func (ps Player) String() string {
	return fmt.Sprintf("%s nusiz=%#02x gfx=%08b", ps.sprite, uint8(ps.NUSIZ), ps.gfx())
}

// the graphics currently in effect
func (ps Player) gfx() uint8 {
	if ps.VerticalDelay {
		return ps.GfxOld
	}
	return ps.GfxNew
}

// arm the countdown to draw a copy of the player
func (ps *Player) arm() {
	ps.countdown = 8 * ps.NUSIZ.PlayerScale()
}

// reset the position of the player to the visible column. the new copy is
// armed by pixel() when the beam reaches the position. a reset during the
// horizontal blank also cancels any copy still being drawn
func (ps *Player) reset(x int, draw bool) {
	ps.resetPosition(x)
	if !draw {
		ps.countdown = 0
	}
}

// pixel ticks the player forward one visible pixel and returns true if the
// player is drawing at that pixel
func (ps *Player) pixel(x int) bool {
	for _, c := range ps.NUSIZ.Copies() {
		if x == (ps.Position+c)%specification.HorizClksVisible {
			ps.arm()
		}
	}

	if ps.countdown == 0 {
		return false
	}

	scale := ps.NUSIZ.PlayerScale()
	n := (8*scale - ps.countdown) / scale
	ps.countdown--

	if ps.Reflect {
		n = 7 - n
	}
	return ps.gfx()&(0x80>>n) != 0
}
