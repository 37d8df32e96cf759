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

// the sprite type is used for those video elements that move about - players,
// missiles and the ball. the VCS doesn't really have anything called a sprite
// but we all know what it means
type sprite struct {
	// label is the name of a particular instance of a sprite (eg. player0 or
	// missile 1)
	label string

	// horizontal position of the sprite in visible pixels
	Position int

	// the amount of horizontal movement for the sprite. applied on HMOVE
	HM bitfield.HorizontalMotion
}

func (sp sprite) String() string {
	return fmt.Sprintf("%s: pos=%d hm=%d", sp.label, sp.Position, sp.HM.Motion())
}

// reset the position of the sprite
func (sp *sprite) resetPosition(x int) {
	sp.Position = x % specification.HorizClksVisible
}

// move the sprite according to the HM value. positive motion values move the
// sprite left
func (sp *sprite) hmove() {
	sp.Position = (sp.Position - sp.HM.Motion() + specification.HorizClksVisible) % specification.HorizClksVisible
}

// inRange returns true if x is within width pixels of start, taking into
// account the wrap around at the right edge of the screen
func inRange(x int, start int, width int) bool {
	d := (x - start + specification.HorizClksVisible) % specification.HorizClksVisible
	return d < width
}
