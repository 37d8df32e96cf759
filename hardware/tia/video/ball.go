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
)

// Ball is the ball sprite. The ball has the same colour as the playfield and
// its size is set by the CTRLPF register.
type Ball struct {
	sprite

	// as with the player graphics, the ball has an old enable value that is
	// used when vertical delay is on. the old value is updated when GRP1 is
	// written to
	EnabledNew    bool
	EnabledOld    bool
	VerticalDelay bool

	playfield *Playfield
}

func newBall(label string, playfield *Playfield) Ball {
	return Ball{sprite: sprite{label: label}, playfield: playfield}
}

func (bs Ball) String() string {
	return fmt.Sprintf("%s enabled=%v width=%d", bs.sprite, bs.enabled(), bs.playfield.Ctrl.BallWidth())
}

func (bs Ball) enabled() bool {
	if bs.VerticalDelay {
		return bs.EnabledOld
	}
	return bs.EnabledNew
}

func (bs *Ball) pixel(x int) bool {
	return bs.enabled() && inRange(x, bs.Position, bs.playfield.Ctrl.BallWidth())
}
