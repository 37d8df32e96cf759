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

// Missile is one of the two missile sprites. The missile shares the colour
// and the NUSIZ register of the player with the same number.
type Missile struct {
	sprite

	Enabled bool

	// while ResetToPlayer is true the missile is hidden and is kept at the
	// centre of its player
	ResetToPlayer bool

	player *Player
}

func newMissile(label string, player *Player) Missile {
	return Missile{sprite: sprite{label: label}, player: player}
}

func (ms Missile) String() string {
	return fmt.Sprintf("%s enabled=%v width=%d", ms.sprite, ms.Enabled, ms.width())
}

func (ms Missile) width() int {
	return ms.player.NUSIZ.MissileWidth()
}

// Color returns the colour of the missile.
func (ms Missile) Color() uint8 {
	return ms.player.Color
}

// the offset from the player position used by RESMP. depends on the size of
// the player
var resetToPlayerOffset = map[int]int{1: 3, 2: 6, 4: 10}

func (ms *Missile) setResetToPlayer(v bitfield.MissileReset) {
	ms.ResetToPlayer = v.Enabled()
	if ms.ResetToPlayer {
		ms.lockToPlayer()
	}
}

func (ms *Missile) lockToPlayer() {
	ms.resetPosition(ms.player.Position + resetToPlayerOffset[ms.player.NUSIZ.PlayerScale()])
}

// pixel returns true if the missile is drawing at the visible pixel
func (ms *Missile) pixel(x int) bool {
	if ms.ResetToPlayer {
		ms.lockToPlayer()
		return false
	}
	if !ms.Enabled {
		return false
	}
	for _, c := range ms.player.NUSIZ.Copies() {
		if inRange(x, ms.Position+c, ms.width()) {
			return true
		}
	}
	return false
}
