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
	"strings"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
)

// Video contains all the graphical objects of the TIA.
type Video struct {
	Playfield  Playfield
	Background uint8

	Player0  Player
	Player1  Player
	Missile0 Missile
	Missile1 Missile
	Ball     Ball

	Collisions Collisions
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vd := &Video{}
	vd.Reset()
	return vd
}

// link the missiles and ball to the objects they take their attributes from
func (vd *Video) link() {
	vd.Missile0.player = &vd.Player0
	vd.Missile1.player = &vd.Player1
	vd.Ball.playfield = &vd.Playfield
}

// Reset all objects to their power on state.
func (vd *Video) Reset() {
	*vd = Video{
		Player0:  newPlayer("player0"),
		Player1:  newPlayer("player1"),
		Missile0: newMissile("missile0", nil),
		Missile1: newMissile("missile1", nil),
		Ball:     newBall("ball", nil),
	}
	vd.link()
}

// Snapshot creates a copy of the Video in its current state.
func (vd *Video) Snapshot() *Video {
	n := *vd
	n.link()
	return &n
}

func (vd *Video) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", vd.Playfield))
	s.WriteString(fmt.Sprintf("%s\n", vd.Player0))
	s.WriteString(fmt.Sprintf("%s\n", vd.Player1))
	s.WriteString(fmt.Sprintf("%s\n", vd.Missile0))
	s.WriteString(fmt.Sprintf("%s\n", vd.Missile1))
	s.WriteString(fmt.Sprintf("%s\n", vd.Ball))
	s.WriteString(fmt.Sprintf("collisions: %s", vd.Collisions))
	return s.String()
}

// Pixel ticks every object forward one visible pixel and returns the colour
// register value for the pixel. Collisions are recorded if collide is true.
func (vd *Video) Pixel(x int, collide bool) uint8 {
	o := objects{
		p0: vd.Player0.pixel(x),
		p1: vd.Player1.pixel(x),
		m0: vd.Missile0.pixel(x),
		m1: vd.Missile1.pixel(x),
		bl: vd.Ball.pixel(x),
		pf: vd.Playfield.IsSet(x),
	}

	if collide {
		vd.Collisions.update(o)
	}

	// in score mode the playfield takes the colour of the player on the
	// same half of the screen
	pfColor := vd.Playfield.Color
	if vd.Playfield.Ctrl.ScoreMode() {
		if x < 80 {
			pfColor = vd.Player0.Color
		} else {
			pfColor = vd.Player1.Color
		}
	}

	if vd.Playfield.Ctrl.Priority() {
		if o.pf {
			return pfColor
		}
		if o.bl {
			return vd.Playfield.Color
		}
	}

	if o.p0 || o.m0 {
		return vd.Player0.Color
	}
	if o.p1 || o.m1 {
		return vd.Player1.Color
	}
	if o.bl {
		return vd.Playfield.Color
	}
	if o.pf {
		return pfColor
	}

	return vd.Background
}

// WriteGRP0 sets the graphics of player 0. The old graphics of player 1 are
// updated with its new graphics.
func (vd *Video) WriteGRP0(data uint8) {
	vd.Player0.GfxNew = data
	vd.Player1.GfxOld = vd.Player1.GfxNew
}

// WriteGRP1 sets the graphics of player 1. The old graphics of player 0 and
// the old enable flag of the ball are updated.
func (vd *Video) WriteGRP1(data uint8) {
	vd.Player1.GfxNew = data
	vd.Player0.GfxOld = vd.Player0.GfxNew
	vd.Ball.EnabledOld = vd.Ball.EnabledNew
}

// WriteENABL sets the enable flag of the ball.
func (vd *Video) WriteENABL(data uint8) {
	vd.Ball.EnabledNew = bitfield.Enable(data).Enabled()
}

// WriteRESMP0 sets or clears the locking of missile 0 to player 0.
func (vd *Video) WriteRESMP0(data uint8) {
	vd.Missile0.setResetToPlayer(bitfield.MissileReset(data))
}

// WriteRESMP1 sets or clears the locking of missile 1 to player 1.
func (vd *Video) WriteRESMP1(data uint8) {
	vd.Missile1.setResetToPlayer(bitfield.MissileReset(data))
}

// ResetPlayer0 moves player 0 to the visible column. The player is drawn
// when Pixel() reaches the column. If draw is false any copy currently being
// drawn is stopped.
func (vd *Video) ResetPlayer0(x int, draw bool) {
	vd.Player0.reset(x, draw)
}

// ResetPlayer1 moves player 1 to the visible column. The player is drawn
// when Pixel() reaches the column. If draw is false any copy currently being
// drawn is stopped.
func (vd *Video) ResetPlayer1(x int, draw bool) {
	vd.Player1.reset(x, draw)
}

// HMOVE applies the horizontal motion registers to every sprite.
func (vd *Video) HMOVE() {
	vd.Player0.hmove()
	vd.Player1.hmove()
	vd.Missile0.hmove()
	vd.Missile1.hmove()
	vd.Ball.hmove()
}

// HMCLR clears the horizontal motion registers of every sprite.
func (vd *Video) HMCLR() {
	vd.Player0.HM = 0
	vd.Player1.HM = 0
	vd.Missile0.HM = 0
	vd.Missile1.HM = 0
	vd.Ball.HM = 0
}

// ResetMissile0 moves missile 0 to the visible column.
func (vd *Video) ResetMissile0(x int) {
	vd.Missile0.resetPosition(x)
}

// ResetMissile1 moves missile 1 to the visible column.
func (vd *Video) ResetMissile1(x int) {
	vd.Missile1.resetPosition(x)
}

// ResetBall moves the ball to the visible column.
func (vd *Video) ResetBall(x int) {
	vd.Ball.resetPosition(x)
}
