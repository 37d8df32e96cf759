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

package bitfield

// Color is the value of the COLUP0, COLUP1, COLUPF and COLUBK registers.
type Color uint8

// Luminance is bits 1 to 3.
func (c Color) Luminance() uint8 {
	return field(uint8(c), 1, 3)
}

// Hue is bits 4 to 7.
func (c Color) Hue() uint8 {
	return field(uint8(c), 4, 4)
}

// Index is the 7 bit palette index made up of hue and luminance.
func (c Color) Index() uint8 {
	return uint8(c) >> 1
}

// VerticalSync is the value of the VSYNC register.
type VerticalSync uint8

// Enabled is D1.
func (v VerticalSync) Enabled() bool {
	return bit(uint8(v), 1)
}

// VerticalBlank is the value of the VBLANK register.
type VerticalBlank uint8

// Enabled is D1.
func (v VerticalBlank) Enabled() bool {
	return bit(uint8(v), 1)
}

// LatchInputs is D6. When set the INPT4 and INPT5 lines latch once pulled low.
func (v VerticalBlank) LatchInputs() bool {
	return bit(uint8(v), 6)
}

// GroundPaddles is D7.
func (v VerticalBlank) GroundPaddles() bool {
	return bit(uint8(v), 7)
}

// NumberSize is the value of the NUSIZ0 and NUSIZ1 registers.
type NumberSize uint8

// Player is bits 0 to 2 and selects the number, spacing and size of the
// player and missile copies.
func (n NumberSize) Player() uint8 {
	return field(uint8(n), 0, 3)
}

// Missile is bits 4 and 5.
func (n NumberSize) Missile() uint8 {
	return field(uint8(n), 4, 2)
}

// MissileWidth is the width in pixels of the missile.
func (n NumberSize) MissileWidth() int {
	return 1 << n.Missile()
}

// PlayerScale is the number of pixels used for each bit of the graphics
// register.
func (n NumberSize) PlayerScale() int {
	switch n.Player() {
	case 0b101:
		return 2
	case 0b111:
		return 4
	}
	return 1
}

// Copies is the list of pixel offsets at which a copy of the player (and
// missile) is drawn. The first copy is always at offset zero.
func (n NumberSize) Copies() []int {
	return numberSizeCopies[n.Player()]
}

var numberSizeCopies = [8][]int{
	{0},
	{0, 16},
	{0, 32},
	{0, 16, 32},
	{0, 64},
	{0},
	{0, 32, 64},
	{0},
}

// PlayfieldControl is the value of the CTRLPF register.
type PlayfieldControl uint8

// Reflect is D0.
func (c PlayfieldControl) Reflect() bool {
	return bit(uint8(c), 0)
}

// ScoreMode is D1.
func (c PlayfieldControl) ScoreMode() bool {
	return bit(uint8(c), 1)
}

// Priority is D2. When set the playfield and ball are drawn over the players
// and missiles.
func (c PlayfieldControl) Priority() bool {
	return bit(uint8(c), 2)
}

// BallSize is bits 4 and 5.
func (c PlayfieldControl) BallSize() uint8 {
	return field(uint8(c), 4, 2)
}

// BallWidth is the width in pixels of the ball.
func (c PlayfieldControl) BallWidth() int {
	return 1 << c.BallSize()
}

// WithReflect returns the value with D0 replaced.
func (c PlayfieldControl) WithReflect(on bool) PlayfieldControl {
	return PlayfieldControl(set(uint8(c), 0, on))
}

// WithScoreMode returns the value with D1 replaced.
func (c PlayfieldControl) WithScoreMode(on bool) PlayfieldControl {
	return PlayfieldControl(set(uint8(c), 1, on))
}

// WithBallSize returns the value with bits 4 and 5 replaced.
func (c PlayfieldControl) WithBallSize(size uint8) PlayfieldControl {
	return PlayfieldControl(replace(uint8(c), 4, 2, size))
}

// Reflect is the value of the REFP0 and REFP1 registers.
type Reflect uint8

// Enabled is D3.
func (r Reflect) Enabled() bool {
	return bit(uint8(r), 3)
}

// Enable is the value of the ENAM0, ENAM1 and ENABL registers.
type Enable uint8

// Enabled is D1.
func (e Enable) Enabled() bool {
	return bit(uint8(e), 1)
}

// HorizontalMotion is the value of the HMP0, HMP1, HMM0, HMM1 and HMBL
// registers.
type HorizontalMotion uint8

// Motion is the signed upper nibble. Positive values move the object to the
// left.
func (h HorizontalMotion) Motion() int {
	return int(int8(h) >> 4)
}

// VerticalDelay is the value of the VDELP0, VDELP1 and VDELBL registers.
type VerticalDelay uint8

// Enabled is D0.
func (v VerticalDelay) Enabled() bool {
	return bit(uint8(v), 0)
}

// MissileReset is the value of the RESMP0 and RESMP1 registers.
type MissileReset uint8

// Enabled is D1.
func (m MissileReset) Enabled() bool {
	return bit(uint8(m), 1)
}

// AudioControl is the value of the AUDC0 and AUDC1 registers.
type AudioControl uint8

// Waveform is bits 0 to 3.
func (a AudioControl) Waveform() uint8 {
	return field(uint8(a), 0, 4)
}

// AudioFrequency is the value of the AUDF0 and AUDF1 registers.
type AudioFrequency uint8

// Divider is bits 0 to 4.
func (a AudioFrequency) Divider() uint8 {
	return field(uint8(a), 0, 5)
}

// AudioVolume is the value of the AUDV0 and AUDV1 registers.
type AudioVolume uint8

// Volume is bits 0 to 3.
func (a AudioVolume) Volume() uint8 {
	return field(uint8(a), 0, 4)
}
