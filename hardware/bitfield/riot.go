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

// ConsoleSwitches is the value of the SWCHB register. The switches are active
// low: a clear bit means the switch is pressed (for reset and select).
type ConsoleSwitches uint8

// DefaultConsoleSwitches is the state of the switches at power on. Reset and
// select released, colour TV, both difficulty switches in the B position.
const DefaultConsoleSwitches = ConsoleSwitches(0b00001011)

// Reset is true if the reset switch is pressed (D0 clear).
func (c ConsoleSwitches) Reset() bool {
	return !bit(uint8(c), 0)
}

// Select is true if the select switch is pressed (D1 clear).
func (c ConsoleSwitches) Select() bool {
	return !bit(uint8(c), 1)
}

// Color is true if the TV type switch is in the colour position (D3 set).
func (c ConsoleSwitches) Color() bool {
	return bit(uint8(c), 3)
}

// P0Difficulty is true if the left difficulty switch is in the A position.
func (c ConsoleSwitches) P0Difficulty() bool {
	return bit(uint8(c), 6)
}

// P1Difficulty is true if the right difficulty switch is in the A position.
func (c ConsoleSwitches) P1Difficulty() bool {
	return bit(uint8(c), 7)
}

// WithReset returns the value with the reset switch pressed or released.
func (c ConsoleSwitches) WithReset(pressed bool) ConsoleSwitches {
	return ConsoleSwitches(set(uint8(c), 0, !pressed))
}

// WithSelect returns the value with the select switch pressed or released.
func (c ConsoleSwitches) WithSelect(pressed bool) ConsoleSwitches {
	return ConsoleSwitches(set(uint8(c), 1, !pressed))
}

// WithColor returns the value with the TV type switch set.
func (c ConsoleSwitches) WithColor(color bool) ConsoleSwitches {
	return ConsoleSwitches(set(uint8(c), 3, color))
}

// WithP0Difficulty returns the value with the left difficulty switch set.
func (c ConsoleSwitches) WithP0Difficulty(a bool) ConsoleSwitches {
	return ConsoleSwitches(set(uint8(c), 6, a))
}

// WithP1Difficulty returns the value with the right difficulty switch set.
func (c ConsoleSwitches) WithP1Difficulty(a bool) ConsoleSwitches {
	return ConsoleSwitches(set(uint8(c), 7, a))
}

// Joystick is the value of the SWCHA register. Player 0 directions are in the
// upper nibble and player 1 directions in the lower nibble. Directions are
// active low.
type Joystick uint8

// Direction is one of the four joystick directions.
type Direction int

// List of valid Direction values. The value is the bit position within the
// nibble for the player.
const (
	Up    Direction = 0
	Down  Direction = 1
	Left  Direction = 2
	Right Direction = 3
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown direction"
}

func joystickBit(player int, d Direction) uint {
	if player == 0 {
		return 4 + uint(d)
	}
	return uint(d)
}

// Pushed returns true if the player's joystick is pushed in the direction.
func (j Joystick) Pushed(player int, d Direction) bool {
	return !bit(uint8(j), joystickBit(player, d))
}

// WithDirection returns the value with the direction pushed or released.
func (j Joystick) WithDirection(player int, d Direction, pushed bool) Joystick {
	return Joystick(set(uint8(j), joystickBit(player, d), !pushed))
}

// Nibble returns the four direction bits for the player.
func (j Joystick) Nibble(player int) uint8 {
	if player == 0 {
		return field(uint8(j), 4, 4)
	}
	return field(uint8(j), 0, 4)
}

// TimerInterrupt is the value read from the TIMINT register.
type TimerInterrupt uint8

// Underflow is D7.
func (t TimerInterrupt) Underflow() bool {
	return bit(uint8(t), 7)
}

// WithUnderflow returns the value with D7 replaced.
func (t TimerInterrupt) WithUnderflow(on bool) TimerInterrupt {
	return TimerInterrupt(set(uint8(t), 7, on))
}
