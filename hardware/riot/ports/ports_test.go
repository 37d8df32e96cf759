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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
	"github.com/jetsetilly/freya2600/hardware/riot/ports"
	"github.com/jetsetilly/freya2600/test"
)

func TestDirectionMasking(t *testing.T) {
	p := ports.NewPorts()
	test.ExpectEquality(t, p.SWCHA.Value, 0xff)

	// writes to input bits are ignored
	p.SWCHA.Write(0x00)
	test.ExpectEquality(t, p.SWCHA.Value, 0xff)

	// lower nibble as output
	p.SWCHA.DDR = 0x0f
	p.SWCHA.Write(0x00)
	test.ExpectEquality(t, p.SWCHA.Value, 0xf0)

	// peripherals can not change output bits
	p.SWCHA.SetInput(0x0f)
	test.ExpectEquality(t, p.SWCHA.Value, 0x00)
}

func TestJoystick(t *testing.T) {
	p := ports.NewPorts()
	p.SetJoystick(0, bitfield.Up, true)
	test.ExpectEquality(t, p.SWCHA.Value, 0xef)
	test.ExpectEquality(t, p.Joystick().Pushed(0, bitfield.Up), true)
	test.ExpectEquality(t, p.Joystick().Pushed(1, bitfield.Up), false)

	p.SetJoystick(1, bitfield.Right, true)
	test.ExpectEquality(t, p.SWCHA.Value, 0xe7)

	p.SetJoystick(0, bitfield.Up, false)
	test.ExpectEquality(t, p.SWCHA.Value, 0xf7)
}

func TestConsoleSwitches(t *testing.T) {
	p := ports.NewPorts()
	test.ExpectEquality(t, p.ConsoleSwitches(), bitfield.DefaultConsoleSwitches)
	test.ExpectEquality(t, p.ConsoleSwitches().Reset(), false)

	p.SetConsoleSwitches(p.ConsoleSwitches().WithReset(true))
	test.ExpectEquality(t, p.ConsoleSwitches().Reset(), true)
	test.ExpectEquality(t, p.SWCHB.Value, 0x0a)

	p.Reset()
	test.ExpectEquality(t, p.SWCHB.Value, 0x0b)
}
