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

// Package ports implements the two I/O ports of the PIA 6532. Port A is
// connected to the joysticks and port B to the console switches.
//
// Each bit of a port is either an input or an output, as selected by the
// data direction register of the port. The CPU can only change output bits.
// Peripherals can only change input bits.
package ports

import (
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
)

// Port is a single 8 bit I/O port and its data direction register.
type Port struct {
	label string

	// the value of the port as seen by the CPU
	Value uint8

	// bits set in the DDR are outputs
	DDR uint8
}

func (p Port) String() string {
	return fmt.Sprintf("%s=%#02x ddr=%#02x", p.label, p.Value, p.DDR)
}

// Write updates the output bits of the port. Input bits retain their prior
// value.
func (p *Port) Write(data uint8) {
	p.Value = (p.Value &^ p.DDR) | (data & p.DDR)
}

// SetInput updates the input bits of the port. Output bits retain their prior
// value.
func (p *Port) SetInput(data uint8) {
	p.Value = (p.Value & p.DDR) | (data &^ p.DDR)
}

// Ports is the I/O part of the RIOT.
type Ports struct {
	SWCHA Port
	SWCHB Port
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	p := &Ports{
		SWCHA: Port{label: "SWCHA"},
		SWCHB: Port{label: "SWCHB"},
	}
	p.Reset()
	return p
}

// Reset ports to their power on state. All bits are inputs, the joysticks
// are centred and the console switches are in their default positions.
func (p *Ports) Reset() {
	p.SWCHA.DDR = 0
	p.SWCHA.Value = 0xff
	p.SWCHB.DDR = 0
	p.SWCHB.Value = uint8(bitfield.DefaultConsoleSwitches)
}

func (p Ports) String() string {
	return fmt.Sprintf("%s %s", p.SWCHA, p.SWCHB)
}

// Joystick returns the current state of the joystick port.
func (p Ports) Joystick() bitfield.Joystick {
	return bitfield.Joystick(p.SWCHA.Value)
}

// SetJoystick pushes or releases a joystick direction for the player.
func (p *Ports) SetJoystick(player int, d bitfield.Direction, pushed bool) {
	p.SWCHA.SetInput(uint8(p.Joystick().WithDirection(player, d, pushed)))
}

// ConsoleSwitches returns the current state of the console switches.
func (p Ports) ConsoleSwitches() bitfield.ConsoleSwitches {
	return bitfield.ConsoleSwitches(p.SWCHB.Value)
}

// SetConsoleSwitches changes the state of all the console switches.
func (p *Ports) SetConsoleSwitches(sw bitfield.ConsoleSwitches) {
	p.SWCHB.SetInput(uint8(sw))
}
