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

package riot

import (
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
	"github.com/jetsetilly/freya2600/hardware/riot/ports"
	"github.com/jetsetilly/freya2600/hardware/riot/timer"
)

// RIOT represents the PIA 6532 found in the VCS.
type RIOT struct {
	Timer *timer.Timer
	Ports *ports.Ports
}

// NewRIOT is the preferred method of initialisation for the RIOT type.
func NewRIOT() *RIOT {
	return &RIOT{
		Timer: timer.NewTimer(),
		Ports: ports.NewPorts(),
	}
}

// Reset the timer and the ports to their power on state.
func (riot *RIOT) Reset() {
	riot.Timer.Reset()
	riot.Ports.Reset()
}

func (riot *RIOT) String() string {
	return fmt.Sprintf("%s %s", riot.Timer, riot.Ports)
}

// Snapshot creates a copy of the RIOT in its current state.
func (riot *RIOT) Snapshot() *RIOT {
	tmr := *riot.Timer
	p := *riot.Ports
	return &RIOT{
		Timer: &tmr,
		Ports: &p,
	}
}

// Step moves the state of the RIOT forward one CPU cycle.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}

// the register selected by an address. INTIM and TIMINT are each mirrored
// once
func register(address uint16) uint16 {
	return cpubus.SWCHA | address&0x07
}

// Read implements the memory.Chip interface.
func (riot *RIOT) Read(address uint16) uint8 {
	switch register(address) {
	case cpubus.INTIM, cpubus.INTIM | 0x02:
		return riot.Timer.ReadINTIM()
	}
	return riot.Peek(address)
}

// Peek implements the memory.Chip interface.
func (riot *RIOT) Peek(address uint16) uint8 {
	switch register(address) {
	case cpubus.SWCHA:
		return riot.Ports.SWCHA.Value
	case cpubus.SWACNT:
		return riot.Ports.SWCHA.DDR
	case cpubus.SWCHB:
		return riot.Ports.SWCHB.Value
	case cpubus.SWBCNT:
		return riot.Ports.SWCHB.DDR
	case cpubus.INTIM, cpubus.INTIM | 0x02:
		return riot.Timer.INTIM
	}

	// TIMINT and its mirror
	return riot.Timer.TIMINT()
}

// Write implements the memory.Chip interface.
func (riot *RIOT) Write(address uint16, data uint8) {
	// timer registers have both bit 2 and bit 4 set
	if address&0x14 == 0x14 {
		riot.Timer.Set(timer.IntervalFromRegister(address), data)
		return
	}

	// writes with bit 2 set and bit 4 clear are to the edge detect control,
	// which is not connected in the VCS
	if address&0x04 != 0 {
		return
	}

	switch register(address) {
	case cpubus.SWCHA:
		riot.Ports.SWCHA.Write(data)
	case cpubus.SWACNT:
		riot.Ports.SWCHA.DDR = data
	case cpubus.SWCHB:
		riot.Ports.SWCHB.Write(data)
	case cpubus.SWBCNT:
		riot.Ports.SWCHB.DDR = data
	}
}
