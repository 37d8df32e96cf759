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

package tia

import (
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
)

// Audio is the state of the two audio channels. No sound is generated from
// these values.
type Audio struct {
	Control   [2]bitfield.AudioControl
	Frequency [2]bitfield.AudioFrequency
	Volume    [2]bitfield.AudioVolume
}

func (au Audio) String() string {
	return fmt.Sprintf("ch0: %02x %02x %02x ch1: %02x %02x %02x",
		au.Control[0].Waveform(), au.Frequency[0].Divider(), au.Volume[0].Volume(),
		au.Control[1].Waveform(), au.Frequency[1].Divider(), au.Volume[1].Volume())
}
