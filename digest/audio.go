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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/tia"
)

// the length of the buffer before a new digest is generated
const audioBufferLength = 1024

// the buffer starts with the previous digest value
const audioBufferStart = sha1.Size

// Audio is an implementation of the Digest interface for the audio registers
// of the TIA. No sound is generated by the emulation so the register values
// are sampled instead.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Any sampled data that has not been
// added to the digest is flushed first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.Flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
}

// Sample adds the current state of the audio registers to the digest.
func (dig *Audio) Sample(au tia.Audio) {
	for ch := range 2 {
		dig.add(uint8(au.Control[ch]))
		dig.add(uint8(au.Frequency[ch]))
		dig.add(uint8(au.Volume[ch]))
	}
}

func (dig *Audio) add(data uint8) {
	dig.buffer[dig.bufferCt] = data
	dig.bufferCt++
	if dig.bufferCt >= audioBufferLength {
		dig.Flush()
	}
}

// Flush the sampled data to the digest.
func (dig *Audio) Flush() {
	clear(dig.buffer[dig.bufferCt:])
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
