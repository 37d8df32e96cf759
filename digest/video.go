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
)

// Video is an implementation of the Digest interface for the screen buffer
// of the TIA.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// size argument is the length of the screen buffer in bytes.
func NewVideo(size int) *Video {
	// length of pixels array contains enough room for the previous frames
	// digest value
	return &Video{
		pixels: make([]byte, sha1.Size+size),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// FrameNum returns the number of the most recent frame given to Frame().
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Frame adds the screen buffer to the digest. Screen buffers that are larger
// than the size given to NewVideo() are truncated.
func (dig *Video) Frame(frameNum int, screen []uint8) {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])
	n := copy(dig.pixels[sha1.Size:], screen)
	clear(dig.pixels[sha1.Size+n:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
}
