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
	"image/color"

	"github.com/jetsetilly/freya2600/hardware/bitfield"
	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
	"github.com/jetsetilly/freya2600/hardware/television/specification"
	"github.com/jetsetilly/freya2600/hardware/tia/video"
)

// the position of sprites reset during the horizontal blank
const (
	hblankPlayerPosition = 3
	hblankObjectPosition = 2
)

// the number of pixels hidden by an HMOVE during the horizontal blank
const hmoveBlankWidth = 8

// colours used for lines that are not drawn from the registers
var (
	black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// TIA contains all the sub-components of the VCS TIA sub-system.
type TIA struct {
	Spec specification.Spec

	// the current scanline and colour clock
	Line   int
	Column int

	// the number of completed frames
	FrameNum int

	// TIA state -- controlled by the CPU
	VSYNC  bitfield.VerticalSync
	VBLANK bitfield.VerticalBlank

	// WSYNC is set by a write to the WSYNC register and is cleared at the
	// start of the next scanline
	WSYNC      bool
	wsyncCycle uint64

	// HMOVE during the horizontal blank hides the first eight pixels of the
	// scanline
	hmoveBlank bool

	Video *video.Video
	Audio Audio

	// fire buttons for INPT4 and INPT5
	fire    [2]bool
	latched [2]bool

	// the visible part of the screen as RGB values
	Pixels []uint8

	// the CPU cycle being replayed by the most recent call to Step() and the
	// clock from which the cycle of a register write can be found
	cycle uint64
	clock func() uint64
}

// NewTIA creates a TIA, to be used in a VCS emulation. The clock function
// returns the number of CPU cycles consumed. It is used to time register
// writes within an instruction. It can be nil.
func NewTIA(spec specification.Spec, clock func() uint64) *TIA {
	tia := &TIA{
		Spec:   spec,
		Video:  video.NewVideo(),
		Pixels: make([]uint8, spec.ScreenWidth()*spec.ScreenHeight()*3),
		clock:  clock,
	}
	tia.Reset()
	return tia
}

// Reset the TIA to its power on state. The frame number is not reset.
func (tia *TIA) Reset() {
	tia.Line = 0
	tia.Column = 0
	tia.VSYNC = 0
	tia.VBLANK = 0
	tia.WSYNC = false
	tia.wsyncCycle = 0
	tia.hmoveBlank = false
	tia.Video.Reset()
	tia.Audio = Audio{}
	tia.fire = [2]bool{}
	tia.latched = [2]bool{}
	clear(tia.Pixels)
	if tia.clock != nil {
		tia.cycle = tia.clock()
	}
}

func (tia *TIA) String() string {
	return fmt.Sprintf("frame=%d line=%d col=%d wsync=%v vsync=%v vblank=%v",
		tia.FrameNum, tia.Line, tia.Column, tia.WSYNC, tia.VSYNC.Enabled(), tia.VBLANK.Enabled())
}

// Snapshot creates a copy of the TIA in its current state.
func (tia *TIA) Snapshot() *TIA {
	n := *tia
	n.Video = tia.Video.Snapshot()
	n.Pixels = make([]uint8, len(tia.Pixels))
	copy(n.Pixels, tia.Pixels)
	return &n
}

// Step the TIA forward by one CPU cycle. The cycle argument is the number of
// the cycle being replayed.
func (tia *TIA) Step(cycle uint64) {
	tia.cycle = cycle
	tia.Tick()
	tia.Tick()
	tia.Tick()
}

// Tick moves the TIA forward one colour clock.
func (tia *TIA) Tick() {
	tia.Column++
	if tia.Column >= specification.HorizClksScanline {
		tia.Column = 0
		tia.Line++
		if tia.Line >= tia.Spec.ScanlinesTotal {
			tia.Line = 0
			tia.FrameNum++
		}
	}

	if tia.Column == 0 {
		tia.hmoveBlank = false

		// a WSYNC write is only resolved by the start of a line that
		// happens after the cycle of the write
		if tia.WSYNC && tia.cycle > tia.wsyncCycle {
			tia.WSYNC = false
		}
	}

	tia.draw()
}

// the colour clock at which a register write takes effect. register writes
// happen during CPU instructions, before the cycles of the instruction are
// replayed with Step()
func (tia *TIA) writeColumn() int {
	if tia.clock == nil {
		return tia.Column
	}
	pending := int(tia.clock() - tia.cycle)
	return (tia.Column + pending*3) % specification.HorizClksScanline
}

// the visible position at which a sprite is reset. returns false if the reset
// happened during the horizontal blank
func (tia *TIA) resetPosition(hblank int) (int, bool) {
	x := tia.writeColumn() - specification.HorizClksHBlank
	if x < 0 {
		return hblank, false
	}
	return x, true
}

func (tia *TIA) draw() {
	x := tia.Column - specification.HorizClksHBlank
	if x < 0 {
		return
	}

	c := tia.Video.Pixel(x, !tia.VBLANK.Enabled())

	y := tia.Line - tia.Spec.ScanlineTop
	if y < 0 || tia.Line >= tia.Spec.ScanlineBottom {
		return
	}

	var rgb color.RGBA
	switch {
	case tia.VSYNC.Enabled():
		if (x/4+y/4)%2 == 0 {
			rgb = magenta
		} else {
			rgb = black
		}
	case tia.VBLANK.Enabled():
		rgb = black
	case tia.hmoveBlank && x < hmoveBlankWidth:
		rgb = black
	default:
		rgb = tia.Spec.GetColor(bitfield.Color(c).Index())
	}

	i := (y*tia.Spec.ScreenWidth() + x) * 3
	tia.Pixels[i] = rgb.R
	tia.Pixels[i+1] = rgb.G
	tia.Pixels[i+2] = rgb.B
}

// SetFireButton presses or releases the fire button of the player.
func (tia *TIA) SetFireButton(player int, pressed bool) {
	tia.fire[player&1] = pressed
	if pressed && tia.VBLANK.LatchInputs() {
		tia.latched[player&1] = true
	}
}

func (tia *TIA) input(player int) uint8 {
	if tia.fire[player] || tia.latched[player] {
		return 0x00
	}
	return 0x80
}

// Read implements the memory.Chip interface.
func (tia *TIA) Read(address uint16) uint8 {
	return tia.Peek(address)
}

// Peek implements the memory.Chip interface.
func (tia *TIA) Peek(address uint16) uint8 {
	switch address {
	case cpubus.CXM0P, cpubus.CXM1P, cpubus.CXP0FB, cpubus.CXP1FB,
		cpubus.CXM0FB, cpubus.CXM1FB, cpubus.CXBLPF, cpubus.CXPPMM:
		return tia.Video.Collisions.Register(address)
	case cpubus.INPT0, cpubus.INPT1, cpubus.INPT2, cpubus.INPT3:
		if tia.VBLANK.GroundPaddles() {
			return 0x00
		}
		return 0x80
	case cpubus.INPT4:
		return tia.input(0)
	case cpubus.INPT5:
		return tia.input(1)
	}
	return 0
}

// Write implements the memory.Chip interface.
func (tia *TIA) Write(address uint16, data uint8) {
	vd := tia.Video

	switch address {
	case cpubus.VSYNC:
		tia.VSYNC = bitfield.VerticalSync(data)
	case cpubus.VBLANK:
		tia.VBLANK = bitfield.VerticalBlank(data)
		if !tia.VBLANK.LatchInputs() {
			tia.latched = [2]bool{}
		}
	case cpubus.WSYNC:
		tia.WSYNC = true
		tia.wsyncCycle = tia.cycle
		if tia.clock != nil {
			tia.wsyncCycle = tia.clock()
		}
	case cpubus.RSYNC:
		// the next colour clock starts a new scanline
		tia.Column = specification.HorizClksScanline - 1

	case cpubus.NUSIZ0:
		vd.Player0.NUSIZ = bitfield.NumberSize(data)
	case cpubus.NUSIZ1:
		vd.Player1.NUSIZ = bitfield.NumberSize(data)
	case cpubus.COLUP0:
		vd.Player0.Color = data
	case cpubus.COLUP1:
		vd.Player1.Color = data
	case cpubus.COLUPF:
		vd.Playfield.Color = data
	case cpubus.COLUBK:
		vd.Background = data
	case cpubus.CTRLPF:
		vd.Playfield.Ctrl = bitfield.PlayfieldControl(data)
	case cpubus.REFP0:
		vd.Player0.Reflect = bitfield.Reflect(data).Enabled()
	case cpubus.REFP1:
		vd.Player1.Reflect = bitfield.Reflect(data).Enabled()
	case cpubus.PF0:
		vd.Playfield.PF0 = data
	case cpubus.PF1:
		vd.Playfield.PF1 = data
	case cpubus.PF2:
		vd.Playfield.PF2 = data

	case cpubus.RESP0:
		vd.ResetPlayer0(tia.resetPosition(hblankPlayerPosition))
	case cpubus.RESP1:
		vd.ResetPlayer1(tia.resetPosition(hblankPlayerPosition))
	case cpubus.RESM0:
		x, _ := tia.resetPosition(hblankObjectPosition)
		vd.ResetMissile0(x)
	case cpubus.RESM1:
		x, _ := tia.resetPosition(hblankObjectPosition)
		vd.ResetMissile1(x)
	case cpubus.RESBL:
		x, _ := tia.resetPosition(hblankObjectPosition)
		vd.ResetBall(x)

	case cpubus.AUDC0:
		tia.Audio.Control[0] = bitfield.AudioControl(data)
	case cpubus.AUDC1:
		tia.Audio.Control[1] = bitfield.AudioControl(data)
	case cpubus.AUDF0:
		tia.Audio.Frequency[0] = bitfield.AudioFrequency(data)
	case cpubus.AUDF1:
		tia.Audio.Frequency[1] = bitfield.AudioFrequency(data)
	case cpubus.AUDV0:
		tia.Audio.Volume[0] = bitfield.AudioVolume(data)
	case cpubus.AUDV1:
		tia.Audio.Volume[1] = bitfield.AudioVolume(data)

	case cpubus.GRP0:
		vd.WriteGRP0(data)
	case cpubus.GRP1:
		vd.WriteGRP1(data)
	case cpubus.ENAM0:
		vd.Missile0.Enabled = bitfield.Enable(data).Enabled()
	case cpubus.ENAM1:
		vd.Missile1.Enabled = bitfield.Enable(data).Enabled()
	case cpubus.ENABL:
		vd.WriteENABL(data)

	case cpubus.HMP0:
		vd.Player0.HM = bitfield.HorizontalMotion(data)
	case cpubus.HMP1:
		vd.Player1.HM = bitfield.HorizontalMotion(data)
	case cpubus.HMM0:
		vd.Missile0.HM = bitfield.HorizontalMotion(data)
	case cpubus.HMM1:
		vd.Missile1.HM = bitfield.HorizontalMotion(data)
	case cpubus.HMBL:
		vd.Ball.HM = bitfield.HorizontalMotion(data)

	case cpubus.VDELP0:
		vd.Player0.VerticalDelay = bitfield.VerticalDelay(data).Enabled()
	case cpubus.VDELP1:
		vd.Player1.VerticalDelay = bitfield.VerticalDelay(data).Enabled()
	case cpubus.VDELBL:
		vd.Ball.VerticalDelay = bitfield.VerticalDelay(data).Enabled()
	case cpubus.RESMP0:
		vd.WriteRESMP0(data)
	case cpubus.RESMP1:
		vd.WriteRESMP1(data)

	case cpubus.HMOVE:
		vd.HMOVE()
		if tia.writeColumn() < specification.HorizClksHBlank {
			tia.hmoveBlank = true
		}
	case cpubus.HMCLR:
		vd.HMCLR()
	case cpubus.CXCLR:
		vd.Collisions.Clear()
	}
}
