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

// Package specification contains the definitions, including colour, of the
// television protocol supported by the emulation.
package specification

import (
	"fmt"
	"image/color"
	"strings"
)

// From the Stella Programmer's Guide:
//
// "Each scan lines starts with 68 clock counts of horizontal blank (not seen on
// the TV screen) followed by 160 clock counts to fully scan one line of TV
// picture. When the electron beam reaches the end of a scan line, it returns
// to the left side of the screen, waits for the 68 horizontal blank clock
// counts, and proceeds to draw the next line below."
const (
	HorizClksHBlank   = 68
	HorizClksVisible  = 160
	HorizClksScanline = 228
)

// Spec is used to define a television specification.
type Spec struct {
	ID     string
	Colors *[128]color.RGBA

	// the number of scanlines the 2600 Programmer's guide recommends for the
	// top/bottom parts of the screen:
	//
	// "A typical frame will consists of 3 vertical sync (VSYNC) lines*, 37 vertical
	// blank (VBLANK) lines, 192 TV picture lines, and 30 overscan lines. Atari’s
	// research has shown that this pattern will work on all types of TV sets."
	ScanlinesVSync    int
	ScanlinesVBlank   int
	ScanlinesVisible  int
	ScanlinesOverscan int

	// the total number of scanlines for the entire frame is the sum of the
	// four individual portions
	ScanlinesTotal int

	// lines before ScanlineTop and on or after ScanlineBottom are not drawn
	//
	//	Top = VSync + Vblank
	//
	//	Bottom = Top + Visible
	ScanlineTop    int
	ScanlineBottom int

	// the number of frames per second required by the specification
	FramesPerSecond float32
}

// ScreenWidth is the width in pixels of the visible screen.
func (spec Spec) ScreenWidth() int {
	return HorizClksVisible
}

// ScreenHeight is the height in pixels of the visible screen.
func (spec Spec) ScreenHeight() int {
	return spec.ScanlineBottom - spec.ScanlineTop
}

// GetColor returns the RGB value for a seven bit palette index. Values
// outside the range of the palette are masked.
func (spec Spec) GetColor(index uint8) color.RGBA {
	return spec.Colors[index&0x7f]
}

func (spec Spec) String() string {
	return fmt.Sprintf("%s (%d lines, %d visible)", spec.ID, spec.ScanlinesTotal, spec.ScanlinesVisible)
}

// SpecNTSC is the specification for NTSC television types.
var SpecNTSC Spec

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"NTSC"}

func init() {
	SpecNTSC = Spec{
		ID:                "NTSC",
		Colors:            &PaletteNTSC,
		ScanlinesVSync:    3,
		ScanlinesVBlank:   37,
		ScanlinesVisible:  192,
		ScanlinesOverscan: 30,
		ScanlinesTotal:    262,
		FramesPerSecond:   60.0,
	}

	SpecNTSC.ScanlineTop = SpecNTSC.ScanlinesVBlank + SpecNTSC.ScanlinesVSync
	SpecNTSC.ScanlineBottom = SpecNTSC.ScanlinesTotal - SpecNTSC.ScanlinesOverscan
}

// SearchSpec returns the specification with the matching ID. The AUTO and
// empty strings select NTSC.
func SearchSpec(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "", "AUTO", "NTSC":
		return SpecNTSC, nil
	}
	return Spec{}, fmt.Errorf("specification: unsupported television specification (%s)", id)
}
