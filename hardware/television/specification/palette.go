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

package specification

import "image/color"

// PaletteNTSC is the 128 entry NTSC palette. It is indexed by the seven bit
// hue/luminance value of a colour register (ie. the register value shifted
// right by one). There are eight luminance entries for each of the sixteen
// hues.
var PaletteNTSC = [128]color.RGBA{
	// hue 0
	{R: 0, G: 0, B: 0, A: 255},
	{R: 64, G: 64, B: 64, A: 255},
	{R: 108, G: 108, B: 108, A: 255},
	{R: 144, G: 144, B: 144, A: 255},
	{R: 176, G: 176, B: 176, A: 255},
	{R: 200, G: 200, B: 200, A: 255},
	{R: 220, G: 220, B: 220, A: 255},
	{R: 236, G: 236, B: 236, A: 255},

	// hue 1
	{R: 68, G: 68, B: 0, A: 255},
	{R: 100, G: 100, B: 16, A: 255},
	{R: 132, G: 132, B: 36, A: 255},
	{R: 160, G: 160, B: 52, A: 255},
	{R: 184, G: 184, B: 64, A: 255},
	{R: 208, G: 208, B: 80, A: 255},
	{R: 232, G: 232, B: 92, A: 255},
	{R: 252, G: 252, B: 104, A: 255},

	// hue 2
	{R: 112, G: 40, B: 0, A: 255},
	{R: 132, G: 68, B: 20, A: 255},
	{R: 152, G: 92, B: 40, A: 255},
	{R: 172, G: 120, B: 60, A: 255},
	{R: 188, G: 140, B: 76, A: 255},
	{R: 184, G: 156, B: 88, A: 255},
	{R: 220, G: 180, B: 104, A: 255},
	{R: 236, G: 200, B: 120, A: 255},

	// hue 3
	{R: 132, G: 24, B: 0, A: 255},
	{R: 152, G: 52, B: 24, A: 255},
	{R: 172, G: 80, B: 48, A: 255},
	{R: 192, G: 104, B: 72, A: 255},
	{R: 208, G: 128, B: 92, A: 255},
	{R: 224, G: 148, B: 112, A: 255},
	{R: 236, G: 168, B: 128, A: 255},
	{R: 252, G: 188, B: 148, A: 255},

	// hue 4
	{R: 136, G: 0, B: 0, A: 255},
	{R: 156, G: 32, B: 32, A: 255},
	{R: 176, G: 60, B: 60, A: 255},
	{R: 192, G: 88, B: 88, A: 255},
	{R: 208, G: 112, B: 112, A: 255},
	{R: 224, G: 136, B: 136, A: 255},
	{R: 236, G: 160, B: 160, A: 255},
	{R: 252, G: 180, B: 180, A: 255},

	// hue 5
	{R: 120, G: 0, B: 92, A: 255},
	{R: 140, G: 32, B: 116, A: 255},
	{R: 160, G: 60, B: 136, A: 255},
	{R: 176, G: 88, B: 156, A: 255},
	{R: 192, G: 112, B: 176, A: 255},
	{R: 208, G: 132, B: 192, A: 255},
	{R: 220, G: 156, B: 208, A: 255},
	{R: 236, G: 176, B: 224, A: 255},

	// hue 6
	{R: 72, G: 0, B: 120, A: 255},
	{R: 96, G: 32, B: 144, A: 255},
	{R: 120, G: 60, B: 164, A: 255},
	{R: 140, G: 88, B: 184, A: 255},
	{R: 160, G: 112, B: 204, A: 255},
	{R: 180, G: 132, B: 220, A: 255},
	{R: 196, G: 156, B: 236, A: 255},
	{R: 212, G: 176, B: 252, A: 255},

	// hue 7
	{R: 20, G: 0, B: 132, A: 255},
	{R: 48, G: 32, B: 152, A: 255},
	{R: 76, G: 60, B: 172, A: 255},
	{R: 104, G: 88, B: 192, A: 255},
	{R: 124, G: 112, B: 208, A: 255},
	{R: 148, G: 136, B: 224, A: 255},
	{R: 168, G: 160, B: 236, A: 255},
	{R: 188, G: 180, B: 252, A: 255},

	// hue 8
	{R: 0, G: 0, B: 136, A: 255},
	{R: 28, G: 32, B: 156, A: 255},
	{R: 56, G: 64, B: 176, A: 255},
	{R: 80, G: 92, B: 192, A: 255},
	{R: 104, G: 116, B: 208, A: 255},
	{R: 124, G: 140, B: 224, A: 255},
	{R: 144, G: 164, B: 236, A: 255},
	{R: 164, G: 200, B: 252, A: 255},

	// hue 9
	{R: 0, G: 24, B: 124, A: 255},
	{R: 28, G: 56, B: 144, A: 255},
	{R: 56, G: 84, B: 168, A: 255},
	{R: 80, G: 112, B: 188, A: 255},
	{R: 104, G: 136, B: 204, A: 255},
	{R: 124, G: 56, B: 220, A: 255},
	{R: 144, G: 180, B: 236, A: 255},
	{R: 164, G: 200, B: 252, A: 255},

	// hue 10
	{R: 0, G: 44, B: 92, A: 255},
	{R: 28, G: 76, B: 120, A: 255},
	{R: 56, G: 104, B: 144, A: 255},
	{R: 80, G: 132, B: 172, A: 255},
	{R: 104, G: 156, B: 192, A: 255},
	{R: 124, G: 180, B: 212, A: 255},
	{R: 144, G: 204, B: 232, A: 255},
	{R: 164, G: 224, B: 252, A: 255},

	// hue 11
	{R: 0, G: 60, B: 44, A: 255},
	{R: 28, G: 92, B: 72, A: 255},
	{R: 56, G: 124, B: 100, A: 255},
	{R: 80, G: 156, B: 128, A: 255},
	{R: 104, G: 180, B: 148, A: 255},
	{R: 124, G: 208, B: 172, A: 255},
	{R: 144, G: 228, B: 192, A: 255},
	{R: 164, G: 252, B: 212, A: 255},

	// hue 12
	{R: 0, G: 60, B: 0, A: 255},
	{R: 32, G: 92, B: 32, A: 255},
	{R: 64, G: 124, B: 64, A: 255},
	{R: 92, G: 156, B: 92, A: 255},
	{R: 116, G: 180, B: 116, A: 255},
	{R: 140, G: 208, B: 140, A: 255},
	{R: 164, G: 220, B: 164, A: 255},
	{R: 184, G: 252, B: 184, A: 255},

	// hue 13
	{R: 20, G: 56, B: 0, A: 255},
	{R: 52, G: 92, B: 28, A: 255},
	{R: 80, G: 124, B: 56, A: 255},
	{R: 108, G: 152, B: 80, A: 255},
	{R: 132, G: 180, B: 104, A: 255},
	{R: 156, G: 204, B: 192, A: 255},
	{R: 180, G: 228, B: 144, A: 255},
	{R: 200, G: 252, B: 164, A: 255},

	// hue 14
	{R: 44, G: 48, B: 0, A: 255},
	{R: 100, G: 72, B: 24, A: 255},
	{R: 104, G: 112, B: 52, A: 255},
	{R: 132, G: 140, B: 76, A: 255},
	{R: 156, G: 168, B: 100, A: 255},
	{R: 180, G: 192, B: 120, A: 255},
	{R: 180, G: 228, B: 144, A: 255},
	{R: 200, G: 252, B: 164, A: 255},

	// hue 15
	{R: 68, G: 40, B: 0, A: 255},
	{R: 100, G: 72, B: 24, A: 255},
	{R: 132, G: 104, B: 48, A: 255},
	{R: 160, G: 132, B: 68, A: 255},
	{R: 184, G: 156, B: 88, A: 255},
	{R: 208, G: 180, B: 108, A: 255},
	{R: 236, G: 200, B: 120, A: 255},
	{R: 252, G: 224, B: 140, A: 255},
}
