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

// Package tia implements the video part of the Television Interface Adaptor.
// The TIA is ticked once per colour clock. There are three colour clocks for
// every CPU cycle.
//
// A scanline is 228 colour clocks long, the first 68 of which are the
// horizontal blank. Scanlines outside of the visible area of the television
// specification are not drawn. The visible area is written to a pixel buffer
// of three bytes (RGB) per pixel.
//
// The audio registers are stored but no sound is generated.
package tia
