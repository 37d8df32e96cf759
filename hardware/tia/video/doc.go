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

// Package video implements the graphical objects of the TIA: the playfield,
// the two players, the two missiles and the ball. The package also records
// collisions between the objects.
//
// Objects are positioned by their visible column, from 0 to 159. The TIA
// package is responsible for deciding which colour clocks are visible and
// for calling Pixel() once for each of them.
package video
