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

// Package disassembly coordinates the disassembly of Atari2600 (6507)
// cartridges.
//
// The Disassemble() function decodes a single instruction from anything that
// can be peeked. It never causes side effects such as bank switching.
//
// For complete disassemblies the FromCartridge() function can be used. The
// disassembly of each bank is found by following the flow of the program
// from the reset and break vectors of that bank. Branch, JMP and JSR targets
// are followed. Code that is only reached through a bank switch, or by
// computed jumps, will not be found by this method but can be added to the
// disassembly with UpdateEntry() as the emulation executes it.
package disassembly
