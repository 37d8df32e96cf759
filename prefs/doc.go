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

// Package prefs contains the value types used by the preferences of the
// emulator and the command line stack from which preference values can be
// overridden.
//
// A preference value is one of Bool, String or Int. String values can be
// restricted to a list of options with SetOptions(). A hook can be attached
// to any value and is called every time the value is set.
//
// Command line preferences are pushed onto the stack as a single string of
// key/value pairs:
//
//	hardware.illegalOpcodes::NOP; cartridge.mapping::F8
//
// The Apply() function sets a preference value from the top of the stack if
// the key is present.
package prefs
