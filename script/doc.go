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

// Package script runs Lua programs against a VCS emulation. The program
// controls the emulation with the functions listed below. There is no
// graphical output and input is only available through the functions.
//
//	reset()                      reset the VCS
//	step()                       run one instruction, returns the cycles consumed
//	line()                       run until the next scanline
//	frame([n])                   run until the start of the nth next frame, default 1
//	peek(addr)                   read memory without side effects
//	poke(addr, v)                write RAM or cartridge memory without side effects
//	cpu()                        table of CPU registers: pc, a, x, y, sp, status
//	tia()                        table of TIA position: frame, line, column
//	frames()                     the current frame number
//	joystick(player, dir, push)  push or release direction "up", "down", "left", "right"
//	fire(player, pressed)        press or release the fire button
//	switch(name, on)             set console switch "reset", "select", "color", "p0", "p1"
//	screenshot(filename, [n])    save the screen at scale n, default 1
//
// Addresses and values are Lua numbers. The print() function writes to the
// io.Writer given to NewScript().
//
// Errors in the emulation, illegal opcodes for example, raise a Lua error.
// If the error is not caught with pcall() the script ends and the error is
// returned by Run(). Only the base, table, string and math libraries are
// available.
//
// An example script:
//
//	frame(10)
//	fire(0, true)
//	frame()
//	fire(0, false)
//	print(string.format("score %02x", peek(0x80)))
package script
