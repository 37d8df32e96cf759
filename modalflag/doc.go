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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, and sub-modes, and allows different
// flags for each mode.
//
// Arguments are given with NewArgs() and then parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DIGEST", "DISASM")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// The first sub-mode in the list is the default. If the first argument after
// the flags is not a sub-mode then the default mode is selected and the
// argument is left in place. Sub-mode comparisons are case insensitive.
//
// After a mode has been selected, NewMode() starts the flags for that mode and
// Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		md.AddPref("mapping", "cartridge.mapping", "force cartridge mapping")
//		if r, err := md.Parse(); r != modalflag.ParseContinue {
//			return err
//		}
//		defer md.UnusedPrefs()
//		run(md.GetArg(0), *frames)
//	}
//
// Flags added with AddPref() and AddPrefs() do not return a value. They are
// pushed onto the command line stack of the prefs package by Parse(), where
// they are picked up as the preferences are created.
package modalflag
