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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/bitfield"
	"github.com/jetsetilly/freya2600/logger"
	"github.com/jetsetilly/freya2600/screenshot"
)

// Script is a Lua interpreter bound to a VCS.
type Script struct {
	vcs    *hardware.VCS
	output io.Writer
	state  *lua.LState
}

// the Lua libraries available to scripts. the os and io libraries are
// omitted
var libraries = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// NewScript is the preferred method of initialisation for the Script type.
// The output argument receives the output of the print() function.
func NewScript(vcs *hardware.VCS, output io.Writer) *Script {
	scr := &Script{
		vcs:    vcs,
		output: output,
		state:  lua.NewState(lua.Options{SkipOpenLibs: true}),
	}

	for _, l := range libraries {
		scr.state.Push(scr.state.NewFunction(l.open))
		scr.state.Push(lua.LString(l.name))
		scr.state.Call(1, 0)
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":      scr.print,
		"reset":      scr.reset,
		"step":       scr.step,
		"line":       scr.line,
		"frame":      scr.frame,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"cpu":        scr.cpu,
		"tia":        scr.tia,
		"frames":     scr.frames,
		"joystick":   scr.joystick,
		"fire":       scr.fire,
		"switch":     scr.consoleSwitch,
		"screenshot": scr.screenshot,
	} {
		scr.state.SetGlobal(name, scr.state.NewFunction(fn))
	}

	return scr
}

// Close the interpreter. The Script can not be used after Close().
func (scr *Script) Close() {
	scr.state.Close()
}

// Run the Lua source code. The name argument is used in log entries and
// error messages.
func (scr *Script) Run(ctx context.Context, name string, source string) error {
	scr.state.SetContext(ctx)
	defer scr.state.RemoveContext()

	logger.Logf(logger.Allow, "script", "running %s", name)
	if err := scr.state.DoString(source); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

// RunFile loads and runs the Lua file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.state.SetContext(ctx)
	defer scr.state.RemoveContext()

	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.state.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.Get(i + 1).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

// raise converts a Go error into a Lua error. it does not return
func raise(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}

func (scr *Script) reset(L *lua.LState) int {
	if err := scr.vcs.Reset(); err != nil {
		raise(L, err)
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	before := scr.vcs.Mem.Cycles()
	if err := scr.vcs.DoStep(); err != nil {
		raise(L, err)
	}
	L.Push(lua.LNumber(scr.vcs.Mem.Cycles() - before))
	return 1
}

func (scr *Script) line(L *lua.LState) int {
	if err := scr.vcs.DoLine(); err != nil {
		raise(L, err)
	}
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for range n {
		if ctx := L.Context(); ctx != nil && ctx.Err() != nil {
			raise(L, ctx.Err())
		}
		if err := scr.vcs.DoFrame(); err != nil {
			raise(L, err)
		}
	}
	return 0
}

func address(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", a))
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.vcs.Mem.Peek(address(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range (%#x)", v))
	}
	scr.vcs.Mem.Poke(addr, uint8(v))
	return 0
}

func (scr *Script) cpu(L *lua.LState) int {
	mc := scr.vcs.CPU
	tbl := L.NewTable()
	L.SetField(tbl, "pc", lua.LNumber(mc.PC.Address()))
	L.SetField(tbl, "a", lua.LNumber(mc.A.Value()))
	L.SetField(tbl, "x", lua.LNumber(mc.X.Value()))
	L.SetField(tbl, "y", lua.LNumber(mc.Y.Value()))
	L.SetField(tbl, "sp", lua.LNumber(mc.SP.Value()))
	L.SetField(tbl, "status", lua.LNumber(mc.Status.Value()))
	L.SetField(tbl, "cycles", lua.LNumber(scr.vcs.Mem.Cycles()))
	L.Push(tbl)
	return 1
}

func (scr *Script) tia(L *lua.LState) int {
	tbl := L.NewTable()
	L.SetField(tbl, "frame", lua.LNumber(scr.vcs.TIA.FrameNum))
	L.SetField(tbl, "line", lua.LNumber(scr.vcs.TIA.Line))
	L.SetField(tbl, "column", lua.LNumber(scr.vcs.TIA.Column))
	L.Push(tbl)
	return 1
}

func (scr *Script) frames(L *lua.LState) int {
	L.Push(lua.LNumber(scr.vcs.TIA.FrameNum))
	return 1
}

func player(L *lua.LState, n int) int {
	p := L.CheckInt(n)
	if p != 0 && p != 1 {
		L.ArgError(n, fmt.Sprintf("player must be 0 or 1 (%d)", p))
	}
	return p
}

func (scr *Script) joystick(L *lua.LState) int {
	p := player(L, 1)

	var d bitfield.Direction
	switch strings.ToLower(L.CheckString(2)) {
	case "up":
		d = bitfield.Up
	case "down":
		d = bitfield.Down
	case "left":
		d = bitfield.Left
	case "right":
		d = bitfield.Right
	default:
		L.ArgError(2, fmt.Sprintf("unrecognised direction (%s)", L.CheckString(2)))
	}

	scr.vcs.RIOT.Ports.SetJoystick(p, d, L.ToBool(3))
	return 0
}

func (scr *Script) fire(L *lua.LState) int {
	scr.vcs.TIA.SetFireButton(player(L, 1), L.ToBool(2))
	return 0
}

func (scr *Script) consoleSwitch(L *lua.LState) int {
	sw := scr.vcs.RIOT.Ports.ConsoleSwitches()
	on := L.ToBool(2)

	switch strings.ToLower(L.CheckString(1)) {
	case "reset":
		sw = sw.WithReset(on)
	case "select":
		sw = sw.WithSelect(on)
	case "color", "colour":
		sw = sw.WithColor(on)
	case "p0":
		sw = sw.WithP0Difficulty(on)
	case "p1":
		sw = sw.WithP1Difficulty(on)
	default:
		L.ArgError(1, fmt.Sprintf("unrecognised switch (%s)", L.CheckString(1)))
	}

	scr.vcs.RIOT.Ports.SetConsoleSwitches(sw)
	return 0
}

func (scr *Script) screenshot(L *lua.LState) int {
	filename := L.CheckString(1)
	scale := L.OptInt(2, 1)
	spec := scr.vcs.TIA.Spec
	err := screenshot.Save(filename, scr.vcs.TIA.Pixels, spec.ScreenWidth(), spec.ScreenHeight(), scale, screenshot.NearestNeighbor)
	if err != nil {
		raise(L, err)
	}
	return 0
}
