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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/cpu"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/riot/timer"
	"github.com/jetsetilly/freya2600/prefs"
	"github.com/jetsetilly/freya2600/test"
)

// newROM creates a 4K cartridge image with the program placed at the start
// of the cartridge and the reset vector pointing to it. every byte not used
// by the program is a NOP
func newROM(program ...uint8) []byte {
	rom := make([]byte, 4096)
	for i := range rom {
		rom[i] = 0xea
	}
	copy(rom, program)
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0
	rom[0x0ffe] = 0x00
	rom[0x0fff] = 0xf0
	return rom
}

func newVCS(t *testing.T, rom []byte) *hardware.VCS {
	t.Helper()
	vcs, err := hardware.NewVCS(nil)
	test.DemandSuccess(t, err)
	cl := cartridgeloader.Loader{
		Filename: "test.bin",
		Mapping:  "AUTO",
		Data:     rom,
	}
	test.DemandSuccess(t, vcs.LoadCartridge(cl))
	return vcs
}

// an infinite loop. three cycles per instruction
var loop = []uint8{0x4c, 0x00, 0xf0}

func TestNoCartridge(t *testing.T) {
	vcs, err := hardware.NewVCS(nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, errors.Is(vcs.DoStep(), hardware.ErrNoCartridge))
	test.ExpectSuccess(t, errors.Is(vcs.Reset(), hardware.ErrNoCartridge))

	// the cartridge area reads as zero
	test.ExpectEquality(t, vcs.Mem.Peek(0xf000), 0)
}

func TestLoadTooLarge(t *testing.T) {
	vcs, err := hardware.NewVCS(nil)
	test.DemandSuccess(t, err)
	cl := cartridgeloader.Loader{
		Filename: "big.bin",
		Mapping:  "AUTO",
		Data:     make([]byte, 65536),
	}
	err = vcs.LoadCartridge(cl)
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooLarge))
	test.ExpectSuccess(t, vcs.Mem.Cart == nil)
}

func TestReset(t *testing.T) {
	vcs := newVCS(t, newROM(loop...))
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf000)

	// the two cycles of the reset vector have been seen by the TIA
	test.ExpectEquality(t, vcs.Mem.Cycles(), 2)
	test.ExpectEquality(t, vcs.TIA.Column, 6)
	test.ExpectEquality(t, vcs.TIA.Line, 0)
	test.ExpectEquality(t, vcs.Mem.Cart.Filename, "test.bin")
}

func TestWSYNC(t *testing.T) {
	// STA WSYNC
	vcs := newVCS(t, newROM(0x85, 0x02))

	test.DemandSuccess(t, vcs.DoStep())

	// the TIA was at colour clock six so 222 colour clocks remain in the
	// scanline. that is 74 CPU cycles
	test.ExpectEquality(t, vcs.Mem.Cycles(), 76)
	test.ExpectEquality(t, vcs.TIA.Column, 0)
	test.ExpectEquality(t, vcs.TIA.Line, 1)
	test.ExpectFailure(t, vcs.TIA.WSYNC)

	// the next instruction is a NOP
	test.DemandSuccess(t, vcs.DoStep())
	test.ExpectEquality(t, vcs.Mem.Cycles(), 78)
	test.ExpectEquality(t, vcs.TIA.Column, 6)
}

func TestDoLine(t *testing.T) {
	vcs := newVCS(t, newROM(loop...))

	for line := 1; line < 262; line++ {
		test.DemandSuccess(t, vcs.DoLine())
		test.ExpectEquality(t, vcs.TIA.Line, line)
		test.ExpectSuccess(t, vcs.TIA.Column < 9)
	}

	// exactly 262 lines in the frame
	test.DemandSuccess(t, vcs.DoLine())
	test.ExpectEquality(t, vcs.TIA.Line, 0)
	test.ExpectEquality(t, vcs.TIA.FrameNum, 1)
}

func TestDoFrame(t *testing.T) {
	vcs := newVCS(t, newROM(loop...))

	test.DemandSuccess(t, vcs.DoFrame())
	test.ExpectEquality(t, vcs.TIA.Line, 0)
	test.ExpectEquality(t, vcs.TIA.FrameNum, 1)

	start := vcs.Mem.Cycles()
	test.DemandSuccess(t, vcs.DoFrame())
	test.ExpectEquality(t, vcs.TIA.Line, 0)
	test.ExpectEquality(t, vcs.TIA.FrameNum, 2)

	// 76 cycles per scanline. the frame can end part way through an
	// instruction
	cycles := int(vcs.Mem.Cycles() - start)
	test.ExpectApproximate(t, cycles, 262*76, 0.001)
}

func TestWSYNCAcrossFrame(t *testing.T) {
	// STA WSYNC; JMP $f000
	vcs := newVCS(t, newROM(0x85, 0x02, 0x4c, 0x00, 0xf0))

	// the write to WSYNC happens after the frame has wrapped around
	vcs.TIA.Line = 261
	vcs.TIA.Column = 224
	frame := vcs.TIA.FrameNum

	test.DemandSuccess(t, vcs.DoFrame())
	test.ExpectEquality(t, vcs.TIA.Line, 0)
	test.ExpectEquality(t, vcs.TIA.Column, 5)
	test.ExpectEquality(t, vcs.TIA.FrameNum, frame+1)
	test.ExpectSuccess(t, vcs.TIA.WSYNC)

	// the stall is resolved before the next instruction
	test.DemandSuccess(t, vcs.DoStep())
	test.ExpectFailure(t, vcs.TIA.WSYNC)
	test.ExpectEquality(t, vcs.TIA.Line, 1)
	test.ExpectEquality(t, vcs.TIA.Column, 11)
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf000)
}

func TestWSYNCAcrossLine(t *testing.T) {
	// STA WSYNC; JMP $f000
	vcs := newVCS(t, newROM(0x85, 0x02, 0x4c, 0x00, 0xf0))

	vcs.TIA.Line = 100
	vcs.TIA.Column = 224

	test.DemandSuccess(t, vcs.DoLine())
	test.ExpectEquality(t, vcs.TIA.Line, 101)
	test.ExpectSuccess(t, vcs.TIA.WSYNC)

	test.DemandSuccess(t, vcs.DoLine())
	test.ExpectEquality(t, vcs.TIA.Line, 102)
	test.ExpectFailure(t, vcs.TIA.WSYNC)
}

func TestResetPlayerMidLine(t *testing.T) {
	vcs := newVCS(t, newROM(
		0xa9, 0xff, // LDA #$ff
		0x85, 0x1b, // STA GRP0
		0xa9, 0x0e, // LDA #$0e
		0x85, 0x06, // STA COLUP0
		0x85, 0x02, // STA WSYNC
		0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea,
		0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea,
		0x85, 0x10, // STA RESP0
		0x4c, 0x20, 0xf0, // JMP $f020
	))

	vcs.TIA.Line = 100
	for vcs.TIA.Line < 103 {
		test.DemandSuccess(t, vcs.DoLine())
	}

	lit := func(line int, x int) bool {
		y := line - vcs.TIA.Spec.ScanlineTop
		i := (y*vcs.TIA.Spec.ScreenWidth() + x) * 3
		return vcs.TIA.Pixels[i] != 0 || vcs.TIA.Pixels[i+1] != 0 || vcs.TIA.Pixels[i+2] != 0
	}

	pos := vcs.TIA.Video.Player0.Position
	test.DemandEquality(t, pos, 61)

	// on the line of the reset the player is drawn once at the new position.
	// pixels before that belong to the old position
	for x := 8; x < pos; x++ {
		test.ExpectFailure(t, lit(101, x), x)
	}
	for x := pos; x < pos+8; x++ {
		test.ExpectSuccess(t, lit(101, x), x)
	}

	// eight pixels on the following line
	n := 0
	for x := range vcs.TIA.Spec.ScreenWidth() {
		if lit(102, x) {
			n++
			test.ExpectSuccess(t, x >= pos && x < pos+8, x)
		}
	}
	test.ExpectEquality(t, n, 8)
}

func TestTimer(t *testing.T) {
	// LDA #$01; STA TIM64T; JMP
	vcs := newVCS(t, newROM(0xa9, 0x01, 0x8d, 0x96, 0x02, 0x4c, 0x05, 0xf0))

	test.DemandSuccess(t, vcs.DoStep())
	test.DemandSuccess(t, vcs.DoStep())
	test.ExpectEquality(t, vcs.RIOT.Timer.Interval, timer.TIM64T)
	test.ExpectEquality(t, vcs.RIOT.Timer.INTIM, 1)

	// the cycles of the STA instruction have already been counted
	start := vcs.Mem.Cycles() - 4
	for !vcs.RIOT.Timer.Underflow {
		test.DemandSuccess(t, vcs.DoStep())
	}

	// INTIM reaches zero after 64 cycles and underflows 64 cycles later
	cycles := int(vcs.Mem.Cycles() - start)
	test.ExpectSuccess(t, cycles >= 128 && cycles < 131)
	test.ExpectEquality(t, vcs.RIOT.Timer.Interval, timer.TIM1T)
}

func TestBankSwitch(t *testing.T) {
	// two banks. bank 1 starts and jumps to bank 0 by reading the
	// hotspot. the instruction in bank 0 at the same address writes to RAM
	rom := make([]byte, 8192)
	for i := range rom {
		rom[i] = 0xea
	}
	copy(rom[0x1000:], []uint8{0xad, 0xf8, 0xff})
	copy(rom[0x0003:], []uint8{0xa9, 0x55, 0x85, 0x80})
	rom[0x1ffc] = 0x00
	rom[0x1ffd] = 0xf0

	vcs := newVCS(t, rom)
	test.ExpectEquality(t, vcs.Mem.Cart.Bank(), 1)

	for range 3 {
		test.DemandSuccess(t, vcs.DoStep())
	}
	test.ExpectEquality(t, vcs.Mem.Cart.Bank(), 0)
	test.ExpectEquality(t, vcs.Mem.Peek(0x80), 0x55)
}

func TestIllegalOpcode(t *testing.T) {
	vcs := newVCS(t, newROM(0x02))
	err := vcs.DoStep()
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrIllegalOpcode))

	prefs.PushCommandLineStack("hardware.illegalOpcodes::NOP")
	defer prefs.PopCommandLineStack()

	vcs = newVCS(t, newROM(0x02))
	test.ExpectSuccess(t, vcs.DoStep())
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf001)
	test.ExpectSuccess(t, vcs.CPU.LastResult.Illegal)
}

func TestRun(t *testing.T) {
	vcs := newVCS(t, newROM(loop...))

	var n int
	err := vcs.Run(func() (bool, error) {
		n++
		return n < 10, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)
	test.ExpectEquality(t, vcs.Mem.Cycles(), 32)

	stop := errors.New("stop")
	err = vcs.Run(func() (bool, error) {
		return true, stop
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
}

func TestRunForFrameCount(t *testing.T) {
	vcs := newVCS(t, newROM(loop...))
	test.DemandSuccess(t, vcs.RunForFrameCount(3, nil))
	test.ExpectEquality(t, vcs.TIA.FrameNum, 3)

	var frames []int
	test.DemandSuccess(t, vcs.RunForFrameCount(5, func(frame int) (bool, error) {
		frames = append(frames, frame)
		return frame < 5, nil
	}))
	test.ExpectEquality(t, len(frames), 2)
	test.ExpectEquality(t, vcs.TIA.FrameNum, 5)
}

func TestSnapshot(t *testing.T) {
	// LDA #$aa; STA $80; JMP
	vcs := newVCS(t, newROM(0xa9, 0xaa, 0x85, 0x80, 0x4c, 0x04, 0xf0))
	test.DemandSuccess(t, vcs.DoStep())
	test.DemandSuccess(t, vcs.DoStep())

	s := vcs.Snapshot()
	test.DemandSuccess(t, vcs.DoFrame())

	test.ExpectEquality(t, s.Mem.Peek(0x80), 0xaa)
	test.ExpectEquality(t, s.CPU.PC.Address(), 0xf004)
	test.ExpectEquality(t, s.FrameNum(), 0)
	test.ExpectEquality(t, vcs.TIA.FrameNum, 1)

	c := s.Snapshot()
	test.ExpectEquality(t, c.TIA.Line, s.TIA.Line)
}
