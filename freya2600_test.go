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

package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jetsetilly/freya2600/prefs"
	"github.com/jetsetilly/freya2600/test"
)

// writeROM creates a 4K cartridge file with the program at the start of the
// cartridge and the reset vector pointing to it
func writeROM(t *testing.T, program ...uint8) string {
	t.Helper()
	rom := make([]byte, 4096)
	for i := range rom {
		rom[i] = 0xea
	}
	copy(rom, program)
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0
	rom[0x0ffe] = 0x00
	rom[0x0fff] = 0xf0

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o644))
	return fn
}

// LDA #$42; STA COLUBK; STA $80; JMP $f000
var program = []uint8{0xa9, 0x42, 0x85, 0x09, 0x85, 0x80, 0x4c, 0x00, 0xf0}

func launchTest(t *testing.T, args ...string) (int, string) {
	t.Helper()
	out := &strings.Builder{}
	r := launch(context.Background(), out, args)

	// every mode pops the preferences it pushes
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	return r, out.String()
}

func TestHelp(t *testing.T) {
	r, out := launchTest(t, "-help")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "available sub-modes: RUN, DIGEST, DISASM, SCRIPT, SHOT, INSPECT, PERFORMANCE"))

	r, _ = launchTest(t, "-nonsense")
	test.ExpectEquality(t, r, exitArgs)

	r, out = launchTest(t, "-version")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, "freya2600 "))
}

func TestLoadErrors(t *testing.T) {
	r, out := launchTest(t, "digest")
	test.ExpectEquality(t, r, exitError)
	test.ExpectSuccess(t, strings.Contains(out, "cartridge required"))

	r, _ = launchTest(t, "run", filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectEquality(t, r, exitError)

	fn := filepath.Join(t.TempDir(), "big.bin")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 65536), 0o644))
	r, _ = launchTest(t, "run", "-frames", "1", fn)
	test.ExpectEquality(t, r, exitTooLarge)
}

func TestRun(t *testing.T) {
	rom := writeROM(t, program...)
	r, out := launchTest(t, "run", "-frames", "2", "-fpscap", "-log", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "2 frames\n"))
	test.ExpectSuccess(t, strings.Contains(out, "vcs: attached test.bin"))

	// mode flags are not accepted before the mode
	r, out = launchTest(t, "-frames", "1", rom)
	test.ExpectEquality(t, r, exitArgs)
	test.ExpectSuccess(t, strings.Contains(out, "error"))
}

func TestIllegalPolicy(t *testing.T) {
	rom := writeROM(t, 0x02)

	r, out := launchTest(t, "run", "-frames", "1", rom)
	test.ExpectEquality(t, r, exitError)
	test.ExpectSuccess(t, strings.Contains(out, "illegal opcode"))

	r, _ = launchTest(t, "run", "-frames", "1", "-illegal", "nop", rom)
	test.ExpectEquality(t, r, exitOK)

	r, _ = launchTest(t, "run", "-frames", "1", "-prefs", "hardware.illegalOpcodes::NOP", rom)
	test.ExpectEquality(t, r, exitOK)

	// an invalid preference value is an error
	r, _ = launchTest(t, "run", "-frames", "1", "-illegal", "maybe", rom)
	test.ExpectEquality(t, r, exitError)
}

func TestDigest(t *testing.T) {
	rom := writeROM(t, program...)

	r, out := launchTest(t, "digest", "-frames", "3", "-audio", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, regexp.MustCompile(`^[0-9a-f]{40}\n[0-9a-f]{40}\n$`).MatchString(out))

	// digests are repeatable
	_, again := launchTest(t, "digest", "-frames", "3", "-audio", rom)
	test.ExpectEquality(t, again, out)

	// and depend on the number of frames
	_, other := launchTest(t, "digest", "-frames", "4", rom)
	test.ExpectInequality(t, other[:40], out[:40])
}

func TestDisasm(t *testing.T) {
	rom := writeROM(t, program...)

	r, out := launchTest(t, "disasm", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "$f000  a9 42     LDA #$42\n"))
	test.ExpectSuccess(t, strings.Contains(out, "$f002  85 09     STA COLUBK\n"))
	test.ExpectSuccess(t, strings.Contains(out, "$f006  4c 00 f0  JMP $f000\n"))

	r, executed := launchTest(t, "disasm", "-frames", "1", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, executed, out)

	r, _ = launchTest(t, "disasm", "-bank", "1", rom)
	test.ExpectEquality(t, r, exitError)
}

func TestScript(t *testing.T) {
	rom := writeROM(t, program...)
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("frame()\nprint(peek(0x80), frames())\n"), 0o644))

	r, out := launchTest(t, "script", "-script", fn, rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, "66\t1\n")

	r, _ = launchTest(t, "script", rom)
	test.ExpectEquality(t, r, exitError)
}

func TestShot(t *testing.T) {
	rom := writeROM(t, program...)
	fn := filepath.Join(t.TempDir(), "shot.png")

	r, _ := launchTest(t, "shot", "-frames", "2", "-scale", "2", "-out", fn, rom)
	test.DemandEquality(t, r, exitOK)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 160*2*2)
	test.ExpectEquality(t, img.Bounds().Dy(), 192*2)
}

func TestInspect(t *testing.T) {
	rom := writeROM(t, program...)

	r, out := launchTest(t, "inspect", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, "digraph"))

	fn := filepath.Join(t.TempDir(), "state.dot")
	r, _ = launchTest(t, "inspect", "-out", fn, rom)
	test.ExpectEquality(t, r, exitOK)
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))
}

func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("performance mode has a lead time of several seconds")
	}

	rom := writeROM(t, program...)
	r, out := launchTest(t, "performance", "-duration", "100ms", rom)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "fps"))
	test.ExpectSuccess(t, strings.Contains(out, "MHz"))

	r, _ = launchTest(t, "performance", "-profile", "nonsense", rom)
	test.ExpectEquality(t, r, exitError)
}
