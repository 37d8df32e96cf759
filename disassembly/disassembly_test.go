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

package disassembly_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/disassembly"
	"github.com/jetsetilly/freya2600/hardware"
	"github.com/jetsetilly/freya2600/hardware/cpu/execution"
	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
	"github.com/jetsetilly/freya2600/hardware/memory"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/test"
)

func testROM() []byte {
	rom := make([]byte, 4096)
	for i := range rom {
		rom[i] = 0x02
	}
	copy(rom[0x000:], []uint8{
		0xa9, 0x01, // LDA #$01
		0x85, 0x09, // STA COLUBK
		0x20, 0x10, 0xf0, // JSR $f010
		0xd0, 0xfb, // BNE $f004
		0x4c, 0x00, 0xf0, // JMP $f000
	})
	copy(rom[0x010:], []uint8{
		0xa5, 0x80, // LDA $80
		0xad, 0x84, 0x02, // LDA INTIM
		0x60, // RTS
	})
	copy(rom[0x020:], []uint8{
		0x40, // RTI
	})
	rom[0x0ffc] = 0x00
	rom[0x0ffd] = 0xf0
	rom[0x0ffe] = 0x20
	rom[0x0fff] = 0xf0
	return rom
}

func TestFlow(t *testing.T) {
	cart, err := cartridge.NewCartridge(testROM(), "AUTO")
	test.DemandSuccess(t, err)
	dsm := disassembly.FromMemory(cart)
	test.ExpectEquality(t, dsm.NumBanks(), 1)

	for _, a := range []uint16{0xf000, 0xf002, 0xf004, 0xf007, 0xf009, 0xf010, 0xf012, 0xf015, 0xf020} {
		e, ok := dsm.GetEntryByAddress(0, a)
		if test.ExpectSuccess(t, ok, a) {
			test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed, a)
			test.ExpectEquality(t, e.Address, a, a)
		}
	}

	// not reachable
	for _, a := range []uint16{0xf00c, 0xf016, 0xf021} {
		_, ok := dsm.GetEntryByAddress(0, a)
		test.ExpectFailure(t, ok, a)
	}

	test.ExpectEquality(t, dsm.Counts(0)[disassembly.EntryLevelBlessed], 9)
	_, ok := dsm.GetEntryByAddress(1, 0xf000)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	cart, err := cartridge.NewCartridge(testROM(), "AUTO")
	test.DemandSuccess(t, err)
	dsm := disassembly.FromMemory(cart)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, dsm.Write(b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	test.ExpectEquality(t, len(lines), 9)
	test.ExpectEquality(t, lines[0], "$f000  a9 01     LDA #$01")
	test.ExpectEquality(t, lines[1], "$f002  85 09     STA COLUBK")
	test.ExpectEquality(t, lines[2], "$f004  20 10 f0  JSR $f010")
	test.ExpectEquality(t, lines[3], "$f007  d0 fb     BNE $f004")
	test.ExpectEquality(t, lines[5], "$f010  a5 80     LDA $80")
	test.ExpectEquality(t, lines[6], "$f012  ad 84 02  LDA INTIM")
	test.ExpectEquality(t, lines[7], "$f015  60        RTS")

	test.ExpectFailure(t, dsm.WriteBank(b, 3))
}

func TestMultiBank(t *testing.T) {
	rom := make([]byte, 8192)
	copy(rom, testROM())
	copy(rom[4096:], testROM())

	cart, err := cartridge.NewCartridge(rom, "F8")
	test.DemandSuccess(t, err)
	dsm := disassembly.FromMemory(cart)
	test.ExpectEquality(t, dsm.NumBanks(), 2)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, dsm.Write(b))
	test.ExpectSuccess(t, strings.Contains(b.String(), "--- bank 0 ---"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "--- bank 1 ---"))

	// the cartridge has not been bank switched
	test.ExpectEquality(t, cart.Bank(), 1)
}

func TestDisassemble(t *testing.T) {
	rom := make([]byte, 8192)
	copy(rom[0x1ff6:], []uint8{0xb5, 0x80, 0xbd, 0xf8, 0xff})

	cart, err := cartridge.NewCartridge(rom, "F8")
	test.DemandSuccess(t, err)
	mem := memory.NewMemory()
	mem.Attach(cart)

	// disassembling the address of a hotspot does not switch banks
	e := disassembly.Disassemble(mem, 0xfff8)
	test.ExpectEquality(t, e.Bytecode(), "bd f8 ff")
	test.ExpectEquality(t, e.OperandString(false), "$fff8,X")
	test.ExpectEquality(t, cart.Bank(), 1)

	e = disassembly.Disassemble(mem, 0xfff6)
	test.ExpectEquality(t, e.String(), "$fff6  b5 80     LDA $80,X")
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)

	// BRK has a padding byte
	e = disassembly.Disassemble(mem, 0xf000)
	test.ExpectFailure(t, e.Illegal())
	test.ExpectEquality(t, e.String(), "$f000  00 00     BRK")

	// illegal opcode
	mem.Poke(0xf000, 0x02)
	e = disassembly.Disassemble(mem, 0xf000)
	test.ExpectSuccess(t, e.Illegal())
	test.ExpectEquality(t, e.String(), "$f000  02        ???")
}

func TestOperandDecoration(t *testing.T) {
	for _, tc := range []struct {
		bytes    []uint8
		expected string
	}{
		{bytes: []uint8{0x0a}, expected: "A"},
		{bytes: []uint8{0x6c, 0x34, 0x12}, expected: "($1234)"},
		{bytes: []uint8{0xa1, 0x80}, expected: "($80,X)"},
		{bytes: []uint8{0xb1, 0x80}, expected: "($80),Y"},
		{bytes: []uint8{0xb6, 0x80}, expected: "$80,Y"},
		{bytes: []uint8{0xb9, 0x00, 0x10}, expected: "$1000,Y"},
		{bytes: []uint8{0xe8}, expected: ""},
	} {
		mem := peeker(tc.bytes)
		e := disassembly.Disassemble(mem, 0)
		test.ExpectEquality(t, e.OperandString(true), tc.expected, tc.bytes)
	}
}

type peeker []uint8

func (p peeker) Peek(address uint16) uint8 {
	if int(address) < len(p) {
		return p[address]
	}
	return 0
}

func TestUpdateEntry(t *testing.T) {
	cart, err := cartridge.NewCartridge(testROM(), "AUTO")
	test.DemandSuccess(t, err)
	dsm := disassembly.FromMemory(cart)

	// an address not found by the flow
	dsm.UpdateEntry(0, execution.Result{
		Address:   0xf00c,
		Defn:      instructions.Definitions[0xea],
		Opcode:    0xea,
		ByteCount: 1,
		Final:     true,
	})
	e, ok := dsm.GetEntryByAddress(0, 0xf00c)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.Operator(), "NOP")

	// results outside the cartridge are ignored
	dsm.UpdateEntry(0, execution.Result{Address: 0x0080, Final: true})
	test.ExpectEquality(t, dsm.Counts(0)[disassembly.EntryLevelExecuted], 1)
}

func TestExecuted(t *testing.T) {
	cl := cartridgeloader.Loader{Filename: "test.bin", Mapping: "AUTO", Data: testROM()}
	dsm, err := disassembly.FromCartridge(cl)
	test.DemandSuccess(t, err)

	vcs, err := hardware.NewVCS(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vcs.LoadCartridge(cl))

	for range 8 {
		bank := vcs.Mem.Cart.Bank()
		test.DemandSuccess(t, vcs.DoStep())
		dsm.UpdateEntry(bank, vcs.CPU.LastResult)
	}

	e, ok := dsm.GetEntryByAddress(0, 0xf004)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.String(), "$f004  20 10 f0  JSR $f010")

	e, ok = dsm.GetEntryByAddress(0, 0xf007)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.String(), "$f007  d0 fb     BNE $f004")
}
