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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/freya2600/hardware/memory"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
	"github.com/jetsetilly/freya2600/test"
)

// mockChip records the most recent write and returns the low byte of the
// address for reads
type mockChip struct {
	reads     int
	lastWrite uint16
	lastData  uint8
}

func (c *mockChip) Read(address uint16) uint8 {
	c.reads++
	return uint8(address)
}

func (c *mockChip) Write(address uint16, data uint8) {
	c.lastWrite = address
	c.lastData = data
}

func (c *mockChip) Peek(address uint16) uint8 {
	return uint8(address)
}

func newMemory(t *testing.T, data []byte, mapping string) (*memory.Memory, *mockChip, *mockChip) {
	t.Helper()
	mem := memory.NewMemory()
	tia := &mockChip{}
	riot := &mockChip{}
	mem.TIA = tia
	mem.RIOT = riot
	if data != nil {
		cart, err := cartridge.NewCartridge(data, mapping)
		test.DemandSuccess(t, err)
		mem.Attach(cart)
	}
	return mem, tia, riot
}

func TestDispatch(t *testing.T) {
	d := make([]byte, 4096)
	for i := range d {
		d[i] = uint8(i)
	}
	mem, tia, riot := newMemory(t, d, "AUTO")

	// RAM
	mem.Write(0x80, 0x11)
	test.ExpectEquality(t, mem.Read(0x80), 0x11)
	test.ExpectEquality(t, mem.RAM.RAM[0], 0x11)

	// stack page mirror
	mem.Write(0x01ff, 0x22)
	test.ExpectEquality(t, mem.Read(0xff), 0x22)

	// cartridge
	test.ExpectEquality(t, mem.Read(0xf0ff), 0xff)
	test.ExpectEquality(t, mem.Read(0x10fe), 0xfe)

	// ROM is not writable
	mem.Write(0xf0ff, 0x00)
	test.ExpectEquality(t, mem.Read(0xf0ff), 0xff)

	// TIA
	mem.Write(cpubus.WSYNC, 0x01)
	test.ExpectEquality(t, tia.lastWrite, cpubus.WSYNC)
	test.ExpectEquality(t, mem.Read(0x3c), uint8(cpubus.INPT4))

	// RIOT
	mem.Write(0x029c, 0x40)
	test.ExpectEquality(t, riot.lastWrite, cpubus.TIM1T)
	test.ExpectEquality(t, riot.lastData, 0x40)
	test.ExpectEquality(t, mem.Read(cpubus.INTIM), 0x84)

	test.ExpectEquality(t, mem.LastAccessAddress, cpubus.INTIM)
	test.ExpectEquality(t, mem.LastAccessWrite, false)
}

func TestReadMask(t *testing.T) {
	d := make([]byte, 4096)
	for i := range d {
		d[i] = uint8(i * 7)
	}
	mem, _, _ := newMemory(t, d, "AUTO")
	for i := range 128 {
		mem.RAM.RAM[i] = uint8(i + 1)
	}

	for a := 0; a <= 0x1fff; a++ {
		addr := uint16(a)
		for _, m := range []uint16{0x2000, 0x8000, 0xe000} {
			if mem.Read(addr) != mem.Read(addr|m) {
				t.Fatalf("read of %#04x and %#04x differ", addr, addr|m)
			}
		}
	}
}

func TestCycles(t *testing.T) {
	mem, tia, _ := newMemory(t, nil, "")
	test.ExpectEquality(t, mem.Cycles(), 0)

	mem.Read(0x80)
	mem.Write(0x80, 0)
	mem.Idle()
	test.ExpectEquality(t, mem.Cycles(), 3)

	// peek and poke do not consume cycles or touch the chips
	mem.Peek(0x00)
	mem.Poke(0x80, 1)
	test.ExpectEquality(t, mem.Cycles(), 3)
	test.ExpectEquality(t, tia.reads, 0)
	test.ExpectEquality(t, mem.Peek(0x80), 1)
}

func TestEjected(t *testing.T) {
	mem, _, _ := newMemory(t, nil, "")
	test.ExpectEquality(t, mem.Read(0xfffc), 0)
	mem.Write(0xf000, 0xff)
	test.ExpectEquality(t, mem.Peek(0xf000), 0)
	test.ExpectEquality(t, mem.PeekWord(0xfffc), 0)
}

func TestBankSwitching(t *testing.T) {
	d := make([]byte, 8192)
	d[0x0ffc] = 0x00
	d[0x0ffd] = 0xf0
	d[0x1ffc] = 0x00
	d[0x1ffd] = 0xf8
	d[0x0000] = 0xaa
	d[0x1000] = 0xbb
	mem, _, _ := newMemory(t, d, "AUTO")

	// starts in last bank
	test.ExpectEquality(t, mem.PeekWord(0xfffc), 0xf800)
	test.ExpectEquality(t, mem.Peek(0xf000), 0xbb)

	// read of hotspot switches bank
	mem.Read(0xfff8)
	test.ExpectEquality(t, mem.Cart.Bank(), 0)
	test.ExpectEquality(t, mem.Peek(0xf000), 0xaa)

	// peek of hotspot does not switch bank
	mem.Peek(0xfff9)
	test.ExpectEquality(t, mem.Cart.Bank(), 0)

	// write to hotspot switches bank
	mem.Write(0x1ff9, 0x00)
	test.ExpectEquality(t, mem.Cart.Bank(), 1)

	// reset returns to the starting bank
	mem.Read(0xfff8)
	mem.Reset()
	test.ExpectEquality(t, mem.Cart.Bank(), 1)
}

func TestTigervision(t *testing.T) {
	d := make([]byte, 8192)
	d[0x0000] = 0xaa
	d[0x1000] = 0xbb
	mem, tia, _ := newMemory(t, d, "3F")

	test.ExpectEquality(t, mem.Peek(0x1000), 0xbb)
	mem.Write(0x3f, 0x00)
	test.ExpectEquality(t, mem.Peek(0x1000), 0xaa)

	// the TIA still sees the write
	test.ExpectEquality(t, tia.lastWrite, 0x3f)
}

func TestRAMString(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x80, 0xab)
	s := ram.String()
	test.ExpectInequality(t, len(s), 0)
	ram.Reset()
	test.ExpectEquality(t, ram.Read(0x80), 0)
}

func TestSnapshot(t *testing.T) {
	d := make([]byte, 8192)
	mem, _, _ := newMemory(t, d, "AUTO")
	mem.Write(0x80, 0x42)

	s := mem.Snapshot()
	mem.Write(0x80, 0x00)
	mem.Read(0xfff8)

	test.ExpectEquality(t, s.Peek(0x80), 0x42)
	test.ExpectEquality(t, s.Cart.Bank(), 1)
	test.ExpectEquality(t, mem.Cart.Bank(), 0)
	test.ExpectSuccess(t, s.TIA == nil)
}
