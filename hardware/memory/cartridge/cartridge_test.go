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

package cartridge_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/test"
)

// makeData returns cartridge data of size bytes where every byte in a bank is
// the number of the bank plus one
func makeData(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = uint8(i/cartridge.BankSize) + 1
	}
	return d
}

func TestMirror2K(t *testing.T) {
	d := make([]byte, 2048)
	for i := range d {
		d[i] = uint8(i)
	}
	cart, err := cartridge.NewCartridge(d, "AUTO")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "2K")
	test.ExpectEquality(t, cart.NumBanks(), 1)

	for a := uint16(0); a < 2048; a++ {
		test.ExpectEquality(t, cart.Peek(0x1000|a), cart.Peek(0x1800|a))
	}
}

func TestFingerprint(t *testing.T) {
	for _, c := range []struct {
		size  int
		id    string
		banks int
	}{
		{size: 2048, id: "2K", banks: 1},
		{size: 3000, id: "4K", banks: 1},
		{size: 4096, id: "4K", banks: 1},
		{size: 8192, id: "F8", banks: 2},
		{size: 12288, id: "FA", banks: 3},
		{size: 16384, id: "F6", banks: 4},
		{size: 20480, id: "F4", banks: 5},
		{size: 32768, id: "F4", banks: 8},
	} {
		cart, err := cartridge.NewCartridge(makeData(c.size), "")
		test.DemandSuccess(t, err, c.size)
		test.ExpectEquality(t, cart.ID(), c.id, c.size)
		test.ExpectEquality(t, cart.NumBanks(), c.banks, c.size)
		test.ExpectEquality(t, cart.Bank(), c.banks-1, c.size)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := cartridge.NewCartridge(makeData(32769), "AUTO")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooLarge))

	_, err = cartridge.NewCartridge(nil, "AUTO")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrEmpty))

	_, err = cartridge.NewCartridge(makeData(4096), "E7")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrUnknownMapping))

	_, err = cartridge.NewCartridge(makeData(8192), "4K")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooLarge))

	_, err = cartridge.NewCartridge(makeData(4096), "2K")
	test.ExpectSuccess(t, errors.Is(err, cartridge.ErrTooLarge))
}

func TestHotspotsF8(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeData(8192), "F8")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Bank(), 1)
	test.ExpectEquality(t, cart.Read(0x1000), 2)

	// the read of a hotspot returns data from the bank before the switch
	test.ExpectEquality(t, cart.Read(0x1ff8), 2)
	test.ExpectEquality(t, cart.Bank(), 0)
	test.ExpectEquality(t, cart.Read(0x1000), 1)

	// writes trigger hotspots too
	cart.Write(0x1ff9, 0x00)
	test.ExpectEquality(t, cart.Bank(), 1)

	// peek does not trigger hotspots
	cart.Peek(0x1ff8)
	test.ExpectEquality(t, cart.Bank(), 1)

	// ROM is not writable
	cart.Write(0x1000, 0xff)
	test.ExpectEquality(t, cart.Read(0x1000), 2)
}

func TestHotspotsF4(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeData(32768), "AUTO")
	test.DemandSuccess(t, err)
	for b := 0; b < 8; b++ {
		cart.Read(0x1ff4 + uint16(b))
		test.ExpectEquality(t, cart.Bank(), b)
		test.ExpectEquality(t, cart.Peek(0x1100), uint8(b+1))
	}

	// 0x1ffc is not a hotspot for F4
	cart.Read(0x1ffc)
	test.ExpectEquality(t, cart.Bank(), 7)
}

func TestRegisterScheme(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeData(8192), "3F")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Bank(), 1)

	cart.Listen(0x3f, 0x00)
	test.ExpectEquality(t, cart.Bank(), 0)

	// the value is masked. only two banks are loaded so bank three reads
	// as zero
	cart.Listen(0x3f, 0xff)
	test.ExpectEquality(t, cart.Bank(), 3)
	test.ExpectEquality(t, cart.Peek(0x1234), 0)

	// other addresses are ignored
	cart.Listen(0x3e, 0x00)
	test.ExpectEquality(t, cart.Bank(), 3)
}

func TestSetBankAndPoke(t *testing.T) {
	cart, err := cartridge.NewCartridge(makeData(16384), "AUTO")
	test.DemandSuccess(t, err)

	cart.SetBank(2)
	test.ExpectEquality(t, cart.Bank(), 2)
	cart.SetBank(4)
	test.ExpectEquality(t, cart.Bank(), 2)

	cart.Poke(0x1010, 0xaa)
	test.ExpectEquality(t, cart.Peek(0x1010), 0xaa)
	test.ExpectEquality(t, cart.PeekBank(1, 0x1010), 2)
	test.ExpectEquality(t, cart.PeekBank(9, 0x1010), 0)

	cart.Reset()
	test.ExpectEquality(t, cart.Bank(), 3)
}
