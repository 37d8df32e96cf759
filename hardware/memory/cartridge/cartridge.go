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

package cartridge

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// Sentinel errors returned by NewCartridge(). ErrTooLarge should be treated as
// fatal by the caller.
var (
	ErrTooLarge       = errors.New("cartridge: data too large")
	ErrEmpty          = errors.New("cartridge: no data")
	ErrUnknownMapping = errors.New("cartridge: unknown mapping")
)

// BankSize is the size of each bank. The size of the cartridge address space.
const BankSize = 4096

// MaxBanks is the maximum number of banks in any cartridge.
const MaxBanks = 8

// Cartridge is the ROM, and bank switching logic, for a loaded cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	scheme Scheme

	// banks beyond numBanks are never written to and so read as zero
	rom      [MaxBanks][BankSize]uint8
	numBanks int

	// the currently selected bank. always less than MaxBanks
	bank int
}

// NewCartridge creates a new cartridge from data. The mapping argument is
// passed to SearchScheme(). The cartridge is reset before being returned.
func NewCartridge(data []byte, mapping string) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if len(data) > MaxBanks*BankSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	scheme, err := SearchScheme(mapping, len(data))
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{
		scheme:   scheme,
		numBanks: numBanks(len(data)),
	}

	if scheme.ID == Scheme2K.ID {
		if len(data) > BankSize/2 {
			return nil, fmt.Errorf("%w: %d bytes for %s", ErrTooLarge, len(data), scheme)
		}

		// mirror 2K data into both halves of the first bank
		copy(cart.rom[0][:], data)
		copy(cart.rom[0][BankSize/2:], data)
	} else {
		if cart.numBanks > scheme.Banks {
			return nil, fmt.Errorf("%w: %d bytes for %s", ErrTooLarge, len(data), scheme)
		}
		for b := 0; b < cart.numBanks; b++ {
			copy(cart.rom[b][:], data[b*BankSize:])
		}
	}

	cart.Reset()

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%d/%d]", cart.scheme, cart.bank, cart.numBanks)
}

// ID returns the ID of the bank switching scheme.
func (cart *Cartridge) ID() string {
	return cart.scheme.ID
}

// Scheme returns the bank switching scheme.
func (cart *Cartridge) Scheme() Scheme {
	return cart.scheme
}

// NumBanks returns the number of banks in the loaded data.
func (cart *Cartridge) NumBanks() int {
	return cart.numBanks
}

// Bank returns the currently selected bank.
func (cart *Cartridge) Bank() int {
	return cart.bank
}

// SetBank selects the bank. Values outside the range of the scheme are
// ignored.
func (cart *Cartridge) SetBank(bank int) {
	if bank < 0 || bank >= cart.scheme.Banks || bank >= MaxBanks {
		return
	}
	cart.bank = bank
}

// Reset selects the starting bank. Cartridges with more than one bank start
// in the last bank.
func (cart *Cartridge) Reset() {
	cart.bank = max(cart.numBanks, 1) - 1
}

// Read returns the data at the address in the currently selected bank.
// Accessing a hotspot address switches the bank after the read.
func (cart *Cartridge) Read(address uint16) uint8 {
	address |= memorymap.OriginCart
	data := cart.rom[cart.bank][address&memorymap.CartridgeBits]
	cart.hotspot(address)
	return data
}

// Write to the cartridge. The ROM is never changed but hotspots are still
// triggered.
func (cart *Cartridge) Write(address uint16, _ uint8) {
	cart.hotspot(address | memorymap.OriginCart)
}

// Peek returns the data at the address in the currently selected bank
// without triggering any hotspots.
func (cart *Cartridge) Peek(address uint16) uint8 {
	return cart.rom[cart.bank][address&memorymap.CartridgeBits]
}

// PeekBank returns the data at the address in the specified bank.
func (cart *Cartridge) PeekBank(bank int, address uint16) uint8 {
	if bank < 0 || bank >= MaxBanks {
		return 0
	}
	return cart.rom[bank][address&memorymap.CartridgeBits]
}

// Poke changes the data at the address in the currently selected bank. Should
// only be used for debugging purposes.
func (cart *Cartridge) Poke(address uint16, data uint8) {
	cart.rom[cart.bank][address&memorymap.CartridgeBits] = data
}

// Listen is called for every write to the TIA area of memory. The address is
// the normalised TIA address. Some schemes switch banks by snooping on these
// writes.
func (cart *Cartridge) Listen(address uint16, data uint8) {
	if cart.scheme.HasRegister() && address == cart.scheme.Register {
		cart.bank = int(data & cart.scheme.Mask)
	}
}

func (cart *Cartridge) hotspot(address uint16) {
	if b, ok := cart.scheme.IsHotspot(address); ok {
		cart.bank = b
	}
}

// Snapshot creates a copy of the cartridge in its current state.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	return &n
}
