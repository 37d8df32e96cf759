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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/freya2600/cartridgeloader"
	"github.com/jetsetilly/freya2600/hardware/cpu/execution"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// Disassembly represents the annotated disassembly of a 6507 binary.
type Disassembly struct {
	cart *cartridge.Cartridge

	// indexed by bank and then by address. address should be masked with
	// memorymap.CartridgeBits before access. the index order is the address
	// order
	entries [][cartridge.BankSize]*Entry
}

// FromCartridge loads the cartridge and returns the disassembly of it. Useful
// for one-shot disassemblies, like the DISASM mode of the command.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	if err := cartload.Load(); err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	cart, err := cartridge.NewCartridge(cartload.Data, cartload.Mapping)
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	return FromMemory(cart), nil
}

// FromMemory disassembles an existing instance of a cartridge. The cartridge
// is not changed.
func FromMemory(cart *cartridge.Cartridge) *Disassembly {
	dsm := &Disassembly{
		cart:    cart,
		entries: make([][cartridge.BankSize]*Entry, cart.NumBanks()),
	}
	for b := range dsm.entries {
		dsm.flow(b)
	}
	return dsm
}

// NumBanks returns the number of banks in the disassembly.
func (dsm *Disassembly) NumBanks() int {
	return len(dsm.entries)
}

// GetEntryByAddress returns the disassembly entry at the specified
// bank/address.
func (dsm *Disassembly) GetEntryByAddress(bank int, address uint16) (*Entry, bool) {
	if bank < 0 || bank >= len(dsm.entries) {
		return nil, false
	}
	e := dsm.entries[bank][address&memorymap.CartridgeBits]
	return e, e != nil
}

// put the entry in the disassembly. returns false if there is already an
// entry of the same or a higher level at the address
func (dsm *Disassembly) put(e Entry) bool {
	idx := e.Address & memorymap.CartridgeBits
	o := dsm.entries[e.Bank][idx]
	if o != nil && o.Level >= e.Level {
		return false
	}
	dsm.entries[e.Bank][idx] = &e
	return true
}

// UpdateEntry adds the result of an executed instruction to the disassembly.
// Results for instructions outside of the cartridge area are ignored.
func (dsm *Disassembly) UpdateEntry(bank int, result execution.Result) {
	if bank < 0 || bank >= len(dsm.entries) {
		return
	}
	if !result.Final || !memorymap.IsArea(result.Address, memorymap.Cartridge) {
		return
	}

	idx := result.Address & memorymap.CartridgeBits
	if e := dsm.entries[bank][idx]; e != nil && e.Level == EntryLevelExecuted {
		return
	}

	dsm.put(FromResult(bank, result))
}

// Counts returns the number of entries at each level in the bank.
func (dsm *Disassembly) Counts(bank int) map[EntryLevel]int {
	c := make(map[EntryLevel]int)
	if bank < 0 || bank >= len(dsm.entries) {
		return c
	}
	for _, e := range dsm.entries[bank] {
		if e != nil {
			c[e.Level]++
		}
	}
	return c
}
