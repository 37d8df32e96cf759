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
	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
	"github.com/jetsetilly/freya2600/hardware/memory/cartridge"
	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
	"github.com/jetsetilly/freya2600/hardware/memory/memorymap"
)

// bankView is a view of a single bank of the cartridge. addresses outside of
// the cartridge area are mirrored into it
type bankView struct {
	cart *cartridge.Cartridge
	bank int
}

func (v bankView) Peek(address uint16) uint8 {
	return v.cart.PeekBank(v.bank, address)
}

func (v bankView) peekWord(address uint16) uint16 {
	return uint16(v.Peek(address+1))<<8 | uint16(v.Peek(address))
}

// flow disassembles the bank by following the program from the reset and
// break vectors. every address in the work list is the start of a sequence
// of instructions that continues until a JMP, RTS, RTI or BRK instruction,
// an illegal opcode or an address that has already been disassembled
func (dsm *Disassembly) flow(bank int) {
	view := bankView{cart: dsm.cart, bank: bank}

	work := []uint16{
		view.peekWord(cpubus.Reset),
		view.peekWord(cpubus.IRQ),
	}

	for len(work) > 0 {
		address := work[len(work)-1]
		work = work[:len(work)-1]

		for memorymap.IsArea(address, memorymap.Cartridge) {
			e := Disassemble(view, address)
			e.Bank = bank
			e.Level = EntryLevelBlessed
			if !dsm.put(e) {
				break
			}

			if e.Illegal() {
				break
			}

			next, cont := follow(view, e)
			if next != nil {
				work = append(work, *next)
			}
			if !cont {
				break
			}

			// the next address may have wrapped around out of the cartridge
			// area, which ends the loop
			address += uint16(e.Defn.Bytes)
		}
	}
}

// follow returns the address of any instruction that can be reached from the
// entry other than the following instruction. the second return value is
// false if the following instruction can not be reached
func follow(view bankView, e Entry) (*uint16, bool) {
	switch e.Defn.Operator {
	case instructions.Jmp:
		if e.Defn.Mode == instructions.Indirect {
			// only pointers in the cartridge can be followed
			if !memorymap.IsArea(e.Operand, memorymap.Cartridge) {
				return nil, false
			}
			// the indirect address does not cross a page boundary
			lo := view.Peek(e.Operand)
			hi := view.Peek(e.Operand&0xff00 | uint16(uint8(e.Operand)+1))
			target := uint16(hi)<<8 | uint16(lo)
			return &target, false
		}
		target := e.Operand
		return &target, false

	case instructions.Jsr:
		target := e.Operand
		return &target, true

	case instructions.Rts, instructions.Rti, instructions.Brk:
		return nil, false
	}

	if e.Defn.IsBranch() {
		target := e.Operand
		return &target, true
	}

	return nil, true
}
