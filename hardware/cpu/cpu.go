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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/freya2600/hardware/cpu/execution"
	"github.com/jetsetilly/freya2600/hardware/cpu/instructions"
	"github.com/jetsetilly/freya2600/hardware/cpu/registers"
	"github.com/jetsetilly/freya2600/hardware/memory/cpubus"
)

// ErrIllegalOpcode is wrapped by the error returned by ExecuteInstruction()
// when the opcode does not decode to a legal instruction.
var ErrIllegalOpcode = errors.New("illegal opcode")

// the stack is always in page one
const stackPage = 0x0100

// CPU implements the 6507 found as found in the Atari 2600. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem cpubus.Memory

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem: mem,
		PC:  registers.NewProgramCounter(0),
		A:   registers.NewRegister(0, "A"),
		X:   registers.NewRegister(0, "X"),
		Y:   registers.NewRegister(0, "Y"),
		SP:  registers.NewRegister(0xff, "SP"),
	}
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the reset vector.
// The two reads of the vector consume bus cycles.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.LoadPCIndirect(cpubus.Reset)
	mc.LastResult.Reset()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.read(indirectAddress)
	hi := mc.read(indirectAddress + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// LoadPC loads the address into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

func (mc *CPU) read(address uint16) uint8 {
	mc.LastResult.Cycles++
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, value uint8) {
	mc.LastResult.Cycles++
	mc.mem.Write(address, value)
}

// idle cycles are the cycles the real CPU spends on dummy reads
func (mc *CPU) idle() {
	mc.LastResult.Cycles++
	mc.mem.Idle()
}

// read the byte at the PC and advance the PC
func (mc *CPU) read8BitPC() uint8 {
	v := mc.read(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	return v
}

// read the word at the PC and advance the PC
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return uint16(hi)<<8 | uint16(lo)
}

// read a pointer from the zero page. the high byte wraps around to the
// start of the zero page
func (mc *CPU) readZeroPagePointer(zp uint8) uint16 {
	lo := mc.read(uint16(zp))
	hi := mc.read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) push(value uint8) {
	mc.write(stackPage|mc.SP.Address(), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pop() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read(stackPage | mc.SP.Address())
}

func (mc *CPU) pushPC() {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address()))
}

func (mc *CPU) popPC() {
	lo := mc.pop()
	hi := mc.pop()
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// branch adds the offset to the PC if flag is true
func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.BranchSuccess = true
	mc.idle()

	// sign extend the offset before adding
	if mc.PC.Add(uint16(int16(int8(offset)))) {
		mc.LastResult.PageFault = true
		mc.idle()
	}
}

// ExecuteInstruction steps the CPU forward one instruction. The opcode is
// read from the address in the PC.
//
// Returns an error wrapping ErrIllegalOpcode if the opcode is not a legal
// instruction. In that case the PC has advanced past the opcode and two
// cycles have been consumed, which is the same as a single byte NOP.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC()
	mc.LastResult.Opcode = opcode

	defn := instructions.Definitions[opcode]
	if defn == nil {
		mc.idle()
		mc.LastResult.Illegal = true
		mc.LastResult.Final = true
		return fmt.Errorf("cpu: %w (%#02x) at %#04x", ErrIllegalOpcode, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// the value and address of the operand, depending on the addressing
	// mode. for read instructions the value is read during address
	// resolution. for write and RMW instructions only the address is
	// resolved.
	var address uint16
	var value uint8

	switch defn.Mode {
	case instructions.Implied:
		mc.executeImplied(defn)
		mc.LastResult.Final = true
		return nil

	case instructions.Accumulator:
		mc.idle()
		value = mc.A.Value()

	case instructions.Immediate:
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		mc.idle()
		if defn.Mode == instructions.ZeroPageIndexedX {
			address = uint16(zp + mc.X.Value())
		} else {
			address = uint16(zp + mc.Y.Value())
		}

	case instructions.Absolute:
		if defn.Operator == instructions.Jsr {
			mc.jsr()
			mc.LastResult.Final = true
			return nil
		}
		address = mc.read16BitPC()
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		indirect := mc.read16BitPC()
		mc.LastResult.InstructionData = indirect

		// the high byte of the pointer is read from the same page as the
		// low byte
		lo := mc.read(indirect)
		hi := mc.read(indirect&0xff00 | uint16(uint8(indirect)+1))
		address = uint16(hi)<<8 | uint16(lo)

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		base := mc.read16BitPC()
		mc.LastResult.InstructionData = base
		if defn.Mode == instructions.AbsoluteIndexedX {
			address = base + mc.X.Address()
		} else {
			address = base + mc.Y.Address()
		}
		if address&0xff00 != base&0xff00 {
			if defn.PageSensitive {
				mc.LastResult.PageFault = true
			}
			mc.idle()
		} else if !defn.PageSensitive {
			mc.idle()
		}

	case instructions.IndexedIndirect:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		mc.idle()
		address = mc.readZeroPagePointer(zp + mc.X.Value())

	case instructions.IndirectIndexed:
		zp := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(zp)
		base := mc.readZeroPagePointer(zp)
		address = base + mc.Y.Address()
		if address&0xff00 != base&0xff00 {
			if defn.PageSensitive {
				mc.LastResult.PageFault = true
			}
			mc.idle()
		} else if !defn.PageSensitive {
			mc.idle()
		}
	}

	// read the operand for instructions that need it
	switch defn.Mode {
	case instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		switch defn.Effect {
		case instructions.Read:
			value = mc.read(address)
		case instructions.RMW:
			value = mc.read(address)

			// the unmodified value is written back before the modified value
			mc.write(address, value)
		}
	}

	switch defn.Operator {
	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.Adc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.Sbc:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.SetNZ(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetNZ(value)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetNZ(value)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetNZ(value)

	case instructions.Sta:
		mc.write(address, mc.A.Value())

	case instructions.Stx:
		mc.write(address, mc.X.Value())

	case instructions.Sty:
		mc.write(address, mc.Y.Value())

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := registers.NewRegister(value, "")
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		r := registers.NewRegister(value, "")
		switch defn.Operator {
		case instructions.Asl:
			mc.Status.Carry = r.ASL()
		case instructions.Lsr:
			mc.Status.Carry = r.LSR()
		case instructions.Rol:
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		case instructions.Ror:
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		}
		mc.Status.SetNZ(r.Value())
		if defn.Mode == instructions.Accumulator {
			mc.A.Load(r.Value())
		} else {
			mc.write(address, r.Value())
		}

	case instructions.Inc:
		value++
		mc.Status.SetNZ(value)
		mc.write(address, value)

	case instructions.Dec:
		value--
		mc.Status.SetNZ(value)
		mc.write(address, value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)
	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)
	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)
	}

	mc.LastResult.Final = true
	return nil
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	var result uint8
	mc.Status.Carry, result = r.Compare(value)
	mc.Status.SetNZ(result)
}

// JSR pushes the address of the last byte of the instruction
func (mc *CPU) jsr() {
	lo := mc.read8BitPC()
	mc.idle()
	mc.pushPC()
	hi := mc.read(mc.PC.Address())
	mc.LastResult.ByteCount++
	address := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.InstructionData = address
	mc.PC.Load(address)
}

// the single byte instructions
func (mc *CPU) executeImplied(defn *instructions.Definition) {
	switch defn.Operator {
	case instructions.Brk:
		// the padding byte is read and skipped
		mc.read8BitPC()
		mc.pushPC()
		mc.push(mc.Status.Value())
		mc.Status.InterruptDisable = true
		mc.LoadPCIndirect(cpubus.IRQ)
		return

	case instructions.Rti:
		mc.idle()
		mc.idle()
		mc.Status.FromValue(mc.pop())
		mc.popPC()
		mc.Status.InterruptDisable = false
		return

	case instructions.Rts:
		mc.idle()
		mc.idle()
		mc.popPC()
		mc.idle()
		mc.PC.Increment()
		return

	case instructions.Pha:
		mc.idle()
		mc.push(mc.A.Value())
		return

	case instructions.Php:
		mc.idle()
		mc.push(mc.Status.Value())
		return

	case instructions.Pla:
		mc.idle()
		mc.idle()
		mc.A.Load(mc.pop())
		mc.Status.SetNZ(mc.A.Value())
		return

	case instructions.Plp:
		mc.idle()
		mc.idle()
		mc.Status.FromValue(mc.pop())
		return
	}

	// all other single byte instructions take two cycles
	mc.idle()

	switch defn.Operator {
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetNZ(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.SetNZ(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.SetNZ(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.SetNZ(mc.Y.Value())

	case instructions.Nop:
	}
}
