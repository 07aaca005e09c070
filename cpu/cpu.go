// Package cpu implements the MOS 6502 microprocessor core used as the
// execution engine of a Nintendo Entertainment System: fetch, decode,
// execute, and the addressing-mode/flag/stack machinery all 56 official
// mnemonics share.
package cpu

import (
	"fmt"

	"github.com/hejops/nes6502/mem"
)

// CPU holds all process-wide state of one 6502 instance: the register
// file, and a Bus it does not own memory of its own beyond.
type CPU struct {
	A  byte // Accumulator
	X  byte
	Y  byte
	SP byte   // Stack pointer; stack page is fixed at 0x0100 | SP
	PC uint16 // Program counter
	P  byte   // Status register, see flags.go for the bit layout

	Bus mem.Bus

	// JmpCompat, when true (the default, matching real hardware and the
	// NES), emulates the indirect-JMP page-wrap bug in resolveAddress.
	JmpCompat bool

	// Per-instruction scratch, populated by decode() and consumed by the
	// instruction executor. Exported so a debugger can inspect the
	// instruction currently in flight.
	M           byte // operand byte; loaded only for opcodes with ReadsOperand set (A in Accumulator mode)
	AbsAddress  uint16
	PageCrossed bool
	Mode        AddressingMode
}

const stackBase uint16 = 0x0100

// New returns a CPU wired to bus, already reset.
func New(bus mem.Bus) *CPU {
	c := &CPU{Bus: bus, JmpCompat: true}
	c.Reset()
	return c
}

func (c *CPU) push(v byte) {
	c.Bus.Write(stackBase|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.Bus.Read(stackBase | uint16(c.SP))
}

func (c *CPU) pushU16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popU16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// Reset zeroes the register file (matching spec-level reset, not the real
// chip's SP=0xFD startup value) and loads PC from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y, c.SP, c.P = 0, 0, 0, 0, 0
	c.PC = mem.ReadU16(c.Bus, 0xfffc)
}

// decode resolves the operand address for op's addressing mode (if it has
// one) and, only for mnemonics that actually consume a loaded byte (loads,
// read-modify-write, read-style ALU ops), reads it into c.M. Stores, JMP,
// JSR and the branches consume only c.AbsAddress and must not trigger a
// read here: on the NES bus a handful of addresses (the PPU's write-only
// ports) fault on read, so an unconditional pre-read would make something
// as ordinary as `STA $2000` fault before the write it's there to perform
// ever happens.
func (c *CPU) decode(op Opcode) {
	c.Mode = op.Mode
	switch op.Mode {
	case Implied:
		return
	case Accumulator:
		c.M = c.A
		return
	}
	res := c.resolveAddress(op.Mode)
	c.AbsAddress = res.Address
	c.PageCrossed = res.PageCrossed
	if op.ReadsOperand {
		c.M = c.Bus.Read(c.AbsAddress)
	}
}

// UnimplementedOpcodeError is returned by Next when the opcode byte at PC
// has no entry in the Opcodes table.
type UnimplementedOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Next fetches, decodes and executes exactly one instruction, reporting
// the number of cycles it took and whether it was BRK (the run loop's
// only termination signal). A bus Fault panic raised during execution is
// recovered and surfaced as err, matching spec's "fatal" bus-access rules
// without crashing the host process.
func (c *CPU) Next() (endOfProgram bool, cycles int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*mem.Fault); ok {
				err = f
				return
			}
			panic(r)
		}
	}()

	opByte := c.Bus.Read(c.PC)
	c.PC++

	op, ok := Opcodes[opByte]
	if !ok {
		return false, 0, &UnimplementedOpcodeError{Opcode: opByte, PC: c.PC - 1}
	}

	c.decode(op)
	extra := op.Exec(c)

	total := int(op.Cycles) + int(extra)
	if c.PageCrossed && op.PageCrossPenalty {
		total++
	}

	return opByte == 0x00, total, nil
}

// Run steps the CPU until BRK (end of program) or an error.
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback steps the CPU until BRK or an error, invoking cb once
// before the first instruction and once after every instruction with that
// instruction's cycle count. This is the only seam external integrators
// (a PPU frame hook, a controller-byte poke) get: it fires strictly
// between instructions, never mid-instruction.
func (c *CPU) RunWithCallback(cb func(*CPU, int)) error {
	if cb != nil {
		cb(c, 0)
	}
	for {
		end, cycles, err := c.Next()
		if err != nil {
			return err
		}
		if cb != nil {
			cb(c, cycles)
		}
		if end {
			return nil
		}
	}
}
