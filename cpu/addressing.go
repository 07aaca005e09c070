package cpu

import "github.com/hejops/nes6502/mem"

// An AddressingMode tells the CPU where to find the operand of the current
// instruction. Most instructions can address the full 64 KiB range; the
// ZeroPage family is confined to the first 256 bytes, which is both
// cheaper to encode and cheaper to access on real hardware.
type AddressingMode int

const (
	Implied AddressingMode = iota // no operand; truly implied instructions (CLC, INX, ...)
	Accumulator                   // no bus access; operand/result is the A register

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	IndirectX
	IndirectY
	Indirect // JMP only
)

// AddressResult is the resolver's output: the effective address an
// instruction should read or write, and whether computing it crossed a
// page boundary (which costs one extra cycle on read-style instructions).
type AddressResult struct {
	Address     uint16
	PageCrossed bool
}

// resolveAddress computes the effective address for mode, consuming
// operand bytes from the instruction stream as a side effect (PC is
// advanced past them). Implied and Accumulator carry no address and must
// never reach here; callers short-circuit on them before calling resolveAddress.
func (c *CPU) resolveAddress(mode AddressingMode) AddressResult {
	switch mode {
	case Immediate:
		addr := c.PC
		c.PC++
		return AddressResult{Address: addr}

	case ZeroPage:
		addr := uint16(c.Bus.Read(c.PC))
		c.PC++
		return AddressResult{Address: addr}

	case ZeroPageX:
		addr := uint16(c.Bus.Read(c.PC)+c.X) & 0x00ff
		c.PC++
		return AddressResult{Address: addr}

	case ZeroPageY:
		addr := uint16(c.Bus.Read(c.PC)+c.Y) & 0x00ff
		c.PC++
		return AddressResult{Address: addr}

	case Absolute:
		addr := mem.ReadU16(c.Bus, c.PC)
		c.PC += 2
		return AddressResult{Address: addr}

	case AbsoluteX:
		base := mem.ReadU16(c.Bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		crossed := (base&0x00ff)+uint16(c.X) > 0xff
		return AddressResult{Address: addr, PageCrossed: crossed}

	case AbsoluteY:
		base := mem.ReadU16(c.Bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		crossed := (base&0x00ff)+uint16(c.Y) > 0xff
		return AddressResult{Address: addr, PageCrossed: crossed}

	case IndirectX:
		z := uint16(c.Bus.Read(c.PC)+c.X) & 0x00ff
		c.PC++
		addr := mem.ReadU16ZeroPage(c.Bus, z)
		return AddressResult{Address: addr}

	case IndirectY:
		z := uint16(c.Bus.Read(c.PC))
		c.PC++
		base := mem.ReadU16ZeroPage(c.Bus, z)
		addr := base + uint16(c.Y)
		crossed := (base&0x00ff)+uint16(c.Y) > 0xff
		return AddressResult{Address: addr, PageCrossed: crossed}

	case Relative:
		off := c.Bus.Read(c.PC)
		c.PC++
		return AddressResult{Address: c.PC + uint16(int8(off))}

	case Indirect:
		ptr := mem.ReadU16(c.Bus, c.PC)
		c.PC += 2
		if c.JmpCompat && ptr&0x00ff == 0x00ff {
			// The 6502 page-wrap bug: the high byte of the target is
			// read from the start of the same page, not the next one.
			lo := c.Bus.Read(ptr)
			hi := c.Bus.Read(ptr & 0xff00)
			return AddressResult{Address: uint16(hi)<<8 | uint16(lo)}
		}
		return AddressResult{Address: mem.ReadU16(c.Bus, ptr)}

	default:
		panic("resolveAddress: mode has no operand address")
	}
}
