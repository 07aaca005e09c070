package mem

import (
	"fmt"

	"github.com/hejops/nes6502/ppu"
)

// Fault is the error type a NESBus raises for any access the real hardware
// would never perform: reading a write-only PPU port, writing to PRG-ROM,
// or touching an address outside the implemented map. The cpu package
// recovers this at the Next() boundary and reports it as a Go error,
// which is the idiomatic equivalent of "halt the process with a
// diagnostic" (spec §7).
type Fault struct {
	Addr uint16
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("bus fault at $%04X: %s", f.Addr, f.Msg)
}

func fault(addr uint16, format string, args ...any) {
	panic(&Fault{Addr: addr, Msg: fmt.Sprintf(format, args...)})
}

// NESBus implements the real NES CPU memory map:
//
//	0x0000-0x1FFF: 2 KiB internal RAM, mirrored every 2 KiB
//	0x2000-0x3FFF: 8 PPU registers, mirrored every 8 bytes
//	0x4014:        OAM DMA trigger
//	0x8000-0xFFFF: PRG-ROM, 16 KiB banks mirror if the cart only has one
//
// Anything else is unimplemented and faults, per spec §3/§7.
type NESBus struct {
	ram [2048]byte
	ppu *ppu.PPU
	prg []byte
}

// NewNESBus wires up RAM, a fresh PPU, and the given PRG-ROM bytes. A 16
// KiB PRG image is mirrored into both halves of 0x8000-0xFFFF; a 32 KiB
// image is mapped directly. This is mapper 0 (NROM) behavior; anything
// else is out of scope.
func NewNESBus(prg []byte) *NESBus {
	return &NESBus{ppu: ppu.New(), prg: prg}
}

func (b *NESBus) Read(addr uint16) byte {
	switch {
	case addr <= 0x1fff:
		return b.ram[addr&0x07ff]

	case addr >= 0x2000 && addr <= 0x3fff:
		reg := addr & 0x2007
		v, ok := b.ppu.ReadRegister(reg - 0x2000)
		if !ok {
			fault(addr, "read from write-only PPU register")
		}
		return v

	case addr >= 0x8000:
		return b.prg[b.prgOffset(addr)]

	default:
		fault(addr, "read from unmapped address")
		return 0
	}
}

func (b *NESBus) Write(addr uint16, data byte) {
	switch {
	case addr <= 0x1fff:
		b.ram[addr&0x07ff] = data

	case addr >= 0x2000 && addr <= 0x3fff:
		reg := addr & 0x2007
		if reg == 0x2002 {
			fault(addr, "write to read-only PPU register")
		}
		b.ppu.WriteRegister(reg-0x2000, data)

	case addr == 0x4014:
		var page [256]byte
		base := uint16(data) << 8
		for i := range page {
			page[i] = b.Read(base + uint16(i))
		}
		b.ppu.WriteOAMDMA(page)

	case addr >= 0x8000:
		fault(addr, "write to PRG-ROM")

	default:
		fault(addr, "write to unmapped address")
	}
}

// prgOffset maps a CPU address in 0x8000-0xFFFF down into b.prg, mirroring
// a 16 KiB image across both halves of the window.
func (b *NESBus) prgOffset(addr uint16) uint16 {
	off := addr - 0x8000
	if len(b.prg) == 0x4000 {
		off &= 0x3fff
	}
	return off
}

// PPU exposes the bus's PPU so a caller (e.g. a RunWithCallback frame
// hook) can drive VBlank timing without the cpu package knowing about it.
func (b *NESBus) PPU() *ppu.PPU { return b.ppu }
