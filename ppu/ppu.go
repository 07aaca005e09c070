// Package ppu provides the CPU-visible register surface of the NES picture
// processing unit. It deliberately stops at the port interface: pattern
// tables, scanline timing and pixel output are out of scope for this core
// and belong to a full PPU implementation built on top of it.
package ppu

import "github.com/hejops/nes6502/mask"

// Control register bit positions (PPUCTRL, $2000), 1-indexed the way the
// mask package expects.
const (
	ctrlNametableLo = mask.I8
	ctrlNametableHi = mask.I7
	ctrlVramIncDown = mask.I6 // 0: add 1 across, 1: add 32 down
	ctrlSpritePtrn  = mask.I5
	ctrlBgPtrn      = mask.I4
	ctrlSpriteSize  = mask.I3
	ctrlMasterSlave = mask.I2
	ctrlNmiOnVblank = mask.I1
)

// Status register bit positions (PPUSTATUS, $2002).
const (
	statusSpriteOverflow = mask.I3
	statusSprite0Hit     = mask.I2
	statusVblank         = mask.I1
)

// PPU is the minimal register-level stand-in for the picture processing
// unit. Everything that would actually produce pixels (VRAM, OAM, the
// rendering pipeline) is out of scope; this struct only has to behave
// correctly as a collaborator on the CPU bus.
type PPU struct {
	ctrl   byte // $2000, write-only
	mask_  byte // $2001, write-only
	status byte // $2002, read-only
	oamCtl byte // $2003, write-only (OAM address)

	vramAddr   uint16 // internal 'v' register, set via $2006
	addrLatch  bool   // toggles between hi/lo byte writes to $2006
	readBuffer byte   // $2007 read is buffered one byte behind
	vram       [0x4000]byte
	oam        [256]byte
}

// New returns a powered-on PPU with VBlank already set, matching the state
// a real NES presents immediately after reset.
func New() *PPU {
	p := &PPU{}
	p.status = mask.Set(p.status, statusVblank, 1)
	return p
}

// setVblank sets or clears the VBlank status bit. mask.Set cannot clear a
// bit (it only ORs in new bits), so clearing goes through mask.Unset.
func (p *PPU) setVblank(on bool) {
	if on {
		p.status = mask.Set(p.status, statusVblank, 1)
		return
	}
	p.status = mask.Unset(p.status, statusVblank, statusVblank)
}

// vramIncrement returns how much $2007 access advances vramAddr, per bit 2
// of PPUCTRL. A prior version of this shim (see DESIGN.md) discarded the
// high byte of this increment; it is applied in full here.
func (p *PPU) vramIncrement() uint16 {
	if mask.IsSet(p.ctrl, ctrlVramIncDown) {
		return 32
	}
	return 1
}

// ReadRegister services a CPU read of one of the 8 CPU-visible ports
// (already demirrored to 0x2000-0x2007 by the caller). Write-only ports
// fault; the caller decides what "fault" means (see mem.NESBus).
func (p *PPU) ReadRegister(reg uint16) (byte, bool) {
	switch reg {
	case 2: // PPUSTATUS
		v := p.status
		p.setVblank(false)
		p.addrLatch = false
		return v, true
	case 7: // PPUDATA
		v := p.readBuffer
		p.readBuffer = p.vram[p.vramAddr%uint16(len(p.vram))]
		p.vramAddr += p.vramIncrement()
		return v, true
	default:
		return 0, false
	}
}

// WriteRegister services a CPU write of one of the 8 CPU-visible ports.
func (p *PPU) WriteRegister(reg uint16, v byte) {
	switch reg {
	case 0: // PPUCTRL
		p.ctrl = v
	case 1: // PPUMASK
		p.mask_ = v
	case 3: // OAMADDR
		p.oamCtl = v
	case 5: // PPUSCROLL
		// scroll state is out of scope beyond acknowledging the write
	case 6: // PPUADDR
		if !p.addrLatch {
			p.vramAddr = uint16(v)<<8 | (p.vramAddr & 0x00ff)
		} else {
			p.vramAddr = (p.vramAddr & 0xff00) | uint16(v)
		}
		p.addrLatch = !p.addrLatch
	case 7: // PPUDATA
		p.vram[p.vramAddr%uint16(len(p.vram))] = v
		p.vramAddr += p.vramIncrement()
	}
}

// SetVBlank sets or clears the VBlank status flag. It exists so a caller
// stepping the CPU via cpu.RunWithCallback can simulate PPU frame timing
// without this package knowing anything about scanlines.
func (p *PPU) SetVBlank(on bool) { p.setVblank(on) }

// WriteOAMDMA services a CPU write of a full 256-byte page into OAM via the
// $4014 port. The real NES stalls the CPU for 513-514 cycles doing this;
// that stall is a cycle-accuracy detail out of scope for this core (see
// spec's Non-goals on sub-instruction timing).
func (p *PPU) WriteOAMDMA(page [256]byte) {
	p.oam = page
}
