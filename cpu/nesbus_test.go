package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/nes6502/mem"
)

// newNESBusTestCPU wires a CPU to a real mem.NESBus (not the unrestricted
// FlatBus the rest of this package tests against), loading program at 0x8000
// and pointing the reset vector there. prg must be exactly 0x8000 bytes, the
// 32 KiB NROM size NESBus maps directly without mirroring.
func newNESBusTestCPU(t *testing.T, program []byte) (*CPU, *mem.NESBus) {
	t.Helper()
	prg := make([]byte, 0x8000)
	copy(prg, program)
	prg[0x7ffc] = 0x00 // reset vector 0xFFFC -> 0x8000
	prg[0x7ffd] = 0x80
	bus := mem.NewNESBus(prg)
	return New(bus), bus
}

// TestSTAToWriteOnlyPPUPortDoesNotFault is the regression test for decode's
// former unconditional operand pre-read: STA never consumes c.M, so writing
// to a write-only PPU register (PPUCTRL, PPUADDR, ...) must reach the write
// path without decode reading the port first and faulting.
func TestSTAToWriteOnlyPPUPortDoesNotFault(t *testing.T) {
	c, _ := newNESBusTestCPU(t, []byte{
		0xa9, 0x00, // LDA #$00
		0x8d, 0x00, 0x20, // STA $2000 (PPUCTRL, write-only)
		0x8d, 0x06, 0x20, // STA $2006 (PPUADDR, write-only)
		0x00, // BRK
	})

	for i := 0; i < 3; i++ {
		_, _, err := c.Next()
		assert.NoError(t, err)
	}
}

// TestJSRThroughNESBusDoesNotFault is the JMP/JSR half of the same
// regression: neither instruction consumes c.M, so decode must not spend a
// bus read resolving their absolute target's contents.
func TestJSRThroughNESBusDoesNotFault(t *testing.T) {
	c, _ := newNESBusTestCPU(t, []byte{
		0x20, 0x00, 0x90, // JSR $9000
	})

	_, _, err := c.Next()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x9000), c.PC)
}
