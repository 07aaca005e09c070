package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/nes6502/mem"
)

// program multiplies 10 (0x0a) by 3 via repeated addition, stores the
// result at 0x0002, and stops at the BRK (the zero byte) that follows its
// three trailing NOPs. It has circulated among 6502 emulator test suites for
// years; this port keeps it as an end-to-end sanity check that
// decode/execute/flags all agree with each other across a real (if tiny)
// sequence of instructions.
var thirtyProgram = []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00, 0xAC, 0x00, 0x00, 0xA9, 0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0, 0xFA, 0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA}

func TestLoadProgram(t *testing.T) {
	bus := &mem.FlatBus{}
	bus.LoadProgram([]byte(thirtyProgram), 0x8000)

	assert.Equal(t, uint8(0xa2), bus.RAM[0x8000])
	assert.Equal(t, uint8(0x0a), bus.RAM[0x8001])
	assert.Equal(t, uint8(0x8e), bus.RAM[0x8002])
	assert.Equal(t, uint8(0xea), bus.RAM[0x801b])
	assert.Equal(t, uint8(0), bus.RAM[0x801c])

	assert.Equal(t, "LDX", Opcodes[bus.RAM[0x8000]].Mnemonic)
	assert.Equal(t, "ASL", Opcodes[bus.RAM[0x8001]].Mnemonic)
	assert.Equal(t, "STX", Opcodes[bus.RAM[0x8002]].Mnemonic)
	assert.Equal(t, "NOP", Opcodes[bus.RAM[0x801b]].Mnemonic)
	assert.Equal(t, "BRK", Opcodes[bus.RAM[0x801c]].Mnemonic)
}

func TestThirty(t *testing.T) {
	bus := &mem.FlatBus{}
	bus.LoadProgram([]byte(thirtyProgram), 0x8000)
	bus.SetResetVector(0x8000)

	c := New(bus)

	assert.Equal(t, "LDX", Opcodes[bus.Read(c.PC)].Mnemonic)

	for _, want := range []struct {
		M        uint8
		A        uint8
		X        uint8
		Y        uint8
		InstName string
	}{
		{M: 0xa, A: 0, X: 0xa, Y: 0, InstName: "STX"},
		{M: 0xa, A: 0, X: 0xa, Y: 0, InstName: "LDX"},
		{M: 3, A: 0, X: 3, Y: 0, InstName: "STX"},
		{M: 3, A: 0, X: 3, Y: 0, InstName: "LDY"},
		{M: 0xa, A: 0, X: 3, Y: 0xa, InstName: "LDA"},
		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "CLC"},

		{M: 0, A: 0, X: 3, Y: 0xa, InstName: "ADC"},
		{M: 3, A: 3, X: 3, Y: 0xa, InstName: "DEY"},
		{M: 3, A: 3, X: 3, Y: 9, InstName: "BNE"},

		{M: 0x03, A: 3, X: 3, Y: 9, InstName: "ADC"}, // note: we jumped back; BNE doesn't touch M
		{M: 0x03, A: 6, X: 3, Y: 9, InstName: "DEY"},
		{M: 0x03, A: 6, X: 3, Y: 8, InstName: "BNE"},

		{M: 0x03, A: 6, X: 3, Y: 8, InstName: "ADC"},
		{M: 0x03, A: 9, X: 3, Y: 8, InstName: "DEY"},
		{M: 0x03, A: 9, X: 3, Y: 7, InstName: "BNE"},

		{M: 0x03, A: 9, X: 3, Y: 7, InstName: "ADC"},
		{M: 0x03, A: 12, X: 3, Y: 7, InstName: "DEY"},
		{M: 0x03, A: 12, X: 3, Y: 6, InstName: "BNE"},

		{M: 0x03, A: 12, X: 3, Y: 6, InstName: "ADC"},
		{M: 0x03, A: 15, X: 3, Y: 6, InstName: "DEY"},
		{M: 0x03, A: 15, X: 3, Y: 5, InstName: "BNE"},

		{M: 0x03, A: 15, X: 3, Y: 5, InstName: "ADC"},
		{M: 0x03, A: 18, X: 3, Y: 5, InstName: "DEY"},
		{M: 0x03, A: 18, X: 3, Y: 4, InstName: "BNE"},

		{M: 0x03, A: 18, X: 3, Y: 4, InstName: "ADC"},
		{M: 0x03, A: 21, X: 3, Y: 4, InstName: "DEY"},
		{M: 0x03, A: 21, X: 3, Y: 3, InstName: "BNE"},

		{M: 0x03, A: 21, X: 3, Y: 3, InstName: "ADC"},
		{M: 0x03, A: 24, X: 3, Y: 3, InstName: "DEY"},
		{M: 0x03, A: 24, X: 3, Y: 2, InstName: "BNE"},

		{M: 0x03, A: 24, X: 3, Y: 2, InstName: "ADC"},
		{M: 0x03, A: 27, X: 3, Y: 2, InstName: "DEY"},
		{M: 0x03, A: 27, X: 3, Y: 1, InstName: "BNE"},

		{M: 0x03, A: 27, X: 3, Y: 1, InstName: "ADC"},
		{M: 0x03, A: 30, X: 3, Y: 1, InstName: "DEY"},
		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "BNE"},

		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "STA"}, // BNE not taken; still doesn't touch M
		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "NOP"}, // STA doesn't touch M either
		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "NOP"},
		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "NOP"},
		{M: 0x03, A: 30, X: 3, Y: 0, InstName: "BRK"},
	} {
		end, _, err := c.Next()
		assert.NoError(t, err)
		currInst := Opcodes[bus.Read(c.PC)].Mnemonic
		assert.Equal(t, want.M, c.M, "incorrect M before %s", currInst)
		assert.Equal(t, want.A, c.A, "incorrect A before %s", currInst)
		assert.Equal(t, want.X, c.X, "incorrect X before %s", currInst)
		assert.Equal(t, want.Y, c.Y, "incorrect Y before %s", currInst)
		if want.InstName == "BRK" {
			// BRK is the next instruction; execute it.
			end, _, err = c.Next()
			assert.NoError(t, err)
			assert.True(t, end)
		}
	}

	assert.Equal(t, uint8(10), bus.RAM[0])
	assert.Equal(t, uint8(3), bus.RAM[1])
	assert.Equal(t, uint8(30), bus.RAM[2])
}
