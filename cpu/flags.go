package cpu

import "github.com/hejops/nes6502/mask"

// Bit positions of the status (P) register, expressed in the mask
// package's 1-indexed-from-MSB scheme. Wire layout, LSB to MSB:
// C(0) Z(1) I(2) D(3) B(4) U(5) V(6) N(7).
const (
	flagN = mask.I1
	flagV = mask.I2
	flagU = mask.I3
	flagB = mask.I4
	flagD = mask.I5
	flagI = mask.I6
	flagZ = mask.I7
	flagC = mask.I8
)

// getFlag returns 1 if the bit at pos is set, 0 otherwise.
func (c *CPU) getFlag(pos mask.ByteIndex) byte {
	if mask.IsSet(c.P, pos) {
		return 1
	}
	return 0
}

// setFlag sets or clears the bit at pos. mask.Set only ever ORs bits in,
// so clearing goes through mask.Unset.
func (c *CPU) setFlag(pos mask.ByteIndex, on bool) {
	if on {
		c.P = mask.Set(c.P, pos, 1)
		return
	}
	c.P = mask.Unset(c.P, pos, pos)
}

// calcZero reports whether result should set the Zero flag.
func calcZero(result byte) bool { return result == 0 }

// calcNegative reports whether result should set the Negative flag: bit 7
// of the result, exactly.
func calcNegative(result byte) bool { return result&0x80 != 0 }

// setZN is the common "set Z and N from this result byte" pattern shared
// by almost every instruction that loads a value into a register.
func (c *CPU) setZN(result byte) {
	c.setFlag(flagZ, calcZero(result))
	c.setFlag(flagN, calcNegative(result))
}

func (c *CPU) Carry() bool            { return c.getFlag(flagC) == 1 }
func (c *CPU) SetCarry(on bool)       { c.setFlag(flagC, on) }
func (c *CPU) Zero() bool             { return c.getFlag(flagZ) == 1 }
func (c *CPU) SetZero(on bool)        { c.setFlag(flagZ, on) }
func (c *CPU) InterruptDisable() bool { return c.getFlag(flagI) == 1 }
func (c *CPU) Decimal() bool          { return c.getFlag(flagD) == 1 }
func (c *CPU) Overflow() bool         { return c.getFlag(flagV) == 1 }
func (c *CPU) SetOverflow(on bool)    { c.setFlag(flagV, on) }
func (c *CPU) Negative() bool         { return c.getFlag(flagN) == 1 }
func (c *CPU) SetNegative(on bool)         { c.setFlag(flagN, on) }
func (c *CPU) SetInterruptDisable(on bool) { c.setFlag(flagI, on) }
func (c *CPU) SetDecimal(on bool)          { c.setFlag(flagD, on) }
