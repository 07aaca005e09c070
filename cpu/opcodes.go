package cpu

// An Opcode associates one of the 256 possible opcode bytes with the
// addressing mode it uses and the executor that implements it. Multiple
// opcode bytes may share the same Exec (e.g. every ADC addressing-mode
// variant), differing only in how the operand is fetched, which is the
// addressing-mode resolver's job, not the instruction's.
type Opcode struct {
	Mnemonic string
	Cycles   byte // base cycles, before any page-cross penalty
	Mode     AddressingMode

	// PageCrossPenalty is true only for the nine read-style mnemonics
	// (ADC, AND, EOR, LDA, LDX, LDY, ORA, CMP, SBC) on AbsoluteX,
	// AbsoluteY or IndirectY. Stores and read-modify-write instructions
	// never receive the +1, regardless of whether the address crossed a
	// page, matching the page-cross accounting rule exactly.
	PageCrossPenalty bool

	// Exec performs the instruction; it returns any extra cycles beyond
	// Cycles that aren't accounted for by PageCrossPenalty. Every
	// executor in this core returns 0: page-cross is the only source of
	// variable timing this core models.
	Exec func(c *CPU) byte

	// ReadsOperand is true for mnemonics whose Exec consumes c.M: loads,
	// read-modify-write, and read-style ALU ops. Stores, JMP, JSR and the
	// branches consume only c.AbsAddress, so decode must not read memory
	// on their behalf -- on the NES bus a handful of addresses (the PPU's
	// write-only ports) fault on read, and those instructions are exactly
	// the ones legitimately used to address them (e.g. STA $2000).
	ReadsOperand bool
}

// Opcodes maps each of the 151 official 6502 opcode bytes to its decoded
// form. Hand-built from the standard 6502 opcode reference
// (http://www.6502.org/tutorials/6502opcodes.html).
var Opcodes = map[byte]Opcode{
	0x69: {"ADC", 2, Immediate, false, (*CPU).ADC, true},
	0x65: {"ADC", 3, ZeroPage, false, (*CPU).ADC, true},
	0x75: {"ADC", 4, ZeroPageX, false, (*CPU).ADC, true},
	0x6D: {"ADC", 4, Absolute, false, (*CPU).ADC, true},
	0x7D: {"ADC", 4, AbsoluteX, true, (*CPU).ADC, true},
	0x79: {"ADC", 4, AbsoluteY, true, (*CPU).ADC, true},
	0x61: {"ADC", 6, IndirectX, false, (*CPU).ADC, true},
	0x71: {"ADC", 5, IndirectY, true, (*CPU).ADC, true},

	0x29: {"AND", 2, Immediate, false, (*CPU).AND, true},
	0x25: {"AND", 3, ZeroPage, false, (*CPU).AND, true},
	0x35: {"AND", 4, ZeroPageX, false, (*CPU).AND, true},
	0x2D: {"AND", 4, Absolute, false, (*CPU).AND, true},
	0x3D: {"AND", 4, AbsoluteX, true, (*CPU).AND, true},
	0x39: {"AND", 4, AbsoluteY, true, (*CPU).AND, true},
	0x21: {"AND", 6, IndirectX, false, (*CPU).AND, true},
	0x31: {"AND", 5, IndirectY, true, (*CPU).AND, true},

	0x0A: {"ASL", 2, Accumulator, false, (*CPU).ASL, true},
	0x06: {"ASL", 5, ZeroPage, false, (*CPU).ASL, true},
	0x16: {"ASL", 6, ZeroPageX, false, (*CPU).ASL, true},
	0x0E: {"ASL", 6, Absolute, false, (*CPU).ASL, true},
	0x1E: {"ASL", 7, AbsoluteX, false, (*CPU).ASL, true},

	0x90: {"BCC", 2, Relative, false, (*CPU).BCC, false},
	0xB0: {"BCS", 2, Relative, false, (*CPU).BCS, false},
	0xF0: {"BEQ", 2, Relative, false, (*CPU).BEQ, false},

	0x24: {"BIT", 3, ZeroPage, false, (*CPU).BIT, true},
	0x2C: {"BIT", 4, Absolute, false, (*CPU).BIT, true},

	0x30: {"BMI", 2, Relative, false, (*CPU).BMI, false},
	0xD0: {"BNE", 2, Relative, false, (*CPU).BNE, false},
	0x10: {"BPL", 2, Relative, false, (*CPU).BPL, false},

	0x00: {"BRK", 7, Implied, false, (*CPU).BRK, false},

	0x50: {"BVC", 2, Relative, false, (*CPU).BVC, false},
	0x70: {"BVS", 2, Relative, false, (*CPU).BVS, false},

	0x18: {"CLC", 2, Implied, false, (*CPU).CLC, false},
	0xD8: {"CLD", 2, Implied, false, (*CPU).CLD, false},
	0x58: {"CLI", 2, Implied, false, (*CPU).CLI, false},
	0xB8: {"CLV", 2, Implied, false, (*CPU).CLV, false},

	0xC9: {"CMP", 2, Immediate, false, (*CPU).CMP, true},
	0xC5: {"CMP", 3, ZeroPage, false, (*CPU).CMP, true},
	0xD5: {"CMP", 4, ZeroPageX, false, (*CPU).CMP, true},
	0xCD: {"CMP", 4, Absolute, false, (*CPU).CMP, true},
	0xDD: {"CMP", 4, AbsoluteX, true, (*CPU).CMP, true},
	0xD9: {"CMP", 4, AbsoluteY, true, (*CPU).CMP, true},
	0xC1: {"CMP", 6, IndirectX, false, (*CPU).CMP, true},
	0xD1: {"CMP", 5, IndirectY, true, (*CPU).CMP, true},

	0xE0: {"CPX", 2, Immediate, false, (*CPU).CPX, true},
	0xE4: {"CPX", 3, ZeroPage, false, (*CPU).CPX, true},
	0xEC: {"CPX", 4, Absolute, false, (*CPU).CPX, true},

	0xC0: {"CPY", 2, Immediate, false, (*CPU).CPY, true},
	0xC4: {"CPY", 3, ZeroPage, false, (*CPU).CPY, true},
	0xCC: {"CPY", 4, Absolute, false, (*CPU).CPY, true},

	0xC6: {"DEC", 5, ZeroPage, false, (*CPU).DEC, true},
	0xD6: {"DEC", 6, ZeroPageX, false, (*CPU).DEC, true},
	0xCE: {"DEC", 6, Absolute, false, (*CPU).DEC, true},
	0xDE: {"DEC", 7, AbsoluteX, false, (*CPU).DEC, true},

	0xCA: {"DEX", 2, Implied, false, (*CPU).DEX, false},
	0x88: {"DEY", 2, Implied, false, (*CPU).DEY, false},

	0x49: {"EOR", 2, Immediate, false, (*CPU).EOR, true},
	0x45: {"EOR", 3, ZeroPage, false, (*CPU).EOR, true},
	0x55: {"EOR", 4, ZeroPageX, false, (*CPU).EOR, true},
	0x4D: {"EOR", 4, Absolute, false, (*CPU).EOR, true},
	0x5D: {"EOR", 4, AbsoluteX, true, (*CPU).EOR, true},
	0x59: {"EOR", 4, AbsoluteY, true, (*CPU).EOR, true},
	0x41: {"EOR", 6, IndirectX, false, (*CPU).EOR, true},
	0x51: {"EOR", 5, IndirectY, true, (*CPU).EOR, true},

	0xE6: {"INC", 5, ZeroPage, false, (*CPU).INC, true},
	0xF6: {"INC", 6, ZeroPageX, false, (*CPU).INC, true},
	0xEE: {"INC", 6, Absolute, false, (*CPU).INC, true},
	0xFE: {"INC", 7, AbsoluteX, false, (*CPU).INC, true},

	0xE8: {"INX", 2, Implied, false, (*CPU).INX, false},
	0xC8: {"INY", 2, Implied, false, (*CPU).INY, false},

	0x4C: {"JMP", 3, Absolute, false, (*CPU).JMP, false},
	0x6C: {"JMP", 5, Indirect, false, (*CPU).JMP, false},

	0x20: {"JSR", 6, Absolute, false, (*CPU).JSR, false},

	0xA9: {"LDA", 2, Immediate, false, (*CPU).LDA, true},
	0xA5: {"LDA", 3, ZeroPage, false, (*CPU).LDA, true},
	0xB5: {"LDA", 4, ZeroPageX, false, (*CPU).LDA, true},
	0xAD: {"LDA", 4, Absolute, false, (*CPU).LDA, true},
	0xBD: {"LDA", 4, AbsoluteX, true, (*CPU).LDA, true},
	0xB9: {"LDA", 4, AbsoluteY, true, (*CPU).LDA, true},
	0xA1: {"LDA", 6, IndirectX, false, (*CPU).LDA, true},
	0xB1: {"LDA", 5, IndirectY, true, (*CPU).LDA, true},

	0xA2: {"LDX", 2, Immediate, false, (*CPU).LDX, true},
	0xA6: {"LDX", 3, ZeroPage, false, (*CPU).LDX, true},
	0xB6: {"LDX", 4, ZeroPageY, false, (*CPU).LDX, true},
	0xAE: {"LDX", 4, Absolute, false, (*CPU).LDX, true},
	0xBE: {"LDX", 4, AbsoluteY, true, (*CPU).LDX, true},

	0xA0: {"LDY", 2, Immediate, false, (*CPU).LDY, true},
	0xA4: {"LDY", 3, ZeroPage, false, (*CPU).LDY, true},
	0xB4: {"LDY", 4, ZeroPageX, false, (*CPU).LDY, true},
	0xAC: {"LDY", 4, Absolute, false, (*CPU).LDY, true},
	0xBC: {"LDY", 4, AbsoluteX, true, (*CPU).LDY, true},

	0x4A: {"LSR", 2, Accumulator, false, (*CPU).LSR, true},
	0x46: {"LSR", 5, ZeroPage, false, (*CPU).LSR, true},
	0x56: {"LSR", 6, ZeroPageX, false, (*CPU).LSR, true},
	0x4E: {"LSR", 6, Absolute, false, (*CPU).LSR, true},
	0x5E: {"LSR", 7, AbsoluteX, false, (*CPU).LSR, true},

	0xEA: {"NOP", 2, Implied, false, (*CPU).NOP, false},

	0x09: {"ORA", 2, Immediate, false, (*CPU).ORA, true},
	0x05: {"ORA", 3, ZeroPage, false, (*CPU).ORA, true},
	0x15: {"ORA", 4, ZeroPageX, false, (*CPU).ORA, true},
	0x0D: {"ORA", 4, Absolute, false, (*CPU).ORA, true},
	0x1D: {"ORA", 4, AbsoluteX, true, (*CPU).ORA, true},
	0x19: {"ORA", 4, AbsoluteY, true, (*CPU).ORA, true},
	0x01: {"ORA", 6, IndirectX, false, (*CPU).ORA, true},
	0x11: {"ORA", 5, IndirectY, true, (*CPU).ORA, true},

	0x48: {"PHA", 3, Implied, false, (*CPU).PHA, false},
	0x08: {"PHP", 3, Implied, false, (*CPU).PHP, false},
	0x68: {"PLA", 4, Implied, false, (*CPU).PLA, false},
	0x28: {"PLP", 4, Implied, false, (*CPU).PLP, false},

	0x2A: {"ROL", 2, Accumulator, false, (*CPU).ROL, true},
	0x26: {"ROL", 5, ZeroPage, false, (*CPU).ROL, true},
	0x36: {"ROL", 6, ZeroPageX, false, (*CPU).ROL, true},
	0x2E: {"ROL", 6, Absolute, false, (*CPU).ROL, true},
	0x3E: {"ROL", 7, AbsoluteX, false, (*CPU).ROL, true},

	0x6A: {"ROR", 2, Accumulator, false, (*CPU).ROR, true},
	0x66: {"ROR", 5, ZeroPage, false, (*CPU).ROR, true},
	0x76: {"ROR", 6, ZeroPageX, false, (*CPU).ROR, true},
	0x6E: {"ROR", 6, Absolute, false, (*CPU).ROR, true},
	0x7E: {"ROR", 7, AbsoluteX, false, (*CPU).ROR, true},

	0x40: {"RTI", 6, Implied, false, (*CPU).RTI, false},
	0x60: {"RTS", 6, Implied, false, (*CPU).RTS, false},

	0xE9: {"SBC", 2, Immediate, false, (*CPU).SBC, true},
	0xE5: {"SBC", 3, ZeroPage, false, (*CPU).SBC, true},
	0xF5: {"SBC", 4, ZeroPageX, false, (*CPU).SBC, true},
	0xED: {"SBC", 4, Absolute, false, (*CPU).SBC, true},
	0xFD: {"SBC", 4, AbsoluteX, true, (*CPU).SBC, true},
	0xF9: {"SBC", 4, AbsoluteY, true, (*CPU).SBC, true},
	0xE1: {"SBC", 6, IndirectX, false, (*CPU).SBC, true},
	0xF1: {"SBC", 5, IndirectY, true, (*CPU).SBC, true},

	0x38: {"SEC", 2, Implied, false, (*CPU).SEC, false},
	0xF8: {"SED", 2, Implied, false, (*CPU).SED, false},
	0x78: {"SEI", 2, Implied, false, (*CPU).SEI, false},

	0x85: {"STA", 3, ZeroPage, false, (*CPU).STA, false},
	0x95: {"STA", 4, ZeroPageX, false, (*CPU).STA, false},
	0x8D: {"STA", 4, Absolute, false, (*CPU).STA, false},
	0x9D: {"STA", 5, AbsoluteX, false, (*CPU).STA, false},
	0x99: {"STA", 5, AbsoluteY, false, (*CPU).STA, false},
	0x81: {"STA", 6, IndirectX, false, (*CPU).STA, false},
	0x91: {"STA", 6, IndirectY, false, (*CPU).STA, false},

	0x86: {"STX", 3, ZeroPage, false, (*CPU).STX, false},
	0x96: {"STX", 4, ZeroPageY, false, (*CPU).STX, false},
	0x8E: {"STX", 4, Absolute, false, (*CPU).STX, false},

	0x84: {"STY", 3, ZeroPage, false, (*CPU).STY, false},
	0x94: {"STY", 4, ZeroPageX, false, (*CPU).STY, false},
	0x8C: {"STY", 4, Absolute, false, (*CPU).STY, false},

	0xAA: {"TAX", 2, Implied, false, (*CPU).TAX, false},
	0xA8: {"TAY", 2, Implied, false, (*CPU).TAY, false},
	0xBA: {"TSX", 2, Implied, false, (*CPU).TSX, false},
	0x8A: {"TXA", 2, Implied, false, (*CPU).TXA, false},
	0x9A: {"TXS", 2, Implied, false, (*CPU).TXS, false},
	0x98: {"TYA", 2, Implied, false, (*CPU).TYA, false},
}
