// Command disasm walks an iNES ROM's PRG-ROM and prints one line per
// instruction, using the same opcode table the CPU executes against.
package main

import (
	"fmt"
	"os"

	"github.com/hejops/nes6502/cpu"
	"github.com/hejops/nes6502/rom"
)

func operandBytes(mode cpu.AddressingMode) int {
	switch mode {
	case cpu.Implied, cpu.Accumulator:
		return 0
	case cpu.Immediate, cpu.ZeroPage, cpu.ZeroPageX, cpu.ZeroPageY, cpu.Relative,
		cpu.IndirectX, cpu.IndirectY:
		return 1
	default: // Absolute, AbsoluteX, AbsoluteY, Indirect
		return 2
	}
}

func disassemble(prg []byte, base uint16) {
	for i := 0; i < len(prg); {
		addr := base + uint16(i)
		opByte := prg[i]
		op, ok := cpu.Opcodes[opByte]
		if !ok {
			fmt.Printf("%04X  %02X        .byte $%02X\n", addr, opByte, opByte)
			i++
			continue
		}

		n := operandBytes(op.Mode)
		if i+1+n > len(prg) {
			fmt.Printf("%04X  %02X        %s <truncated>\n", addr, opByte, op.Mnemonic)
			break
		}

		operand := prg[i+1 : i+1+n]
		fmt.Printf("%04X  %02X %-6x%s\n", addr, opByte, operand, op.Mnemonic)
		i += 1 + n
	}
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: disasm <rom.nes>")
		os.Exit(2)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	r, err := rom.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	disassemble(r.PRG, 0x8000)
}
