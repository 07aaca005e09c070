// Command testvectors runs the per-opcode JSON test-vector format against
// the cpu package: each vector supplies an initial CPU/RAM state, the
// harness calls Next() exactly once, and diffs the resulting state against
// the vector's expected final state.
//
// Usage: testvectors <vectors.json> [<vectors.json> ...]
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-test/deep"

	"github.com/hejops/nes6502/cpu"
	"github.com/hejops/nes6502/mem"
)

// ramCell is one {"addr": ..., "value": ...} entry in a vector's ram list.
type ramCell struct {
	Addr  uint16 `json:"addr"`
	Value uint8  `json:"value"`
}

// vectorState is the shape of both "initial" and "final" in a vector.
type vectorState struct {
	PC  uint16    `json:"pc"`
	S   uint8     `json:"s"`
	A   uint8     `json:"a"`
	X   uint8     `json:"x"`
	Y   uint8     `json:"y"`
	P   uint8     `json:"p"`
	RAM []ramCell `json:"ram"`
}

// vector is one named test case.
type vector struct {
	Name    string      `json:"name"`
	Initial vectorState `json:"initial"`
	Final   vectorState `json:"final"`
}

func loadState(bus *mem.FlatBus, c *cpu.CPU, s vectorState) {
	c.PC = s.PC
	c.SP = s.S
	c.A = s.A
	c.X = s.X
	c.Y = s.Y
	c.P = s.P
	for _, cell := range s.RAM {
		bus.RAM[cell.Addr] = cell.Value
	}
}

// snapshot captures exactly the fields a vector's "final" block describes,
// so deep.Equal compares like with like instead of flagging every untouched
// RAM byte as a diff.
func snapshot(bus *mem.FlatBus, c *cpu.CPU, ramAddrs []ramCell) vectorState {
	s := vectorState{PC: c.PC, S: c.SP, A: c.A, X: c.X, Y: c.Y, P: c.P}
	for _, cell := range ramAddrs {
		s.RAM = append(s.RAM, ramCell{Addr: cell.Addr, Value: bus.RAM[cell.Addr]})
	}
	return s
}

func runVector(v vector) error {
	bus := &mem.FlatBus{}
	c := cpu.New(bus)
	loadState(bus, c, v.Initial)

	if _, _, err := c.Next(); err != nil {
		return fmt.Errorf("%s: Next: %w", v.Name, err)
	}

	got := snapshot(bus, c, v.Final.RAM)
	if diff := deep.Equal(got, v.Final); diff != nil {
		return fmt.Errorf("%s: mismatch: %v", v.Name, diff)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: testvectors <vectors.json> ...")
		os.Exit(2)
	}

	failures := 0
	total := 0

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		var vectors []vector
		if err := json.Unmarshal(data, &vectors); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}

		for _, v := range vectors {
			total++
			if err := runVector(v); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failures++
			}
		}
	}

	fmt.Printf("%d/%d vectors passed\n", total-failures, total)
	if failures > 0 {
		os.Exit(1)
	}
}
