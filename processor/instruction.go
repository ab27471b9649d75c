package processor

import (
	"iter"
	"maps"
	"slices"

	"github.com/cs101course/microprocessorExamples/peripheral"
)

// Instruction describes the behaviour of one opcode.
type Instruction struct {
	Description string      // Human readable description.
	Execute     func(State) // Side effects on the processor state.
	IpIncrement int         // 1 for no operand, 2 for one operand word.

	Mnemonic string // Optional assembler mnemonic.
	Code     string // Optional pseudo-code of the effect.

	Requires peripheral.CapabilitySet // Peripherals touched by Execute.
	Uses     []string                 // Registers read or written, other than IP and IS.
}

// HasOperand returns true if the instruction consumes the following word.
func (in Instruction) HasOperand() bool {
	return in.IpIncrement == 2
}

// Table maps opcodes to instructions. Missing opcodes are undocumented.
type Table map[int]Instruction

// Dense builds a table from a list indexed by opcode.
func Dense(list ...Instruction) (table Table) {
	table = make(Table, len(list))
	for opcode, in := range list {
		table[opcode] = in
	}
	return
}

// Lookup returns the instruction for the opcode, if defined.
func (table Table) Lookup(opcode int) (in Instruction, ok bool) {
	in, ok = table[opcode]
	return
}

// Len returns the number of defined opcodes.
func (table Table) Len() int {
	return len(table)
}

// Opcodes iterates over the defined opcodes in ascending order.
func (table Table) Opcodes() iter.Seq[int] {
	return slices.Values(slices.Sorted(maps.Keys(table)))
}

// All iterates over the defined opcodes and instructions in ascending order.
func (table Table) All() iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		for opcode := range table.Opcodes() {
			if !yield(opcode, table[opcode]) {
				return
			}
		}
	}
}

// Clone returns a private copy of the table. Instructions are copied by
// value; their Execute closures are shared.
func (table Table) Clone() Table {
	if table == nil {
		return Table{}
	}
	return maps.Clone(table)
}

// Mnemonic returns the opcode of a mnemonic, if any instruction has it.
func (table Table) Mnemonic(mnemonic string) (opcode int, ok bool) {
	for op, in := range table.All() {
		if len(in.Mnemonic) != 0 && in.Mnemonic == mnemonic {
			return op, true
		}
	}
	return
}
