package processor

import (
	"fmt"
	"slices"
)

// Downgrade derives a restricted processor from src.
//
// The result is a copy of src renamed to name, with every opcode named
// by deletions removed from its table and every register in registers
// removed from its register names. A deletion is either a single opcode
// "N" or an inclusive range "LOW-HIGH". Deleting an opcode or register
// that is not present does nothing.
//
// The table and register names of the result are private copies; src is
// never modified. Peripherals, the undocumented resolver and execute
// closures are shared, as they are immutable.
//
// A malformed deletion, an attempt to remove IP or IS, or removing a
// register still used by a remaining instruction is reported as an error.
// Instructions of an undocumented *Rules resolver count as remaining.
func Downgrade(src *Processor, name string, deletions []string, registers ...string) (proc *Processor, err error) {
	defer func() {
		if err != nil {
			proc = nil
			err = ErrConfig{Processor: name, Err: err}
		}
	}()

	ranges := make([]Range, 0, len(deletions))
	for _, text := range deletions {
		var rng Range
		rng, err = ParseRange(text)
		if err != nil {
			return
		}
		ranges = append(ranges, rng)
	}

	copied := *src
	proc = &copied
	proc.Name = name
	proc.Instructions = src.Instructions.Clone()
	proc.RegisterNames = slices.Clone(src.RegisterNames)
	proc.Columns = slices.Clone(src.Columns)
	proc.Peripherals = slices.Clone(src.Peripherals)

	for _, rng := range ranges {
		// Iterate the table rather than the range: ranges may be huge.
		for opcode := range proc.Instructions {
			if rng.Contains(opcode) {
				delete(proc.Instructions, opcode)
			}
		}
	}

	for _, reg := range registers {
		if reg == REG_IP || reg == REG_IS {
			err = fmt.Errorf("%w: %v", ErrRegisterInUse, reg)
			return
		}
	}
	proc.RegisterNames = slices.DeleteFunc(proc.RegisterNames, func(reg string) bool {
		return slices.Contains(registers, reg)
	})

	for opcode, in := range proc.Instructions.All() {
		if reg, ok := proc.missingRegister(in); ok {
			err = ErrInstruction{Opcode: opcode, Err: fmt.Errorf("%w: %v", ErrRegisterInUse, reg)}
			return
		}
	}

	// Undocumented opcodes still execute, so their rules count as users.
	if rules, ok := proc.Undocumented.(*Rules); ok {
		for _, rule := range rules.Rules {
			if reg, ok := proc.missingRegister(rule.Instruction); ok {
				err = ErrRange{Range: rule.Range.String(), Err: fmt.Errorf("%w: %v", ErrRegisterInUse, reg)}
				return
			}
		}
		if reg, ok := proc.missingRegister(rules.Default); ok {
			err = fmt.Errorf("%w: %v", ErrRegisterInUse, reg)
			return
		}
	}

	return
}

// missingRegister returns the first register in.Uses that proc lacks.
func (proc *Processor) missingRegister(in Instruction) (reg string, ok bool) {
	for _, reg = range in.Uses {
		if !proc.HasRegister(reg) {
			return reg, true
		}
	}
	return "", false
}
