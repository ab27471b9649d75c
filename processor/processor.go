package processor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cs101course/microprocessorExamples/peripheral"
)

// Processor is the read-only descriptor of a processor.
type Processor struct {
	Name               string
	MemoryBitSize      int
	RegisterBitSize    int
	NumMemoryAddresses int
	RegisterNames      []string

	Peripherals  []peripheral.Peripheral
	Instructions Table
	Undocumented Resolver // May be nil.

	Columns []string // Display columns for instruction listings. May be nil.
}

// Capabilities returns the union of the peripherals' capabilities.
func (proc *Processor) Capabilities() peripheral.CapabilitySet {
	return peripheral.CapabilitiesOf(proc.Peripherals)
}

// HasRegister returns true if name is an advertised register.
func (proc *Processor) HasRegister(name string) bool {
	return slices.Contains(proc.RegisterNames, name)
}

// Instruction returns the instruction executed for opcode, falling back
// to the undocumented resolver for opcodes missing from the table.
func (proc *Processor) Instruction(opcode int) (in Instruction, documented bool) {
	in, documented = proc.Instructions.Lookup(opcode)
	if documented {
		return
	}

	if proc.Undocumented != nil {
		in = proc.Undocumented.Resolve(opcode)
	} else {
		in = Undefined
	}

	return
}

// OpcodeLimit returns the number of encodable opcodes.
func (proc *Processor) OpcodeLimit() int {
	return 1 << proc.RegisterBitSize
}

// NewState returns a fresh peripheral state for the processor.
func (proc *Processor) NewState() *peripheral.State {
	return peripheral.NewState(proc.Peripherals...)
}

// String returns the processor name.
func (proc *Processor) String() string {
	return proc.Name
}

// Validate checks the descriptor invariants, and returns every violation
// found joined into one error.
func (proc *Processor) Validate() (err error) {
	var errs []error

	defer func() {
		if len(errs) > 0 {
			err = ErrConfig{Processor: proc.Name, Err: errors.Join(errs...)}
		}
	}()

	if proc.MemoryBitSize < 0 || proc.NumMemoryAddresses != 1<<proc.MemoryBitSize {
		errs = append(errs, ErrAddressCount)
	}

	seen := make(map[string]bool, len(proc.RegisterNames))
	for _, name := range proc.RegisterNames {
		if seen[name] {
			errs = append(errs, fmt.Errorf("%w: %v", ErrRegisterDuplicate, name))
		}
		seen[name] = true
	}
	for _, name := range []string{REG_IP, REG_IS} {
		if !seen[name] {
			errs = append(errs, fmt.Errorf("%w: %v", ErrRegisterMissing, name))
		}
	}

	caps := proc.Capabilities()
	limit := proc.OpcodeLimit()
	for opcode, in := range proc.Instructions.All() {
		if opcode < 0 || opcode >= limit {
			errs = append(errs, ErrInstruction{Opcode: opcode, Err: ErrOpcodeRange})
		}
		if err := validateInstruction(in, caps, seen); err != nil {
			errs = append(errs, ErrInstruction{Opcode: opcode, Err: err})
		}
	}

	if rules, ok := proc.Undocumented.(*Rules); ok {
		for _, rule := range rules.Rules {
			if rule.Range.High >= limit {
				errs = append(errs, ErrRange{Range: rule.Range.String(), Err: ErrOpcodeRange})
			}
			if err := validateInstruction(rule.Instruction, caps, seen); err != nil {
				errs = append(errs, ErrRange{Range: rule.Range.String(), Err: err})
			}
		}
		if err := validateInstruction(rules.Default, caps, seen); err != nil {
			errs = append(errs, err)
		}
	}

	return
}

// validateInstruction checks a single instruction against the processor's
// capabilities and registers.
func validateInstruction(in Instruction, caps peripheral.CapabilitySet, registers map[string]bool) (err error) {
	var errs []error

	if in.IpIncrement != 1 && in.IpIncrement != 2 {
		errs = append(errs, ErrIpIncrement)
	}
	if in.Execute == nil {
		errs = append(errs, ErrExecuteMissing)
	}
	if missing := caps.Missing(in.Requires); missing != 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrCapability, missing))
	}
	for _, name := range in.Uses {
		if !registers[name] {
			errs = append(errs, fmt.Errorf("%w: %v", ErrRegisterUnknown, name))
		}
	}

	return errors.Join(errs...)
}
