package processor

import (
	"errors"

	"github.com/cs101course/microprocessorExamples/translate"
)

var f = translate.From

var (
	// Opcode range errors
	ErrRangeSyntax   = errors.New(f("range syntax"))
	ErrRangeReversed = errors.New(f("range reversed"))

	// Processor configuration errors
	ErrAddressCount      = errors.New(f("memory address count mismatch"))
	ErrRegisterMissing   = errors.New(f("required register missing"))
	ErrRegisterDuplicate = errors.New(f("register duplicated"))
	ErrRegisterUnknown   = errors.New(f("register unknown"))
	ErrRegisterInUse     = errors.New(f("register in use"))
	ErrOpcodeRange       = errors.New(f("opcode out of range"))
	ErrIpIncrement       = errors.New(f("ip increment invalid"))
	ErrExecuteMissing    = errors.New(f("execute missing"))
	ErrCapability        = errors.New(f("capability not provided"))
)

// ErrRange reports a malformed opcode range.
type ErrRange struct {
	Range string
	Err   error
}

func (err ErrRange) Error() string {
	return f("opcode range '%v' %v", err.Range, err.Err)
}

func (err ErrRange) Unwrap() error {
	return err.Err
}

// ErrInstruction reports a configuration error of a single opcode.
type ErrInstruction struct {
	Opcode int
	Err    error
}

func (err ErrInstruction) Error() string {
	return f("opcode %v: %v", err.Opcode, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrConfig reports a processor configuration error.
type ErrConfig struct {
	Processor string
	Err       error
}

func (err ErrConfig) Error() string {
	return f("processor '%v': %v", err.Processor, err.Err)
}

func (err ErrConfig) Unwrap() error {
	return err.Err
}
