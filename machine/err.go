package machine

import (
	"errors"

	"github.com/cs101course/microprocessorExamples/translate"
)

var f = translate.From

var (
	ErrStepLimit    = errors.New(f("step limit reached"))
	ErrImageSize    = errors.New(f("program image larger than memory"))
	ErrRegisterName = errors.New(f("no such register"))
)

// ErrRuntime reports an error at a given instruction pointer.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v: %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
