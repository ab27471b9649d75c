package asm

import (
	"errors"

	"github.com/cs101course/microprocessorExamples/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrStringSyntax    = errors.New(f(".string syntax"))
	ErrDirective       = errors.New(f("directive unknown"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrProgramSize     = errors.New(f("program exceeds memory"))
	ErrNoProcessor     = errors.New(f("no processor selected"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrValueRange reports a value that does not fit a memory word.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %d does not fit a word", int(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
