package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs101course/microprocessorExamples/catalog"
	"github.com/cs101course/microprocessorExamples/machine"
	"github.com/cs101course/microprocessorExamples/processor"
)

func lookup(t *testing.T, code string) *processor.Processor {
	proc, ok := catalog.Default().Lookup(code)
	if !assert.True(t, ok, code) {
		t.FailNow()
	}
	return proc
}

func TestAssemblerMnemonics(t *testing.T) {
	assert := assert.New(t)

	source := `
; Print a greeting, then a character.
.equ CH 'A'
start:  LDR0 msg
        prints
        LDR0 CH          ; mnemonics ignore case
        PRINTC
        HALT
msg:    .string "Hi"     ; greeting
`

	asm := &Assembler{Processor: lookup(t, "8iv")}
	prog, err := asm.Parse(strings.NewReader(source))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]int{17, 7, 130, 17, 65, 129, 0, 'H', 'i', 0}, prog.Image())
	assert.Equal(0, asm.Label["start"])
	assert.Equal(7, asm.Label["msg"])

	m := machine.NewMachine(asm.Processor, 0)
	assert.NoError(m.Load(prog.Image()))
	assert.NoError(m.Run(100))
	assert.Equal("HiA", m.Peripherals().Lcd.Output)
}

func TestAssemblerNumeric(t *testing.T) {
	assert := assert.New(t)

	source := `
        8 3     ; R0 = 3
loop:   7       ; print R0
        2
        15 loop
        0
`

	asm := &Assembler{Processor: lookup(t, "4iv")}
	prog, err := asm.Parse(strings.NewReader(source))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]int{8, 3, 7, 2, 15, 2, 0}, prog.Image())

	m := machine.NewMachine(asm.Processor, 0)
	assert.NoError(m.Load(prog.Image()))
	assert.NoError(m.Run(100))
	assert.Equal("321", m.Peripherals().Lcd.Output)
}

func TestAssemblerOperands(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		image  []int
	}){
		{"LDR0 0x10", []int{17, 16}},
		{"LDR0 -1", []int{17, 255}},
		{"LDR0 $( 2 * 3 )", []int{17, 6}},
		{"LDR0 $(end - 1)\nend:", []int{17, 1}},
		{"LDR0 $(COUNT + 1)", []int{17, 4}},
		{"LDR0 COUNT", []int{17, 3}},
		{"LDR0 '\\n'", []int{17, 10}},
		{"LDR0 ';' ; semicolon", []int{17, 59}},
		{".data 1 'a' $(300)", []int{1, 97, 44}},
		{"a: b: .data a b", []int{0, 0}},
		{"JMP later\n.data 9\nlater: HALT", []int{48, 3, 9, 0}},
		{"255", []int{255}},
	}

	for _, entry := range table {
		asm := &Assembler{Processor: lookup(t, "8iv")}
		asm.Predefine("COUNT", "3")
		prog, err := asm.Parse(strings.NewReader(entry.source))
		if !assert.NoError(err, entry.source) {
			continue
		}
		assert.Equal(entry.image, prog.Image(), entry.source)
	}
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		source string
		err    error
	}){
		{"FOO", ErrOpcodeUnknown},
		{"300", ErrOpcodeUnknown},
		{"LDR0", ErrOperandMissing},
		{"HALT 3", ErrOperandExtra},
		{"a: HALT\na: HALT", ErrLabelDuplicate},
		{".equ X", ErrEquateSyntax},
		{".equ X 1\n.equ X 2", ErrEquateDuplicate},
		{".org 5", ErrDirective},
		{`.string Hi`, ErrStringSyntax},
		{`.string "Hi" junk`, ErrStringSyntax},
	}

	for _, entry := range table {
		asm := &Assembler{Processor: lookup(t, "8iv")}
		_, err := asm.Parse(strings.NewReader(entry.source))
		assert.ErrorIs(err, entry.err, entry.source)
	}
}

func TestAssemblerTypedErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Processor: lookup(t, "8iv")}

	_, err := asm.Parse(strings.NewReader("HALT\nJMP nowhere"))
	var syntax ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(2, syntax.LineNo)
	}
	var missing ErrLabelMissing
	if assert.True(errors.As(err, &missing)) {
		assert.Equal(ErrLabelMissing("nowhere"), missing)
	}

	_, err = asm.Parse(strings.NewReader("LDR0 300"))
	var value ErrValueRange
	if assert.True(errors.As(err, &value)) {
		assert.Equal(ErrValueRange(300), value)
	}

	_, err = asm.Parse(strings.NewReader("LDR0 $(1//0)"))
	var expr ErrParseExpression
	assert.True(errors.As(err, &expr))

	_, err = asm.Parse(strings.NewReader("LDR0 0xZZ"))
	var number ErrParseNumber
	assert.True(errors.As(err, &number))
}

func TestAssemblerProgramSize(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Processor: lookup(t, "4i")}
	_, err := asm.Parse(strings.NewReader(".data" + strings.Repeat(" 0", 17)))
	assert.ErrorIs(err, ErrProgramSize)

	_, err = asm.Parse(strings.NewReader(".data" + strings.Repeat(" 0", 16)))
	assert.NoError(err)

	_, err = (&Assembler{}).Parse(strings.NewReader("HALT"))
	assert.ErrorIs(err, ErrNoProcessor)
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Processor: lookup(t, "8iv")}
	prog, err := asm.Parse(strings.NewReader("LDR0 1\nmsg: .string \"ab\""))
	if !assert.NoError(err) {
		return
	}

	dbg := prog.Debug(3)
	if assert.NotNil(dbg.Line) {
		assert.Equal(2, dbg.LineNo)
		assert.Equal(2, dbg.Address)
		assert.Equal(1, dbg.Index)
	}

	dbg = prog.Debug(200)
	assert.Nil(dbg.Line)
}
