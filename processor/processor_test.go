package processor

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs101course/microprocessorExamples/peripheral"
)

func nop(desc string, inc int, uses ...string) Instruction {
	return Instruction{
		Description: desc,
		Execute:     func(State) {},
		IpIncrement: inc,
		Uses:        uses,
	}
}

func testProcessor() *Processor {
	return &Processor{
		Name:               "Test",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS", "R0", "R1", "SP"},
		Peripherals:        []peripheral.Peripheral{peripheral.Lcd{}, peripheral.Fire{}},
		Instructions: Dense(
			nop("halt", 1),
			nop("inc", 1, "R0"),
			nop("dec", 1, "R0"),
			nop("swap", 1, "R0", "R1"),
			nop("push", 1, "SP", "R0"),
			nop("pop", 1, "SP", "R0"),
			nop("load", 2, "R0"),
			nop("jump", 2),
		),
		Undocumented: Always(nop("fire", 1)),
	}
}

// sameTable compares two tables including the identity of the execute closures.
func sameTable(t *testing.T, expect, actual Table) {
	assert := assert.New(t)

	assert.Equal(slices.Collect(expect.Opcodes()), slices.Collect(actual.Opcodes()))
	for opcode, in := range expect.All() {
		got, ok := actual.Lookup(opcode)
		if !assert.True(ok, opcode) {
			continue
		}
		assert.Equal(in.Description, got.Description, opcode)
		assert.Equal(in.IpIncrement, got.IpIncrement, opcode)
		assert.Equal(in.Uses, got.Uses, opcode)
		assert.Equal(reflect.ValueOf(in.Execute).Pointer(), reflect.ValueOf(got.Execute).Pointer(), opcode)
	}
}

func TestDense(t *testing.T) {
	assert := assert.New(t)

	table := Dense(nop("a", 1), nop("b", 2))
	assert.Equal(2, table.Len())
	assert.Equal([]int{0, 1}, slices.Collect(table.Opcodes()))

	in, ok := table.Lookup(1)
	assert.True(ok)
	assert.Equal("b", in.Description)
	assert.True(in.HasOperand())

	_, ok = table.Lookup(2)
	assert.False(ok)
}

func TestTableMnemonic(t *testing.T) {
	assert := assert.New(t)

	table := Table{
		3:   {Description: "Add", Mnemonic: "ADD", IpIncrement: 1},
		128: {Description: "Print", Mnemonic: "PRINT", IpIncrement: 1},
		5:   {Description: "Unnamed", IpIncrement: 1},
	}

	opcode, ok := table.Mnemonic("PRINT")
	assert.True(ok)
	assert.Equal(128, opcode)

	_, ok = table.Mnemonic("")
	assert.False(ok)

	assert.Equal([]int{3, 5, 128}, slices.Collect(table.Opcodes()))
}

func TestProcessorInstruction(t *testing.T) {
	assert := assert.New(t)

	proc := testProcessor()

	in, ok := proc.Instruction(1)
	assert.True(ok)
	assert.Equal("inc", in.Description)

	in, ok = proc.Instruction(12)
	assert.False(ok)
	assert.Equal("fire", in.Description)

	proc.Undocumented = nil
	in, ok = proc.Instruction(12)
	assert.False(ok)
	assert.Equal(Undefined.Description, in.Description)
	assert.Equal(1, in.IpIncrement)
}

func TestProcessorValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(testProcessor().Validate())

	table := [](struct {
		name   string
		modify func(proc *Processor)
		err    error
	}){
		{"addresses", func(p *Processor) { p.NumMemoryAddresses = 15 }, ErrAddressCount},
		{"no-ip", func(p *Processor) { p.RegisterNames = []string{"IS", "R0", "R1", "SP"} }, ErrRegisterMissing},
		{"dup", func(p *Processor) { p.RegisterNames = append(p.RegisterNames, "R0") }, ErrRegisterDuplicate},
		{"opcode", func(p *Processor) { p.Instructions[16] = nop("big", 1) }, ErrOpcodeRange},
		{"negative", func(p *Processor) { p.Instructions[-1] = nop("neg", 1) }, ErrOpcodeRange},
		{"increment", func(p *Processor) { p.Instructions[9] = nop("three", 3) }, ErrIpIncrement},
		{"execute", func(p *Processor) { p.Instructions[9] = Instruction{IpIncrement: 1} }, ErrExecuteMissing},
		{"register", func(p *Processor) { p.Instructions[9] = nop("bp", 1, "BP") }, ErrRegisterUnknown},
		{"capability", func(p *Processor) {
			in := nop("beep", 1)
			in.Requires = peripheral.CAP_AUDIO.Set()
			p.Instructions[9] = in
		}, ErrCapability},
		{"always", func(p *Processor) {
			in := nop("beep", 1)
			in.Requires = peripheral.CAP_AUDIO.Set()
			p.Undocumented = Always(in)
		}, ErrCapability},
		{"always-register", func(p *Processor) { p.Undocumented = Always(nop("bp", 1, "BP")) }, ErrRegisterUnknown},
		{"rules", func(p *Processor) {
			rules, _ := NewRules(nop("def", 1), RuleSpec{"10-20", nop("r", 1)})
			p.Undocumented = rules
		}, ErrOpcodeRange},
	}

	for _, entry := range table {
		proc := testProcessor()
		entry.modify(proc)
		err := proc.Validate()
		assert.ErrorIs(err, entry.err, entry.name)
		var cfg ErrConfig
		assert.ErrorAs(err, &cfg, entry.name)
		assert.Equal("Test", cfg.Processor, entry.name)
	}
}

func TestParseRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		rng   Range
		err   error
		print string
	}){
		{"5", Range{5, 5}, nil, "5"},
		{"13-15", Range{13, 15}, nil, "13-15"},
		{" 1 - 2 ", Range{1, 2}, nil, "1-2"},
		{"5-5", Range{5, 5}, nil, "5"},
		{"x", Range{}, ErrRangeSyntax, ""},
		{"1-y", Range{}, ErrRangeSyntax, ""},
		{"", Range{}, ErrRangeSyntax, ""},
		{"1-2-3", Range{}, ErrRangeSyntax, ""},
		{"9-3", Range{}, ErrRangeReversed, ""},
	}

	for _, entry := range table {
		rng, err := ParseRange(entry.text)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.text)
			var er ErrRange
			assert.ErrorAs(err, &er, entry.text)
			assert.Equal(entry.text, er.Range)
			continue
		}
		assert.NoError(err, entry.text)
		assert.Equal(entry.rng, rng, entry.text)
		assert.Equal(entry.print, rng.String(), entry.text)
	}

	assert.Equal([]int{3, 4, 5}, slices.Collect(Range{3, 5}.Opcodes()))
	assert.True(Single(7).Contains(7))
	assert.False(Single(7).Contains(8))
}

func TestRulesLastMatchWins(t *testing.T) {
	assert := assert.New(t)

	rules, err := NewRules(nop("default", 1),
		RuleSpec{"0-10", nop("A", 1)},
		RuleSpec{"5-15", nop("B", 1)},
	)
	assert.NoError(err)

	assert.Equal("A", rules.Resolve(0).Description)
	assert.Equal("A", rules.Resolve(4).Description)
	assert.Equal("B", rules.Resolve(7).Description)
	assert.Equal("B", rules.Resolve(15).Description)
	assert.Equal("default", rules.Resolve(16).Description)

	_, err = NewRules(nop("default", 1), RuleSpec{"10-0", nop("bad", 1)})
	assert.ErrorIs(err, ErrRangeReversed)
}
