package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

func testProcessor() *processor.Processor {
	return &processor.Processor{
		Name:               "Tiny",
		MemoryBitSize:      3,
		RegisterBitSize:    3,
		NumMemoryAddresses: 8,
		RegisterNames:      []string{"IP", "IS", "A"},
		Peripherals:        []peripheral.Peripheral{peripheral.Lcd{}},
		Instructions: processor.Dense(
			processor.Instruction{
				Description: "Halt",
				Execute:     func(s processor.State) { s.Halt() },
				IpIncrement: 1,
			},
			processor.Instruction{
				Description: "Add <data> to A",
				Execute: func(s processor.State) {
					s.SetRegister("A", s.Register("A")+s.Argument())
				},
				IpIncrement: 2,
				Uses:        []string{"A"},
			},
			processor.Instruction{
				Description: "Jump to <data>",
				Execute:     func(s processor.State) { s.SetIp(s.Argument()) },
				IpIncrement: 2,
			},
		),
	}
}

func TestMachineTruncates(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(testProcessor(), 0)

	m.SetRegister("A", 9)
	assert.Equal(1, m.Register("A"))
	m.SetRegister("A", -1)
	assert.Equal(7, m.Register("A"))

	m.SetMemory(10, 12)
	assert.Equal(4, m.Memory(2))
	assert.Equal(4, m.Memory(-6))

	m.SetRegister("B", 3)
	assert.Equal(0, m.Register("B"))

	m.SetIp(9)
	assert.Equal(1, m.Ip())
}

func TestMachineRun(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(testProcessor(), 0)
	assert.NoError(m.Load([]int{1, 3, 1, 6, 0}))

	done, err := m.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(3, m.Register("A"))
	assert.Equal(1, m.Register("IS"))
	assert.Equal(2, m.Ip())

	assert.NoError(m.Run(0))
	assert.True(m.Halted())
	assert.Equal(1, m.Register("A"))
	assert.Equal(3, m.Ticks())

	done, err = m.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(3, m.Ticks())

	assert.Equal("   IP: 5\n   IS: 0\n    A: 1\nhalted\n", m.String())

	m.Reset()
	assert.False(m.Halted())
	assert.Equal(0, m.Ip())
	assert.Equal(0, m.Register("A"))
	assert.Equal(1, m.Memory(0))
}

func TestMachineStepLimit(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(testProcessor(), 0)
	m.Verbose = true
	assert.NoError(m.Load([]int{2, 0}))

	err := m.Run(10)
	assert.ErrorIs(err, ErrStepLimit)
	var rt *ErrRuntime
	assert.ErrorAs(err, &rt)
	assert.Equal(0, rt.Ip)
	assert.Equal(10, m.Ticks())
}

func TestMachineLoad(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(testProcessor(), 0)
	assert.ErrorIs(m.Load(make([]int, 9)), ErrImageSize)

	assert.NoError(m.Load([]int{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal([]int{1, 2, 3, 4, 5, 6, 7, 0}, m.Dump())

	assert.NoError(m.Load([]int{1}))
	assert.Equal([]int{1, 0, 0, 0, 0, 0, 0, 0}, m.Dump())
}

func TestMachineUndocumented(t *testing.T) {
	assert := assert.New(t)

	proc := testProcessor()
	m := NewMachine(proc, 0)
	assert.NoError(m.Load([]int{5, 0}))
	assert.NoError(m.Run(5))
	assert.Equal(2, m.Ip())

	proc.Undocumented = processor.Always(processor.Instruction{
		Description: "Print A",
		Execute: func(s processor.State) {
			peripheral.Lcd{}.PrintNumber(s.Peripherals(), s.Register("A"))
		},
		IpIncrement: 1,
	})
	m = NewMachine(proc, 0)
	assert.NoError(m.Load([]int{1, 4, 5, 0}))
	assert.NoError(m.Run(5))
	assert.Equal("4", m.Peripherals().Lcd.Output)
	assert.Same(proc, m.Processor())
}

func TestMachineRandom(t *testing.T) {
	assert := assert.New(t)

	a := NewMachine(testProcessor(), 42)
	b := NewMachine(testProcessor(), 42)
	for range 32 {
		va := a.Random(256)
		assert.Equal(va, b.Random(256))
		assert.GreaterOrEqual(va, 0)
		assert.Less(va, 256)
	}
}
