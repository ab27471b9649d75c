package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cs101course/microprocessorExamples/machine"
)

// FuzzOpcodes runs a single arbitrary opcode and operand on every
// processor. Nothing may panic, and every register stays in range.
func FuzzOpcodes(f *testing.F) {
	for rv := range 0x10 {
		f.Add(uint8(rv), uint8(0), uint8(0), uint8(0))
		f.Add(uint8(rv<<4), uint8(0xff), uint8(rv), uint8(0xff-rv))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, operand uint8, r0 uint8, r1 uint8) {
		assert := assert.New(t)

		for code, proc := range Default().All() {
			m := machine.NewMachine(proc, uint64(opcode))
			assert.NoError(m.Load([]int{int(opcode), int(operand)}))
			m.SetRegister("R0", int(r0))
			m.SetRegister("R1", int(r1))

			_, err := m.Tick()
			assert.NoError(err, code)

			limit := 1 << proc.RegisterBitSize
			for _, name := range proc.RegisterNames {
				value := m.Register(name)
				assert.True(value >= 0 && value < limit, "%v: %v=%d", code, name, value)
			}
			assert.Equal(1, m.Ticks(), code)
		}
	})
}
