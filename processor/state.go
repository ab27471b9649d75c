package processor

import (
	"github.com/cs101course/microprocessorExamples/peripheral"
)

// Names of the registers every processor has.
const (
	REG_IP = "IP" // Instruction pointer.
	REG_IS = "IS" // Instruction state (the fetched opcode).
)

// State is the runtime view of a running processor.
//
// Values are read and written as plain ints; the runtime truncates them
// to the processor's register width on write, so an instruction must
// read a register back rather than assume what it wrote survived.
type State interface {
	Processor() *Processor // Descriptor of the running processor.

	Register(name string) int
	SetRegister(name string, value int)

	Memory(address int) int
	SetMemory(address int, value int)

	Argument() int // Operand word following the current opcode.
	Ip() int
	SetIp(address int)

	Halted() bool
	Halt()

	Peripherals() *peripheral.State

	Random(n int) int // Uniform in [0, n).
}
