// Package machine is a reference runtime for the processor family.
//
// It owns the register file, memory and peripheral state of one running
// processor and implements processor.State for the instructions to act
// on. Register and memory writes are truncated to the register width,
// and memory addresses wrap around.
package machine

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

// Machine runs a single processor. It is not safe for concurrent use;
// run each program on its own Machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	proc      *processor.Processor
	registers map[string]int
	memory    []int
	state     *peripheral.State
	argument  int
	halted    bool
	ticks     int
	rand      *rand.Rand
}

var _ processor.State = (*Machine)(nil)

// NewMachine creates a machine for the processor, with randomness drawn
// from the given seed.
func NewMachine(proc *processor.Processor, seed uint64) (m *Machine) {
	m = &Machine{
		proc:      proc,
		registers: make(map[string]int, len(proc.RegisterNames)),
		memory:    make([]int, proc.NumMemoryAddresses),
		state:     proc.NewState(),
		rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	m.Reset()

	return
}

// Reset clears registers, the halted flag and peripherals. Memory is kept.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset %v", m.proc.Name)
	}

	clear(m.registers)
	for _, name := range m.proc.RegisterNames {
		m.registers[name] = 0
	}
	m.argument = 0
	m.halted = false
	m.ticks = 0
	m.state.Reset()
}

// Load copies a program image into memory starting at address 0, and
// zeroes the rest of memory.
func (m *Machine) Load(image []int) (err error) {
	if len(image) > len(m.memory) {
		err = ErrImageSize
		return
	}

	clear(m.memory)
	for addr, value := range image {
		m.SetMemory(addr, value)
	}

	return
}

// mask truncates value to the register width.
func (m *Machine) mask(value int) int {
	return value & (1<<m.proc.RegisterBitSize - 1)
}

// address wraps addr into the memory space.
func (m *Machine) address(addr int) int {
	n := len(m.memory)
	return ((addr % n) + n) % n
}

func (m *Machine) Processor() *processor.Processor {
	return m.proc
}

// Register returns a register value. Unknown registers read as zero.
func (m *Machine) Register(name string) int {
	return m.registers[name]
}

// SetRegister writes a register. Writes to unknown registers are dropped.
func (m *Machine) SetRegister(name string, value int) {
	if _, ok := m.registers[name]; !ok {
		if m.Verbose {
			log.Printf("machine: %v %v", ErrRegisterName, name)
		}
		return
	}
	m.registers[name] = m.mask(value)
}

func (m *Machine) Memory(address int) int {
	return m.memory[m.address(address)]
}

func (m *Machine) SetMemory(address int, value int) {
	m.memory[m.address(address)] = m.mask(value)
}

// Argument returns the operand word latched by the last fetch.
func (m *Machine) Argument() int {
	return m.argument
}

func (m *Machine) Ip() int {
	return m.Register(processor.REG_IP)
}

func (m *Machine) SetIp(address int) {
	m.registers[processor.REG_IP] = m.address(m.mask(address))
}

func (m *Machine) Halted() bool {
	return m.halted
}

func (m *Machine) Halt() {
	m.halted = true
}

func (m *Machine) Peripherals() *peripheral.State {
	return m.state
}

func (m *Machine) Random(n int) int {
	return m.rand.IntN(n)
}

// Ticks returns the number of instructions executed since reset.
func (m *Machine) Ticks() int {
	return m.ticks
}

// Tick executes one instruction.
//
// The opcode at IP is copied into IS, the operand word after it is
// latched, IP is advanced past the instruction and then the instruction
// executes. Jumps therefore simply overwrite IP, and CALL saves the
// address following its operand.
func (m *Machine) Tick() (done bool, err error) {
	if m.halted {
		done = true
		return
	}

	ip := m.Ip()
	opcode := m.Memory(ip)
	in, documented := m.proc.Instruction(opcode)

	if m.Verbose {
		tag := ""
		if !documented {
			tag = " (undocumented)"
		}
		log.Printf("%03d: %3d %v%v", ip, opcode, in.Description, tag)
	}

	m.registers[processor.REG_IS] = opcode
	m.argument = m.Memory(ip + 1)
	m.SetIp(ip + in.IpIncrement)

	in.Execute(m)
	m.ticks++

	done = m.halted
	return
}

// Run ticks until the processor halts, or until limit instructions have
// executed when limit is positive.
func (m *Machine) Run(limit int) (err error) {
	for limit <= 0 || m.ticks < limit {
		var done bool
		ip := m.Ip()
		done, err = m.Tick()
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
			return
		}
		if done {
			return
		}
	}

	err = &ErrRuntime{Ip: m.Ip(), Err: ErrStepLimit}
	return
}

// String returns the register file as text.
func (m *Machine) String() (text string) {
	var sb strings.Builder
	for _, name := range m.proc.RegisterNames {
		sb.WriteString(fmt.Sprintf("% 5s: %d\n", name, m.registers[name]))
	}
	if m.halted {
		sb.WriteString("halted\n")
	}
	text = sb.String()
	return
}

// Dump returns a copy of memory.
func (m *Machine) Dump() []int {
	return slices.Clone(m.memory)
}
