package catalog

import (
	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

// Listing columns of the 8-bit family.
var proc8Columns = []string{"number", "mnemonic", "increment", "description", "code"}

// proc8Headings groups the 8-bit opcodes into documented sections.
var proc8Headings = Headings{
	{0, "Arithmetic"},
	{16, "Moving Data: Registers and Memory"},
	{27, "Moving Data: Relative to Stack Pointer"},
	{31, "Moving Data: Relative to Stack Base Pointer"},
	{48, "Selection / Branching"},
	{64, "Stack Management"},
	{128, "Peripherals"},
}

func add(a, b int) int { return a + b }
func sub(a, b int) int { return a - b }

// div and mod write 0 when dividing by zero.
func div(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}

func mod(a, b int) int {
	if b == 0 {
		return 0
	}
	return a % b
}

// relative builds an access to memory at base+sign*<data>.
type relative struct {
	base string
	sign int
}

func (r relative) address(s state) int {
	return s.Register(r.base) + r.sign*s.Argument()
}

func (r relative) load(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(reg, s.Memory(r.address(s)))
		},
		IpIncrement: 2,
		Uses:        []string{r.base, reg},
	}
}

func (r relative) store(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetMemory(r.address(s), s.Register(reg))
		},
		IpIncrement: 2,
		Uses:        []string{r.base, reg},
	}
}

// pointer sets reg to base+sign*<data>, without a memory access.
func (r relative) pointer(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(reg, r.address(s))
		},
		IpIncrement: 2,
		Uses:        []string{r.base, reg},
	}
}

var (
	spPlus  = relative{"SP", 1}
	bpMinus = relative{"BP", -1}
	bpPlus  = relative{"BP", 1}
)

// loadRegister sets dst to the memory at the address held in src.
func loadRegister(desc, dst, src string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(dst, s.Memory(s.Register(src)))
		},
		IpIncrement: 1,
		Uses:        []string{dst, src},
	}
}

// storeRegister writes src to the memory at the address held in dst.
func storeRegister(desc, src, dst string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetMemory(s.Register(dst), s.Register(src))
		},
		IpIncrement: 1,
		Uses:        []string{dst, src},
	}
}

func compareJump(desc string, cond func(a, b int) bool, a, b string) instruction {
	return jumpIf(desc, func(s state) bool {
		return cond(s.Register(a), s.Register(b))
	}, a, b)
}

// push decrements SP and writes value there.
func push(s state, value int) {
	s.SetRegister("SP", s.Register("SP")-1)
	s.SetMemory(s.Register("SP"), value)
}

// pop reads the value at SP and increments SP.
func pop(s state) (value int) {
	sp := s.Register("SP")
	value = s.Memory(sp)
	s.SetRegister("SP", sp+1)
	return
}

func stackOps() processor.Table {
	return processor.Table{
		64: named("POP", "R0 = *(SP); SP = SP + 1", instruction{
			Description: "Pop (into R0)",
			Execute: func(s state) {
				s.SetRegister("R0", pop(s))
			},
			IpIncrement: 1,
			Uses:        []string{"SP", "R0"},
		}),
		65: named("RET", "IP = *(SP); SP = SP + 1", instruction{
			Description: "Return (Pop into IP)",
			Execute: func(s state) {
				s.SetIp(pop(s))
			},
			IpIncrement: 1,
			Uses:        []string{"SP"},
		}),
		66: named("PUSH", "SP = SP - 1; *(SP) = R0", instruction{
			Description: "Push R0",
			Execute: func(s state) {
				push(s, s.Register("R0"))
			},
			IpIncrement: 1,
			Uses:        []string{"SP", "R0"},
		}),
		67: named("CALL", "SP = SP - 1; *(SP) = IP; IP = <data>", instruction{
			Description: "Call function at address <data> (Push IP and Jump)",
			Execute: func(s state) {
				push(s, s.Ip())
				s.SetIp(s.Argument())
			},
			IpIncrement: 2,
			Uses:        []string{"SP"},
		}),
		68: named("ADDSP", "SP = SP + <data>", instruction{
			Description: "Add <data> to SP (Shrink the stack)",
			Execute: func(s state) {
				s.SetRegister("SP", s.Register("SP")+s.Argument())
			},
			IpIncrement: 2,
			Uses:        []string{"SP"},
		}),
		69: named("SUBSP", "SP = SP - <data>", instruction{
			Description: "Subtract <data> from SP (Grow the stack)",
			Execute: func(s state) {
				s.SetRegister("SP", s.Register("SP")-s.Argument())
			},
			IpIncrement: 2,
			Uses:        []string{"SP"},
		}),
		70: named("ENTER", "SP = SP - 1; *(SP) = BP; BP = SP", instruction{
			Description: "Creates a new call frame",
			Execute: func(s state) {
				push(s, s.Register("BP"))
				s.SetRegister("BP", s.Register("SP"))
			},
			IpIncrement: 1,
			Uses:        []string{"SP", "BP"},
		}),
		71: named("LEAVE", "SP = BP; BP = *(SP); SP = SP + 1", instruction{
			Description: "Restores old call frame",
			Execute: func(s state) {
				s.SetRegister("SP", s.Register("BP"))
				s.SetRegister("BP", pop(s))
			},
			IpIncrement: 1,
			Uses:        []string{"SP", "BP"},
		}),
	}
}

func peripheralOps() processor.Table {
	return processor.Table{
		128: named("PRINT", `printf("%d", R0)`, printNumber("Print R0 as unsigned integer", "R0")),
		129: named("PRINTC", `printf("%c", R0)`, instruction{
			Description: "Print R0 as ASCII character",
			Execute: func(s state) {
				lcd.PrintAscii(s.Peripherals(), s.Register("R0"))
			},
			IpIncrement: 1,
			Requires:    peripheral.CAP_LCD.Set(),
			Uses:        []string{"R0"},
		}),
		130: named("PRINTS", `printf("%s", R0)`, instruction{
			Description: "Print R0 as a string (starting at address R0 until 0 value is reached)",
			Execute: func(s state) {
				ps := s.Peripherals()
				r0 := s.Register("R0")
				for n := range s.Processor().NumMemoryAddresses {
					char := s.Memory(r0 + n)
					if char == 0 {
						break
					}
					lcd.PrintAscii(ps, char)
				}
			},
			IpIncrement: 1,
			Requires:    peripheral.CAP_LCD.Set(),
			Uses:        []string{"R0"},
		}),
		131: named("SOUND", "", instruction{
			Description: "Play a sound (R0 specifies the sound)",
			Execute: func(s state) {
				speaker.Sound(s.Peripherals(), s.Register("R0"))
			},
			IpIncrement: 1,
			Requires:    peripheral.CAP_AUDIO.Set(),
			Uses:        []string{"R0"},
		}),
		132: named("PLOT", "", instruction{
			Description: "Plot pixel <data> at coordinate R0, R1",
			Execute: func(s state) {
				pixels.Plot(s.Peripherals(), s.Register("R0"), s.Register("R1"), s.Argument())
			},
			IpIncrement: 2,
			Requires:    peripheral.CAP_PIXELS.Set(),
			Uses:        []string{"R0", "R1"},
		}),
	}
}

// proc8Undocumented resolves the gaps of the 8-bit table.
func proc8Undocumented() (resolver processor.Resolver, err error) {
	randomR0 := instruction{
		Description: "Undefined",
		Execute: func(s state) {
			s.SetRegister("R0", s.Random(256))
		},
		IpIncrement: 1,
		Uses:        []string{"R0"},
	}
	randomJump := instruction{
		Description: "Undefined",
		Execute: func(s state) {
			s.SetRegister(processor.REG_IP, s.Random(256))
		},
		IpIncrement: 1,
	}
	peripheralError := instruction{
		Description: "Undefined",
		Execute: func(s state) {
			lcd.PrintString(s.Peripherals(), "Error")
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_LCD.Set(),
	}

	return processor.NewRules(catchFire("Undefined"),
		processor.RuleSpec{Range: "0-42", Instruction: randomR0},
		processor.RuleSpec{Range: "43-48", Instruction: catchFire("Undefined")},
		processor.RuleSpec{Range: "49-63", Instruction: randomJump},
		processor.RuleSpec{Range: "64-255", Instruction: peripheralError},
	)
}

// newProc8IV is the full 8-bit processor with a stack and call frames.
func newProc8IV() (proc *processor.Processor, err error) {
	undocumented, err := proc8Undocumented()
	if err != nil {
		return
	}

	table := processor.Table{
		0:  named("HALT", "", halt()),
		1:  named("INC", "R0 = R0 + 1", increment("Increment", "R0")),
		2:  named("DEC", "R0 = R0 - 1", decrement("Decrement", "R0")),
		3:  named("ADD", "R0 = R0 + R1", binary("Add", "R0", "R1", add)),
		4:  named("SUB", "R0 = R0 - R1", binary("Subtract", "R0", "R1", sub)),
		5:  named("MUL", "R0 = R0 * R1", binary("Multiply", "R0", "R1", func(a, b int) int { return a * b })),
		6:  named("DIV", "R0 = R0 / R1", binary("Integer Divide", "R0", "R1", div)),
		7:  named("MOD", "R0 = R0 % R1", binary("Modulo", "R0", "R1", mod)),
		8:  named("SHL", "R0 = R0 << R1", binary("Shift Left", "R0", "R1", func(a, b int) int { return a << b })),
		9:  named("SHR", "R0 = R0 >> R1", binary("Shift Right", "R0", "R1", func(a, b int) int { return a >> b })),
		10: named("AND", "R0 = R0 & R1", binary("Bitwise AND", "R0", "R1", func(a, b int) int { return a & b })),
		11: named("OR", "R0 = R0 | R1", binary("Bitwise OR", "R0", "R1", func(a, b int) int { return a | b })),
		12: named("XOR", "R0 = R0 ^ R1", binary("Bitwise XOR", "R0", "R1", func(a, b int) int { return a ^ b })),
		13: named("NOT", "R0 = ~R0", unary("Bitwise NOT", "R0", func(a int) int { return ^a })),
		14: named("MIN", "R0 = min(R0, R1)", binary("Minimum", "R0", "R1", func(a, b int) int { return min(a, b) })),
		15: named("MAX", "R0 = max(R0, R1)", binary("Maximum", "R0", "R1", func(a, b int) int { return max(a, b) })),

		16: named("SWAP", "tmp = R0; R0 = R1; R1 = tmp", swap("Swap the values of R0, R1", "R0", "R1")),
		17: named("LDR0", "R0 = <data>", loadDirect("Load (direct) <data> into R0", "R0")),
		18: named("LDR1", "R1 = <data>", loadDirect("Load (direct) <data> into R1", "R1")),
		19: named("LIR0", "R0 = *(<data>)", loadIndirect("Load (indirect) value at address <data> into R0", "R0")),
		20: named("LIR1", "R1 = *(<data>)", loadIndirect("Load (indirect) value at address <data> into R1", "R1")),
		21: named("LRR0", "R0 = *(R1)", loadRegister("Load (indirect) value at address R1 into R0", "R0", "R1")),
		22: named("LRR1", "R1 = *(R0)", loadRegister("Load (indirect) value at address R0 into R1", "R1", "R0")),
		23: named("SDR0", "*(<data>) = R0", store("Store R0 into address <data>", "R0")),
		24: named("SDR1", "*(<data>) = R1", store("Store R1 into address <data>", "R1")),
		25: named("SRR0", "*(R1) = R0", storeRegister("Store R0 into address R1", "R0", "R1")),
		26: named("SRR1", "*(R0) = R1", storeRegister("Store R1 into address R0", "R1", "R0")),

		27: named("LSR0", "R0 = *(SP + <data>)", spPlus.load("Load value at address SP+<data> into R0", "R0")),
		28: named("LSR1", "R1 = *(SP + <data>)", spPlus.load("Load value at address SP+<data> into R1", "R1")),
		29: named("SSR0", "*(SP + <data>) = R0", spPlus.store("Store R0 at address SP+<data>", "R0")),
		30: named("SSR1", "*(SP + <data>) = R1", spPlus.store("Store R1 at address SP+<data>", "R1")),

		31: named("LBR0", "R0 = *(BP - <data>)", bpMinus.load("Load value at address BP-<data> into R0", "R0")),
		32: named("LBR1", "R1 = *(BP - <data>)", bpMinus.load("Load value at address BP-<data> into R1", "R1")),
		33: named("LAR0", "R0 = *(BP + <data>)", bpPlus.load("Load (argument) value at address BP+<data> into R0", "R0")),
		34: named("LAR1", "R1 = *(BP + <data>)", bpPlus.load("Load (argument) value at address BP+<data> into R1", "R1")),
		35: named("LBPR0", "R0 = BP - <data>", bpMinus.pointer("Load (BP - <data>) into R0", "R0")),
		36: named("LBPR1", "R1 = BP - <data>", bpMinus.pointer("Load (BP - <data>) into R1", "R1")),
		37: named("SBR0", "*(BP - <data>) = R0", bpMinus.store("Store R0 at address BP-<data>", "R0")),
		38: named("SBR1", "*(BP - <data>) = R1", bpMinus.store("Store R1 at address BP-<data>", "R1")),

		48: named("JMP", "IP = <data>", jump("Jump to address <data>")),
		49: named("JZ", "if (R0 == 0) { IP = <data> }", jumpZero("Jump to address <data> if R0 == 0", "R0")),
		50: named("JNZ", "if (R0 != 0) { IP = <data> }", jumpNotZero("Jump to address <data> if R0 != 0", "R0")),
		51: named("JE", "if (R0 == R1) { IP = <data> }", compareJump("Jump to address <data> if R0 == R1",
			func(a, b int) bool { return a == b }, "R0", "R1")),
		52: named("JNE", "if (R0 != R1) { IP = <data> }", compareJump("Jump to address <data> if R0 != R1",
			func(a, b int) bool { return a != b }, "R0", "R1")),
		53: named("JB", "if (R0 < R1) { IP = <data> }", compareJump("Jump to address <data> if R0 < R1",
			func(a, b int) bool { return a < b }, "R0", "R1")),
		54: named("JBE", "if (R0 <= R1) { IP = <data> }", compareJump("Jump to address <data> if R0 <= R1",
			func(a, b int) bool { return a <= b }, "R0", "R1")),
		55: named("JNZP", "if ((PORT & R0) != 0) { IP = <data> }", compareJump("Jump to address <data> if (PORT & R0) != 0",
			func(a, b int) bool { return a&b != 0 }, "PORT", "R0")),
		56: named("JZP", "if ((PORT & R0) == 0) { IP = <data> }", compareJump("Jump to address <data> if (PORT & R0) == 0",
			func(a, b int) bool { return a&b == 0 }, "PORT", "R0")),
	}

	for _, extra := range []processor.Table{stackOps(), peripheralOps()} {
		for opcode, in := range extra {
			table[opcode] = in
		}
	}

	proc = &processor.Processor{
		Name:               "8-bit Microprocessor IV",
		MemoryBitSize:      8,
		RegisterBitSize:    8,
		NumMemoryAddresses: 256,
		RegisterNames:      []string{"IP", "IS", "R0", "R1", "SP", "BP", "PORT"},
		Columns:            proc8Columns,
		Peripherals:        []peripheral.Peripheral{lcd, speaker, pixels, fire},
		Instructions:       table,
		Undocumented:       undocumented,
	}

	return
}
