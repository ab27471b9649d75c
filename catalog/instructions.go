package catalog

import (
	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

type (
	state       = processor.State
	instruction = processor.Instruction
)

// Peripherals are stateless; every processor shares these.
var (
	lcd     = peripheral.Lcd{}
	speaker = peripheral.Speaker{}
	fire    = peripheral.Fire{}
	pixels  = peripheral.PixelDisplay{}
	robot   = peripheral.Robot{}
	actions = peripheral.Actions{}
)

// named attaches assembler metadata to an instruction.
func named(mnemonic, code string, in instruction) instruction {
	in.Mnemonic = mnemonic
	in.Code = code
	return in
}

func halt() instruction {
	return instruction{
		Description: "Halt",
		Execute: func(s state) {
			s.Halt()
		},
		IpIncrement: 1,
	}
}

// unary replaces reg with fn(reg).
func unary(desc, reg string, fn func(int) int) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(reg, fn(s.Register(reg)))
		},
		IpIncrement: 1,
		Uses:        []string{reg},
	}
}

func increment(desc, reg string) instruction {
	return unary(desc, reg, func(v int) int { return v + 1 })
}

func decrement(desc, reg string) instruction {
	return unary(desc, reg, func(v int) int { return v - 1 })
}

// binary replaces dst with fn(dst, src).
func binary(desc, dst, src string, fn func(a, b int) int) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(dst, fn(s.Register(dst), s.Register(src)))
		},
		IpIncrement: 1,
		Uses:        []string{dst, src},
	}
}

func swap(desc, a, b string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			va := s.Register(a)
			vb := s.Register(b)
			s.SetRegister(a, vb)
			s.SetRegister(b, va)
		},
		IpIncrement: 1,
		Uses:        []string{a, b},
	}
}

// loadDirect sets reg to the operand.
func loadDirect(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(reg, s.Argument())
		},
		IpIncrement: 2,
		Uses:        []string{reg},
	}
}

// loadIndirect sets reg to the memory at the operand address.
func loadIndirect(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetRegister(reg, s.Memory(s.Argument()))
		},
		IpIncrement: 2,
		Uses:        []string{reg},
	}
}

// store writes reg to the memory at the operand address.
func store(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetMemory(s.Argument(), s.Register(reg))
		},
		IpIncrement: 2,
		Uses:        []string{reg},
	}
}

func jump(desc string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			s.SetIp(s.Argument())
		},
		IpIncrement: 2,
	}
}

// jumpIf jumps to the operand address when cond holds.
func jumpIf(desc string, cond func(s state) bool, uses ...string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			if cond(s) {
				s.SetIp(s.Argument())
			}
		},
		IpIncrement: 2,
		Uses:        uses,
	}
}

func jumpZero(desc, reg string) instruction {
	return jumpIf(desc, func(s state) bool { return s.Register(reg) == 0 }, reg)
}

func jumpNotZero(desc, reg string) instruction {
	return jumpIf(desc, func(s state) bool { return s.Register(reg) != 0 }, reg)
}

func beep(desc string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			speaker.Beep(s.Peripherals())
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_AUDIO.Set(),
	}
}

func printNumber(desc, reg string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			lcd.PrintNumber(s.Peripherals(), s.Register(reg))
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_LCD.Set(),
		Uses:        []string{reg},
	}
}

func catchFire(desc string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			fire.CatchFire(s.Peripherals())
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_FIRE.Set(),
	}
}

// drive moves the robot forward by a fixed number of units.
func drive(desc string, units int) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			robot.Move(s.Peripherals(), units)
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_ROBOT.Set(),
	}
}

func turnLeft(desc string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			robot.TurnLeft(s.Peripherals())
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_ROBOT.Set(),
	}
}

func turnRight(desc string) instruction {
	return instruction{
		Description: desc,
		Execute: func(s state) {
			robot.TurnRight(s.Peripherals())
		},
		IpIncrement: 1,
		Requires:    peripheral.CAP_ROBOT.Set(),
	}
}
