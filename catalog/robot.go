package catalog

import (
	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

// newRobo4I only drives and turns. Undocumented opcodes do nothing.
func newRobo4I() *processor.Processor {
	return &processor.Processor{
		Name:               "Robot I",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS"},
		Peripherals:        []peripheral.Peripheral{robot, speaker},
		Instructions: processor.Dense(
			halt(),
			drive("Move Forward", 1),
			turnRight("Turn Right"),
			turnLeft("Turn Left"),
		),
	}
}

// newRobo4II adds beeping, long drives and an unconditional jump.
func newRobo4II() *processor.Processor {
	return &processor.Processor{
		Name:               "Robot II",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS"},
		Peripherals:        []peripheral.Peripheral{robot, speaker},
		Undocumented:       processor.Always(beep("Undefined")),
		Instructions: processor.Dense(
			halt(),
			drive("Move Forward", 1),
			turnRight("Turn Right"),
			turnLeft("Turn Left"),
			beep("Beep"),
			instruction{
				Description: "Drive forward <data> units",
				Execute: func(s state) {
					robot.Move(s.Peripherals(), s.Argument())
				},
				IpIncrement: 2,
				Requires:    peripheral.CAP_ROBOT.Set(),
			},
			jump("Jump to address <data>"),
		),
	}
}

// newRobo4IV has a register, memory, branches and flips switches.
func newRobo4IV() *processor.Processor {
	return &processor.Processor{
		Name:               "Robot IV",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS", "R"},
		Peripherals:        []peripheral.Peripheral{robot, speaker, actions},
		Undocumented:       processor.Always(beep("Undefined")),
		Instructions: processor.Table{
			0:  halt(),
			1:  increment("Increment R (R = R + 1)", "R"),
			2:  decrement("Decrement R (R = R - 1)", "R"),
			3:  drive("Drive forward one unit", 1),
			4:  turnLeft("Turn Left"),
			5:  turnRight("Turn Right"),
			6:  flipSwitch(),
			7:  beep("Beep"),
			8:  loadDirect("Load (direct) value <data> into R", "R"),
			9:  loadIndirect("Load (indirect) value at address <data> into R", "R"),
			12: store("Store R into address <data>", "R"),
			13: jump("Jump to address <data>"),
			14: jumpZero("Jump to address <data> if R == 0", "R"),
			15: jumpNotZero("Jump to address <data> if R != 0", "R"),
		},
	}
}

// flipSwitch logs a switch flip at the robot's current location.
func flipSwitch() instruction {
	return instruction{
		Description: "Flip Switch",
		Execute: func(s state) {
			ps := s.Peripherals()
			actions.Perform(ps, peripheral.Action{
				Name: "flipSwitch",
				Data: ps.Robot.Last().Coordinate,
			})
		},
		IpIncrement: 1,
		Requires:    peripheral.Capabilities(peripheral.CAP_ROBOT, peripheral.CAP_ACTIONS),
	}
}
