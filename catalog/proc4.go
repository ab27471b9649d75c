package catalog

import (
	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
)

func fourBitPeripherals() []peripheral.Peripheral {
	return []peripheral.Peripheral{lcd, speaker, fire}
}

// newProc4I is the smallest 4-bit processor: two registers, no operands.
func newProc4I() *processor.Processor {
	return &processor.Processor{
		Name:               "4-bit Microprocessor I",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS", "R0", "R1"},
		Peripherals:        fourBitPeripherals(),
		Undocumented:       processor.Always(catchFire("Undefined")),
		Instructions: processor.Dense(
			halt(),
			increment("Increment R0 (R0 = R0 + 1)", "R0"),
			decrement("Decrement R0 (R0 = R0 - 1)", "R0"),
			increment("Increment R1 (R1 = R1 + 1)", "R1"),
			decrement("Decrement R1 (R1 = R1 - 1)", "R1"),
			swap("Swap R0 with R1", "R0", "R1"),
			beep("Beep"),
			printNumber("Print R0 (decimal value is printed)", "R0"),
		),
	}
}

// newProc4IV is the full 4-bit processor with memory access and jumps.
func newProc4IV() *processor.Processor {
	return &processor.Processor{
		Name:               "4-bit Microprocessor IV",
		MemoryBitSize:      4,
		RegisterBitSize:    4,
		NumMemoryAddresses: 16,
		RegisterNames:      []string{"IP", "IS", "R0", "R1"},
		Peripherals:        fourBitPeripherals(),
		Undocumented:       processor.Always(catchFire("Undefined")),
		Instructions: processor.Dense(
			halt(),
			increment("Increment R0 (R0 = R0 + 1)", "R0"),
			decrement("Decrement R0 (R0 = R0 - 1)", "R0"),
			binary("Add (R0 = R0 + R1)", "R0", "R1", func(a, b int) int { return a + b }),
			binary("Subtract (R0 = R0 - R1)", "R0", "R1", func(a, b int) int { return a - b }),
			swap("Swap R0 with R1", "R0", "R1"),
			beep("Beep"),
			printNumber("Print R0 (decimal value is printed)", "R0"),
			loadDirect("Load (direct) value <data> into R0", "R0"),
			loadIndirect("Load (indirect) value at address <data> into R0", "R0"),
			loadIndirect("Load (indirect) value at address <data> into R1", "R1"),
			store("Store R0 into address <data>", "R0"),
			store("Store R1 into address <data>", "R1"),
			jump("Jump to address <data>"),
			jumpZero("Jump to address <data> if R0 == 0", "R0"),
			jumpNotZero("Jump to address <data> if R0 != 0", "R0"),
		),
	}
}
