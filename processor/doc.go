// Package processor describes a family of small pedagogical processors.
//
// A Processor is a read-only descriptor: bit widths, register names,
// attached peripherals, a sparse instruction table and an optional
// resolver for undocumented opcodes. Execution is owned by a runtime
// that implements State; instructions read and write registers, memory
// and peripherals exclusively through it.
//
// Restricted siblings of a processor are derived with Downgrade, which
// copies the descriptor and deletes opcodes and registers from the copy.
package processor
