// Package peripheral implements the capability model shared by the
// microprocessor family.
//
// Each peripheral owns one fragment of a State: the LCD its text output,
// the speaker its audio buffer, the pixel display its plotted pixels, the
// fire peripheral its fault flag, the robot its journey and the action log
// its list of actions. A State is tagged with the set of capabilities it
// was constructed with, and the Supports* guards answer from that tag set
// rather than from the contents of the fragments.
//
// Peripherals only mutate their own fragment. Reading registers or memory
// is left to the instructions that drive them.
package peripheral
