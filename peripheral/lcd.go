package peripheral

import (
	"strconv"
)

// LcdState is the text output of the LCD.
type LcdState struct {
	Output string
}

// Lcd is the text display peripheral.
type Lcd struct{}

func (Lcd) Capability() Capability {
	return CAP_LCD
}

func (Lcd) Reset(state *State) {
	state.Lcd.Output = ""
}

// PrintNumber prints value in decimal.
func (Lcd) PrintNumber(state *State, value int) {
	state.Lcd.Output += strconv.Itoa(value)
}

// PrintAscii prints value as a single character.
func (Lcd) PrintAscii(state *State, value int) {
	state.Lcd.Output += string(rune(value))
}

// PrintString prints text verbatim.
func (Lcd) PrintString(state *State, text string) {
	state.Lcd.Output += text
}
