package asm

// Line is one assembled source line.
type Line struct {
	LineNo  int      // Source line number.
	Address int      // Address of the first word.
	Words   []string // Source words, after equate substitution.
	Codes   []int    // Assembled memory words.
}

// Program is an assembled program image with its listing.
type Program struct {
	Lines []Line
}

// Debug locates the line that produced the word at ip.
type Debug struct {
	*Line
	Index int
}

// Debug returns the line holding address ip, if any.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, line := range prog.Lines {
		if ip >= line.Address && ip < line.Address+len(line.Codes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: ip - line.Address,
			}
			break
		}
	}

	return
}

// Image returns the memory image of the program, starting at address 0.
func (prog *Program) Image() (image []int) {
	for _, line := range prog.Lines {
		image = append(image, line.Codes...)
	}
	return
}
