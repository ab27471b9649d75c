package catalog

// Heading titles the section of opcodes starting at Opcode.
type Heading struct {
	Opcode int
	Title  string
}

// Headings is a list of headings in ascending opcode order.
type Headings []Heading

// Title returns the title of the section holding opcode.
func (hs Headings) Title(opcode int) (title string, ok bool) {
	for _, h := range hs {
		if h.Opcode > opcode {
			break
		}
		title, ok = h.Title, true
	}
	return
}

// Starts returns the title of the section starting exactly at opcode.
func (hs Headings) Starts(opcode int) (title string, ok bool) {
	for _, h := range hs {
		if h.Opcode == opcode {
			return h.Title, true
		}
	}
	return
}
