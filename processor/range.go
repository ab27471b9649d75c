package processor

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Range is an inclusive range of opcodes.
type Range struct {
	Low  int
	High int
}

// Single returns the range holding only opcode.
func Single(opcode int) Range {
	return Range{Low: opcode, High: opcode}
}

// ParseRange parses "N" or "LOW-HIGH".
func ParseRange(text string) (rng Range, err error) {
	defer func() {
		if err != nil {
			err = ErrRange{Range: text, Err: err}
		}
	}()

	low, high, found := strings.Cut(strings.TrimSpace(text), "-")
	if !found {
		high = low
	}

	rng.Low, err = strconv.Atoi(strings.TrimSpace(low))
	if err != nil || rng.Low < 0 {
		err = ErrRangeSyntax
		return
	}
	rng.High, err = strconv.Atoi(strings.TrimSpace(high))
	if err != nil || rng.High < 0 {
		err = ErrRangeSyntax
		return
	}

	if rng.Low > rng.High {
		err = ErrRangeReversed
		return
	}

	return
}

// Contains returns true if opcode is within the range.
func (rng Range) Contains(opcode int) bool {
	return opcode >= rng.Low && opcode <= rng.High
}

// Opcodes iterates over every opcode of the range.
func (rng Range) Opcodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for opcode := rng.Low; opcode <= rng.High; opcode++ {
			if !yield(opcode) {
				return
			}
		}
	}
}

// String returns the range in ParseRange syntax.
func (rng Range) String() string {
	if rng.Low == rng.High {
		return fmt.Sprintf("%d", rng.Low)
	}
	return fmt.Sprintf("%d-%d", rng.Low, rng.High)
}
