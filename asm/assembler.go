// Package asm assembles program images for the processor family.
//
// Source is line oriented:
//
//	; comment
//	.equ   NAME VALUE       ; textual substitution
//	loop:  LDR0 $(COUNT-1)  ; label, mnemonic and operand
//	       7                ; numeric opcode
//	       .data 1 2 'c'    ; raw words
//	msg:   .string "Hi"     ; characters, then a 0 terminator
//
// Mnemonics are matched case-insensitively against the selected
// processor's instruction table. An instruction whose IP increment is 2
// takes exactly one operand. Operands are numbers, labels, equates,
// character literals or $(...) expressions, which are evaluated with
// starlark after all labels are known.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/cs101course/microprocessorExamples/processor"
)

var (
	reChar  = regexp.MustCompile(`'\\?[^']'`)
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
	reSpace = regexp.MustCompile(`\s+`)
)

// Assembler is a two pass assembler for a single processor.
type Assembler struct {
	Verbose   bool                 // If set, verbosely logs the assembler actions.
	Processor *processor.Processor // Target processor.

	Label  map[string]int    // Map of labels to addresses.
	Equate map[string]string // Map of equates.

	predefine map[string]string
	pending   []pending
	lines     []Line
}

// pending is a word whose value needs every label to be known.
type pending struct {
	line  int // Index into lines.
	index int // Index into the line's codes.
	word  string
}

// Predefine defines an equate available to every parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// wordMask returns the mask of a memory word.
func (asm *Assembler) wordMask() int {
	return 1<<asm.Processor.RegisterBitSize - 1
}

// valueOf returns the value of a resolved word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return asm.parenEval(word[2 : len(word)-1])
	}

	if addr, ok := asm.Label[word]; ok {
		return addr, nil
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	mask := asm.wordMask()
	if value > mask || value < -(mask+1) {
		err = ErrValueRange(value)
		return
	}

	value &= mask
	return
}

// parenEval does $(...) evaluations with the labels and equates in scope.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Non-numeric equates may be mnemonics.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64) & asm.wordMask()
	return
}

// currentIp returns the address of the next assembled word.
func (asm *Assembler) currentIp() int {
	if len(asm.lines) == 0 {
		return 0
	}

	last := asm.lines[len(asm.lines)-1]

	return last.Address + len(last.Codes)
}

// expand rewrites character literals to numbers, and squeezes the
// whitespace out of $(...) expressions.
func expand(line string) string {
	line = reChar.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			case "0":
				str = "\x00"
			default:
				return word
			}
		}
		return fmt.Sprintf("%d", str[0])
	})

	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		return reSpace.ReplaceAllString(str, "")
	})

	return line
}

// emit appends an assembled line, queueing its words for resolution.
func (asm *Assembler) emit(lineno int, words []string, values []string) {
	line := Line{
		LineNo:  lineno,
		Address: asm.currentIp(),
		Words:   words,
		Codes:   make([]int, len(values)),
	}
	asm.lines = append(asm.lines, line)

	for n, value := range values {
		asm.pending = append(asm.pending, pending{
			line:  len(asm.lines) - 1,
			index: n,
			word:  value,
		})
	}
}

// opcodeOf returns the opcode of a mnemonic or numeric word.
func (asm *Assembler) opcodeOf(word string) (opcode int, err error) {
	opcode, ok := asm.Processor.Instructions.Mnemonic(strings.ToUpper(word))
	if ok {
		return
	}

	v64, perr := strconv.ParseInt(word, 0, 64)
	if perr != nil || v64 < 0 || v64 >= int64(asm.Processor.OpcodeLimit()) {
		err = fmt.Errorf("%w: %v", ErrOpcodeUnknown, word)
		return
	}

	opcode = int(v64)
	return
}

// parseLine parses a single source line.
func (asm *Assembler) parseLine(text string, lineno int) (err error) {
	// .string keeps its quoted text verbatim.
	if label, rest, ok := strings.Cut(text, ".string"); ok && !strings.Contains(label, ";") {
		labels := strings.Fields(label)
		for _, word := range labels {
			if !strings.HasSuffix(word, ":") {
				err = ErrStringSyntax
				return
			}
		}
		err = asm.parseLabels(labels)
		if err != nil {
			return
		}
		rest = strings.TrimSpace(rest)
		quoted, qerr := strconv.QuotedPrefix(rest)
		tail := strings.TrimSpace(rest[len(quoted):])
		if qerr != nil || (len(tail) != 0 && tail[0] != ';') {
			err = ErrStringSyntax
			return
		}
		str, _ := strconv.Unquote(quoted)
		var values []string
		for _, b := range []byte(str) {
			values = append(values, strconv.Itoa(int(b)))
		}
		values = append(values, "0")
		asm.emit(lineno, []string{".string", str}, values)
		return
	}

	line := strings.Split(expand(text), ";")[0]
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	labels := slices.IndexFunc(words, func(w string) bool { return !strings.HasSuffix(w, ":") })
	if labels < 0 {
		labels = len(words)
	}
	err = asm.parseLabels(words[:labels])
	if err != nil {
		return
	}
	words = words[labels:]
	if len(words) == 0 {
		return
	}

	if strings.HasPrefix(words[0], ".") {
		if words[0] != ".data" {
			err = fmt.Errorf("%w: %v", ErrDirective, words[0])
			return
		}
		asm.emit(lineno, words, words[1:])
		return
	}

	opcode, err := asm.opcodeOf(words[0])
	if err != nil {
		return
	}

	in, _ := asm.Processor.Instruction(opcode)
	operands := words[1:]
	switch need := in.IpIncrement - 1; {
	case len(operands) < need:
		err = ErrOperandMissing
		return
	case len(operands) > need:
		err = ErrOperandExtra
		return
	}

	asm.emit(lineno, words, append([]string{strconv.Itoa(opcode)}, operands...))

	return
}

// parseLabels records "name:" words at the current address.
func (asm *Assembler) parseLabels(words []string) (err error) {
	for _, word := range words {
		label := strings.TrimSuffix(word, ":")
		if _, ok := asm.Label[label]; ok {
			err = fmt.Errorf("%w: %v", ErrLabelDuplicate, label)
			return
		}
		asm.Label[label] = asm.currentIp()
	}
	return
}

// resolve evaluates every queued word now that all labels are known.
func (asm *Assembler) resolve() (err error) {
	for _, p := range asm.pending {
		line := &asm.lines[p.line]
		var value int
		value, err = asm.valueOf(p.word)
		if err != nil {
			if _, ok := err.(ErrParseNumber); ok && isIdent(p.word) {
				err = ErrLabelMissing(p.word)
			}
			err = ErrSyntax{LineNo: line.LineNo, Line: strings.Join(line.Words, " "), Err: err}
			return
		}
		line.Codes[p.index] = value
	}

	return
}

// isIdent returns true if word looks like a label name.
func isIdent(word string) bool {
	if len(word) == 0 {
		return false
	}
	c := word[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	if asm.Processor == nil {
		err = ErrNoProcessor
		return
	}

	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	asm.Label = make(map[string]int, 16)
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string)
	}
	asm.lines = nil
	asm.pending = nil

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		err = asm.parseLine(text, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	err = asm.resolve()
	if err != nil {
		return
	}

	if asm.currentIp() > asm.Processor.NumMemoryAddresses {
		err = ErrProgramSize
		return
	}

	prog = &Program{Lines: asm.lines}

	return
}
