package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/cs101course/microprocessorExamples/asm"
	"github.com/cs101course/microprocessorExamples/catalog"
	"github.com/cs101course/microprocessorExamples/internal"
	"github.com/cs101course/microprocessorExamples/machine"
	"github.com/cs101course/microprocessorExamples/peripheral"
	"github.com/cs101course/microprocessorExamples/processor"
	"github.com/cs101course/microprocessorExamples/translate"
)

var defaultColumns = []string{"number", "increment", "description"}

// listCatalog prints the catalog members whose code starts with family.
func listCatalog(cat *catalog.Catalog, family string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	codes := internal.Filter(cat.Codes(), func(code string) bool {
		return strings.HasPrefix(code, family)
	})
	for code := range codes {
		proc, _ := cat.Lookup(code)
		fmt.Fprintf(tw, "%v\t%v\t%d\t%v\n", code, proc.Name, proc.Instructions.Len(), proc.Capabilities())
	}
}

// column renders one listing column of an instruction.
func column(name string, opcode int, in processor.Instruction) string {
	switch name {
	case "number":
		return fmt.Sprint(opcode)
	case "mnemonic":
		return in.Mnemonic
	case "increment":
		return fmt.Sprint(in.IpIncrement)
	case "description":
		return in.Description
	case "code":
		return in.Code
	}
	return ""
}

// dumpTable prints the instruction table of proc, split by headings.
func dumpTable(proc *processor.Processor, headings catalog.Headings) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	columns := proc.Columns
	if len(columns) == 0 {
		columns = defaultColumns
	}

	fmt.Fprintf(tw, "%v\n", proc.Name)
	fmt.Fprintf(tw, "%v\n", strings.Join(columns, "\t"))
	for opcode, in := range proc.Instructions.All() {
		if title, ok := headings.Starts(opcode); ok {
			fmt.Fprintf(tw, "\n# %v\n", title)
		}
		cells := make([]string, len(columns))
		for n, name := range columns {
			cells[n] = column(name, opcode, in)
		}
		fmt.Fprintf(tw, "%v\n", strings.Join(cells, "\t"))
	}
}

// report prints the peripheral state the processor supports.
func report(ps *peripheral.State) {
	if peripheral.SupportsLcd(ps) {
		fmt.Printf("lcd: %v\n", ps.Lcd.Output)
	}
	if peripheral.SupportsAudio(ps) && len(ps.Audio.Buffer) != 0 {
		fmt.Printf("audio: %v\n", ps.Audio.Buffer)
	}
	if peripheral.SupportsPixels(ps) && len(ps.Pixels.Plotted) != 0 {
		fmt.Printf("pixels: %v\n", ps.Pixels.Plotted)
	}
	if peripheral.SupportsFire(ps) && ps.Fire.IsOnFire {
		fmt.Printf("fire: on fire\n")
	}
	if peripheral.SupportsRobot(ps) {
		last := ps.Robot.Last()
		fmt.Printf("robot: row %d, column %d, facing %v after %d steps\n",
			last.Row, last.Column, last.Facing, ps.Robot.Steps)
	}
	if peripheral.SupportsActions(ps) {
		for _, action := range ps.Actions.Log {
			fmt.Printf("action: %v (%d, %d)\n", action.Name, action.Data.Row, action.Data.Column)
		}
	}
}

func main() {
	var device string
	var compile string
	var list bool
	var table bool
	var limit int
	var seed uint64
	var lang string
	var verbose bool

	flag.StringVar(&device, "p", "8iv", "Processor device code")
	flag.StringVar(&compile, "c", "", "Source file to assemble and run")
	flag.BoolVar(&list, "l", false, "List the catalog (argument filters by code prefix)")
	flag.BoolVar(&table, "t", false, "Print the instruction table of the processor")
	flag.IntVar(&limit, "n", 10000, "Instruction limit, 0 for none")
	flag.Uint64Var(&seed, "s", 1, "Random seed for undocumented opcodes")
	flag.StringVar(&lang, "lang", "", "Message language, such as en-US")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
		translate.Use(tag)
	}

	cat := catalog.Default()

	if list {
		if flag.NArg() > 1 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
		}
		listCatalog(cat, flag.Arg(0))
		return
	}

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	proc, ok := cat.Lookup(device)
	if !ok {
		log.Fatalf("%v: unknown device code", device)
	}

	if table {
		dumpTable(proc, cat.Headings([]string{device})[0])
	}

	if len(compile) == 0 {
		return
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	as := &asm.Assembler{Processor: proc, Verbose: verbose}
	prog, err := as.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	m := machine.NewMachine(proc, seed)
	m.Verbose = verbose
	err = m.Load(prog.Image())
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = m.Run(limit)
	if err != nil {
		var rt *machine.ErrRuntime
		if errors.As(err, &rt) {
			if dbg := prog.Debug(rt.Ip); dbg.Line != nil {
				log.Printf("%v:%d: %v", compile, dbg.LineNo, strings.Join(dbg.Words, " "))
			}
		}
		log.Fatalf("%v: %v", compile, err)
	}

	fmt.Print(m)
	report(m.Peripherals())
}
