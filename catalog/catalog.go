package catalog

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/cs101course/microprocessorExamples/internal"
	"github.com/cs101course/microprocessorExamples/processor"
)

// Entry is one catalog member.
type Entry struct {
	Code      string               // Device code, such as "8iv".
	Processor *processor.Processor // Descriptor.
	Headings  Headings             // Section headings, or nil.
}

// Catalog is the read-only set of processors, in catalog order.
type Catalog struct {
	robots     []Entry
	fourBit    []Entry
	eightBit   []Entry
	byCode     map[string]Entry
	allEntries []Entry
}

// New builds the catalog, deriving the restricted processors from the
// richest member of each family. Any configuration error of a processor
// is returned.
func New() (cat *Catalog, err error) {
	proc4IV := newProc4IV()
	proc8IV, err := newProc8IV()
	if err != nil {
		return
	}

	type derivation struct {
		from      *processor.Processor
		name      string
		deletions []string
		registers []string
	}

	derive := func(d derivation) (proc *processor.Processor) {
		if err != nil {
			return
		}
		proc, err = processor.Downgrade(d.from, d.name, d.deletions, d.registers...)
		return
	}

	proc4II := derive(derivation{proc4IV, "4-Bit Microprocessor II", []string{"9", "11"}, nil})
	proc4III := derive(derivation{proc4IV, "4-Bit Microprocessor III", []string{"13-15"}, nil})

	proc8III := derive(derivation{proc8IV, "8-bit Microprocessor III", []string{"31-38", "70-71"}, []string{"BP"}})
	proc8II := derive(derivation{proc8III, "8-bit Microprocessor II", []string{"27-30"}, nil})
	proc8I := derive(derivation{proc8II, "8-bit Microprocessor I", []string{"8-15", "64-69"}, []string{"SP"}})
	if err != nil {
		return
	}

	cat = &Catalog{
		robots: []Entry{
			{Code: "ri", Processor: newRobo4I()},
			{Code: "rii", Processor: newRobo4II()},
			{Code: "riv", Processor: newRobo4IV()},
		},
		fourBit: []Entry{
			{Code: "4i", Processor: newProc4I()},
			{Code: "4ii", Processor: proc4II},
			{Code: "4iii", Processor: proc4III},
			{Code: "4iv", Processor: proc4IV},
		},
		eightBit: []Entry{
			{Code: "8i", Processor: proc8I, Headings: proc8Headings},
			{Code: "8ii", Processor: proc8II, Headings: proc8Headings},
			{Code: "8iii", Processor: proc8III, Headings: proc8Headings},
			{Code: "8iv", Processor: proc8IV, Headings: proc8Headings},
		},
	}

	cat.allEntries = slices.Collect(internal.Concat(
		slices.Values(cat.robots),
		slices.Values(cat.fourBit),
		slices.Values(cat.eightBit),
	))

	cat.byCode = make(map[string]Entry, len(cat.allEntries))
	for _, entry := range cat.allEntries {
		if _, dup := cat.byCode[entry.Code]; dup {
			err = fmt.Errorf("%w: %v", ErrCodeDuplicate, entry.Code)
			cat = nil
			return
		}
		cat.byCode[entry.Code] = entry

		err = entry.Processor.Validate()
		if err != nil {
			cat = nil
			return
		}
	}

	return
}

// Default returns the catalog shared by the whole program. It panics if
// the built-in processors are misconfigured.
var Default = sync.OnceValue(func() *Catalog {
	cat, err := New()
	if err != nil {
		panic(err)
	}
	return cat
})

// Entries iterates over the catalog in order.
func (cat *Catalog) Entries() iter.Seq[Entry] {
	return slices.Values(cat.allEntries)
}

// Codes iterates over the device codes in catalog order.
func (cat *Catalog) Codes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range cat.allEntries {
			if !yield(entry.Code) {
				return
			}
		}
	}
}

// All iterates over device codes and processors in catalog order.
func (cat *Catalog) All() iter.Seq2[string, *processor.Processor] {
	return func(yield func(string, *processor.Processor) bool) {
		for _, entry := range cat.allEntries {
			if !yield(entry.Code, entry.Processor) {
				return
			}
		}
	}
}

// Lookup returns the processor for a device code.
func (cat *Catalog) Lookup(code string) (proc *processor.Processor, ok bool) {
	entry, ok := cat.byCode[code]
	proc = entry.Processor
	return
}

// Processors returns the processors for the device codes, in the same
// order. Unknown codes yield a nil entry. A nil codes slice returns the
// whole catalog.
func (cat *Catalog) Processors(codes []string) (procs []*processor.Processor) {
	if codes == nil {
		for _, entry := range cat.allEntries {
			procs = append(procs, entry.Processor)
		}
		return
	}

	procs = make([]*processor.Processor, len(codes))
	for n, code := range codes {
		procs[n] = cat.byCode[code].Processor
	}
	return
}

// Headings returns the headings for the device codes, in the same order.
// Only the 8-bit family has headings; every other code, known or not,
// yields nil. A nil codes slice returns headings for the whole catalog.
func (cat *Catalog) Headings(codes []string) (headings []Headings) {
	if codes == nil {
		for _, entry := range cat.allEntries {
			headings = append(headings, entry.Headings)
		}
		return
	}

	headings = make([]Headings, len(codes))
	for n, code := range codes {
		headings[n] = cat.byCode[code].Headings
	}
	return
}

// ProcessorsFor returns processors from the default catalog.
func ProcessorsFor(codes []string) []*processor.Processor {
	return Default().Processors(codes)
}

// HeadingsFor returns headings from the default catalog.
func HeadingsFor(codes []string) []Headings {
	return Default().Headings(codes)
}
