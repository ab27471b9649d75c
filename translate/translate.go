// Package translate formats user facing messages in the caller's locale.
package translate

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     atomic.Pointer[message.Printer]
	printerOnce sync.Once
)

// setup selects the printer from the host locale, falling back to en-US.
func setup() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("microproc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(locales...)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(setup)
	return printer.Load().Sprintf(key, args...)
}

// Use forces a specific language, mostly for tests and the CLI -lang flag.
// It is safe to call while other goroutines translate.
func Use(tag language.Tag) {
	printerOnce.Do(setup)
	printer.Store(message.NewPrinter(tag))
}
