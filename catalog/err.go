package catalog

import (
	"errors"

	"github.com/cs101course/microprocessorExamples/translate"
)

var (
	ErrCodeDuplicate = errors.New(translate.From("device code duplicated"))
)
