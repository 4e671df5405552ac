package dto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelUnavailable signals that the classifier artifact could not be
// loaded. Extraction and GST detection stay usable without it.
var ErrModelUnavailable = errors.New("classifier model unavailable")

// SchemaError is returned when no description-equivalent column can be
// identified after alias resolution. Dates and amounts degrade to defaults,
// but the description is the classification feature and cannot be defaulted.
type SchemaError struct {
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no description column found (columns: %s)",
		strings.Join(e.Columns, ", "))
}

// NoTableFoundError is returned when a document yields zero non-blank rows.
// It usually means the document is scanned or has no machine-readable table.
type NoTableFoundError struct {
	PagesTried  int
	PagesFailed int
}

func (e *NoTableFoundError) Error() string {
	return fmt.Sprintf("no table found in document (%d pages tried, %d failed)",
		e.PagesTried, e.PagesFailed)
}
