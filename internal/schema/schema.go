package schema

import (
	"errors"
	"strings"

	"record-flattener/internal/common"
	"record-flattener/internal/document"
)

// ErrNoColumns is returned when user-schema mode is given no column names.
var ErrNoColumns = errors.New("user-schema mode requires at least one column name")

// Built-in column names that have special handling in fixed mode.
const (
	ColumnRole         = "Role"
	ColumnAboutCompany = "About company"
)

var fixedColumns = []string{
	"Title",
	"Company name",
	"Job location",
	"Work experience",
	"Portal link",
	"job listing link",
	"Company's Rating",
	"No. of openings",
	"Applicants",
	"Job_posting_date",
	"Minimum salary",
	"Maximum salary",
	"Average salary",
	"Benefits",
	ColumnRole,
	"Education details",
	"Skills",
	ColumnAboutCompany,
	"Years",
}

// FixedColumns returns a copy of the built-in job-listing columns.
func FixedColumns() []string {
	return append([]string(nil), fixedColumns...)
}

// Schema is an ordered list of unique column names.
type Schema struct {
	columns []string
	index   map[string]int
}

func newSchema(columns []string) Schema {
	columns = common.Dedupe(columns)

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	return Schema{columns: columns, index: index}
}

// Fixed returns the built-in job-listing schema.
func Fixed() Schema {
	return newSchema(FixedColumns())
}

// FromUser builds a schema from caller-supplied names. Names are trimmed,
// empty names dropped, and repeats removed keeping the first. If nothing
// remains, ErrNoColumns is returned.
func FromUser(names []string) (Schema, error) {
	cleaned := make([]string, 0, len(names))

	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}

	if common.IsEmpty(cleaned) {
		return Schema{}, ErrNoColumns
	}

	return newSchema(cleaned), nil
}

// FromDocument builds a schema from a document's key order.
func FromDocument(doc *document.Document) Schema {
	return newSchema(doc.Keys())
}

// SplitList splits a comma-separated list of column names.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Split(s, ",")
}

// Columns returns a copy of the column names in order.
func (s Schema) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.columns)
}

// IsEmpty returns true if the schema has no columns.
func (s Schema) IsEmpty() bool {
	return len(s.columns) == 0
}

// Index returns the position of a column.
func (s Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}
