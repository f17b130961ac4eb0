package schema

import (
	"fmt"

	"record-flattener/internal/document"
)

// Resolver produces the schema for one run. Fixed and user modes are
// resolved up front; auto mode is resolved by the first document passed
// to Observe, so a document that failed to parse never decides it.
type Resolver struct {
	mode     Mode
	schema   Schema
	resolved bool
	source   string
}

// NewResolver creates a resolver. User mode validates its columns here,
// so a configuration error surfaces before any input is read.
func NewResolver(mode Mode, columns []string) (*Resolver, error) {
	r := &Resolver{mode: mode}

	switch mode {
	case ModeFixed:
		r.schema, r.resolved = Fixed(), true
	case ModeUser:
		s, err := FromUser(columns)
		if err != nil {
			return nil, err
		}

		r.schema, r.resolved = s, true
	case ModeAuto:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	return r, nil
}

// Mode returns the resolver's mode.
func (r *Resolver) Mode() Mode {
	return r.mode
}

// Observe offers a successfully parsed document. In auto mode the first
// one with at least one field fixes the schema; later calls and other
// modes are no-ops.
func (r *Resolver) Observe(source string, doc *document.Document) {
	if r.resolved || doc == nil || doc.Len() == 0 {
		return
	}

	r.schema = FromDocument(doc)
	r.resolved = true
	r.source = source
}

// Schema returns the resolved schema, or false if auto mode has not seen
// a document yet.
func (r *Resolver) Schema() (Schema, bool) {
	return r.schema, r.resolved
}

// Source names the document an auto-mode schema was taken from.
func (r *Resolver) Source() string {
	return r.source
}
