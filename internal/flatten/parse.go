package flatten

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"record-flattener/internal/document"
)

// Per-document diagnostic codes.
const (
	CodeReadFailed    = "read_failed"
	CodeEmptyDocument = "empty_document"
	CodeNotObject     = "not_object"
	CodeMalformedJSON = "malformed_json"
)

type parsed struct {
	name string
	doc  *document.Document
	err  error
}

// parseAll decodes every source. With more than one worker the sources
// are decoded concurrently; results always come back in input order.
func parseAll(sources []Source, workers int) []parsed {
	out := make([]parsed, len(sources))

	if workers <= 1 || len(sources) <= 1 {
		for i, src := range sources {
			out[i] = parseOne(src)
		}

		return out
	}

	var g errgroup.Group

	g.SetLimit(workers)

	for i, src := range sources {
		g.Go(func() error {
			out[i] = parseOne(src)
			return nil
		})
	}

	// Failures are kept per source, never returned through the group.
	_ = g.Wait()

	return out
}

func parseOne(src Source) parsed {
	p := parsed{name: src.Name()}

	rc, err := src.Open()
	if err != nil {
		p.err = fmt.Errorf("opening source: %w", err)
		return p
	}
	defer rc.Close()

	p.doc, p.err = document.Decode(rc)

	return p
}

// classify maps a decode failure to its diagnostic code.
func classify(err error) string {
	var synErr *document.SyntaxError

	switch {
	case errors.Is(err, document.ErrEmpty):
		return CodeEmptyDocument
	case errors.Is(err, document.ErrNotObject):
		return CodeNotObject
	case errors.As(err, &synErr):
		return CodeMalformedJSON
	default:
		return CodeReadFailed
	}
}
