package flatten

import (
	"record-flattener/internal/document"
	"record-flattener/internal/mapping"
	"record-flattener/internal/match"
	"record-flattener/internal/normalize"
	"record-flattener/internal/schema"
)

// Projector maps a document onto a schema, one cell per column.
// It holds no per-document state and is safe for concurrent use.
type Projector struct {
	columns  []string
	rules    *mapping.Registry
	norm     *normalize.Normalizer
	foldKeys bool
}

// NewProjector creates a projector. rules may be nil.
func NewProjector(s schema.Schema, rules *mapping.Registry, n *normalize.Normalizer, foldKeys bool) *Projector {
	return &Projector{
		columns:  s.Columns(),
		rules:    rules,
		norm:     n,
		foldKeys: foldKeys,
	}
}

// Row returns exactly one cell per schema column, in schema order.
func (p *Projector) Row(doc *document.Document) []string {
	get := p.lookup(doc)
	row := make([]string, len(p.columns))

	for i, col := range p.columns {
		if rule := p.rules.Get(col); rule != nil {
			row[i] = p.norm.Finish(rule.Derive(get))
			continue
		}

		row[i] = p.norm.Cell(get(col))
	}

	return row
}

// lookup resolves a column against the document: exact key first, then
// the first key with the same folded form when key folding is on.
func (p *Projector) lookup(doc *document.Document) mapping.Lookup {
	return func(name string) document.Value {
		if v, ok := doc.Get(name); ok {
			return v
		}

		if p.foldKeys {
			if k, ok := match.FindFolded(name, doc.Keys()); ok {
				v, _ := doc.Get(k)
				return v
			}
		}

		return document.Absent()
	}
}
