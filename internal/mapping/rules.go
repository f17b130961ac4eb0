package mapping

import (
	"strings"

	"record-flattener/internal/document"
	"record-flattener/internal/normalize"
	"record-flattener/internal/schema"
)

// Lookup returns a document field by name, Absent() when missing.
type Lookup func(name string) document.Value

// Rule is a validated rule ready to derive a column.
type Rule struct {
	Def RuleDef
}

// Derive computes the raw (not yet normalized) text for the rule's column.
func (r *Rule) Derive(get Lookup) string {
	v := get(r.Def.Source())

	switch r.Def.Kind {
	case RulePrefixScan:
		return scanPrefix(v, r.Def.Prefix)
	case RuleStripLabel:
		return strings.TrimPrefix(normalize.Raw(v), r.Def.Prefix)
	default:
		return normalize.Raw(v)
	}
}

// scanPrefix returns the first list element that starts with prefix.
// A scalar is treated as a one-element list.
func scanPrefix(v document.Value, prefix string) string {
	items := v.Items()
	if v.Kind() != document.KindList {
		items = []document.Value{v}
	}

	for _, it := range items {
		if it.IsNull() {
			continue
		}

		if s := normalize.Raw(it); strings.HasPrefix(s, prefix) {
			return s
		}
	}

	return ""
}

// FixedRules returns the built-in rules of fixed-schema mode.
func FixedRules() []RuleDef {
	return []RuleDef{
		{Column: schema.ColumnRole, Kind: RulePrefixScan, From: "Others", Prefix: "Role: "},
		{Column: schema.ColumnAboutCompany, Kind: RuleStripLabel, Prefix: "About company\n"},
	}
}

// Registry holds rules keyed by the column they derive.
type Registry struct {
	rules map[string]*Rule
}

// NewRegistry creates a new empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]*Rule)}
}

// BuildRegistry builds the registry for a configuration: the built-in
// rules in fixed-schema mode, then the configured rules, which replace a
// built-in rule for the same column. Invalid rule definitions are skipped;
// Validate reports them.
func BuildRegistry(cfg *Config) *Registry {
	r := NewRegistry()

	if cfg.Mode == schema.ModeFixed {
		for _, def := range FixedRules() {
			r.Add(def)
		}
	}

	for _, def := range cfg.Rules {
		if def.Column == "" || !def.Kind.IsValid() {
			continue
		}

		r.Add(def)
	}

	return r
}

// Add adds a rule to the registry, replacing any rule for the same column.
func (r *Registry) Add(def RuleDef) {
	r.rules[def.Column] = &Rule{Def: def}
}

// Get returns the rule for a column, or nil if none.
func (r *Registry) Get(column string) *Rule {
	if r == nil {
		return nil
	}

	return r.rules[column]
}

// Has returns true if a rule exists for the column.
func (r *Registry) Has(column string) bool {
	return r.Get(column) != nil
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.rules)
}
