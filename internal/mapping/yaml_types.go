package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"record-flattener/internal/common"
	"record-flattener/internal/normalize"
	"record-flattener/internal/schema"
)

// CurrentVersion is the configuration file version this package writes.
const CurrentVersion = "1"

// Config is the run configuration file.
type Config struct {
	Version          string        `yaml:"version"`
	Mode             schema.Mode   `yaml:"mode"`
	Columns          StringOrArray `yaml:"columns,omitempty"`
	Placeholder      *string       `yaml:"placeholder,omitempty"`
	DecodeUnicode    *bool         `yaml:"decode_unicode,omitempty"`
	StripHTML        bool          `yaml:"strip_html,omitempty"`
	NormalizeUnicode bool          `yaml:"normalize_unicode,omitempty"`
	FoldKeys         bool          `yaml:"fold_keys,omitempty"`
	CRLF             bool          `yaml:"crlf,omitempty"`
	Workers          int           `yaml:"workers,omitempty"`
	Rules            []RuleDef     `yaml:"rules,omitempty"`
}

// Policy returns the cell normalization policy the configuration selects.
// Call it after defaults have been applied.
func (c *Config) Policy() normalize.Policy {
	p := normalize.DefaultPolicy()
	if c.Placeholder != nil {
		p.Placeholder = *c.Placeholder
	}

	if c.DecodeUnicode != nil {
		p.DecodeUnicode = *c.DecodeUnicode
	}

	p.StripHTML = c.StripHTML
	p.NormalizeUnicode = c.NormalizeUnicode

	return p
}

// RuleKind names how a rule derives its column.
type RuleKind string

const (
	RulePrefixScan RuleKind = "prefix_scan"
	RuleStripLabel RuleKind = "strip_label"
)

// IsValid returns true if the kind is known.
func (k RuleKind) IsValid() bool {
	return k == RulePrefixScan || k == RuleStripLabel
}

// RuleDef declares a derived column.
type RuleDef struct {
	Column string   `yaml:"column"`
	Kind   RuleKind `yaml:"kind"`
	From   string   `yaml:"from,omitempty"`
	Prefix string   `yaml:"prefix,omitempty"`
}

// Source returns the field the rule reads, defaulting to its column.
func (r RuleDef) Source() string {
	if r.From == "" {
		return r.Column
	}

	return r.From
}

// StringOrArray is a list of strings that may be written in YAML as a
// single scalar.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
