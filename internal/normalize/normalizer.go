package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"record-flattener/internal/document"
)

var lineBreaks = strings.NewReplacer(
	"\r\n", LineBreakReplacement,
	"\n", LineBreakReplacement,
	"\r", LineBreakReplacement,
)

// Normalizer renders values into cells under a fixed Policy.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	policy Policy
}

// New creates a Normalizer for the given policy.
func New(p Policy) *Normalizer {
	return &Normalizer{policy: p}
}

// Policy returns the normalizer's policy.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// Cell renders one field value.
func (n *Normalizer) Cell(v document.Value) string {
	return n.Finish(Raw(v))
}

// Raw flattens a value to a single string without any further
// processing. Absent and null values flatten to "".
func Raw(v document.Value) string {
	if v.IsNull() {
		return ""
	}

	return v.Flatten(ListSeparator)
}

// Finish applies escape decoding, HTML stripping, line-break replacement,
// NFC normalization, and the placeholder to already-flattened text.
func (n *Normalizer) Finish(s string) string {
	if n.policy.DecodeUnicode {
		s = DecodeEscapes(s)
	}

	if n.policy.StripHTML {
		s = HTMLToText(s)
	}

	s = ReplaceLineBreaks(s)

	if n.policy.NormalizeUnicode {
		s = norm.NFC.String(s)
	}

	if s == "" {
		return n.policy.Placeholder
	}

	return s
}

// ReplaceLineBreaks replaces CRLF, LF, and lone CR with " | ".
func ReplaceLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	return lineBreaks.Replace(s)
}
