package document

import "strings"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a field value. Numbers keep their literal text (for
// example "4.50") and nested objects are kept as compact JSON.
type Kind int

const (
	KindAbsent Kind = iota // absent
	KindNull               // null
	KindString             // string
	KindNumber             // number
	KindBool               // bool
	KindList               // list
	KindObject             // object
)

// Value is one field value of a document.
type Value struct {
	kind  Kind
	text  string
	items []Value
}

// Absent returns the marker for a field that is not in the document.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns a JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindString, text: s} }

// Number returns a number value with the given literal text.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindBool, text: "true"}
	}

	return Value{kind: KindBool, text: "false"}
}

// List returns a sequence value.
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

// Strings returns a sequence of string values.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = Text(s)
	}

	return List(items...)
}

// Object returns a nested object value from its compact JSON text.
func Object(compact string) Value { return Value{kind: KindObject, text: compact} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the field was missing from the document.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool { return v.kind == KindAbsent || v.kind == KindNull }

// Scalar returns the text of a string, number, boolean, or object value.
// Lists and absent/null values return "".
func (v Value) Scalar() string { return v.text }

// Items returns the elements of a list value, or nil.
func (v Value) Items() []Value { return v.items }

// Flatten renders the value as a single string. List elements are
// flattened recursively and joined with sep; null elements are skipped.
func (v Value) Flatten(sep string) string {
	if v.kind != KindList {
		return v.text
	}

	parts := make([]string, 0, len(v.items))
	for _, it := range v.items {
		if it.IsNull() {
			continue
		}

		parts = append(parts, it.Flatten(sep))
	}

	return strings.Join(parts, sep)
}
