package document

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrEmpty is returned for a source with no content.
	ErrEmpty = errors.New("document is empty")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("top-level JSON value is not an object")
)

// SyntaxError reports input that is not valid JSON.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "invalid JSON: " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Document is one decoded input record.
type Document struct {
	keys   []string
	values map[string]Value

	invalidUTF8 bool
}

// Decode reads r to the end and parses it as one JSON object.
// A UTF-8 or UTF-16 byte order mark selects the input encoding; without
// one the input is read as UTF-8. Malformed input bytes are replaced with
// U+FFFD and reported by InvalidUTF8.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	data, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	doc.invalidUTF8 = replacedBytes(raw, data)

	return doc, nil
}

var replacementChar = []byte(string(utf8.RuneError))

// replacedBytes reports whether decoding raw into data substituted U+FFFD
// for malformed input, as opposed to U+FFFD that raw already encoded.
func replacedBytes(raw, data []byte) bool {
	var order binary.ByteOrder

	switch {
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		order = binary.BigEndian
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		order = binary.LittleEndian
	default:
		return !utf8.Valid(raw)
	}

	units := raw[2:]
	if len(units)%2 != 0 {
		return true
	}

	literal := 0

	for i := 0; i < len(units); i += 2 {
		if order.Uint16(units[i:]) == utf8.RuneError {
			literal++
		}
	}

	return bytes.Count(data, replacementChar) > literal
}

// Parse parses UTF-8 JSON text as one JSON object.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	if !json.Valid(data) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, &SyntaxError{Err: err}
		}

		return nil, &SyntaxError{Err: errors.New("malformed input")}
	}

	if data[0] != '{' {
		return nil, ErrNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	// Opening brace; validity was checked above.
	if _, err := dec.Token(); err != nil {
		return nil, &SyntaxError{Err: err}
	}

	doc := &Document{values: make(map[string]Value)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &SyntaxError{Err: err}
		}

		key, ok := tok.(string)
		if !ok {
			return nil, &SyntaxError{Err: fmt.Errorf("unexpected object key %v", tok)}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &SyntaxError{Err: err}
		}

		v, err := valueOf(raw)
		if err != nil {
			return nil, &SyntaxError{Err: fmt.Errorf("field %q: %w", key, err)}
		}

		if _, seen := doc.values[key]; !seen {
			doc.keys = append(doc.keys, key)
		}

		doc.values[key] = v
	}

	return doc, nil
}

func valueOf(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, errors.New("empty value")
	}

	switch raw[0] {
	case 'n':
		return Null(), nil
	case 't':
		return Bool(true), nil
	case 'f':
		return Bool(false), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, err
		}

		return Text(s), nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return Value{}, err
		}

		items := make([]Value, 0, len(elems))

		for _, e := range elems {
			v, err := valueOf(e)
			if err != nil {
				return Value{}, err
			}

			items = append(items, v)
		}

		return List(items...), nil
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Value{}, err
		}

		return Object(buf.String()), nil
	default:
		return Number(string(raw)), nil
	}
}

// Keys returns the field names in document order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// InvalidUTF8 reports whether Decode replaced malformed input bytes with
// U+FFFD. Documents built by Parse never report it.
func (d *Document) InvalidUTF8() bool {
	return d.invalidUTF8
}

// Len returns the number of distinct fields.
func (d *Document) Len() int {
	return len(d.keys)
}

// Get looks up a field. A missing field returns Absent() and false.
func (d *Document) Get(name string) (Value, bool) {
	v, ok := d.values[name]
	if !ok {
		return Absent(), false
	}

	return v, true
}
