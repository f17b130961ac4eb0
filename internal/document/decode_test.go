package document

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	doc, err := Parse([]byte(`{"Title":"Engineer","Company name":"Acme","Applicants":12,"Skills":["Go","SQL"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Company name", "Applicants", "Skills"}, doc.Keys())
	assert.Equal(t, 4, doc.Len())
}

func TestParse_ValueKinds(t *testing.T) {
	doc, err := Parse([]byte(`{
		"s": "text",
		"n": 4.50,
		"b": false,
		"z": null,
		"l": ["a", 1, null, ["x", "y"]],
		"o": { "k" : [1, 2] }
	}`))
	require.NoError(t, err)

	tests := []struct {
		key  string
		kind Kind
		text string
	}{
		{"s", KindString, "text"},
		{"n", KindNumber, "4.50"},
		{"b", KindBool, "false"},
		{"z", KindNull, ""},
		{"l", KindList, "a, 1, x, y"},
		{"o", KindObject, `{"k":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := doc.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.text, v.Flatten(", "))
		})
	}
}

func TestParse_MissingFieldIsAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{"Title":""}`))
	require.NoError(t, err)

	v, ok := doc.Get("Skills")
	assert.False(t, ok)
	assert.True(t, v.IsAbsent())

	v, ok = doc.Get("Title")
	assert.True(t, ok)
	assert.False(t, v.IsAbsent())
	assert.Equal(t, KindString, v.Kind())
}

func TestParse_DuplicateKeys(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, doc.Keys())

	v, _ := doc.Get("a")
	assert.Equal(t, "3", v.Scalar())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		notObject bool
		empty     bool
	}{
		{name: "empty", input: "", empty: true},
		{name: "whitespace", input: " \n\t", empty: true},
		{name: "truncated", input: `{"Title":"Engineer"`},
		{name: "garbage", input: `not json`},
		{name: "trailing data", input: `{"a":1} {"b":2}`},
		{name: "array", input: `[{"a":1}]`, notObject: true},
		{name: "string", input: `"hello"`, notObject: true},
		{name: "number", input: `42`, notObject: true},
		{name: "null", input: `null`, notObject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, doc)

			switch {
			case tt.empty:
				assert.ErrorIs(t, err, ErrEmpty)
			case tt.notObject:
				assert.ErrorIs(t, err, ErrNotObject)
			default:
				var synErr *SyntaxError
				require.ErrorAs(t, err, &synErr)

				var jsonErr *json.SyntaxError
				assert.ErrorAs(t, err, &jsonErr)
			}
		})
	}
}

func TestDecode_ByteOrderMarks(t *testing.T) {
	const body = `{"Title":"Ingénieur"}`

	utf16le := []byte{0xFF, 0xFE}
	for _, r := range body {
		utf16le = append(utf16le, byte(r), byte(r>>8))
	}

	tests := []struct {
		name  string
		input []byte
	}{
		{"plain utf-8", []byte(body)},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, body...)},
		{"utf-16le bom", utf16le},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(bytes.NewReader(tt.input))
			require.NoError(t, err)

			v, ok := doc.Get("Title")
			require.True(t, ok)
			assert.Equal(t, "Ingénieur", v.Scalar())
			assert.False(t, doc.InvalidUTF8())
		})
	}
}

func utf16LE(units ...uint16) []byte {
	out := []byte{0xFF, 0xFE}
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}

	return out
}

func utf16Text(s string) []uint16 {
	var units []uint16
	for _, r := range s {
		units = append(units, uint16(r))
	}

	return units
}

func TestDecode_InvalidUTF8(t *testing.T) {
	withUnit := func(u uint16) []byte {
		units := utf16Text(`{"Title":"a`)
		units = append(units, u)
		units = append(units, utf16Text(`"}`)...)

		return utf16LE(units...)
	}

	tests := []struct {
		name    string
		input   []byte
		invalid bool
	}{
		{"latin-1 byte", []byte("{\"Title\":\"caf\xe9\"}"), true},
		{"truncated sequence", []byte("{\"Title\":\"a\xe2\x82\"}"), true},
		{"encoded replacement character", []byte("{\"Title\":\"a\uFFFD\"}"), false},
		{"utf-16 replacement character", withUnit(0xFFFD), false},
		{"utf-16 lone surrogate", withUnit(0xD800), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(bytes.NewReader(tt.input))
			require.NoError(t, err)

			v, _ := doc.Get("Title")
			assert.Contains(t, v.Scalar(), "\uFFFD")
			assert.Equal(t, tt.invalid, doc.InvalidUTF8())
		})
	}
}

func TestParse_NeverReportsInvalidUTF8(t *testing.T) {
	doc, err := Parse([]byte(`{"a":"b"}`))
	require.NoError(t, err)
	assert.False(t, doc.InvalidUTF8())
}

func TestDecode_Reader(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"x": true}`))
	require.NoError(t, err)

	v, _ := doc.Get("x")
	assert.Equal(t, KindBool, v.Kind())
	assert.Equal(t, "true", v.Scalar())
}

func TestValue_Constructors(t *testing.T) {
	assert.True(t, Absent().IsAbsent())
	assert.True(t, Absent().IsNull())
	assert.True(t, Null().IsNull())
	assert.False(t, Null().IsAbsent())
	assert.Equal(t, "a, b, c", Strings("a", "b", "c").Flatten(", "))
	assert.Equal(t, "", List().Flatten(", "))
	assert.Equal(t, "true", Bool(true).Scalar())
	assert.Equal(t, "1e3", Number("1e3").Flatten(", "))
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
