package flatten

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		crlf bool
		want string
	}{
		{"plain", [][]string{{"a", "b"}}, false, "x,y\na,b\n"},
		{"comma quoted", [][]string{{"Go, SQL", "b"}}, false, "x,y\n\"Go, SQL\",b\n"},
		{"quote doubled", [][]string{{`say "hi"`, "b"}}, false, "x,y\n\"say \"\"hi\"\"\",b\n"},
		{"line break quoted", [][]string{{"a\nb", "c"}}, false, "x,y\n\"a\nb\",c\n"},
		{"crlf", [][]string{{"a", "b"}}, true, "x,y\r\na,b\r\n"},
		{"no rows", nil, false, "x,y\n"},
		{"unicode", [][]string{{"Zürich", "₹"}}, false, "x,y\nZürich,₹\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, []string{"x", "y"}, tt.rows, tt.crlf))
			assert.Equal(t, tt.want, buf.String())

			data, err := EncodeBytes([]string{"x", "y"}, tt.rows, tt.crlf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncode_WriteError(t *testing.T) {
	err := Encode(failingWriter{}, []string{"x"}, [][]string{{"a"}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOutputConstants(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType)
	assert.Equal(t, "combined_file.csv", DefaultFilename)
}

func TestEncode_SingleEmptyField(t *testing.T) {
	tests := []struct {
		name string
		crlf bool
		want string
	}{
		{"lf", false, "X\n\"\"\na\n"},
		{"crlf", true, "X\r\n\"\"\r\na\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeBytes([]string{"X"}, [][]string{{""}, {"a"}}, tt.crlf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))

			records := readCSV(t, data)
			assert.Equal(t, [][]string{{"X"}, {""}, {"a"}}, records)
		})
	}
}

func TestEncode_EmptyFieldsInWiderRecord(t *testing.T) {
	data, err := EncodeBytes([]string{"x", "y"}, [][]string{{"", ""}}, false)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n,\n", string(data))
}
