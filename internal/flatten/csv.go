package flatten

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

const (
	// ContentType is the MIME type of the output.
	ContentType = "text/csv"
	// DefaultFilename is the suggested name of the output file.
	DefaultFilename = "combined_file.csv"
)

// Encode writes header and rows as RFC 4180 CSV with comma delimiters.
// Every record ends in LF, or CRLF when crlf is set.
func Encode(w io.Writer, header []string, rows [][]string, crlf bool) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = crlf

	if err := writeRecord(cw, w, header, crlf); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := writeRecord(cw, w, row, crlf); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}

	return nil
}

// writeRecord writes one record through cw. A record made of a single
// empty field is written as "" straight to w: csv.Writer leaves it
// unquoted, and the resulting blank line is dropped by CSV readers.
func writeRecord(cw *csv.Writer, w io.Writer, rec []string, crlf bool) error {
	if len(rec) != 1 || rec[0] != "" {
		return cw.Write(rec)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return err
	}

	eol := "\n"
	if crlf {
		eol = "\r\n"
	}

	_, err := io.WriteString(w, `""`+eol)

	return err
}

// EncodeBytes is Encode into a new byte slice.
func EncodeBytes(header []string, rows [][]string, crlf bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, header, rows, crlf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
