package diagnostic

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic is one finding about an input document or a run setting.
type Diagnostic struct {
	Severity Severity
	// Code is a stable machine-readable identifier, e.g. "malformed_json".
	Code    string
	Message string
	// Source names the input document, empty for run-level findings.
	Source string
	// Field names the column or configuration key, if any.
	Field string
	// Suggestions are close alternatives for a misspelled Field.
	Suggestions []string
}

// Errorf builds an error-severity diagnostic.
func Errorf(code, format string, args ...any) Diagnostic {
	return newf(SeverityError, code, format, args)
}

// Warningf builds a warning-severity diagnostic.
func Warningf(code, format string, args ...any) Diagnostic {
	return newf(SeverityWarning, code, format, args)
}

// Infof builds an info-severity diagnostic.
func Infof(code, format string, args ...any) Diagnostic {
	return newf(SeverityInfo, code, format, args)
}

func newf(sev Severity, code, format string, args []any) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: fmt.Sprintf(format, args...)}
}

// In returns a copy of d attributed to the named input document.
func (d Diagnostic) In(source string) Diagnostic {
	d.Source = source
	return d
}

// At returns a copy of d attached to a column or configuration key.
func (d Diagnostic) At(field string) Diagnostic {
	d.Field = field
	return d
}

// Suggest returns a copy of d carrying the given alternatives.
func (d Diagnostic) Suggest(alternatives []string) Diagnostic {
	d.Suggestions = alternatives
	return d
}

// String renders d as `[source] field: [code] message (did you mean "x"?)`,
// leaving out the parts that are empty.
func (d Diagnostic) String() string {
	var sb strings.Builder

	if d.Source != "" {
		sb.WriteString("[" + d.Source + "]")
	}

	if d.Field != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(d.Field)
	}

	if sb.Len() > 0 {
		sb.WriteString(": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + d.Code + "] ")
	}

	sb.WriteString(d.Message)

	for i, s := range d.Suggestions {
		if i == 0 {
			sb.WriteString(" (did you mean ")
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(strconv.Quote(s))
	}

	if len(d.Suggestions) > 0 {
		sb.WriteString("?)")
	}

	return sb.String()
}

// Error makes an error-severity diagnostic usable as an error value.
func (d Diagnostic) Error() string {
	return d.String()
}
