package diagnostic

import "errors"

// Diagnostics collects the findings of one run, split by severity and
// kept in the order they were added.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files each diagnostic under its severity.
func (ds *Diagnostics) Add(diags ...Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			ds.Errors = append(ds.Errors, d)
		case SeverityWarning:
			ds.Warnings = append(ds.Warnings, d)
		default:
			ds.Infos = append(ds.Infos, d)
		}
	}
}

// HasErrors reports whether any error-severity diagnostic was added.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// Len counts diagnostics of every severity.
func (ds *Diagnostics) Len() int {
	return len(ds.Errors) + len(ds.Warnings) + len(ds.Infos)
}

// All lists errors, then warnings, then infos.
func (ds *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, ds.Len())
	out = append(out, ds.Errors...)
	out = append(out, ds.Warnings...)

	return append(out, ds.Infos...)
}

// Codes lists the codes of one severity in order. The result is never nil.
func (ds *Diagnostics) Codes(sev Severity) []string {
	out := []string{}

	for _, d := range ds.All() {
		if d.Severity == sev {
			out = append(out, d.Code)
		}
	}

	return out
}

// Err joins the error-severity diagnostics into one error, or returns nil.
func (ds *Diagnostics) Err() error {
	errs := make([]error, 0, len(ds.Errors))
	for _, d := range ds.Errors {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}
