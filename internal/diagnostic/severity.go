package diagnostic

//go:generate go tool stringer -type=Severity -linecomment -output=severity_string.go

// Severity orders diagnostics from informational to fatal for the
// document or setting they name.
type Severity int

const (
	SeverityInfo    Severity = iota // info
	SeverityWarning                 // warning
	SeverityError                   // error
)
