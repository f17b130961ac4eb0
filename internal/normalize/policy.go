package normalize

const (
	// ListSeparator joins the elements of a list value.
	ListSeparator = ", "
	// LineBreakReplacement stands in for every line break in a cell.
	LineBreakReplacement = " | "
	// DefaultPlaceholder is the placeholder used by DefaultPolicy.
	DefaultPlaceholder = "0"
)

// Policy controls how values are rendered into cells.
type Policy struct {
	// Placeholder replaces absent, null, and empty values. The empty
	// string is a valid placeholder.
	Placeholder string
	// DecodeUnicode interprets backslash escapes embedded in text.
	DecodeUnicode bool
	// StripHTML reduces markup to its text content.
	StripHTML bool
	// NormalizeUnicode puts every cell in Unicode NFC form.
	NormalizeUnicode bool
}

// DefaultPolicy returns the policy used when none is configured:
// placeholder "0", every optional step off.
func DefaultPolicy() Policy {
	return Policy{Placeholder: DefaultPlaceholder}
}
