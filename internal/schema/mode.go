package schema

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"record-flattener/internal/common"
)

// ErrUnknownMode is returned when a mode name is not recognized.
var ErrUnknownMode = errors.New("unknown schema mode")

// Mode selects how the column schema is produced.
type Mode int

const (
	ModeFixed Mode = iota
	ModeUser
	ModeAuto
)

// String returns the mode's canonical name.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed-schema"
	case ModeUser:
		return "user-schema"
	case ModeAuto:
		return "auto-schema"
	default:
		return common.UnknownStr
	}
}

// ParseMode parses a mode name. The canonical names and their short
// forms ("fixed", "user", "auto") are accepted, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed-schema", "fixed":
		return ModeFixed, nil
	case "user-schema", "user":
		return ModeUser, nil
	case "auto-schema", "auto":
		return ModeAuto, nil
	default:
		return 0, fmt.Errorf("%w %q (want fixed-schema, user-schema, or auto-schema)", ErrUnknownMode, s)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Mode.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	mode, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// MarshalYAML implements custom YAML marshaling for Mode.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}
