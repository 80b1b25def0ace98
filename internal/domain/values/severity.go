package values

import (
	"fmt"
	"strings"
)

// Severity represents the severity of a configuration diagnostic.
// Errors abort the run; warnings are reported and ignored.
type Severity struct {
	value SeverityLevel
}

// SeverityLevel is the internal representation
type SeverityLevel int

const (
	SeverityUnknown SeverityLevel = 0
	SeverityWarning SeverityLevel = 1
	SeverityError   SeverityLevel = 2
)

// Predefined severity values
var (
	SevUnknown = Severity{SeverityUnknown}
	SevWarning = Severity{SeverityWarning}
	SevError   = Severity{SeverityError}
)

// NewSeverity creates a Severity from string
func NewSeverity(s string) (Severity, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "warning":
		return SevWarning, nil
	case "error":
		return SevError, nil
	case "":
		return SevUnknown, nil
	default:
		return Severity{}, fmt.Errorf("invalid severity: %s", s)
	}
}

// String returns the string representation
func (s Severity) String() string {
	switch s.value {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return ""
	}
}

// IsError returns true for error severity.
func (s Severity) IsError() bool {
	return s.value == SeverityError
}

// Equals checks if two severities are equal
func (s Severity) Equals(other Severity) bool {
	return s.value == other.value
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}
