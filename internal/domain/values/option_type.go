package values

import "strings"

// OptionType tells whether a characterization profile may override an option.
type OptionType string

const (
	// OptionTypeValue is fixed for every build and cannot be overridden.
	OptionTypeValue OptionType = "VALUE"
	// OptionTypeOption may be overridden per characterization profile.
	OptionTypeOption OptionType = "OPTION"
)

// NewOptionType parses the TYPE column of an option record.
func NewOptionType(s string) (OptionType, error) {
	switch OptionType(strings.TrimSpace(s)) {
	case OptionTypeValue:
		return OptionTypeValue, nil
	case OptionTypeOption:
		return OptionTypeOption, nil
	default:
		return "", &NotImplementedError{
			Field: "TYPE",
			Value: s,
			Valid: []string{string(OptionTypeValue), string(OptionTypeOption)},
		}
	}
}

// String returns the string representation
func (t OptionType) String() string {
	return string(t)
}

// Overridable returns true if profiles may override options of this type.
// Only overridable options become mutable in a testing profile.
func (t OptionType) Overridable() bool {
	return t == OptionTypeOption
}
