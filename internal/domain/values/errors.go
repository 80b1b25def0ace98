package values

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlaceholder is returned when a code template references a
// placeholder outside the closed set (@NAME@, @VALUE@, @CONST@).
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// NotImplementedError reports a configuration value the generator has no
// rendering for (unsupported TYPE, DECL pattern or C type suffix).
type NotImplementedError struct {
	Field string   // Column/key that carried the value (TYPE, DECL)
	Value string   // Offending value
	Valid []string // Accepted values or patterns
}

func (e *NotImplementedError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%s = %q is not implemented", e.Field, e.Value)
	}
	return fmt.Sprintf("%s = %q is not implemented (valid: %s)",
		e.Field, e.Value, strings.Join(e.Valid, ", "))
}
