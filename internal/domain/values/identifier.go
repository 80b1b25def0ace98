package values

import "regexp"

// C identifiers: option names become symbols and profile ids become macros
// and file names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether s is a valid C identifier.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
