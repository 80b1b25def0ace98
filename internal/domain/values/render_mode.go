package values

// RenderMode selects which textual artifact the emitter produces for an option.
type RenderMode int

const (
	// ModeDecl renders the header declaration.
	ModeDecl RenderMode = iota
	// ModeDef renders the source definition.
	ModeDef
	// ModeAssign renders the test-reset assignment.
	ModeAssign
)

// String returns the string representation
func (m RenderMode) String() string {
	switch m {
	case ModeDecl:
		return "decl"
	case ModeDef:
		return "def"
	case ModeAssign:
		return "assign"
	default:
		return "unknown"
	}
}
