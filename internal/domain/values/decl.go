package values

import "strings"

// StorageKind is the storage class of a generated symbol.
type StorageKind int

const (
	StorageUnknown StorageKind = iota
	StorageMacro
	StorageConst
	StorageVar
	StorageCustom
)

// String returns the DECL base name of the storage kind.
func (k StorageKind) String() string {
	switch k {
	case StorageMacro:
		return "MACRO"
	case StorageConst:
		return "CONST"
	case StorageVar:
		return "VAR"
	case StorageCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// Decl is a parsed DECL column: MACRO, CUSTOM or <BASE>_<CTYPE>.
type Decl struct {
	kind  StorageKind
	ctype CType
}

// Decl patterns accepted by NewDecl, used in error messages.
var declPatterns = []string{"MACRO", "CUSTOM", "MACRO_<T>", "CONST_<T>", "VAR_<T>"}

// NewDecl parses a DECL value. Unsupported patterns and C type suffixes are
// reported as *NotImplementedError.
func NewDecl(s string) (Decl, error) {
	s = strings.TrimSpace(s)

	switch s {
	case "MACRO":
		return Decl{kind: StorageMacro}, nil
	case "CUSTOM":
		return Decl{kind: StorageCustom}, nil
	}

	base, suffix, ok := strings.Cut(s, "_")
	if !ok {
		return Decl{}, &NotImplementedError{Field: "DECL", Value: s, Valid: declPatterns}
	}

	var kind StorageKind
	switch base {
	case "MACRO":
		kind = StorageMacro
	case "CONST":
		kind = StorageConst
	case "VAR":
		kind = StorageVar
	default:
		return Decl{}, &NotImplementedError{Field: "DECL", Value: s, Valid: declPatterns}
	}

	ct, found := LookupCType(suffix)
	if !found {
		return Decl{}, &NotImplementedError{Field: "DECL", Value: s, Valid: CTypeSuffixes()}
	}

	return Decl{kind: kind, ctype: ct}, nil
}

// MustNewDecl creates a Decl or panics (for tests/constants)
func MustNewDecl(s string) Decl {
	d, err := NewDecl(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Kind returns the storage kind.
func (d Decl) Kind() StorageKind {
	return d.kind
}

// CType returns the C type, if the declaration carries one.
func (d Decl) CType() (CType, bool) {
	return d.ctype, !d.ctype.IsZero()
}

// IsTyped reports whether the declaration names a C type (MACRO_*, CONST_*, VAR_*).
func (d Decl) IsTyped() bool {
	return !d.ctype.IsZero()
}

// IsZero returns true for the zero value.
func (d Decl) IsZero() bool {
	return d.kind == StorageUnknown
}

// String returns the DECL text this value was parsed from.
func (d Decl) String() string {
	if d.ctype.IsZero() {
		return d.kind.String()
	}
	return d.kind.String() + "_" + d.ctype.suffix
}
