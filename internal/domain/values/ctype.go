package values

import "strings"

// CType is a supported C primitive used by the MACRO_*, CONST_* and VAR_*
// declaration kinds.
type CType struct {
	suffix string
	name   string
	array  bool
}

// cTypes is ordered so error messages and documentation stay stable.
var cTypes = []CType{
	{suffix: "BOOL", name: "bool"},
	{suffix: "CHAR", name: "char"},
	{suffix: "INT8", name: "int8_t"},
	{suffix: "INT16", name: "int16_t"},
	{suffix: "INT32", name: "int32_t"},
	{suffix: "INT64", name: "int64_t"},
	{suffix: "INTPTR", name: "intptr_t"},
	{suffix: "UINT8", name: "uint8_t"},
	{suffix: "UINT16", name: "uint16_t"},
	{suffix: "UINT32", name: "uint32_t"},
	{suffix: "UINT64", name: "uint64_t"},
	{suffix: "UINTPTR", name: "uintptr_t"},
	{suffix: "FLOAT", name: "float"},
	{suffix: "DOUBLE", name: "double"},
	{suffix: "CHAR_ARRAY", name: "char", array: true},
}

// LookupCType finds the C type for a DECL suffix such as "UINT8".
func LookupCType(suffix string) (CType, bool) {
	for _, ct := range cTypes {
		if ct.suffix == suffix {
			return ct, true
		}
	}
	return CType{}, false
}

// CTypeSuffixes returns every supported suffix in declaration order.
func CTypeSuffixes() []string {
	out := make([]string, len(cTypes))
	for i, ct := range cTypes {
		out[i] = ct.suffix
	}
	return out
}

// Suffix returns the DECL suffix (e.g. "UINT8").
func (c CType) Suffix() string {
	return c.suffix
}

// Name returns the C element type name (e.g. "uint8_t").
func (c CType) Name() string {
	return c.name
}

// IsArray reports whether the type is a fixed char array.
func (c CType) IsArray() bool {
	return c.array
}

// IsZero returns true for the zero value (no type).
func (c CType) IsZero() bool {
	return c.suffix == ""
}

// Declarator renders "<type> <ident>" or "<type> <ident>[]" for arrays.
func (c CType) Declarator(ident string) string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte(' ')
	b.WriteString(ident)
	if c.array {
		b.WriteString("[]")
	}
	return b.String()
}
