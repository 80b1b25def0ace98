package values

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is one of the closed set of tokens a code template may use.
type Placeholder int

const (
	placeholderNone Placeholder = iota
	// PlaceholderName expands to the option name.
	PlaceholderName
	// PlaceholderValue expands to the resolved option value.
	PlaceholderValue
	// PlaceholderConst expands to "const", or to nothing for mutable symbols.
	PlaceholderConst
)

var placeholderNames = map[string]Placeholder{
	"NAME":  PlaceholderName,
	"VALUE": PlaceholderValue,
	"CONST": PlaceholderConst,
}

var placeholderPattern = regexp.MustCompile(`@([A-Z][A-Z0-9_]*)@`)

type segment struct {
	text        string
	placeholder Placeholder
}

// Template is a parsed code template (H, C or TEST_ASSIGN column, or one of
// the generated declaration shapes). The zero value is an absent template.
type Template struct {
	source   string
	segments []segment
	set      bool
}

// Bindings are the values substituted into a template.
type Bindings struct {
	Name  string
	Value string
	Const string
}

// NewTemplate parses src. Any @TOKEN@ outside the closed placeholder set is
// rejected with ErrUnknownPlaceholder.
func NewTemplate(src string) (Template, error) {
	t := Template{source: src, set: true}
	last := 0

	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		ph, ok := placeholderNames[name]
		if !ok {
			return Template{}, fmt.Errorf("%w @%s@ in %q (valid: @NAME@, @VALUE@, @CONST@)",
				ErrUnknownPlaceholder, name, src)
		}
		if m[0] > last {
			t.segments = append(t.segments, segment{text: src[last:m[0]]})
		}
		t.segments = append(t.segments, segment{placeholder: ph})
		last = m[1]
	}
	if last < len(src) {
		t.segments = append(t.segments, segment{text: src[last:]})
	}

	return t, nil
}

// MustNewTemplate creates a Template or panics (for tests/constants)
func MustNewTemplate(src string) Template {
	t, err := NewTemplate(src)
	if err != nil {
		panic(err)
	}
	return t
}

// IsZero returns true if no template was given.
func (t Template) IsZero() bool {
	return !t.set
}

// Source returns the unparsed template text.
func (t Template) Source() string {
	return t.source
}

// Render substitutes the bindings. An empty @CONST@ also drops one adjacent
// space (the following one if present, else the preceding one) so that
// "extern @CONST@ int x;" becomes "extern int x;".
func (t Template) Render(b Bindings) string {
	var out strings.Builder
	skipSpace := false

	for i, seg := range t.segments {
		switch seg.placeholder {
		case placeholderNone:
			text := seg.text
			if skipSpace {
				text = strings.TrimPrefix(text, " ")
				skipSpace = false
			}
			out.WriteString(text)
		case PlaceholderName:
			out.WriteString(b.Name)
		case PlaceholderValue:
			out.WriteString(b.Value)
		case PlaceholderConst:
			if b.Const != "" {
				out.WriteString(b.Const)
				continue
			}
			if i+1 < len(t.segments) && t.segments[i+1].placeholder == placeholderNone &&
				strings.HasPrefix(t.segments[i+1].text, " ") {
				skipSpace = true
				continue
			}
			if s := out.String(); strings.HasSuffix(s, " ") {
				out.Reset()
				out.WriteString(s[:len(s)-1])
			}
		}
	}

	return out.String()
}
