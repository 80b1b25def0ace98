package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCTemplates_Load(t *testing.T) {
	t.Parallel()

	tmpl, err := CTemplates()

	require.NoError(t, err)
	assert.NotNil(t, tmpl)

	for _, name := range TemplateNames() {
		assert.NotNil(t, tmpl.Lookup(name), "template %s should be loaded", name)
	}
}

func TestCTemplates_MasterSource(t *testing.T) {
	t.Parallel()

	tmpl, err := CTemplates()
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.ExecuteTemplate(&sb, MasterSource, MasterData{
		HeaderName: "toggle.h",
		Profiles: []ProfileEntry{
			{ID: "A", Number: 1, Source: "characterizations/a.c"},
			{ID: "B", Number: 2, Source: "characterizations/b.c"},
		},
	})
	require.NoError(t, err)

	want := `#include "toggle.h"

#ifdef DOXYGEN
    /* Nothing to include for Doxygen. */
#elif (CHAR_ID == A)
    #include "characterizations/a.c"
#elif (CHAR_ID == B)
    #include "characterizations/b.c"
#endif
`
	assert.Equal(t, want, sb.String())
}

func TestCTemplates_ProfileSourceReset(t *testing.T) {
	t.Parallel()

	tmpl, err := CTemplates()
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.ExecuteTemplate(&sb, ProfileSource, ProfileData{
		Options: []OptionBlock{
			{Def: "uint8_t FOO = 7;"},
			{Def: ""},
		},
		Testing:       true,
		ResetFunction: "toggle_test_reset",
		Reset:         []string{"FOO = 7;"},
	})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "#include <string.h>")
	assert.Contains(t, out, "uint8_t FOO = 7;\n")
	assert.Contains(t, out, "void toggle_test_reset(void)\n{\n    FOO = 7;\n}\n")
}

func TestIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single line", in: "a;", want: "    a;"},
		{name: "multi line", in: "a;\nb;", want: "    a;\n    b;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Indent(4, tt.in))
		})
	}
}
