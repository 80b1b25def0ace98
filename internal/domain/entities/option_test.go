package entities

import (
	"testing"

	"github.com/reglet-dev/togglegen/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewOptionTable(t *testing.T) {
	t.Parallel()

	foo := &OptionDefinition{Name: "FOO", Type: values.OptionTypeOption, Decl: values.MustNewDecl("MACRO_UINT8")}
	bar := &OptionDefinition{Name: "BAR", Type: values.OptionTypeValue, Decl: values.MustNewDecl("MACRO")}

	table, err := NewOptionTable([]*OptionDefinition{foo, bar})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	got, ok := table.Get("BAR")
	require.True(t, ok)
	assert.Same(t, bar, got)

	all := table.All()
	require.Len(t, all, 2)
	assert.Equal(t, "FOO", all[0].Name)
	assert.Equal(t, "BAR", all[1].Name)
}

func Test_NewOptionTable_Duplicate(t *testing.T) {
	t.Parallel()

	_, err := NewOptionTable([]*OptionDefinition{{Name: "FOO"}, {Name: "FOO"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateOption)
	assert.Contains(t, err.Error(), "FOO")
}

func Test_OptionDefinition_TemplateFor(t *testing.T) {
	t.Parallel()

	opt := &OptionDefinition{
		Name:   "FOO",
		Header: values.MustNewTemplate("int @NAME@(void);"),
	}

	assert.False(t, opt.TemplateFor(values.ModeDecl).IsZero())
	assert.True(t, opt.TemplateFor(values.ModeDef).IsZero())
	assert.True(t, opt.TemplateFor(values.ModeAssign).IsZero())
}
