package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

func selectorTable(t *testing.T) *entities.CharacterizationTable {
	t.Helper()
	base := rawProfile("BOARD_A", nil, entities.Override{Option: "FOO", Value: "1"})
	test := rawProfile("BOARD_A_TEST", []string{"BOARD_A"})
	test.Fields.Testing = boolPtr(true)

	table, err := NewProfileResolver().Resolve([]*entities.RawProfile{base, test, rawProfile("BOARD_B", nil)})
	require.NoError(t, err)
	return table
}

func ids(profiles []*entities.CharacterizationProfile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID())
	}
	return out
}

func Test_ProfileSelector_NoFilters(t *testing.T) {
	t.Parallel()

	selected, missing := NewProfileSelector().Select(selectorTable(t))
	assert.Equal(t, []string{"BOARD_A", "BOARD_A_TEST", "BOARD_B"}, ids(selected))
	assert.Empty(t, missing)
}

func Test_ProfileSelector_ExclusiveMode(t *testing.T) {
	t.Parallel()

	program, err := CompileSelectExpression("testing")
	require.NoError(t, err)

	selector := NewProfileSelector().
		WithExclusiveProfiles([]string{"BOARD_B", "BOARD_Z"}).
		WithSelectExpression(program)

	selected, missing := selector.Select(selectorTable(t))
	assert.Equal(t, []string{"BOARD_B"}, ids(selected), "exclusive ids ignore other filters")
	assert.Equal(t, []string{"BOARD_Z"}, missing)
}

func Test_ProfileSelector_Expression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want []string
	}{
		{`testing`, []string{"BOARD_A_TEST"}},
		{`number > 1`, []string{"BOARD_A_TEST", "BOARD_B"}},
		{`"BOARD_A" in based_on`, []string{"BOARD_A_TEST"}},
		{`overrides["FOO"] == "1"`, []string{"BOARD_A", "BOARD_A_TEST"}},
		{`id startsWith "BOARD_B"`, []string{"BOARD_B"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			program, err := CompileSelectExpression(tt.expr)
			require.NoError(t, err)

			selected, _ := NewProfileSelector().WithSelectExpression(program).Select(selectorTable(t))
			assert.Equal(t, tt.want, ids(selected))
		})
	}
}

func Test_ProfileSelector_Testing(t *testing.T) {
	t.Parallel()

	selected, _ := NewProfileSelector().WithTesting(false).Select(selectorTable(t))
	assert.Equal(t, []string{"BOARD_A", "BOARD_B"}, ids(selected))

	p, _ := selectorTable(t).Get("BOARD_A")
	ok, reason := NewProfileSelector().WithTesting(true).Matches(p)
	assert.False(t, ok)
	assert.Equal(t, "excluded by --testing=true", reason)
}

func Test_CompileSelectExpression_Invalid(t *testing.T) {
	t.Parallel()

	_, err := CompileSelectExpression(`number + 1`)
	assert.Error(t, err, "non-boolean expression is rejected")

	_, err = CompileSelectExpression(`unknown_var`)
	assert.Error(t, err)
}
