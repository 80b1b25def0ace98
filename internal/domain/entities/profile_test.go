package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func Test_NewCharacterizationProfile_MergedFields(t *testing.T) {
	t.Parallel()

	raw := &RawProfile{ID: "B", BasedOn: []string{"A"}, Location: Location{Source: "char_ids.csv", Line: 3}}
	merged := ProfileFields{
		Brief:   strPtr("Board B"),
		Testing: boolPtr(true),
		Overrides: []Override{
			{Option: "X", Value: "1"},
			{Option: "Y", Value: "2"},
			{Option: "X", Value: "9"},
		},
	}

	p := NewCharacterizationProfile(raw, 2, merged)

	assert.Equal(t, "B", p.ID())
	assert.Equal(t, 2, p.Number())
	assert.Equal(t, "Board B", p.Brief())
	assert.Equal(t, "", p.Description())
	assert.True(t, p.Testing())
	assert.Equal(t, []string{"A"}, p.BasedOn())
	assert.Equal(t, "char_ids.csv:3", p.Location().String())

	// Later entries replace earlier ones in place.
	assert.Equal(t, []Override{{Option: "X", Value: "9"}, {Option: "Y", Value: "2"}}, p.Overrides())

	v, ok := p.Override("X")
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	_, ok = p.Override("Z")
	assert.False(t, ok)
}

func Test_CharacterizationProfile_Immutable(t *testing.T) {
	t.Parallel()

	p := NewCharacterizationProfile(&RawProfile{ID: "A", BasedOn: []string{"BASE"}}, 1, ProfileFields{
		Overrides: []Override{{Option: "X", Value: "1"}},
	})

	overrides := p.Overrides()
	overrides[0].Value = "mutated"
	basedOn := p.BasedOn()
	basedOn[0] = "mutated"

	assert.Equal(t, map[string]string{"X": "1"}, p.OverrideMap())
	assert.Equal(t, []string{"BASE"}, p.BasedOn())
}

func Test_NewCharacterizationTable(t *testing.T) {
	t.Parallel()

	a := NewCharacterizationProfile(&RawProfile{ID: "P1"}, 1, ProfileFields{})
	b := NewCharacterizationProfile(&RawProfile{ID: "P2"}, 2, ProfileFields{})

	table, err := NewCharacterizationTable([]*CharacterizationProfile{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	got, ok := table.Get("P2")
	require.True(t, ok)
	assert.Equal(t, 2, got.Number())

	ids := []string{}
	for _, p := range table.All() {
		ids = append(ids, p.ID())
	}
	assert.Equal(t, []string{"P1", "P2"}, ids)
}

func Test_NewCharacterizationTable_Duplicate(t *testing.T) {
	t.Parallel()

	a := NewCharacterizationProfile(&RawProfile{ID: "P1"}, 1, ProfileFields{})
	dup := NewCharacterizationProfile(&RawProfile{ID: "P1"}, 2, ProfileFields{})

	_, err := NewCharacterizationTable([]*CharacterizationProfile{a, dup})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateProfile)
}

func Test_ProfileFields_Override(t *testing.T) {
	t.Parallel()

	f := ProfileFields{Overrides: []Override{{Option: "X", Value: ""}}}
	v, ok := f.Override("X")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = f.Override("Y")
	assert.False(t, ok)
}
