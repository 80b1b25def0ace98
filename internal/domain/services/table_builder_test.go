package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// record builds a RawRecord from alternating key/value pairs; every field is explicit.
func record(line int, kv ...string) entities.RawRecord {
	rec := entities.RawRecord{Location: entities.Location{Source: "toggles.yaml", Line: line}}
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Fields = append(rec.Fields, entities.Field{Key: kv[i], Value: kv[i+1], Explicit: true})
	}
	return rec
}

func optionRecord(line int, name, typ, decl, def string, extra ...string) entities.RawRecord {
	kv := append([]string{"NAME", name, "DEFAULT", def, "TYPE", typ, "DECL", decl, "BRIEF", name + " brief"}, extra...)
	return record(line, kv...)
}

func codes(diags entities.Diagnostics) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func Test_TableBuilder_BuildOptions(t *testing.T) {
	t.Parallel()

	var diags entities.Diagnostics
	table := NewTableBuilder().BuildOptions([]entities.RawRecord{
		optionRecord(1, "FOO", "OPTION", "MACRO_UINT8", "5"),
		optionRecord(2, "BAR", "VALUE", "CONST_INT32", "-1", "H", "extern @CONST@ int32_t @NAME@;"),
	}, &diags)

	assert.Empty(t, diags)
	require.Equal(t, 2, table.Len())

	foo, ok := table.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, values.OptionTypeOption, foo.Type)
	assert.Equal(t, "MACRO_UINT8", foo.Decl.String())
	assert.Equal(t, "5", foo.Default)
	assert.Equal(t, "FOO brief", foo.Brief)

	bar, _ := table.Get("BAR")
	assert.False(t, bar.Header.IsZero())
	assert.True(t, bar.Source.IsZero())
}

func Test_TableBuilder_BuildOptions_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []entities.RawRecord
		code    string
		want    error
	}{
		{
			name: "duplicate name",
			records: []entities.RawRecord{
				optionRecord(1, "FOO", "OPTION", "MACRO", "1"),
				optionRecord(2, "FOO", "OPTION", "MACRO", "2"),
			},
			code: entities.CodeDuplicateOption,
			want: entities.ErrDuplicateOption,
		},
		{
			name:    "bad type",
			records: []entities.RawRecord{optionRecord(1, "FOO", "MAYBE", "MACRO", "1")},
			code:    entities.CodeNotImplemented,
		},
		{
			name:    "bad decl suffix",
			records: []entities.RawRecord{optionRecord(1, "FOO", "OPTION", "VAR_INT128", "1")},
			code:    entities.CodeNotImplemented,
		},
		{
			name:    "bad identifier",
			records: []entities.RawRecord{optionRecord(1, "9LIVES", "OPTION", "MACRO", "1")},
			code:    entities.CodeInvalidIdentifier,
			want:    entities.ErrInvalidIdentifier,
		},
		{
			name:    "missing name",
			records: []entities.RawRecord{record(1, "DEFAULT", "1")},
			code:    entities.CodeMissingField,
			want:    entities.ErrMissingField,
		},
		{
			name:    "unknown placeholder",
			records: []entities.RawRecord{optionRecord(1, "FOO", "OPTION", "CUSTOM", "1", "C", "int @NAME@ = @DEFAULT@;")},
			code:    entities.CodeUnknownPlaceholder,
			want:    values.ErrUnknownPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var diags entities.Diagnostics
			NewTableBuilder().BuildOptions(tt.records, &diags)

			require.True(t, diags.HasErrors())
			assert.Contains(t, codes(diags), tt.code)
			if tt.want != nil {
				assert.ErrorIs(t, diags.Err(), tt.want)
			}
		})
	}
}

func Test_TableBuilder_BuildOptions_DuplicateKeepsFirst(t *testing.T) {
	t.Parallel()

	var diags entities.Diagnostics
	table := NewTableBuilder().BuildOptions([]entities.RawRecord{
		optionRecord(1, "FOO", "OPTION", "MACRO", "1"),
		optionRecord(7, "FOO", "OPTION", "MACRO", "2"),
	}, &diags)

	foo, _ := table.Get("FOO")
	assert.Equal(t, "1", foo.Default)
	require.Len(t, diags, 1)
	assert.Equal(t, 7, diags[0].Location.Line)
	assert.Contains(t, diags[0].Message, "first declared at toggles.yaml:1")
}

func Test_TableBuilder_UnknownFieldsWarnOnce(t *testing.T) {
	t.Parallel()

	var diags entities.Diagnostics
	NewTableBuilder().BuildOptions([]entities.RawRecord{
		optionRecord(1, "FOO", "OPTION", "MACRO", "1", "UNITS", "ms"),
		optionRecord(2, "BAR", "OPTION", "MACRO", "1", "UNITS", "s"),
	}, &diags)

	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings(), 1)
	assert.Equal(t, entities.CodeUnknownField, diags[0].Code)
	assert.Equal(t, "UNITS", diags[0].Subject)
}

func testOptions(t *testing.T) *entities.OptionTable {
	t.Helper()
	var diags entities.Diagnostics
	table := NewTableBuilder().BuildOptions([]entities.RawRecord{
		optionRecord(1, "FOO", "OPTION", "MACRO_UINT8", "5"),
		optionRecord(2, "LIMIT", "VALUE", "MACRO", "10"),
	}, &diags)
	require.Empty(t, diags)
	return table
}

func Test_TableBuilder_BuildProfiles(t *testing.T) {
	t.Parallel()
	options := testOptions(t)

	var diags entities.Diagnostics
	raws := NewTableBuilder().BuildProfiles([]entities.RawRecord{
		record(1, "CHAR_ID", "BASE", "BRIEF", "Base board", "TESTING", "0", "FOO", "6"),
		record(2, "CHAR_ID", "TEST", "BASED_ON", "BASE", "TESTING", "1"),
		{
			Location: entities.Location{Source: "toggles.yaml", Line: 3},
			Fields: []entities.Field{
				{Key: "CHAR_ID", Value: "MULTI", Explicit: true},
				{Key: "BASED_ON", Items: []string{"BASE", " TEST "}, IsList: true, Explicit: true},
			},
		},
	}, options, &diags)

	assert.Empty(t, diags)
	require.Len(t, raws, 3)

	assert.Equal(t, "BASE", raws[0].ID)
	require.NotNil(t, raws[0].Fields.Brief)
	assert.Equal(t, "Base board", *raws[0].Fields.Brief)
	require.NotNil(t, raws[0].Fields.Testing)
	assert.False(t, *raws[0].Fields.Testing)
	assert.Equal(t, []entities.Override{{Option: "FOO", Value: "6"}}, raws[0].Fields.Overrides)

	assert.Equal(t, []string{"BASE"}, raws[1].BasedOn)
	assert.True(t, *raws[1].Fields.Testing)
	assert.Nil(t, raws[1].Fields.Brief)

	assert.Equal(t, []string{"BASE", "TEST"}, raws[2].BasedOn)
}

func Test_TableBuilder_BuildProfiles_ValueOverrideIsFatal(t *testing.T) {
	t.Parallel()
	options := testOptions(t)

	var diags entities.Diagnostics
	NewTableBuilder().BuildProfiles([]entities.RawRecord{
		record(4, "CHAR_ID", "P", "LIMIT", "11"),
	}, options, &diags)

	require.True(t, diags.HasErrors())
	assert.Equal(t, []string{entities.CodeValueOverride}, codes(diags))
	assert.ErrorIs(t, diags.Err(), entities.ErrValueOverride)
}

func Test_TableBuilder_BuildProfiles_BlankCellsAreNotOverrides(t *testing.T) {
	t.Parallel()
	options := testOptions(t)

	var diags entities.Diagnostics
	raws := NewTableBuilder().BuildProfiles([]entities.RawRecord{{
		Location: entities.Location{Source: "chars.csv", Line: 2},
		Fields: []entities.Field{
			{Key: "CHAR_ID", Value: "P", Explicit: true},
			{Key: "BRIEF", Explicit: false},
			{Key: "TESTING", Explicit: false},
			{Key: "LIMIT", Explicit: false},
			{Key: "FOO", Explicit: false},
		},
	}}, options, &diags)

	assert.Empty(t, diags)
	require.Len(t, raws, 1)
	assert.Nil(t, raws[0].Fields.Brief)
	assert.Nil(t, raws[0].Fields.Testing)
	assert.Empty(t, raws[0].Fields.Overrides)
}

func Test_TableBuilder_BuildProfiles_EmptyOverrideInherits(t *testing.T) {
	t.Parallel()
	options := testOptions(t)

	var diags entities.Diagnostics
	raws := NewTableBuilder().BuildProfiles([]entities.RawRecord{
		record(1, "CHAR_ID", "A", "FOO", "1"),
		record(2, "CHAR_ID", "B", "BASED_ON", "A", "FOO", "", "TESTING", ""),
		record(3, "CHAR_ID", "C", "FOO", "", "LIMIT", ""),
	}, options, &diags)
	require.Empty(t, diags)
	require.Len(t, raws, 3)
	assert.Empty(t, raws[1].Fields.Overrides)
	assert.Nil(t, raws[1].Fields.Testing, "an empty TESTING value inherits")
	assert.Empty(t, raws[2].Fields.Overrides, "an empty VALUE column is not an override either")

	table, err := NewProfileResolver().Resolve(raws)
	require.NoError(t, err)

	foo, _ := options.Get("FOO")
	b, _ := table.Get("B")
	c, _ := table.Get("C")
	assert.Equal(t, "1", ResolveValue(foo, b))
	assert.Equal(t, "5", ResolveValue(foo, c))
}

func Test_TableBuilder_ReservedNames(t *testing.T) {
	t.Parallel()

	t.Run("option names", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"CHAR_ID", "NUM_CHAR_IDS", "DOXYGEN", "TESTING", "BASED_ON"} {
			var diags entities.Diagnostics
			table := NewTableBuilder().BuildOptions([]entities.RawRecord{
				optionRecord(1, name, "OPTION", "MACRO", "1"),
			}, &diags)
			assert.Zero(t, table.Len(), name)
			assert.Equal(t, []string{entities.CodeInvalidIdentifier}, codes(diags), name)
			assert.ErrorIs(t, diags.Err(), entities.ErrInvalidIdentifier)
		}
	})

	t.Run("char ids", func(t *testing.T) {
		t.Parallel()
		options := testOptions(t)
		for _, id := range []string{"NUM_CHAR_IDS", "DOXYGEN", "FOO"} {
			var diags entities.Diagnostics
			raws := NewTableBuilder().BuildProfiles([]entities.RawRecord{record(1, "CHAR_ID", id)}, options, &diags)
			assert.Empty(t, raws, id)
			assert.Equal(t, []string{entities.CodeInvalidIdentifier}, codes(diags), id)
		}
	})
}

func Test_TableBuilder_BuildProfiles_Errors(t *testing.T) {
	t.Parallel()
	options := testOptions(t)

	t.Run("no profiles", func(t *testing.T) {
		t.Parallel()
		var diags entities.Diagnostics
		NewTableBuilder().BuildProfiles(nil, options, &diags)
		assert.ErrorIs(t, diags.Err(), entities.ErrNoProfiles)
	})

	t.Run("bad testing flag", func(t *testing.T) {
		t.Parallel()
		var diags entities.Diagnostics
		NewTableBuilder().BuildProfiles([]entities.RawRecord{record(1, "CHAR_ID", "P", "TESTING", "sometimes")}, options, &diags)
		assert.Equal(t, []string{entities.CodeInvalidField}, codes(diags))
	})

	t.Run("invalid char id", func(t *testing.T) {
		t.Parallel()
		var diags entities.Diagnostics
		raws := NewTableBuilder().BuildProfiles([]entities.RawRecord{record(1, "CHAR_ID", "BOARD-A")}, options, &diags)
		assert.Empty(t, raws)
		assert.Equal(t, []string{entities.CodeInvalidIdentifier}, codes(diags))
	})

	t.Run("unknown column warns", func(t *testing.T) {
		t.Parallel()
		var diags entities.Diagnostics
		NewTableBuilder().BuildProfiles([]entities.RawRecord{record(1, "CHAR_ID", "P", "NOPE", "1")}, options, &diags)
		assert.False(t, diags.HasErrors())
		assert.Equal(t, []string{entities.CodeUnknownField}, codes(diags))
	})
}

func Test_ParseTesting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"0", false, false},
		{"1", true, false},
		{"2", true, false},
		{" 1 ", true, false},
		{"true", true, false},
		{"False", false, false},
		{"yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTesting(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
