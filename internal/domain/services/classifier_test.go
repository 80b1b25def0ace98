package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

func option(name, typ, decl, def string) *entities.OptionDefinition {
	return &entities.OptionDefinition{
		Name:    name,
		Type:    values.OptionType(typ),
		Decl:    values.MustNewDecl(decl),
		Default: def,
	}
}

func profile(id string, isTesting bool, overrides ...entities.Override) *entities.CharacterizationProfile {
	return entities.NewCharacterizationProfile(
		&entities.RawProfile{ID: id},
		1,
		entities.ProfileFields{Testing: &isTesting, Overrides: overrides},
	)
}

func Test_Classifier_Classify_DecisionTable(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier()

	tests := []struct {
		decl        string
		typ         string
		testing     bool
		wantKind    values.StorageKind
		wantMutable bool
	}{
		{"MACRO", "OPTION", true, values.StorageMacro, false},
		{"CUSTOM", "OPTION", true, values.StorageCustom, false},
		{"MACRO_UINT8", "OPTION", true, values.StorageMacro, true},
		{"MACRO_UINT8", "OPTION", false, values.StorageMacro, false},
		{"MACRO_UINT8", "VALUE", true, values.StorageMacro, false},
		{"CONST_INT32", "OPTION", true, values.StorageConst, true},
		{"CONST_INT32", "VALUE", true, values.StorageConst, false},
		{"VAR_BOOL", "OPTION", true, values.StorageVar, true},
		{"VAR_BOOL", "OPTION", false, values.StorageVar, false},
	}

	for _, tt := range tests {
		t.Run(tt.decl+"/"+tt.typ, func(t *testing.T) {
			t.Parallel()
			cls, err := classifier.Classify(option("FOO", tt.typ, tt.decl, "0"), profile("P", tt.testing))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, cls.Kind)
			assert.Equal(t, tt.wantMutable, cls.Mutable)
		})
	}
}

func Test_Classifier_Classify_NilProfileIsNotTesting(t *testing.T) {
	t.Parallel()

	cls, err := NewClassifier().Classify(option("FOO", "OPTION", "VAR_INT32", "1"), nil)
	require.NoError(t, err)
	assert.False(t, cls.Mutable)
	assert.Equal(t, "const", cls.Const())
	assert.Equal(t, "int32_t", cls.CType.Name())
}

func Test_Classifier_Classify_RejectsInvalidOption(t *testing.T) {
	t.Parallel()
	classifier := NewClassifier()

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		opt := option("FOO", "OPTION", "MACRO", "1")
		opt.Type = "SOMETIMES"

		_, err := classifier.Classify(opt, nil)
		var ni *values.NotImplementedError
		require.ErrorAs(t, err, &ni)
		assert.Equal(t, "TYPE", ni.Field)
	})

	t.Run("missing decl", func(t *testing.T) {
		t.Parallel()
		opt := &entities.OptionDefinition{Name: "FOO", Type: values.OptionTypeOption}

		_, err := classifier.Classify(opt, nil)
		var ni *values.NotImplementedError
		require.ErrorAs(t, err, &ni)
		assert.Equal(t, "DECL", ni.Field)
	})
}
