package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewDecl(t *testing.T) {
	tests := []struct {
		input    string
		kind     StorageKind
		typeName string
		array    bool
	}{
		{"MACRO", StorageMacro, "", false},
		{"CUSTOM", StorageCustom, "", false},
		{"MACRO_UINT8", StorageMacro, "uint8_t", false},
		{"CONST_UINT8", StorageConst, "uint8_t", false},
		{"VAR_INT32", StorageVar, "int32_t", false},
		{"VAR_BOOL", StorageVar, "bool", false},
		{"CONST_UINTPTR", StorageConst, "uintptr_t", false},
		{"CONST_CHAR_ARRAY", StorageConst, "char", true},
		{" VAR_DOUBLE ", StorageVar, "double", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewDecl(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, d.Kind())
			ct, typed := d.CType()
			assert.Equal(t, tt.typeName != "", typed)
			assert.Equal(t, tt.typeName, ct.Name())
			assert.Equal(t, tt.array, ct.IsArray())
		})
	}
}

func Test_NewDecl_NotImplemented(t *testing.T) {
	for _, input := range []string{"", "ENUM", "STATIC_INT8", "VAR_INT128", "MACRO_", "CONST_STRING"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewDecl(input)
			require.Error(t, err)

			var nie *NotImplementedError
			require.True(t, errors.As(err, &nie))
			assert.Equal(t, "DECL", nie.Field)
			assert.Contains(t, err.Error(), "is not implemented")
		})
	}
}

func Test_Decl_String(t *testing.T) {
	assert.Equal(t, "MACRO", MustNewDecl("MACRO").String())
	assert.Equal(t, "CONST_CHAR_ARRAY", MustNewDecl("CONST_CHAR_ARRAY").String())
	assert.Equal(t, "UNKNOWN", Decl{}.String())
	assert.True(t, Decl{}.IsZero())
}

func Test_CType_Declarator(t *testing.T) {
	u8, ok := LookupCType("UINT8")
	require.True(t, ok)
	assert.Equal(t, "uint8_t FOO", u8.Declarator("FOO"))

	arr, ok := LookupCType("CHAR_ARRAY")
	require.True(t, ok)
	assert.Equal(t, "char NAME[]", arr.Declarator("NAME"))

	_, ok = LookupCType("UINT128")
	assert.False(t, ok)
}

func Test_NewOptionType(t *testing.T) {
	typ, err := NewOptionType("VALUE")
	require.NoError(t, err)
	assert.False(t, typ.Overridable())

	typ, err = NewOptionType("OPTION")
	require.NoError(t, err)
	assert.True(t, typ.Overridable())

	_, err = NewOptionType("SETTING")
	var nie *NotImplementedError
	require.ErrorAs(t, err, &nie)
	assert.Equal(t, "TYPE", nie.Field)
	assert.Equal(t, []string{"VALUE", "OPTION"}, nie.Valid)
}

func Test_IsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("FOO"))
	assert.True(t, IsIdentifier("_char_id_2"))
	assert.False(t, IsIdentifier("2FOO"))
	assert.False(t, IsIdentifier("FOO-BAR"))
	assert.False(t, IsIdentifier(""))
}
