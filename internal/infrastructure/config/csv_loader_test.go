package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

func parseCSV(t *testing.T, content string) (*entities.Document, entities.Diagnostics) {
	t.Helper()
	doc := &entities.Document{}
	var diags entities.Diagnostics
	require.NoError(t, NewCSVLoader().Parse("defaults.csv", strings.NewReader(content), doc, &diags))
	return doc, diags
}

func Test_CSVLoader_Options(t *testing.T) {
	t.Parallel()

	content := "NAME\tDEFAULT\tTYPE\tDECL\tBRIEF\tDESCRIPTION\n" +
		"FOO\t5\tOPTION\tMACRO_UINT8\tFoo.\t\n" +
		"\n" +
		"\tignored\n" +
		"LABEL\t“abc”\tVALUE\tCONST_CHAR_ARRAY\tLabel – text\n"

	doc, diags := parseCSV(t, content)
	assert.Empty(t, diags)
	require.Len(t, doc.Options, 2)
	assert.Empty(t, doc.Profiles)

	foo := doc.Options[0]
	assert.Equal(t, 2, foo.Location.Line)
	assert.Equal(t, "5", foo.Value("DEFAULT"))
	desc, ok := foo.Get("DESCRIPTION")
	require.True(t, ok)
	assert.False(t, desc.Explicit)

	label := doc.Options[1]
	assert.Equal(t, 5, label.Location.Line)
	assert.Equal(t, `"abc"`, label.Value("DEFAULT"), "typographic quotes are normalized")
	assert.Equal(t, "Label - text", label.Value("BRIEF"))

	padded, ok := label.Get("DESCRIPTION")
	require.True(t, ok, "short rows are padded")
	assert.False(t, padded.Explicit)
}

func Test_CSVLoader_Characterizations(t *testing.T) {
	t.Parallel()

	content := "CHAR_ID\tBRIEF\tDESCRIPTION\tBASED_ON\tTESTING\tFOO\n" +
		"BOARD_A\tBoard A\t\t\t0\t\n" +
		"BOARD_A_TEST\tTest\t\tBOARD_A\t1\t9\n"

	doc, diags := parseCSV(t, content)
	assert.Empty(t, diags)
	require.Len(t, doc.Profiles, 2)

	test := doc.Profiles[1]
	assert.Equal(t, "BOARD_A_TEST", test.Value("CHAR_ID"))
	assert.Equal(t, "BOARD_A", test.Value("BASED_ON"))
	assert.Equal(t, "9", test.Value("FOO"))

	foo, _ := doc.Profiles[0].Get("FOO")
	assert.False(t, foo.Explicit, "blank cells do not override")
}

func Test_CSVLoader_QuotedCells(t *testing.T) {
	t.Parallel()

	content := "NAME\tDEFAULT\tH\n" +
		"MSG\t\"\"\"hi\"\"\"\t\"extern @CONST@ char @NAME@[];\"\n"

	doc, _ := parseCSV(t, content)
	require.Len(t, doc.Options, 1)
	assert.Equal(t, `"hi"`, doc.Options[0].Value("DEFAULT"))
	assert.Equal(t, "extern @CONST@ char @NAME@[];", doc.Options[0].Value("H"))
}

func Test_CSVLoader_BadHeader(t *testing.T) {
	t.Parallel()

	doc, diags := parseCSV(t, "ID\tVALUE\nX\t1\n")
	require.True(t, diags.HasErrors())
	assert.Equal(t, entities.CodeInvalidField, diags[0].Code)
	assert.Empty(t, doc.Options)
	assert.Empty(t, doc.Profiles)
}

func Test_CSVLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	_, diags := parseCSV(t, "")
	require.True(t, diags.HasErrors())
	assert.Equal(t, entities.CodeMissingField, diags[0].Code)
}

func Test_CSVLoader_ExtraCellsWarn(t *testing.T) {
	t.Parallel()

	doc, diags := parseCSV(t, "NAME\tDEFAULT\nFOO\t1\tstray\n")
	require.Len(t, doc.Options, 1)
	assert.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings(), 1)
	assert.Equal(t, 2, diags[0].Location.Line)
}
