package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// Characters spreadsheet tools substitute when exporting CSV.
var csvCharFixer = strings.NewReplacer(
	"“", `"`, // opening quote
	"”", `"`, // closing quote
	"–", "-", // en dash
)

// CSVLoader reads tab-separated option and characterization tables.
//
// The first header cell decides the table kind: NAME for options, CHAR_ID
// for characterizations. Rows whose first cell is empty are skipped, short
// rows are padded, and a blank cell counts as "not specified".
type CSVLoader struct{}

// NewCSVLoader creates a new CSV loader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Parse reads one table from r into doc.
func (l *CSVLoader) Parse(source string, r io.Reader, doc *entities.Document, diags *entities.Diagnostics) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		diags.Fail(entities.Location{Source: source}, entities.CodeMissingField, "",
			fmt.Errorf("%w: %s has no header row", entities.ErrMissingField, source))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", source, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(csvCharFixer.Replace(header[i]))
	}

	var dest *[]entities.RawRecord
	switch header[0] {
	case "NAME":
		dest = &doc.Options
	case "CHAR_ID":
		dest = &doc.Profiles
	default:
		diags.Fail(entities.Location{Source: source, Line: 1}, entities.CodeInvalidField, header[0],
			fmt.Errorf("%w: first column of %s must be NAME or CHAR_ID, got %q", entities.ErrInvalidField, source, header[0]))
		return nil
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", source, err)
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		line, _ := reader.FieldPos(0)
		if len(row) > len(header) {
			diags.Warn(entities.Location{Source: source, Line: line}, entities.CodeUnknownField, "",
				"%d cells beyond the header ignored", len(row)-len(header))
		}

		*dest = append(*dest, rowRecord(source, line, header, row))
	}

	return nil
}

func rowRecord(source string, line int, header, row []string) entities.RawRecord {
	rec := entities.RawRecord{
		Location: entities.Location{Source: source, Line: line},
		Fields:   make([]entities.Field, 0, len(header)),
	}
	for i, key := range header {
		if key == "" {
			continue
		}
		var cell string
		if i < len(row) {
			cell = csvCharFixer.Replace(row[i])
		}
		rec.Fields = append(rec.Fields, entities.Field{
			Key:      key,
			Value:    cell,
			Explicit: strings.TrimSpace(cell) != "",
		})
	}
	return rec
}
