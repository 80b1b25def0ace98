package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/togglegen/internal/application/dto"
)

// JSONFormatter formats validation reports as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(r *dto.ValidateResponse) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newReport(r))
}
