package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/togglegen/internal/application/dto"
)

// YAMLFormatter formats validation reports as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(r *dto.ValidateResponse) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2), yaml.IndentSequence(true))

	if err := encoder.Encode(newReport(r)); err != nil {
		return err
	}

	return encoder.Close()
}
