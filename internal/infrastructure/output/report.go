// Package output provides formatters for togglegen validation reports.
package output

import (
	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// report is the serialized shape shared by the JSON and YAML formatters.
type report struct {
	Valid       bool                 `yaml:"valid" json:"valid"`
	Sources     []string             `yaml:"sources" json:"sources"`
	Options     int                  `yaml:"options" json:"options"`
	Profiles    []dto.ProfileSummary `yaml:"char_ids" json:"char_ids"`
	Diagnostics []diagnosticView     `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
}

type diagnosticView struct {
	Severity string `yaml:"severity" json:"severity"`
	Code     string `yaml:"code" json:"code"`
	Subject  string `yaml:"subject,omitempty" json:"subject,omitempty"`
	Message  string `yaml:"message" json:"message"`
	File     string `yaml:"file,omitempty" json:"file,omitempty"`
	Line     int    `yaml:"line,omitempty" json:"line,omitempty"`
}

func newReport(r *dto.ValidateResponse) report {
	out := report{
		Valid:    !r.Diagnostics.HasErrors(),
		Sources:  r.Sources,
		Options:  r.Options,
		Profiles: r.Profiles,
	}
	if out.Sources == nil {
		out.Sources = []string{}
	}
	if out.Profiles == nil {
		out.Profiles = []dto.ProfileSummary{}
	}
	for _, d := range r.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, newDiagnosticView(d))
	}
	return out
}

func newDiagnosticView(d entities.Diagnostic) diagnosticView {
	return diagnosticView{
		Severity: d.Severity.String(),
		Code:     d.Code,
		Subject:  d.Subject,
		Message:  d.Message,
		File:     d.Location.Source,
		Line:     d.Location.Line,
	}
}
