package output

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// SARIFFormatter formats validation diagnostics as SARIF 2.1.0 JSON, one
// rule per diagnostic code and one result per diagnostic.
type SARIFFormatter struct {
	writer  io.Writer
	version string
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer, toolVersion string) *SARIFFormatter {
	return &SARIFFormatter{
		writer:  writer,
		version: toolVersion,
	}
}

// Format writes the diagnostics as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(r *dto.ValidateResponse) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("togglegen", "https://github.com/reglet-dev/togglegen")
	if f.version != "" {
		run.Tool.Driver.Version = &f.version
	}

	addRules(run, r.Diagnostics)
	for _, d := range r.Diagnostics {
		run.AddResult(mapDiagnostic(d))
	}

	props := sarif.NewPropertyBag()
	props.Add("sources", r.Sources)
	props.Add("options", r.Options)
	props.Add("char_ids", len(r.Profiles))
	run.WithProperties(props)

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

// addRules registers one rule per distinct code, sorted for stable output.
func addRules(run *sarif.Run, diags entities.Diagnostics) {
	levels := map[string]string{}
	for _, d := range diags {
		if levels[d.Code] != "error" {
			levels[d.Code] = sarifLevel(d)
		}
	}

	codes := make([]string, 0, len(levels))
	for code := range levels {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		text := strings.ReplaceAll(code, "-", " ")
		rule := sarif.NewReportingDescriptor().WithID(code)
		rule.WithName(code)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &text,
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: levels[code],
		})
		run.Tool.Driver.AddRule(rule)
	}
}

func mapDiagnostic(d entities.Diagnostic) *sarif.Result {
	result := sarif.NewRuleResult(d.Code)
	result.Level = sarifLevel(d)
	result.Message = sarif.NewTextMessage(d.Message)

	if d.Location.Source != "" {
		pLoc := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithURI(filepath.ToSlash(d.Location.Source)))
		if d.Location.Line > 0 {
			pLoc.WithRegion(sarif.NewRegion().WithStartLine(d.Location.Line))
		}
		result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(pLoc)}
	}

	if d.Subject != "" {
		props := sarif.NewPropertyBag()
		props.Add("subject", d.Subject)
		result.WithProperties(props)
	}

	return result
}

func sarifLevel(d entities.Diagnostic) string {
	if d.Severity.IsError() {
		return "error"
	}
	return "warning"
}
