// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
	"github.com/reglet-dev/togglegen/internal/domain/services"
)

// DocumentLoader reads input documents (CSV tables, YAML documents) and
// merges them in the given order. Authoring problems such as schema
// violations go to diags; the returned error is reserved for I/O failures.
type DocumentLoader interface {
	Load(ctx context.Context, paths []string, diags *entities.Diagnostics) (*entities.Document, error)
}

// Assembly is everything needed to lay out the generated files.
type Assembly struct {
	Options  *entities.OptionTable
	Profiles *entities.CharacterizationTable

	// Selected profiles get per-profile artifacts; the master files always
	// enumerate every profile.
	Selected []*entities.CharacterizationProfile

	// Renderings by CHAR_ID, plus Defaults rendered without a profile.
	Renderings map[string]*services.ProfileRendering
	Defaults   *services.ProfileRendering
}

// ArtifactAssembler turns renderings into whole files.
type ArtifactAssembler interface {
	Assemble(a Assembly) ([]entities.Artifact, error)
}

// ArtifactWriter persists artifacts, or compares them with what is on disk.
type ArtifactWriter interface {
	Write(ctx context.Context, artifacts []entities.Artifact, mode dto.WriteMode) ([]dto.FileResult, error)
}

// FormatterOptions configures report formatters.
type FormatterOptions struct {
	// Color enables ANSI colors in text output
	Color bool
	// ToolVersion is reported by machine-readable formats
	ToolVersion string
}

// ReportFormatter writes a validation report.
type ReportFormatter interface {
	Format(report *dto.ValidateResponse) error
}

// ReportFormatterFactory creates formatters by name.
type ReportFormatterFactory interface {
	Create(format string, w io.Writer, options FormatterOptions) (ReportFormatter, error)
	SupportedFormats() []string
}
