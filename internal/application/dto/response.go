package dto

import (
	"time"

	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// Duration is how long the request took
	Duration time.Duration
}

// FileStatus is the outcome for one generated file.
type FileStatus string

const (
	FileWritten    FileStatus = "written"
	FileUnchanged  FileStatus = "unchanged"
	FileWouldWrite FileStatus = "would-write"
	FileDrifted    FileStatus = "drifted"
)

// FileResult reports what happened to one artifact on disk.
type FileResult struct {
	Path   string
	Kind   entities.ArtifactKind
	Status FileStatus
}

// GenerateResponse contains the result of a generate run.
type GenerateResponse struct {
	// Artifacts are the rendered files, master files first
	Artifacts []entities.Artifact

	// Files reports the on-disk outcome per artifact
	Files []FileResult

	// Diagnostics are the non-fatal findings
	Diagnostics entities.Diagnostics

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// Drifted returns the paths that differ from disk in check mode.
func (r *GenerateResponse) Drifted() []string {
	var out []string
	for _, f := range r.Files {
		if f.Status == FileDrifted {
			out = append(out, f.Path)
		}
	}
	return out
}

// ProfileSummary is one row of the CHAR_ID listing.
type ProfileSummary struct {
	ID      string   `yaml:"id" json:"id"`
	Number  int      `yaml:"number" json:"number"`
	Testing bool     `yaml:"testing" json:"testing"`
	BasedOn []string `yaml:"based_on,omitempty" json:"based_on,omitempty"`
	Brief   string   `yaml:"brief,omitempty" json:"brief,omitempty"`
}

// ValidateResponse contains the findings of a validate run.
type ValidateResponse struct {
	Sources     []string
	Options     int
	Profiles    []ProfileSummary
	Diagnostics entities.Diagnostics
	Metadata    ResponseMetadata
}

// OptionView is the effective state of one option in a profile.
type OptionView struct {
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Default     string `yaml:"default"`
	Overridden  bool   `yaml:"overridden"`
	Decl        string `yaml:"decl"`
	Storage     string `yaml:"storage"`
	Mutable     bool   `yaml:"mutable"`
	Declaration string `yaml:"declaration,omitempty"`
	Definition  string `yaml:"definition,omitempty"`
}

// ProfileView is a fully resolved profile as shown to the user.
type ProfileView struct {
	ProfileSummary `yaml:",inline"`

	Description string       `yaml:"description,omitempty"`
	Options     []OptionView `yaml:"options"`
	Reset       []string     `yaml:"reset,omitempty"`
}

// ShowResponse contains one resolved profile.
type ShowResponse struct {
	Profile     ProfileView
	Diagnostics entities.Diagnostics
	Metadata    ResponseMetadata
}
