// Package dto contains data transfer objects for application layer use cases.
package dto

import "github.com/google/uuid"

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}

// NewRequestMetadata tags a run with a fresh request id.
func NewRequestMetadata() RequestMetadata {
	return RequestMetadata{RequestID: uuid.NewString()}
}

// SelectionOptions chooses the profiles that get per-profile artifacts.
type SelectionOptions struct {
	// CharIDs restricts generation to these profiles (exclusive mode)
	CharIDs []string

	// SelectExpression is an expr-lang boolean over the profile environment
	SelectExpression string

	// TestingOnly keeps only profiles with TESTING set
	TestingOnly bool
}

// IsZero reports whether no selection was requested.
func (o SelectionOptions) IsZero() bool {
	return len(o.CharIDs) == 0 && o.SelectExpression == "" && !o.TestingOnly
}

// WriteMode controls what GenerateUseCase does with rendered artifacts.
type WriteMode int

const (
	// WriteModeWrite writes changed files.
	WriteModeWrite WriteMode = iota
	// WriteModeDryRun reports what would be written.
	WriteModeDryRun
	// WriteModeCheck compares with the files on disk and writes nothing.
	WriteModeCheck
)

// GenerateRequest encapsulates all inputs needed to generate C sources.
type GenerateRequest struct {
	Inputs    []string
	Metadata  RequestMetadata
	Selection SelectionOptions
	Mode      WriteMode
}

// ValidateRequest encapsulates inputs for validating documents.
type ValidateRequest struct {
	Inputs   []string
	Metadata RequestMetadata
}

// ShowRequest encapsulates inputs for showing one resolved profile.
type ShowRequest struct {
	Inputs   []string
	CharID   string
	Metadata RequestMetadata
}
