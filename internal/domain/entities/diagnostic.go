package entities

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// Diagnostic codes.
const (
	CodeDuplicateOption    = "duplicate-option"
	CodeDuplicateProfile   = "duplicate-char-id"
	CodeValueOverride      = "value-override"
	CodeUnresolvedBase     = "unresolved-based-on"
	CodeNotImplemented     = "not-implemented"
	CodeInvalidIdentifier  = "invalid-identifier"
	CodeInvalidField       = "invalid-field"
	CodeMissingField       = "missing-field"
	CodeUnknownField       = "unknown-field"
	CodeUnknownPlaceholder = "unknown-placeholder"
	CodeSchema             = "schema"
	CodeGeneratorVersion   = "generator-version"
	CodeNoProfiles         = "no-profiles"
)

// Diagnostic is one finding about the input configuration.
type Diagnostic struct {
	Severity values.Severity `yaml:"severity"`
	Code     string          `yaml:"code"`
	Subject  string          `yaml:"subject,omitempty"`
	Message  string          `yaml:"message"`
	Location Location        `yaml:"-"`
	Err      error           `yaml:"-"`
}

// String formats the diagnostic as "file:line: severity: message".
func (d Diagnostic) String() string {
	if loc := d.Location.String(); loc != "" {
		return fmt.Sprintf("%s: %s: %s", loc, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Diagnostics accumulates findings for a whole run so that every mistake is
// reported at once before anything is written.
type Diagnostics []Diagnostic

// Warn records a non-fatal finding.
func (d *Diagnostics) Warn(loc Location, code, subject, format string, args ...any) {
	*d = append(*d, Diagnostic{
		Severity: values.SevWarning,
		Code:     code,
		Subject:  subject,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	})
}

// Fail records a fatal finding caused by err.
func (d *Diagnostics) Fail(loc Location, code, subject string, err error) {
	*d = append(*d, Diagnostic{
		Severity: values.SevError,
		Code:     code,
		Subject:  subject,
		Message:  err.Error(),
		Location: loc,
		Err:      err,
	})
}

// HasErrors returns true if any fatal finding was recorded.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity.IsError() {
			return true
		}
	}
	return false
}

// Errors returns only the fatal findings.
func (d Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity.IsError() {
			out = append(out, diag)
		}
	}
	return out
}

// Warnings returns only the non-fatal findings.
func (d Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if !diag.Severity.IsError() {
			out = append(out, diag)
		}
	}
	return out
}

// Err joins every fatal finding into one error, or returns nil.
// The joined error keeps the causes so errors.Is/As work on the result.
func (d Diagnostics) Err() error {
	var errs []error
	for _, diag := range d.Errors() {
		cause := diag.Err
		if cause == nil {
			cause = errors.New(diag.Message)
		}
		if loc := diag.Location.String(); loc != "" {
			cause = fmt.Errorf("%s: %w", loc, cause)
		}
		errs = append(errs, cause)
	}
	return errors.Join(errs...)
}
