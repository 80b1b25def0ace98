package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/domain/entities"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TextFormatter formats validation reports for a terminal.
type TextFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTextFormatter creates a new text formatter with colors disabled.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TextFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the report as text.
//
//nolint:errcheck // Terminal output is best-effort
func (f *TextFormatter) Format(r *dto.ValidateResponse) error {
	rule := f.colorize(strings.Repeat("─", 60), colorGray)

	fmt.Fprintln(f.writer, rule)
	fmt.Fprintf(f.writer, "Sources: %s\n", strings.Join(r.Sources, ", "))
	fmt.Fprintf(f.writer, "Options: %d\n", r.Options)
	fmt.Fprintln(f.writer)

	if len(r.Profiles) > 0 {
		fmt.Fprintln(f.writer, f.colorize("CHAR_IDs:", colorBold))
		f.formatProfiles(r.Profiles)
		fmt.Fprintln(f.writer)
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Diagnostics:", colorBold))
		for _, d := range r.Diagnostics {
			f.formatDiagnostic(d)
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintln(f.writer, rule)
	f.formatSummary(r.Diagnostics)

	return nil
}

//nolint:errcheck // Terminal output is best-effort
func (f *TextFormatter) formatProfiles(profiles []dto.ProfileSummary) {
	width := 0
	for _, p := range profiles {
		width = max(width, len(p.ID))
	}

	for _, p := range profiles {
		var notes []string
		if p.Testing {
			notes = append(notes, f.colorize("testing", colorCyan))
		}
		if len(p.BasedOn) > 0 {
			notes = append(notes, "based on "+strings.Join(p.BasedOn, ", "))
		}

		line := fmt.Sprintf("  %3d  %-*s", p.Number, width, p.ID)
		if p.Brief != "" {
			line += "  " + p.Brief
		}
		if len(notes) > 0 {
			line += f.colorize(" ("+strings.Join(notes, "; ")+")", colorGray)
		}
		fmt.Fprintln(f.writer, line)
	}
}

//nolint:errcheck // Terminal output is best-effort
func (f *TextFormatter) formatDiagnostic(d entities.Diagnostic) {
	color := colorYellow
	if d.Severity.IsError() {
		color = colorRed
	}

	prefix := ""
	if loc := d.Location.String(); loc != "" {
		prefix = loc + ": "
	}
	fmt.Fprintf(f.writer, "  %s%s: %s %s\n",
		prefix,
		f.colorize(d.Severity.String(), color),
		d.Message,
		f.colorize("["+d.Code+"]", colorGray),
	)
}

//nolint:errcheck // Terminal output is best-effort
func (f *TextFormatter) formatSummary(diags entities.Diagnostics) {
	errs, warns := len(diags.Errors()), len(diags.Warnings())
	counts := fmt.Sprintf("%d %s, %d %s", errs, plural(errs, "error"), warns, plural(warns, "warning"))

	if errs > 0 {
		fmt.Fprintf(f.writer, "%s %s\n", f.colorize("✗ invalid:", colorRed), counts)
		return
	}
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("✓ valid:", colorGreen), counts)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
