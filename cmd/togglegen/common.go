package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared across the commands that read documents.
type CommonOptions struct {
	// Execution
	Timeout time.Duration
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Timeout: time.Minute,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Timeout for the whole run (0 to disable)")
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return ctx, func() {}
}

// ReportOptions selects how a report is printed.
type ReportOptions struct {
	Format  string
	Output  string
	NoColor bool
}

// RegisterFlags adds the report flags to a cobra command.
func (opts *ReportOptions) RegisterFlags(cmd *cobra.Command, formats []string) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		fmt.Sprintf("Output format: %v", formats))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colors in text output")
}

// ValidateFlags checks the format against the supported ones.
func (opts *ReportOptions) ValidateFlags(formats []string) error {
	if !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, formats)
	}
	return nil
}

// Color reports whether text output should be colored: only on stdout and
// only when NO_COLOR is unset.
func (opts *ReportOptions) Color() bool {
	if opts.NoColor || opts.Output != "" {
		return false
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor
}

// Writer opens the report destination. The returned close function must be
// called once the report is written.
func (opts *ReportOptions) Writer(stdout io.Writer) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return stdout, func() error { return nil }, nil
	}

	//nolint:gosec // G304: output path is provided by the user
	f, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func errMutuallyExclusive(a, b string) error {
	return fmt.Errorf("%s and %s are mutually exclusive", a, b)
}
