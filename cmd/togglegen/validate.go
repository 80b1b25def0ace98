package main

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/application/ports"
	"github.com/reglet-dev/togglegen/internal/version"
	"github.com/spf13/cobra"
)

// ValidateOptions holds the flags of the validate command.
type ValidateOptions struct {
	CommonOptions
	ReportOptions
}

var validateOpts = ValidateOptions{
	CommonOptions: DefaultCommonOptions(),
	ReportOptions: ReportOptions{Format: "text"},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate option and characterization documents without generating code",
	Long: `Run the complete validation of the input documents and print every
diagnostic: duplicate names, overridden VALUE options, unresolved BASED_ON
references, unsupported TYPE/DECL values, unknown placeholders and schema
violations are errors; unknown fields are warnings.`,
	Example: `  togglegen validate csv/options.csv csv/char_ids.csv
  togglegen validate toggles.yaml --format sarif -o togglegen.sarif`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(runValidate),
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateOpts.CommonOptions.RegisterFlags(validateCmd)
	validateOpts.ReportOptions.RegisterFlags(validateCmd, []string{"text", "json", "yaml", "sarif"})
}

func runValidate(cc *CommandContext, cmd *cobra.Command, args []string) error {
	formatters := cc.Container.Formatters()
	if err := validateOpts.ValidateFlags(formatters.SupportedFormats()); err != nil {
		return err
	}

	ctx, cancel := validateOpts.ApplyToContext(cc.Context)
	defer cancel()

	resp, err := cc.Container.ValidateUseCase().Execute(ctx, dto.ValidateRequest{
		Inputs:   args,
		Metadata: dto.NewRequestMetadata(),
	})
	if err != nil {
		return err
	}

	if err := writeReport(cmd, formatters, &validateOpts.ReportOptions, resp); err != nil {
		return err
	}

	if resp.Diagnostics.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(resp.Diagnostics.Errors()))
	}
	return nil
}

func writeReport(
	cmd *cobra.Command,
	formatters ports.ReportFormatterFactory,
	opts *ReportOptions,
	resp *dto.ValidateResponse,
) (err error) {
	w, closeFn, err := opts.Writer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeFn())
	}()

	formatter, err := formatters.Create(opts.Format, w, ports.FormatterOptions{
		Color:       opts.Color(),
		ToolVersion: version.Get().Version,
	})
	if err != nil {
		return err
	}
	return formatter.Format(resp)
}
