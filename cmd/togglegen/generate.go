package main

import (
	"fmt"
	"strings"

	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/reglet-dev/togglegen/internal/infrastructure/system"
	"github.com/spf13/cobra"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	CommonOptions

	CharIDs     []string
	Select      string
	TestingOnly bool
	Check       bool
	DryRun      bool
}

var generateOpts = GenerateOptions{CommonOptions: DefaultCommonOptions()}

var generateCmd = &cobra.Command{
	Use:   "generate <file>...",
	Short: "Generate C headers and sources from option and characterization documents",
	Long: `Load every input document (tab separated .csv/.tsv tables or .yaml documents),
validate everything, render every file in memory and only then write.
Nothing is written when any error is found.

Selection:
  --char-id A,B                 Only generate the files of these characterizations
  --select 'testing'            Only generate characterizations matching an expression
                                (fields: id, number, testing, brief, description,
                                based_on, overrides)
  --testing-only                Only generate testing characterizations
  The master toggle.h/toggle.c always enumerate every characterization.

Drift detection:
  --check    Write nothing; fail when a file on disk differs from what would be generated`,
	Example: `  togglegen generate csv/options.csv csv/char_ids.csv
  togglegen generate toggles.yaml --include-dir gen/include --source-dir gen/src
  togglegen generate toggles.yaml --check`,
	Args: cobra.MinimumNArgs(1),
	RunE: withContainer(runGenerate),
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateOpts.RegisterFlags(generateCmd)
	generateCmd.Flags().StringSliceVar(&generateOpts.CharIDs, "char-id", nil, "Generate only these characterizations (comma-separated)")
	generateCmd.Flags().StringVar(&generateOpts.Select, "select", "", "Generate only characterizations matching an expression (e.g. \"testing && number > 1\")")
	generateCmd.Flags().BoolVar(&generateOpts.TestingOnly, "testing-only", false, "Generate only characterizations with TESTING set")
	generateCmd.Flags().BoolVar(&generateOpts.Check, "check", false, "Fail if generated files differ from disk, write nothing")
	generateCmd.Flags().BoolVar(&generateOpts.DryRun, "dry-run", false, "List the files that would be written")

	// Output layout
	generateCmd.Flags().String("output-root", "", "Directory the generated tree is written to (default \".\")")
	generateCmd.Flags().String("include-dir", "", "Header directory below the output root (default \"include\")")
	generateCmd.Flags().String("source-dir", "", "Source directory below the output root (default \"src\")")
	bindLayoutFlag(generateCmd, "output-root", system.KeyOutputRoot)
	bindLayoutFlag(generateCmd, "include-dir", system.KeyIncludeDir)
	bindLayoutFlag(generateCmd, "source-dir", system.KeySourceDir)
}

// writeMode maps --check/--dry-run onto the writer mode.
func (opts *GenerateOptions) writeMode() (dto.WriteMode, error) {
	switch {
	case opts.Check && opts.DryRun:
		return 0, errMutuallyExclusive("--check", "--dry-run")
	case opts.Check:
		return dto.WriteModeCheck, nil
	case opts.DryRun:
		return dto.WriteModeDryRun, nil
	default:
		return dto.WriteModeWrite, nil
	}
}

func runGenerate(cc *CommandContext, cmd *cobra.Command, args []string) error {
	mode, err := generateOpts.writeMode()
	if err != nil {
		return err
	}

	ctx, cancel := generateOpts.ApplyToContext(cc.Context)
	defer cancel()

	resp, err := cc.Container.GenerateUseCase().Execute(ctx, dto.GenerateRequest{
		Inputs:   args,
		Metadata: dto.NewRequestMetadata(),
		Selection: dto.SelectionOptions{
			CharIDs:          generateOpts.CharIDs,
			SelectExpression: generateOpts.Select,
			TestingOnly:      generateOpts.TestingOnly,
		},
		Mode: mode,
	})
	if err != nil {
		return err
	}

	printFileResults(cmd, resp.Files)

	if drifted := resp.Drifted(); len(drifted) > 0 {
		return fmt.Errorf("%d generated file(s) out of date: %s", len(drifted), strings.Join(drifted, ", "))
	}
	return nil
}

//nolint:errcheck // Terminal output is best-effort
func printFileResults(cmd *cobra.Command, files []dto.FileResult) {
	out := cmd.OutOrStdout()
	counts := map[dto.FileStatus]int{}
	for _, f := range files {
		counts[f.Status]++
		if f.Status != dto.FileUnchanged || verbose {
			fmt.Fprintf(out, "%-11s %s\n", f.Status, f.Path)
		}
	}
	fmt.Fprintf(out, "%d file(s): %d written, %d unchanged, %d would be written, %d drifted\n",
		len(files), counts[dto.FileWritten], counts[dto.FileUnchanged],
		counts[dto.FileWouldWrite], counts[dto.FileDrifted])
}
