package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/spf13/cobra"
)

var (
	listOpts   = DefaultCommonOptions()
	listFormat = "text"
)

var listCmd = &cobra.Command{
	Use:   "list <file>...",
	Short: "List characterizations with their CHAR_ID numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  withContainer(runList),
}

func init() {
	rootCmd.AddCommand(listCmd)

	listOpts.RegisterFlags(listCmd)
	listCmd.Flags().StringVar(&listFormat, "format", listFormat, "Output format: text, yaml")
}

func runList(cc *CommandContext, cmd *cobra.Command, args []string) error {
	if listFormat != "text" && listFormat != "yaml" {
		return fmt.Errorf("invalid format: %s (valid: text, yaml)", listFormat)
	}

	ctx, cancel := listOpts.ApplyToContext(cc.Context)
	defer cancel()

	resp, err := cc.Container.ValidateUseCase().Execute(ctx, dto.ValidateRequest{
		Inputs:   args,
		Metadata: dto.NewRequestMetadata(),
	})
	if err != nil {
		return err
	}
	if resp.Diagnostics.HasErrors() {
		return fmt.Errorf("input is invalid, run 'togglegen validate' for details: %w", resp.Diagnostics.Err())
	}

	out := cmd.OutOrStdout()
	if listFormat == "yaml" {
		data, err := yaml.MarshalWithOptions(resp.Profiles, yaml.IndentSequence(true))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	_, err = fmt.Fprint(out, formatProfileList(resp.Profiles))
	return err
}

// formatProfileList renders one "#define"-like line per characterization.
func formatProfileList(profiles []dto.ProfileSummary) string {
	width := 0
	for _, p := range profiles {
		width = max(width, len(p.ID))
	}

	var sb strings.Builder
	for _, p := range profiles {
		fmt.Fprintf(&sb, "%3d  %-*s", p.Number, width, p.ID)
		if p.Testing {
			sb.WriteString("  [testing]")
		}
		if len(p.BasedOn) > 0 {
			sb.WriteString("  based on " + strings.Join(p.BasedOn, ", "))
		}
		if p.Brief != "" {
			sb.WriteString("  " + p.Brief)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "NUM_CHAR_IDS = %d\n", len(profiles))
	return sb.String()
}
