package main

import (
	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/togglegen/internal/application/dto"
	"github.com/spf13/cobra"
)

var (
	showOpts   = DefaultCommonOptions()
	showCharID string
)

var showCmd = &cobra.Command{
	Use:   "show <file>... --char-id <ID>",
	Short: "Show a resolved characterization",
	Long: `Resolve one characterization (BASED_ON inheritance included) and print every
option's effective value, storage kind, mutability and generated code as YAML.`,
	Example: `  togglegen show csv/options.csv csv/char_ids.csv --char-id BOARD_REV_B`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    withContainer(runShow),
}

func init() {
	rootCmd.AddCommand(showCmd)

	showOpts.RegisterFlags(showCmd)
	showCmd.Flags().StringVar(&showCharID, "char-id", "", "Characterization to show")
	_ = showCmd.MarkFlagRequired("char-id")
}

func runShow(cc *CommandContext, cmd *cobra.Command, args []string) error {
	ctx, cancel := showOpts.ApplyToContext(cc.Context)
	defer cancel()

	resp, err := cc.Container.ShowProfileUseCase().Execute(ctx, dto.ShowRequest{
		Inputs:   args,
		CharID:   showCharID,
		Metadata: dto.NewRequestMetadata(),
	})
	if err != nil {
		return err
	}

	data, err := yaml.MarshalWithOptions(resp.Profile, yaml.IndentSequence(true), yaml.UseLiteralStyleIfMultiline(true))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
