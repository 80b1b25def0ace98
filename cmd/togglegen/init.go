package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/togglegen/internal/domain/values"
	"github.com/reglet-dev/togglegen/internal/infrastructure/prompt"
	"github.com/spf13/cobra"
)

// InitOptions holds the answers used to build a starter document.
type InitOptions struct {
	OutputPath    string
	CharID        string
	Brief         string
	Testing       bool
	NoInteractive bool
	Force         bool
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter option and characterization document",
	Long: `Write a YAML document with one fixed option, one overridable option and a
first characterization, ready for 'togglegen generate'.`,
	Example: `  togglegen init
  togglegen init toggles.yaml --char-id BOARD_REV_A --testing --no-interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("char-id", "CHAR_ID_EXAMPLE", "Identifier of the first characterization")
	initCmd.Flags().String("brief", "Example characterization.", "One-line description of the first characterization")
	initCmd.Flags().Bool("testing", false, "Make the first characterization a testing characterization")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := InitOptions{OutputPath: "toggles.yaml"}
	if len(args) == 1 {
		opts.OutputPath = args[0]
	}
	opts.CharID, _ = cmd.Flags().GetString("char-id")
	opts.Brief, _ = cmd.Flags().GetString("brief")
	opts.Testing, _ = cmd.Flags().GetBool("testing")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")
	opts.Force, _ = cmd.Flags().GetBool("force")

	prompter := prompt.NewTerminalPrompter()
	if !opts.NoInteractive && prompter.IsInteractive() {
		answers := prompt.StarterAnswers{CharID: opts.CharID, Brief: opts.Brief, Testing: opts.Testing}
		if err := prompter.PromptStarter(&answers); err != nil {
			return err
		}
		opts.CharID, opts.Brief, opts.Testing = answers.CharID, answers.Brief, answers.Testing
	}

	if !values.IsIdentifier(opts.CharID) {
		return fmt.Errorf("CHAR_ID must be a C identifier: %q", opts.CharID)
	}

	if !opts.Force {
		if _, err := os.Stat(opts.OutputPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", opts.OutputPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	data, err := yaml.MarshalWithOptions(starterDocument(opts), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("failed to marshal starter document: %w", err)
	}

	//nolint:gosec // G306: the document is meant to be checked in
	if err := os.WriteFile(opts.OutputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.OutputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Starter document saved to %s\n", opts.OutputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'togglegen generate %s' to generate the C files.\n", opts.OutputPath)
	return nil
}

// starterDocument builds the document in the key order users read it in.
func starterDocument(opts InitOptions) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "generator", Value: ">= 0.1.0"},
		{Key: "options", Value: []yaml.MapSlice{
			{
				{Key: "NAME", Value: "EXAMPLE_VALUE"},
				{Key: "DEFAULT", Value: "1"},
				{Key: "TYPE", Value: "VALUE"},
				{Key: "DECL", Value: "MACRO"},
				{Key: "BRIEF", Value: "Fixed for every characterization."},
			},
			{
				{Key: "NAME", Value: "EXAMPLE_OPTION"},
				{Key: "DEFAULT", Value: "0"},
				{Key: "TYPE", Value: "OPTION"},
				{Key: "DECL", Value: "CONST_UINT8"},
				{Key: "BRIEF", Value: "Overridable per characterization."},
				{Key: "DESCRIPTION", Value: "Becomes a mutable variable in testing characterizations."},
			},
		}},
		{Key: "char_ids", Value: []yaml.MapSlice{
			{
				{Key: "CHAR_ID", Value: opts.CharID},
				{Key: "BRIEF", Value: opts.Brief},
				{Key: "TESTING", Value: opts.Testing},
				{Key: "EXAMPLE_OPTION", Value: "1"},
			},
		}},
	}
}
