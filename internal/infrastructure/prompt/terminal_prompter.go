// Package prompt provides interactive terminal prompts for the CLI.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/togglegen/internal/domain/values"
)

// StarterAnswers are the choices behind a starter document.
type StarterAnswers struct {
	CharID  string
	Brief   string
	Testing bool
}

// TerminalPrompter asks for starter document details on the terminal.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a new TerminalPrompter.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	// Character device (terminal), not a pipe or file
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptStarter asks for the first characterization. Current values of a
// are the defaults shown to the user.
func (p *TerminalPrompter) PromptStarter(a *StarterAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First CHAR_ID").
				Value(&a.CharID).
				Validate(ValidateCharID),
			huh.NewInput().
				Title("Brief description").
				Value(&a.Brief),
			huh.NewConfirm().
				Title("Testing characterization?").
				Description("Testing characterizations make OPTION symbols mutable and get a reset function.").
				Value(&a.Testing),
		),
	).Run()
}

// ValidateCharID rejects identifiers that cannot become a C macro.
func ValidateCharID(s string) error {
	if !values.IsIdentifier(s) {
		return errors.New("must be a C identifier")
	}
	return nil
}
