package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/togglegen/internal/infrastructure/container"
	"github.com/reglet-dev/togglegen/internal/infrastructure/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization:
// the output layout comes from viper (config file, TOGGLEGEN_* and bound
// flags), then every adapter is wired by the container.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		cfg, err := system.FromViper(viper.GetViper())
		if err != nil {
			return err
		}

		c, err := container.New(container.Options{
			Config: &cfg,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
		}
		if ctx.Context == nil {
			ctx.Context = context.Background()
		}

		return handler(ctx, cmd, args)
	}
}

// bindLayoutFlag binds a command flag to a layout key so that the flag wins
// over TOGGLEGEN_* and the config file.
func bindLayoutFlag(cmd *cobra.Command, flag, key string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding --%s: %v", flag, err))
	}
}
