package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/belajar/internal/config"
	"github.com/faizmokh/belajar/internal/logging"
	"github.com/faizmokh/belajar/internal/version"
)

// NewRootCommand creates the top-level Cobra command hosting every subcommand.
func NewRootCommand(ctx context.Context, cfg config.Config, logger *slog.Logger) *cobra.Command {
	opts := newSourceOptions(cfg, logger)

	cmd := &cobra.Command{
		Use:           "belajar",
		Short:         "Chart study sessions from a plain-text log.",
		Version:       version.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newChartCommand(ctx, opts),
		newSVGCommand(ctx, opts),
		newDaysCommand(ctx, opts),
		newWeeksCommand(ctx, opts),
		newFillCommand(ctx, opts),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads configuration and executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	cmd := NewRootCommand(ctx, cfg, logger)
	return cmd.Execute()
}

// Main is a helper used by cmd/belajar/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "belajar %s\n", version.Info())
			return nil
		},
	}
}
