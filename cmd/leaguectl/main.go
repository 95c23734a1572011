// Command leaguectl runs league maintenance tasks against the configured
// storage.
//
// Usage:
//
//	leaguectl migrate up
//	leaguectl migrate down 1
//	leaguectl seasons list
//	leaguectl seasons set-current 12
//	leaguectl approvals list
//	leaguectl approvals club-info 30
//	leaguectl fixtures check --season winter-2025
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/tt-league/internal/app"
	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "leaguectl",
		Short:         "Table tennis league maintenance CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(migrateCmd())
	root.AddCommand(seasonsCmd())
	root.AddCommand(approvalsCmd())
	root.AddCommand(fixturesCmd())
	return root
}

// withServices loads config, wires the services and runs fn until it
// returns or the process is interrupted.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, services *app.Services) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("service", "leaguectl")
	defer func() { _ = logger.Sync() }()

	services, closeFn, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			logger.Warn("close storage", "error", err)
		}
	}()

	return fn(ctx, services)
}
