package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/tt-league/internal/app"
	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/spf13/cobra"
)

var migrationDirCandidates = []string{"./db/migrations", "/app/db/migrations"}

func migrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect Postgres schema migrations",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", os.Getenv("MIGRATIONS_DIR"), "migrations directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, dir, func(m *migrate.Migrate) error {
				return reportChange(cmd, m.Up(), "migrations applied")
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(strings.TrimSpace(args[0]))
				if err != nil || n <= 0 {
					return fmt.Errorf("down steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withMigrator(cmd, dir, func(m *migrate.Migrate) error {
				return reportChange(cmd, m.Steps(-steps), fmt.Sprintf("rolled back %d migration(s)", steps))
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, dir, func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("version: none")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				cmd.Printf("version: %d\ndirty: %t\n", version, dirty)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "force <version>",
		Short: "Mark a version as applied without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || version < -1 {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return withMigrator(cmd, dir, func(m *migrate.Migrate) error {
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				cmd.Printf("forced version to %d\n", version)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "goto <version>",
		Short: "Migrate up or down to a version, e.g. goto 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid target version %q: %w", args[0], err)
			}
			return withMigrator(cmd, dir, func(m *migrate.Migrate) error {
				return reportChange(cmd, m.Migrate(uint(target)), fmt.Sprintf("migrated to version %d", target))
			})
		},
	})
	return cmd
}

func withMigrator(cmd *cobra.Command, dir string, fn func(m *migrate.Migrate) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.DBURL == "" {
		return errors.New("DB_URL is required")
	}

	resolved, err := resolveMigrationsDir(dir)
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(resolved), app.PostgresDSN(cfg))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			cmd.PrintErrf("close migration source: %v\n", srcErr)
		}
		if dbErr != nil {
			cmd.PrintErrf("close migration db: %v\n", dbErr)
		}
	}()

	return fn(m)
}

func reportChange(cmd *cobra.Command, err error, done string) error {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		cmd.Println("no migration changes")
		return nil
	case err != nil:
		return err
	default:
		cmd.Println(done)
		return nil
	}
}

// resolveMigrationsDir returns the first existing directory among the flag
// value and the default locations.
func resolveMigrationsDir(flagValue string) (string, error) {
	candidates := append([]string{strings.TrimSpace(flagValue)}, migrationDirCandidates...)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked --dir, MIGRATIONS_DIR, %s)", strings.Join(migrationDirCandidates, ", "))
}
