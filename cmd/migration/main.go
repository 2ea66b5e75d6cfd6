package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-tournament/internal/app"
	"github.com/riskibarqy/cricket-tournament/internal/config"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
)

var (
	migrationsDir string
	logger        = logging.NewJSON(logging.LevelInfo)
)

var rootCmd = &cobra.Command{
	Use:           "migration",
	Short:         "Apply and inspect the cricket tournament schema migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR or ./db/migrations)")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd, gotoCmd)
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			if err := ignoreNoChange(m.Up()); err != nil {
				return crerr.Wrap(err, "migrate up")
			}
			logger.Info("migrations applied")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1 step)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		return withMigrator(func(m *migrate.Migrate) error {
			if err := ignoreNoChange(m.Steps(-steps)); err != nil {
				return crerr.Wrapf(err, "roll back %d step(s)", steps)
			}
			logger.Info("migrations rolled back", "steps", steps)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if crerr.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "version: none")
				fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
				return nil
			}
			if err != nil {
				return crerr.Wrap(err, "read version")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force <version>",
	Short: "Set the schema version without running migrations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := parseVersion(args[0])
		if err != nil {
			return err
		}
		return withMigrator(func(m *migrate.Migrate) error {
			if err := m.Force(version); err != nil {
				return crerr.Wrapf(err, "force version %d", version)
			}
			logger.Info("schema version forced", "version", version)
			return nil
		})
	},
}

var gotoCmd = &cobra.Command{
	Use:     "goto <version>",
	Aliases: []string{"migrate"},
	Short:   "Migrate up or down to the given version",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseTarget(args[0])
		if err != nil {
			return err
		}
		return withMigrator(func(m *migrate.Migrate) error {
			if err := ignoreNoChange(m.Migrate(target)); err != nil {
				return crerr.Wrapf(err, "migrate to %d", target)
			}
			logger.Info("schema migrated", "version", target)
			return nil
		})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func withMigrator(fn func(m *migrate.Migrate) error) error {
	cfg, err := config.Load()
	if err != nil {
		return crerr.Wrap(err, "load config")
	}
	if strings.TrimSpace(cfg.DBURL) == "" {
		return crerr.New("DB_URL is required")
	}

	dir, err := resolveMigrationsDir(migrationsDir)
	if err != nil {
		return err
	}

	sourceURL := "file://" + filepath.ToSlash(dir)
	m, err := migrate.New(sourceURL, app.DSN(cfg))
	if err != nil {
		return crerr.Wrap(err, "create migrator")
	}
	defer closeMigrator(m)

	logger.Info("migrator ready", "source", sourceURL)
	return fn(m)
}

func ignoreNoChange(err error) error {
	if crerr.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, crerr.Wrapf(err, "invalid down steps %q", args[0])
	}
	if steps <= 0 {
		return 0, crerr.New("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "invalid version %q", raw)
	}
	if value < 0 {
		return 0, crerr.New("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, crerr.New("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "invalid target version %q", raw)
	}
	return uint(value), nil
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source failed", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db failed", "error", dbErr)
	}
}

func resolveMigrationsDir(explicit string) (string, error) {
	candidates := []string{
		strings.TrimSpace(explicit),
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", crerr.New("migration directory not found (checked --dir, MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
