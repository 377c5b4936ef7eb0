package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/service/database"
	"github.com/kapu/namevibes-bot/internal/util"
	"github.com/spf13/cobra"
)

// NewMigrateCommand manages the PostgreSQL schema using the connection settings
// from the environment.
func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(db *sql.DB) error {
				if err := database.Migrate(db); err != nil {
					return err
				}
				return printVersion(cmd, db)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(db *sql.DB) error {
				if err := database.Rollback(db); err != nil {
					return err
				}
				return printVersion(cmd, db)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), func(db *sql.DB) error {
				return printVersion(cmd, db)
			})
		},
	})

	return cmd
}

func withDatabase(ctx context.Context, fn func(db *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pg, err := database.NewPostgresService(connectCtx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer func() { _ = pg.Close() }()

	return fn(pg.GetDB())
}

func printVersion(cmd *cobra.Command, db *sql.DB) error {
	version, err := database.Version(db)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return err
}
