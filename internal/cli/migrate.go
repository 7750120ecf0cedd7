package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"keyword-quiz/internal/config"
	"keyword-quiz/internal/infra/memory"
	pgstore "keyword-quiz/internal/infra/postgres"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "load the built-in questions into an empty questions table")
	return cmd
}

func runMigrations(ctx context.Context, configPath string, seed bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	return runMigrationsWithConfig(ctx, cfg, seed, logger)
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config, seed bool, logger *zap.Logger) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	db := pgstore.OpenDB(cfg.Postgres.URL)
	defer db.Close()

	group, err := pgstore.Migrate(ctx, db)
	if err != nil {
		return err
	}
	if group.IsZero() {
		logger.Info("no new migrations")
	} else {
		logger.Info("migrations applied", zap.String("group", group.String()))
	}

	if !seed {
		return nil
	}
	n, err := pgstore.SeedQuestions(ctx, db, memory.BuiltinQuestions())
	if err != nil {
		return err
	}
	logger.Info("questions seeded", zap.Int("rows", n))
	return nil
}
