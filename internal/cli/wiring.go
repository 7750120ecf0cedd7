package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/config"
	"keyword-quiz/internal/infra/file"
	"keyword-quiz/internal/infra/memory"
	pgstore "keyword-quiz/internal/infra/postgres"
	redisstore "keyword-quiz/internal/infra/redis"
	"keyword-quiz/internal/infra/sqlite"
)

// loadConfig reads the config file and applies the --ledger override.
func loadConfig(configPath, ledgerOverride string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if ledgerOverride != "" {
		cfg.Ledger.Backend = "file"
		cfg.Ledger.Path = ledgerOverride
	}
	return cfg, nil
}

// newLogger builds a zap logger on stderr so it never interleaves with the game on stdout.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// resources holds connections opened for the configured backends.
type resources struct {
	closers []func()
}

func (r *resources) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func openLedgerStore(cfg config.Config, res *resources) (app.LedgerStore, error) {
	switch cfg.Ledger.Backend {
	case "sqlite":
		db, err := sqlite.OpenDB(cfg.Ledger.SQLitePath)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite ledger handle: %w", err)
		}
		res.closers = append(res.closers, func() { _ = sqlDB.Close() })
		return sqlite.NewLedgerStore(db), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		res.closers = append(res.closers, func() { _ = client.Close() })
		return redisstore.NewLedgerStore(client, cfg.Redis.Key), nil
	case "postgres":
		db := pgstore.OpenDB(cfg.Postgres.URL)
		res.closers = append(res.closers, func() { _ = db.Close() })
		return pgstore.NewLedgerStore(db), nil
	case "file", "":
		return file.NewLedgerStore(cfg.Ledger.Path), nil
	}
	return nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
}

func openQuestionLoader(ctx context.Context, cfg config.Config, res *resources) (app.QuestionLoader, error) {
	if cfg.Questions.Source != "postgres" {
		return memory.NewBuiltinQuestionLoader(), nil
	}
	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, err
	}
	res.closers = append(res.closers, pool.Close)
	return pgstore.NewQuestionLoader(pool), nil
}
