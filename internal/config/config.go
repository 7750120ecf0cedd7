package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
)

const (
	DefaultTimeLimit  = 30 * time.Second
	DefaultLedgerPath = "high_scores.json"
	DefaultSQLitePath = "high_scores.db"
)

type Config struct {
	Quiz struct {
		Difficulty   string `yaml:"difficulty"`
		TimeLimit    string `yaml:"time_limit"`
		MaxQuestions int    `yaml:"max_questions" validate:"gte=0,lte=100"`
	} `yaml:"quiz"`
	Questions struct {
		Source string `yaml:"source" validate:"omitempty,oneof=builtin postgres"`
	} `yaml:"questions"`
	Ledger struct {
		Backend    string `yaml:"backend" validate:"omitempty,oneof=file sqlite redis postgres"`
		Path       string `yaml:"path"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"ledger"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db" validate:"gte=0"`
		Key      string `yaml:"key"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Log struct {
		Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// Load reads YAML config from path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Quiz.Difficulty == "" {
		c.Quiz.Difficulty = domain.Easy.String()
	}
	if c.Quiz.MaxQuestions == 0 {
		c.Quiz.MaxQuestions = app.DefaultMaxQuestions
	}
	if c.Questions.Source == "" {
		c.Questions.Source = "builtin"
	}
	if c.Ledger.Backend == "" {
		c.Ledger.Backend = "file"
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = DefaultLedgerPath
	}
	if c.Ledger.SQLitePath == "" {
		c.Ledger.SQLitePath = DefaultSQLitePath
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks field constraints and cross-field requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := domain.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Ledger.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis ledger requires redis.addr")
	}
	if (c.Ledger.Backend == "postgres" || c.Questions.Source == "postgres") && c.Postgres.URL == "" {
		return fmt.Errorf("invalid config: postgres url not configured")
	}
	if c.Quiz.TimeLimit != "" {
		if d, err := time.ParseDuration(c.Quiz.TimeLimit); err != nil || d <= 0 {
			return fmt.Errorf("invalid config: quiz.time_limit %q", c.Quiz.TimeLimit)
		}
	}
	return nil
}

// Settings converts the quiz section into the immutable session settings.
func (c Config) Settings() (app.Settings, error) {
	tier, err := domain.ParseDifficulty(c.Quiz.Difficulty)
	if err != nil {
		return app.Settings{}, err
	}
	return app.Settings{
		Tier:         tier,
		TimeLimit:    ParseDuration(c.Quiz.TimeLimit, DefaultTimeLimit),
		MaxQuestions: c.Quiz.MaxQuestions,
	}, nil
}

// ParseDuration parses a duration string or returns the fallback if empty or invalid.
func ParseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return fallback
}
