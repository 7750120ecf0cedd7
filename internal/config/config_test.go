package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"keyword-quiz/internal/domain"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Ledger.Backend)
	assert.Equal(t, DefaultLedgerPath, cfg.Ledger.Path)
	assert.Equal(t, "builtin", cfg.Questions.Source)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.Easy, settings.Tier)
	assert.Equal(t, DefaultTimeLimit, settings.TimeLimit)
	assert.Equal(t, 10, settings.MaxQuestions)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
quiz:
  difficulty: Hard
  time_limit: 45s
  max_questions: 5
ledger:
  backend: redis
redis:
  addr: localhost:6379
  key: scores
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.Hard, settings.Tier)
	assert.Equal(t, 45*time.Second, settings.TimeLimit)
	assert.Equal(t, 5, settings.MaxQuestions)
	assert.Equal(t, "scores", cfg.Redis.Key)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"unknown backend":  "ledger:\n  backend: mongo\n",
		"redis no addr":    "ledger:\n  backend: redis\n",
		"postgres no url":  "questions:\n  source: postgres\n",
		"bad difficulty":   "quiz:\n  difficulty: impossible\n",
		"bad time limit":   "quiz:\n  time_limit: soon\n",
		"too many":         "quiz:\n  max_questions: 1000\n",
		"unknown loglevel": "log:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("", 5*time.Second))
	assert.Equal(t, 5*time.Second, ParseDuration("nope", 5*time.Second))
	assert.Equal(t, 5*time.Second, ParseDuration("-3s", 5*time.Second))
	assert.Equal(t, 90*time.Second, ParseDuration("1m30s", 5*time.Second))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
