package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
	"keyword-quiz/internal/infra/memory"
)

func TestLedgerMergeSequence(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := memory.NewLedgerStore()
	ledger := app.LoadLedgerWithClock(ctx, store, zap.NewNop(), clock.Now)
	require.Equal(t, 0, ledger.Len())

	steps := []struct {
		score    int
		tier     domain.Difficulty
		best     int
		attempts int
	}{
		{score: 5, tier: domain.Medium, best: 5, attempts: 1},
		{score: 3, tier: domain.Easy, best: 5, attempts: 2},
		{score: 9, tier: domain.Hard, best: 9, attempts: 3},
	}
	for i, step := range steps {
		clock.Advance(24 * time.Hour)
		rec, err := ledger.RecordSession(ctx, domain.SessionResult{Player: "Alice", Score: step.score, Tier: step.tier})
		require.NoError(t, err)

		assert.Equal(t, step.best, rec.BestScore, "step %d", i)
		assert.Equal(t, step.score, rec.LastScore, "step %d", i)
		assert.Equal(t, step.attempts, rec.Attempts, "step %d", i)
		assert.Equal(t, step.tier, rec.Difficulty, "step %d", i)
		assert.Equal(t, clock.Now().Format(domain.DateLayout), rec.Date, "step %d", i)
		assert.Equal(t, 1, ledger.Len())
	}

	assert.Equal(t, 3, store.Saves())
	persisted, _ := store.Load(ctx)
	require.Len(t, persisted, 1)
	assert.Equal(t, 9, persisted[0].BestScore)
	assert.Equal(t, 9, ledger.BestScoreFor("Alice"))
}

func TestLedgerNamesAreCaseSensitive(t *testing.T) {
	ctx := context.Background()
	ledger := app.LoadLedger(ctx, memory.NewLedgerStore(), nil)

	_, err := ledger.RecordSession(ctx, domain.SessionResult{Player: "alice", Score: 1, Tier: domain.Easy})
	require.NoError(t, err)
	_, err = ledger.RecordSession(ctx, domain.SessionResult{Player: "Alice", Score: 2, Tier: domain.Easy})
	require.NoError(t, err)

	assert.Equal(t, 2, ledger.Len())
	assert.Equal(t, 0, ledger.BestScoreFor("ALICE"))
}

func TestSortedByBestScoreDescIsStable(t *testing.T) {
	store := memory.NewLedgerStore(
		domain.PlayerRecord{Name: "a", BestScore: 3},
		domain.PlayerRecord{Name: "b", BestScore: 9},
		domain.PlayerRecord{Name: "c", BestScore: 9},
		domain.PlayerRecord{Name: "d", BestScore: 1},
	)
	ledger := app.LoadLedger(context.Background(), store, zap.NewNop())

	sorted := ledger.SortedByBestScoreDesc()
	names := make([]string, 0, len(sorted))
	for _, rec := range sorted {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, names)
	assert.Equal(t, "a", ledger.Records()[0].Name, "sorting does not reorder the ledger")
}

func TestLoadLedgerTreatsFailureAsEmpty(t *testing.T) {
	store := &failingStore{loadErr: errors.New("corrupt json")}
	ledger := app.LoadLedger(context.Background(), store, zap.NewNop())

	assert.Equal(t, 0, ledger.Len())
	assert.Equal(t, 0, ledger.BestScoreFor("anyone"))
}

func TestLoadLedgerDropsDuplicateNames(t *testing.T) {
	store := memory.NewLedgerStore(
		domain.PlayerRecord{Name: "a", BestScore: 3},
		domain.PlayerRecord{Name: "a", BestScore: 8},
	)
	ledger := app.LoadLedger(context.Background(), store, zap.NewNop())
	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, 3, ledger.BestScoreFor("a"))
}

func TestRecordSessionKeepsUpdateWhenSaveFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{records: []domain.PlayerRecord{{Name: "Alice", BestScore: 4, LastScore: 4, Attempts: 1, Difficulty: domain.Easy}}}
	ledger := app.LoadLedger(ctx, store, zap.NewNop())

	rec, err := ledger.RecordSession(ctx, domain.SessionResult{Player: "Alice", Score: 7, Tier: domain.Medium})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerNotPersisted)
	assert.ErrorIs(t, err, errDiskFull)

	assert.Equal(t, 7, rec.BestScore)
	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, 7, ledger.BestScoreFor("Alice"))
}
