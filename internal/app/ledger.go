package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"keyword-quiz/internal/domain"
)

// LedgerStore abstracts where the ledger lives (JSON file, SQLite, Redis, Postgres).
// Load and Save always move the whole collection in insertion order.
type LedgerStore interface {
	Load(ctx context.Context) ([]domain.PlayerRecord, error)
	Save(ctx context.Context, records []domain.PlayerRecord) error
}

// ScoreLedger is the per-player high-score table. It is the only writer of its store.
type ScoreLedger struct {
	store   LedgerStore
	logger  *zap.Logger
	now     func() time.Time
	records []domain.PlayerRecord
	index   map[string]int
}

// LoadLedger reads the store. A missing or unreadable store yields an empty ledger.
func LoadLedger(ctx context.Context, store LedgerStore, logger *zap.Logger) *ScoreLedger {
	return LoadLedgerWithClock(ctx, store, logger, time.Now)
}

// LoadLedgerWithClock is LoadLedger with a fixed "today" for deterministic dates.
func LoadLedgerWithClock(ctx context.Context, store LedgerStore, logger *zap.Logger, now func() time.Time) *ScoreLedger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &ScoreLedger{
		store:  store,
		logger: logger,
		now:    now,
		index:  make(map[string]int),
	}

	records, err := store.Load(ctx)
	if err != nil {
		logger.Warn("ledger unreadable, starting empty", zap.Error(err))
		return l
	}
	for _, rec := range records {
		if _, dup := l.index[rec.Name]; dup {
			logger.Warn("duplicate ledger record ignored", zap.String("player", rec.Name))
			continue
		}
		l.index[rec.Name] = len(l.records)
		l.records = append(l.records, rec)
	}
	logger.Debug("ledger loaded", zap.Int("records", len(l.records)))
	return l
}

// RecordSession merges a finished session into the ledger and persists it.
// The returned record reflects the update even when persisting fails; the
// error then wraps domain.ErrLedgerNotPersisted.
func (l *ScoreLedger) RecordSession(ctx context.Context, result domain.SessionResult) (domain.PlayerRecord, error) {
	today := l.now().Format(domain.DateLayout)

	i, ok := l.index[result.Player]
	if !ok {
		l.index[result.Player] = len(l.records)
		l.records = append(l.records, domain.PlayerRecord{
			Name:       result.Player,
			BestScore:  result.Score,
			LastScore:  result.Score,
			Attempts:   1,
			Difficulty: result.Tier,
			Date:       today,
		})
		i = len(l.records) - 1
	} else {
		rec := &l.records[i]
		rec.Attempts++
		if result.Score > rec.BestScore {
			rec.BestScore = result.Score
		}
		rec.LastScore = result.Score
		rec.Difficulty = result.Tier
		rec.Date = today
	}

	rec := l.records[i]
	if err := l.store.Save(ctx, l.Records()); err != nil {
		l.logger.Warn("ledger save failed",
			zap.String("player", result.Player),
			zap.String("session", result.ID),
			zap.Error(err))
		return rec, fmt.Errorf("%w: %w", domain.ErrLedgerNotPersisted, err)
	}
	l.logger.Info("session recorded",
		zap.String("player", rec.Name),
		zap.String("session", result.ID),
		zap.Int("score", result.Score),
		zap.Int("best", rec.BestScore),
		zap.Int("attempts", rec.Attempts))
	return rec, nil
}

// Records returns a copy in insertion order.
func (l *ScoreLedger) Records() []domain.PlayerRecord {
	return append([]domain.PlayerRecord(nil), l.records...)
}

// Len is the number of distinct players.
func (l *ScoreLedger) Len() int {
	return len(l.records)
}

// Record looks a player up by exact name.
func (l *ScoreLedger) Record(name string) (domain.PlayerRecord, bool) {
	i, ok := l.index[name]
	if !ok {
		return domain.PlayerRecord{}, false
	}
	return l.records[i], true
}

// SortedByBestScoreDesc orders by best score; equal scores keep insertion order.
func (l *ScoreLedger) SortedByBestScoreDesc() []domain.PlayerRecord {
	out := l.Records()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BestScore > out[j].BestScore
	})
	return out
}

// BestScoreFor returns 0 for players with no record.
func (l *ScoreLedger) BestScoreFor(name string) int {
	rec, ok := l.Record(name)
	if !ok {
		return 0
	}
	return rec.BestScore
}
