package memory

import (
	"context"
	"sync"

	"keyword-quiz/internal/domain"
)

// LedgerStore is an in-memory implementation of app.LedgerStore.
type LedgerStore struct {
	mu      sync.RWMutex
	records []domain.PlayerRecord
	saves   int
}

func NewLedgerStore(seed ...domain.PlayerRecord) *LedgerStore {
	return &LedgerStore{records: append([]domain.PlayerRecord(nil), seed...)}
}

func (s *LedgerStore) Load(_ context.Context) ([]domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PlayerRecord(nil), s.records...), nil
}

func (s *LedgerStore) Save(_ context.Context, records []domain.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.PlayerRecord(nil), records...)
	s.saves++
	return nil
}

// Saves reports how many times the whole ledger was written.
func (s *LedgerStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
