package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"keyword-quiz/internal/domain"
)

// DefaultLedgerKey is the list holding the ledger when no key is configured.
const DefaultLedgerKey = "quiz:ledger"

// LedgerStore keeps the ledger as a Redis list of JSON entries, one per player,
// in insertion order:  RPUSH quiz:ledger {entry} ...
// Save replaces the list inside MULTI/EXEC so readers never see a partial ledger.
type LedgerStore struct {
	client *redis.Client
	key    string
}

func NewLedgerStore(client *redis.Client, key string) *LedgerStore {
	if key == "" {
		key = DefaultLedgerKey
	}
	return &LedgerStore{client: client, key: key}
}

func (s *LedgerStore) Load(ctx context.Context) ([]domain.PlayerRecord, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	records := make([]domain.PlayerRecord, 0, len(raw))
	for _, item := range raw {
		var entry domain.LedgerEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode ledger entry: %w", err)
		}
		records = append(records, entry.Record())
	}
	return records, nil
}

func (s *LedgerStore) Save(ctx context.Context, records []domain.PlayerRecord) error {
	values := make([]interface{}, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(domain.EntryFor(rec))
		if err != nil {
			return fmt.Errorf("encode ledger entry: %w", err)
		}
		values = append(values, string(data))
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
