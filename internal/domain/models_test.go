package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntryLegacyDefaults(t *testing.T) {
	var entry LedgerEntry
	raw := `{"name":"Alice","score":7,"difficulty":"medium","date":"2024-03-01"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &entry))

	rec := entry.Record()
	assert.Equal(t, PlayerRecord{
		Name:       "Alice",
		BestScore:  7,
		LastScore:  7,
		Attempts:   1,
		Difficulty: Medium,
		Date:       "2024-03-01",
	}, rec)
}

func TestLedgerEntryUnknownDifficultyReadsAsEasy(t *testing.T) {
	rec := LedgerEntry{Name: "Bob", Score: 2, Difficulty: "insane"}.Record()
	assert.Equal(t, Easy, rec.Difficulty)
}

func TestEntryForWritesScoreAsLastScore(t *testing.T) {
	rec := PlayerRecord{Name: "Alice", BestScore: 9, LastScore: 3, Attempts: 4, Difficulty: Hard, Date: "2026-10-17"}
	entry := EntryFor(rec)

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","score":3,"best_score":9,"last_score":3,"attempts":4,"difficulty":"hard","date":"2026-10-17"}`, string(data))
	assert.Equal(t, rec, entry.Record())
}
