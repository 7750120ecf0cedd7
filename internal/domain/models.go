package domain

import "time"

// DateLayout is the YYYY-MM-DD form used for ledger dates.
const DateLayout = "2006-01-02"

// SessionResult summarizes one completed playthrough.
type SessionResult struct {
	ID            string
	Player        string
	Score         int
	Tier          Difficulty
	QuestionCount int
	FinishedAt    time.Time
}

// PlayerRecord is a ledger entry keyed by exact player name.
type PlayerRecord struct {
	Name       string
	BestScore  int
	LastScore  int
	Attempts   int
	Difficulty Difficulty
	Date       string
}

// LedgerEntry is the persisted shape of a PlayerRecord.
// Score is the legacy field and mirrors LastScore; the pointer fields are
// absent in records written before best/last/attempts tracking existed.
type LedgerEntry struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	BestScore  *int   `json:"best_score,omitempty"`
	LastScore  *int   `json:"last_score,omitempty"`
	Attempts   *int   `json:"attempts,omitempty"`
	Difficulty string `json:"difficulty"`
	Date       string `json:"date"`
}

// Record converts a stored entry, filling legacy gaps from Score.
func (e LedgerEntry) Record() PlayerRecord {
	rec := PlayerRecord{
		Name:      e.Name,
		BestScore: e.Score,
		LastScore: e.Score,
		Attempts:  1,
		Date:      e.Date,
	}
	if e.BestScore != nil {
		rec.BestScore = *e.BestScore
	}
	if e.LastScore != nil {
		rec.LastScore = *e.LastScore
	}
	if e.Attempts != nil {
		rec.Attempts = *e.Attempts
	}
	rec.Difficulty = Easy
	if d, err := ParseDifficulty(e.Difficulty); err == nil {
		rec.Difficulty = d
	}
	return rec
}

// EntryFor converts a record to its persisted shape.
func EntryFor(rec PlayerRecord) LedgerEntry {
	best, last, attempts := rec.BestScore, rec.LastScore, rec.Attempts
	return LedgerEntry{
		Name:       rec.Name,
		Score:      rec.LastScore,
		BestScore:  &best,
		LastScore:  &last,
		Attempts:   &attempts,
		Difficulty: rec.Difficulty.String(),
		Date:       rec.Date,
	}
}
