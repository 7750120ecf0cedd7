package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"keyword-quiz/internal/domain"
)

type playerRecordModel struct {
	bun.BaseModel `bun:"table:player_records"`

	Name       string `bun:"name,pk"`
	Position   int    `bun:"position,notnull"`
	Score      int    `bun:"score,notnull"`
	BestScore  int    `bun:"best_score,notnull"`
	LastScore  int    `bun:"last_score,notnull"`
	Attempts   int    `bun:"attempts,notnull"`
	Difficulty string `bun:"difficulty,notnull"`
	Date       string `bun:"date,notnull"`
}

// LedgerStore keeps the ledger in the player_records table.
type LedgerStore struct {
	db *bun.DB
}

func NewLedgerStore(db *bun.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) Load(ctx context.Context) ([]domain.PlayerRecord, error) {
	var rows []playerRecordModel
	if err := s.db.NewSelect().Model(&rows).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	records := make([]domain.PlayerRecord, 0, len(rows))
	for _, row := range rows {
		best, last, attempts := row.BestScore, row.LastScore, row.Attempts
		records = append(records, domain.LedgerEntry{
			Name:       row.Name,
			Score:      row.Score,
			BestScore:  &best,
			LastScore:  &last,
			Attempts:   &attempts,
			Difficulty: row.Difficulty,
			Date:       row.Date,
		}.Record())
	}
	return records, nil
}

// Save replaces the table contents in one transaction.
func (s *LedgerStore) Save(ctx context.Context, records []domain.PlayerRecord) error {
	rows := make([]playerRecordModel, 0, len(records))
	for i, rec := range records {
		rows = append(rows, playerRecordModel{
			Name:       rec.Name,
			Position:   i,
			Score:      rec.LastScore,
			BestScore:  rec.BestScore,
			LastScore:  rec.LastScore,
			Attempts:   rec.Attempts,
			Difficulty: rec.Difficulty.String(),
			Date:       rec.Date,
		})
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*playerRecordModel)(nil)).Where("TRUE").Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
