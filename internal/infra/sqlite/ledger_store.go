package sqlite

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"keyword-quiz/internal/domain"
)

// playerRecordRow is one ledger line. Position keeps insertion order.
type playerRecordRow struct {
	ID         uint   `gorm:"primaryKey"`
	Position   int    `gorm:"not null;index"`
	Name       string `gorm:"uniqueIndex;not null"`
	Score      int    `gorm:"not null"`
	BestScore  int    `gorm:"not null"`
	LastScore  int    `gorm:"not null"`
	Attempts   int    `gorm:"not null"`
	Difficulty string `gorm:"size:16;not null"`
	Date       string `gorm:"size:10"`
}

func (playerRecordRow) TableName() string { return "player_records" }

// OpenDB opens (or creates) a SQLite ledger database and migrates its schema.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger: %w", err)
	}
	if err := db.AutoMigrate(&playerRecordRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite ledger: %w", err)
	}
	return db, nil
}

// LedgerStore keeps the ledger in a local SQLite file through gorm.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) Load(ctx context.Context) ([]domain.PlayerRecord, error) {
	var rows []playerRecordRow
	if err := s.db.WithContext(ctx).Order("position ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	records := make([]domain.PlayerRecord, 0, len(rows))
	for _, row := range rows {
		best, last, attempts := row.BestScore, row.LastScore, row.Attempts
		entry := domain.LedgerEntry{
			Name:       row.Name,
			Score:      row.Score,
			BestScore:  &best,
			LastScore:  &last,
			Attempts:   &attempts,
			Difficulty: row.Difficulty,
			Date:       row.Date,
		}
		records = append(records, entry.Record())
	}
	return records, nil
}

// Save replaces every row in one transaction.
func (s *LedgerStore) Save(ctx context.Context, records []domain.PlayerRecord) error {
	rows := make([]playerRecordRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, playerRecordRow{
			Position:   i,
			Name:       rec.Name,
			Score:      rec.LastScore,
			BestScore:  rec.BestScore,
			LastScore:  rec.LastScore,
			Attempts:   rec.Attempts,
			Difficulty: rec.Difficulty.String(),
			Date:       rec.Date,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&playerRecordRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}
