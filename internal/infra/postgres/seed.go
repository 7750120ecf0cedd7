package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"keyword-quiz/internal/domain"
)

type questionModel struct {
	bun.BaseModel `bun:"table:questions"`

	ID         int64    `bun:"id,pk,autoincrement"`
	Position   int      `bun:"position,notnull"`
	Text       string   `bun:"text,notnull"`
	Answer     string   `bun:"answer,notnull"`
	Options    []string `bun:"options,type:jsonb,notnull"`
	Difficulty string   `bun:"difficulty,notnull"`
}

// SeedQuestions fills an empty questions table. It returns the number of rows inserted,
// which is zero when the table already has content.
func SeedQuestions(ctx context.Context, db *bun.DB, questions []domain.Question) (int, error) {
	count, err := db.NewSelect().Model((*questionModel)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	if count > 0 || len(questions) == 0 {
		return 0, nil
	}

	rows := make([]questionModel, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, questionModel{
			Position:   i,
			Text:       q.Text(),
			Answer:     q.Answer(),
			Options:    q.Options(),
			Difficulty: q.Difficulty().String(),
		})
	}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert questions: %w", err)
	}
	return len(rows), nil
}
