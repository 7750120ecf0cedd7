package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"keyword-quiz/internal/domain"
)

// QuestionLoader loads the question bank from the questions table.
// Every row goes through domain.NewQuestion, so one bad row fails the whole load.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT text, answer, options, difficulty FROM questions ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			text, answer, difficulty string
			rawOptions               []byte
		)
		if err := rows.Scan(&text, &answer, &rawOptions, &difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var options []string
		if err := json.Unmarshal(rawOptions, &options); err != nil {
			return nil, fmt.Errorf("unmarshal options for %q: %w", text, err)
		}
		tier, err := domain.ParseDifficulty(difficulty)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", text, err)
		}
		q, err := domain.NewQuestion(text, answer, options, tier)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}
