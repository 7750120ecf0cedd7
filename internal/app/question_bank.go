package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"keyword-quiz/internal/domain"
)

// DefaultMaxQuestions bounds a draw when the caller does not.
const DefaultMaxQuestions = 10

// QuestionLoader fetches the question set from a backing store (static data, Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.Question, error)
}

// Shuffler is the random source used for draws and option order. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a time-seeded random source.
func NewShuffler() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// QuestionBank is the fixed question set for a process.
type QuestionBank struct {
	questions []domain.Question
}

func NewQuestionBank(questions []domain.Question) *QuestionBank {
	return &QuestionBank{questions: append([]domain.Question(nil), questions...)}
}

// LoadQuestionBank builds a bank from a loader; an empty set is a configuration error.
func LoadQuestionBank(ctx context.Context, loader QuestionLoader) (*QuestionBank, error) {
	questions, err := loader.LoadQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("load questions: question bank is empty")
	}
	return NewQuestionBank(questions), nil
}

// Len returns the total number of questions across every tier.
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// QuestionsForTier returns every question at or below tier, in bank order.
func (b *QuestionBank) QuestionsForTier(tier domain.Difficulty) []domain.Question {
	out := make([]domain.Question, 0, len(b.questions))
	for _, q := range b.questions {
		if tier.Includes(q.Difficulty()) {
			out = append(out, q)
		}
	}
	return out
}

// DrawSession filters by tier, shuffles and truncates to maxCount.
// A pool smaller than maxCount is returned whole.
func (b *QuestionBank) DrawSession(tier domain.Difficulty, maxCount int, rnd Shuffler) []domain.Question {
	if maxCount <= 0 {
		maxCount = DefaultMaxQuestions
	}
	pool := b.QuestionsForTier(tier)
	rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if maxCount > len(pool) {
		maxCount = len(pool)
	}
	return pool[:maxCount]
}
