package domain

import (
	"fmt"
	"strings"
)

const (
	minOptions = 2
	maxOptions = 6
)

// Question is an immutable multiple-choice question. Build it with NewQuestion.
type Question struct {
	text       string
	answer     string
	options    []string
	difficulty Difficulty
}

// NewQuestion validates and builds a question. The answer must be one of the options.
func NewQuestion(text, answer string, options []string, difficulty Difficulty) (Question, error) {
	if strings.TrimSpace(text) == "" {
		return Question{}, ErrEmptyQuestion
	}
	if !difficulty.Valid() {
		return Question{}, fmt.Errorf("question %q: %w", text, ErrInvalidDifficulty)
	}
	if len(options) < minOptions || len(options) > maxOptions {
		return Question{}, fmt.Errorf("question %q has %d options: %w", text, len(options), ErrInvalidOptions)
	}
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if opt == "" {
			return Question{}, fmt.Errorf("question %q has an empty option: %w", text, ErrInvalidOptions)
		}
		if _, dup := seen[opt]; dup {
			return Question{}, fmt.Errorf("question %q repeats option %q: %w", text, opt, ErrInvalidOptions)
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[answer]; !ok {
		return Question{}, fmt.Errorf("question %q answer %q: %w", text, answer, ErrAnswerNotInOptions)
	}

	return Question{
		text:       text,
		answer:     answer,
		options:    append([]string(nil), options...),
		difficulty: difficulty,
	}, nil
}

// MustQuestion is NewQuestion for static data; it panics on an invalid question.
func MustQuestion(text, answer string, options []string, difficulty Difficulty) Question {
	q, err := NewQuestion(text, answer, options, difficulty)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Question) Text() string { return q.text }
func (q Question) Answer() string { return q.answer }
func (q Question) Difficulty() Difficulty { return q.difficulty }

// Options returns a copy of the options in their authored order.
func (q Question) Options() []string {
	return append([]string(nil), q.options...)
}

// IsCorrect compares a selected option with the answer by value.
func (q Question) IsCorrect(selected string) bool {
	return selected == q.answer
}
