package domain

import (
	"fmt"
	"strings"
)

// Difficulty is a question tier. Tiers are ordered: Easy < Medium < Hard.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Includes applies the cumulative rule: a tier includes every question at or below it.
func (d Difficulty) Includes(q Difficulty) bool {
	return q.Valid() && q <= d
}

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, raw)
}
