package domain

// PointsFor returns the value of a correct answer at the given tier: 1, 2 or 3.
func PointsFor(d Difficulty) int {
	if !d.Valid() {
		return 0
	}
	return int(d)
}

// MaxPossible is the score of a session at tier answered perfectly.
// Lower-tier questions in a cumulative draw are worth less, so this is an upper bound.
func MaxPossible(tier Difficulty, questionCount int) int {
	return questionCount * PointsFor(tier)
}

// Percentage returns 100*score/maxPossible, or 0 when nothing was possible.
func Percentage(score, maxPossible int) float64 {
	if maxPossible <= 0 {
		return 0
	}
	return 100 * float64(score) / float64(maxPossible)
}

// Rating buckets a percentage for the end-of-quiz verdict.
type Rating int

const (
	KeepPracticing Rating = iota
	Good
	Great
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "excellent"
	case Great:
		return "great"
	case Good:
		return "good"
	default:
		return "keep practicing"
	}
}

// RatingFor maps a percentage onto the 90/70/50 thresholds.
func RatingFor(percentage float64) Rating {
	switch {
	case percentage >= 90:
		return Excellent
	case percentage >= 70:
		return Great
	case percentage >= 50:
		return Good
	default:
		return KeepPracticing
	}
}
