package app_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// keepOrder is a Shuffler that leaves input untouched.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

// reverseOrder is a Shuffler that reverses input, so shuffled options differ from authored order.
type reverseOrder struct{}

func (reverseOrder) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func makeQuestions(tier domain.Difficulty, n int) []domain.Question {
	out := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		answer := fmt.Sprintf("%s-answer-%d", tier, i)
		out = append(out, domain.MustQuestion(
			fmt.Sprintf("%s question %d", tier, i),
			answer,
			[]string{answer, "wrong-a", "wrong-b", "wrong-c"},
			tier,
		))
	}
	return out
}

func mixedBank() *app.QuestionBank {
	var qs []domain.Question
	qs = append(qs, makeQuestions(domain.Easy, 10)...)
	qs = append(qs, makeQuestions(domain.Medium, 5)...)
	qs = append(qs, makeQuestions(domain.Hard, 5)...)
	return app.NewQuestionBank(qs)
}

// scriptedPresenter answers from a lookup of question text to the option to pick.
type scriptedPresenter struct {
	pick       func(p app.Prompt) string
	queued     []string
	beforeRead func()
	current    app.Prompt
	shown      []app.Prompt
	rejected   []string
	outcomes   []app.Outcome
	readErr    error
}

func answerCorrectly(answers map[string]string) func(app.Prompt) string {
	return func(p app.Prompt) string {
		for i, opt := range p.Options {
			if opt == answers[p.Text] {
				return strconv.Itoa(i + 1)
			}
		}
		return "0"
	}
}

func answerWrongly(answers map[string]string) func(app.Prompt) string {
	return func(p app.Prompt) string {
		for i, opt := range p.Options {
			if opt != answers[p.Text] {
				return strconv.Itoa(i + 1)
			}
		}
		return "0"
	}
}

func answerKey(qs []domain.Question) map[string]string {
	out := make(map[string]string, len(qs))
	for _, q := range qs {
		out[q.Text()] = q.Answer()
	}
	return out
}

func (p *scriptedPresenter) ShowQuestion(prompt app.Prompt) {
	p.current = prompt
	p.shown = append(p.shown, prompt)
}

func (p *scriptedPresenter) ReadSelection(time.Duration) (string, error) {
	if p.readErr != nil {
		return "", p.readErr
	}
	if p.beforeRead != nil {
		p.beforeRead()
	}
	if len(p.queued) > 0 {
		raw := p.queued[0]
		p.queued = p.queued[1:]
		return raw, nil
	}
	return p.pick(p.current), nil
}

func (p *scriptedPresenter) RejectSelection(raw string, _ int) {
	p.rejected = append(p.rejected, raw)
}

func (p *scriptedPresenter) ShowOutcome(o app.Outcome) {
	p.outcomes = append(p.outcomes, o)
}

// failingStore loads fine but never persists.
type failingStore struct {
	records []domain.PlayerRecord
	loadErr error
}

var errDiskFull = errors.New("disk full")

func (s *failingStore) Load(context.Context) ([]domain.PlayerRecord, error) {
	return s.records, s.loadErr
}

func (s *failingStore) Save(context.Context, []domain.PlayerRecord) error {
	return errDiskFull
}
