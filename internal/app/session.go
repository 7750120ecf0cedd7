package app

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"keyword-quiz/internal/domain"
)

// State is the position of a QuizSession in its lifecycle.
type State int

const (
	StateNotStarted State = iota
	StateAwaitingAnswer
	StateScored
	StateTimedOut
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateScored:
		return "scored"
	case StateTimedOut:
		return "timed_out"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Settings is the immutable per-session configuration.
type Settings struct {
	Tier         domain.Difficulty
	TimeLimit    time.Duration
	MaxQuestions int
}

// Prompt is what the presentation layer shows for the open question.
type Prompt struct {
	Number    int
	Total     int
	Text      string
	Options   []string
	Remaining time.Duration
}

// Outcome is the resolution of one question.
type Outcome struct {
	Number        int
	Question      string
	Selected      string
	CorrectAnswer string
	Correct       bool
	TimedOut      bool
	Awarded       int
	TotalScore    int
}

// Presenter is the console (or test) side of the answer loop.
type Presenter interface {
	ShowQuestion(p Prompt)
	// ReadSelection blocks for one line of raw input.
	ReadSelection(remaining time.Duration) (string, error)
	RejectSelection(raw string, optionCount int)
	ShowOutcome(o Outcome)
}

// QuizSession runs one playthrough. It is single-use: play again with a new session.
type QuizSession struct {
	id        string
	player    string
	settings  Settings
	questions []domain.Question
	rnd       Shuffler
	now       func() time.Time

	state     State
	index     int
	score     int
	clock     *SessionClock
	presented []string
	outcomes  []Outcome
	result    domain.SessionResult
}

// NewQuizSession prepares a session over an already drawn question list.
func NewQuizSession(player string, settings Settings, questions []domain.Question, rnd Shuffler, now func() time.Time) (*QuizSession, error) {
	if strings.TrimSpace(player) == "" {
		return nil, domain.ErrEmptyPlayerName
	}
	if !settings.Tier.Valid() {
		return nil, domain.ErrInvalidDifficulty
	}
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = NewShuffler()
	}
	return &QuizSession{
		id:        uuid.NewString(),
		player:    player,
		settings:  settings,
		questions: append([]domain.Question(nil), questions...),
		rnd:       rnd,
		now:       now,
		state:     StateNotStarted,
	}, nil
}

func (s *QuizSession) ID() string { return s.id }
func (s *QuizSession) Player() string { return s.player }
func (s *QuizSession) State() State { return s.state }
func (s *QuizSession) Score() int { return s.score }
func (s *QuizSession) Total() int { return len(s.questions) }
func (s *QuizSession) Settings() Settings { return s.settings }

// Outcomes returns the resolved questions so far, in order.
func (s *QuizSession) Outcomes() []Outcome {
	return append([]Outcome(nil), s.outcomes...)
}

// Next opens the following question and starts its clock.
// It returns false once every question is resolved; the session is then Finished.
func (s *QuizSession) Next() (Prompt, bool) {
	switch s.state {
	case StateAwaitingAnswer:
		return s.prompt(), true
	case StateFinished:
		return Prompt{}, false
	}

	if s.state != StateNotStarted {
		s.index++
	}
	if s.index >= len(s.questions) {
		s.finish()
		return Prompt{}, false
	}

	q := s.questions[s.index]
	s.presented = q.Options()
	s.rnd.Shuffle(len(s.presented), func(i, j int) {
		s.presented[i], s.presented[j] = s.presented[j], s.presented[i]
	})
	s.clock = NewSessionClock(s.settings.TimeLimit, s.now)
	s.clock.Start()
	s.state = StateAwaitingAnswer
	return s.prompt(), true
}

// Remaining is the answer window left on the open question.
func (s *QuizSession) Remaining() time.Duration {
	if s.state != StateAwaitingAnswer {
		return 0
	}
	return s.clock.Remaining()
}

// Poll resolves the open question as timed out if its clock has expired.
func (s *QuizSession) Poll() (Outcome, bool) {
	if s.state != StateAwaitingAnswer || !s.clock.IsExpired() {
		return Outcome{}, false
	}
	return s.timeout(), true
}

// Submit validates raw input against the presented options and resolves the question.
// Invalid input returns ErrInvalidSelection and leaves the question open.
// Input arriving after the window closed resolves as a timeout.
func (s *QuizSession) Submit(raw string) (Outcome, error) {
	if s.state != StateAwaitingAnswer {
		return Outcome{}, domain.ErrNotAwaitingAnswer
	}
	if outcome, expired := s.Poll(); expired {
		return outcome, nil
	}

	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || choice < 1 || choice > len(s.presented) {
		return Outcome{}, domain.ErrInvalidSelection
	}

	q := s.questions[s.index]
	selected := s.presented[choice-1]
	outcome := Outcome{
		Number:        s.index + 1,
		Question:      q.Text(),
		Selected:      selected,
		CorrectAnswer: q.Answer(),
		Correct:       q.IsCorrect(selected),
	}
	if outcome.Correct {
		outcome.Awarded = domain.PointsFor(q.Difficulty())
	}
	s.score += outcome.Awarded
	outcome.TotalScore = s.score
	s.state = StateScored
	s.outcomes = append(s.outcomes, outcome)
	return outcome, nil
}

// Result is available once the session is Finished.
func (s *QuizSession) Result() (domain.SessionResult, error) {
	if s.state != StateFinished {
		return domain.SessionResult{}, domain.ErrSessionNotFinished
	}
	return s.result, nil
}

// Run drives every question through the presenter and returns the final result.
func (s *QuizSession) Run(p Presenter) (domain.SessionResult, error) {
	for {
		prompt, ok := s.Next()
		if !ok {
			return s.Result()
		}
		p.ShowQuestion(prompt)

		outcome, err := s.awaitAnswer(p, len(prompt.Options))
		if err != nil {
			return domain.SessionResult{}, err
		}
		p.ShowOutcome(outcome)
	}
}

func (s *QuizSession) awaitAnswer(p Presenter, optionCount int) (Outcome, error) {
	for {
		if outcome, expired := s.Poll(); expired {
			return outcome, nil
		}
		raw, err := p.ReadSelection(s.Remaining())
		if err != nil {
			return Outcome{}, err
		}
		outcome, err := s.Submit(raw)
		if errors.Is(err, domain.ErrInvalidSelection) {
			p.RejectSelection(raw, optionCount)
			continue
		}
		return outcome, err
	}
}

func (s *QuizSession) prompt() Prompt {
	q := s.questions[s.index]
	return Prompt{
		Number:    s.index + 1,
		Total:     len(s.questions),
		Text:      q.Text(),
		Options:   append([]string(nil), s.presented...),
		Remaining: s.clock.Remaining(),
	}
}

func (s *QuizSession) timeout() Outcome {
	q := s.questions[s.index]
	outcome := Outcome{
		Number:        s.index + 1,
		Question:      q.Text(),
		CorrectAnswer: q.Answer(),
		TimedOut:      true,
		TotalScore:    s.score,
	}
	s.state = StateTimedOut
	s.outcomes = append(s.outcomes, outcome)
	return outcome
}

func (s *QuizSession) finish() {
	s.state = StateFinished
	s.clock = nil
	s.presented = nil
	s.result = domain.SessionResult{
		ID:            s.id,
		Player:        s.player,
		Score:         s.score,
		Tier:          s.settings.Tier,
		QuestionCount: len(s.questions),
		FinishedAt:    s.now(),
	}
}
