package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"keyword-quiz/internal/domain"
)

// Summary is what a finished session reports back to the presentation layer.
type Summary struct {
	Result      domain.SessionResult
	MaxPossible int
	Percentage  float64
	Rating      domain.Rating
	Record      domain.PlayerRecord
	// Warning is set when the ledger could not be persisted; the result still counts.
	Warning error
}

// QuizService contains the core quiz use cases: draw, play, hand off to the ledger.
type QuizService struct {
	bank     *QuestionBank
	ledger   *ScoreLedger
	settings Settings
	rnd      Shuffler
	now      func() time.Time
	logger   *zap.Logger
}

// Option customizes a QuizService.
type Option func(*QuizService)

// WithShuffler replaces the random source for draws and option order.
func WithShuffler(rnd Shuffler) Option {
	return func(s *QuizService) { s.rnd = rnd }
}

// WithClock replaces the time source used by session clocks.
func WithClock(now func() time.Time) Option {
	return func(s *QuizService) { s.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *QuizService) { s.logger = logger }
}

func NewQuizService(bank *QuestionBank, ledger *ScoreLedger, settings Settings, opts ...Option) *QuizService {
	s := &QuizService{
		bank:     bank,
		ledger:   ledger,
		settings: settings,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = NewShuffler()
	}
	return s
}

// Settings returns the configuration every new session is built with.
func (s *QuizService) Settings() Settings {
	return s.settings
}

// Ledger exposes the high-score table for display.
func (s *QuizService) Ledger() *ScoreLedger {
	return s.ledger
}

// NewSession draws a fresh question set. Playing again always starts here.
func (s *QuizService) NewSession(player string) (*QuizSession, error) {
	questions := s.bank.DrawSession(s.settings.Tier, s.settings.MaxQuestions, s.rnd)
	session, err := NewQuizSession(player, s.settings, questions, s.rnd, s.now)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("session drawn",
		zap.String("session", session.ID()),
		zap.String("player", player),
		zap.Stringer("tier", s.settings.Tier),
		zap.Int("questions", len(questions)))
	return session, nil
}

// Play runs a new session against the presenter and records it.
// A presenter error (e.g. closed input) aborts the session without recording it.
func (s *QuizService) Play(ctx context.Context, player string, p Presenter) (Summary, error) {
	session, err := s.NewSession(player)
	if err != nil {
		return Summary{}, err
	}
	if _, err := session.Run(p); err != nil {
		s.logger.Info("session aborted", zap.String("session", session.ID()), zap.Error(err))
		return Summary{}, err
	}
	return s.Complete(ctx, session)
}

// Complete hands a finished session to the ledger.
func (s *QuizService) Complete(ctx context.Context, session *QuizSession) (Summary, error) {
	result, err := session.Result()
	if err != nil {
		return Summary{}, err
	}

	maxPossible := domain.MaxPossible(result.Tier, result.QuestionCount)
	pct := domain.Percentage(result.Score, maxPossible)
	summary := Summary{
		Result:      result,
		MaxPossible: maxPossible,
		Percentage:  pct,
		Rating:      domain.RatingFor(pct),
	}

	summary.Record, summary.Warning = s.ledger.RecordSession(ctx, result)
	return summary, nil
}
