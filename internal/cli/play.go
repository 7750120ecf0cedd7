package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/domain"
	"keyword-quiz/internal/transport/console"
)

type playOptions struct {
	player       string
	difficulty   string
	timeLimit    time.Duration
	maxQuestions int
}

// NewPlayCmd runs interactive quiz sessions on the terminal.
func NewPlayCmd(configPath, ledgerPath *string) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), cmd, *configPath, *ledgerPath, opts)
		},
	}
	cmd.Flags().StringVar(&opts.player, "player", "", "player name (prompted when empty)")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "easy, medium or hard (overrides config)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "answer window per question (overrides config)")
	cmd.Flags().IntVar(&opts.maxQuestions, "max-questions", 0, "questions per session (overrides config)")
	return cmd
}

func runPlay(ctx context.Context, cmd *cobra.Command, configPath, ledgerPath string, opts *playOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(configPath, ledgerPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if settings, err = opts.apply(settings); err != nil {
		return err
	}

	res := &resources{}
	defer res.Close()

	loader, err := openQuestionLoader(ctx, cfg, res)
	if err != nil {
		return err
	}
	bank, err := app.LoadQuestionBank(ctx, loader)
	if err != nil {
		return err
	}
	store, err := openLedgerStore(cfg, res)
	if err != nil {
		return err
	}
	ledger := app.LoadLedger(ctx, store, logger)
	service := app.NewQuizService(bank, ledger, settings, app.WithLogger(logger))

	term := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	player := strings.TrimSpace(opts.player)
	if player == "" {
		if player, err = term.AskName(); err != nil {
			return err
		}
	}
	logger.Info("player ready", zap.String("player", player), zap.Stringer("tier", settings.Tier))

	for {
		session, err := service.NewSession(player)
		if err != nil {
			return err
		}
		term.Intro(settings, session.Total())
		if _, err := session.Run(term); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		summary, err := service.Complete(ctx, session)
		if err != nil {
			return err
		}
		term.ShowSummary(summary)

		again, err := term.AskPlayAgain()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
	}

	term.Farewell(player, ledger.BestScoreFor(player), settings.Tier)
	return nil
}

func (o *playOptions) apply(s app.Settings) (app.Settings, error) {
	if o.difficulty != "" {
		tier, err := domain.ParseDifficulty(o.difficulty)
		if err != nil {
			return s, err
		}
		s.Tier = tier
	}
	if o.timeLimit > 0 {
		s.TimeLimit = o.timeLimit
	}
	if o.maxQuestions > 0 {
		s.MaxQuestions = o.maxQuestions
	}
	return s, nil
}
