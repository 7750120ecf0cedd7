package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"keyword-quiz/internal/app"
	"keyword-quiz/internal/infra/export"
	"keyword-quiz/internal/transport/console"
)

// NewScoresCmd prints the high-score table and optionally exports it.
func NewScoresCmd(configPath, ledgerPath *string) *cobra.Command {
	var exportPath string
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high-score ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScores(cmd.Context(), cmd, *configPath, *ledgerPath, exportPath)
		},
	}
	cmd.Flags().StringVar(&exportPath, "export", "", "also write the ranking to this .xlsx file")
	return cmd
}

func runScores(ctx context.Context, cmd *cobra.Command, configPath, ledgerPath, exportPath string) error {
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

	res := &resources{}
	defer res.Close()

	store, err := openLedgerStore(cfg, res)
	if err != nil {
		return err
	}
	ranked := app.LoadLedger(ctx, store, logger).SortedByBestScoreDesc()
	console.New(cmd.InOrStdin(), cmd.OutOrStdout()).ShowScores(ranked)

	if exportPath == "" {
		return nil
	}
	if err := export.WriteScoresXLSX(exportPath, ranked); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(ranked), exportPath)
	return nil
}
