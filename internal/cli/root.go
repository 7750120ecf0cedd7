package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	ledgerPath string
)

// Execute runs the CLI.
func Execute() error {
	// A local .env is optional.
	_ = godotenv.Load()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	envLedger := os.Getenv("QUIZ_LEDGER_PATH")

	cmd := &cobra.Command{
		Use:           "keyword-quiz",
		Short:         "Timed multiple-choice Python keyword quiz with a persistent high-score ledger",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&ledgerPath, "ledger", envLedger, "ledger file path (file backend)")
	cmd.AddCommand(NewPlayCmd(&configPath, &ledgerPath))
	cmd.AddCommand(NewScoresCmd(&configPath, &ledgerPath))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
