// Package root contains the root command for the pgc-engine CLI.
package root

import (
	"gestfin/pgc-engine/internal/config"
	"gestfin/pgc-engine/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Cfg is the loaded configuration, available to all subcommands
	// after PersistentPreRun.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "pgc-engine",
		Short: "Classify financial documents and map line items to the PGC-AO chart of accounts.",
		Long: `pgc-engine classifies text extracted from scanned financial documents
(incoming, outgoing, contract) and maps budget or document line items to
PGC-AO accounts with confidence scores. Confirmed decisions feed back into
the statistical classifier.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefaultLogger(Log)
		},
	}

	// Flags shared across subcommands.
	InputFile  string
	OutputFile string
	Text       string
	Label      string
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&InputFile, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&OutputFile, "output", "o", "", "Output file (default: stdout)")
}
