package main

import (
	"fmt"
	"os"

	"unitconv/internal/config"
	"unitconv/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Populated by PersistentPreRunE for every command
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command. Running unitconv without arguments
// starts the interactive form.
var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "unitconv",
		Short: "unitconv - terminal unit converter",
		Long: `unitconv converts values between units of length, weight and temperature.

Run without arguments to open the interactive form. One-shot conversions
are available through the convert subcommand:

  unitconv convert 1000 Meter Kilometer
  unitconv convert 100 Celsius Fahrenheit
  unitconv units
  unitconv history --limit 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				path = config.DefaultPath()
			}

			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}

			// The interactive form owns the terminal, so its logs go to a
			// file; one-shot commands log to stderr as usual.
			logFile := ""
			if cmd == rootCmd {
				logFile = cfg.Logging.File
			}
			logger, err = logging.New(verbose || cfg.Logging.Debug, logFile)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+config.DefaultPath()+")")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// configFilePath resolves the active config path for commands that need it
// after flag parsing.
func configFilePath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.DefaultPath()
}
