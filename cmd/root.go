// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/datecalc/internal/config"
	"github.com/zorak1103/datecalc/internal/version"
)

var (
	cfgFile       string
	verbose       bool
	strict        bool
	modeName      string
	cfg           *config.Config
	errConfigLoad error
)

var rootCmd = &cobra.Command{
	Use:   "datecalc <fromDate> <tillDate>",
	Short: "Full days between two dates",
	Long: `datecalc computes the number of full days between two dates given as
YYYY-MM-DD, in the supported range 1901-01-01 to 2999-12-31.

Full days lie strictly between the two dates: identical and consecutive
dates are 0 days apart. Dates outside the supported range are clamped to
the nearest boundary; the printed label keeps the dates as given.

It features:
  - Exact Gregorian day counts or legacy DateCalc compatible results
  - Optional strict input validation
  - Optional calculation history
  - Optional result notifications via Shoutrrr`,
	Example: `  # Full days between two dates
  datecalc 1983-06-02 1983-06-22

  # Reproduce the original DateCalc numbers
  datecalc --mode legacy 1901-01-01 2999-12-31

  # Reject malformed or out-of-order input
  datecalc --strict 2024-02-29 2024-03-01`,
	Version:      version.GetFullVersion(),
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "version"
		if skipConfig {
			return nil
		}

		var err error
		errConfigLoad = nil
		cfg, err = config.Load(cfgFile)
		if err != nil {
			// Stored, not thrown: the calculation and history commands
			// report it when they actually need the configuration.
			errConfigLoad = err
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
			}
		}

		if verbose && cfg != nil {
			source := cfg.ConfigFilePath
			if source == "" {
				source = "(defaults/environment)"
			}
			fmt.Fprintf(os.Stderr, "Loaded configuration from: %s\n", source)
		}

		return nil
	},
	RunE: runCalculate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolVar(&strict, "strict", false, "reject malformed, impossible or out-of-order dates")
	rootCmd.Flags().StringVar(&modeName, "mode", "", "day difference algorithm: gregorian or legacy (default from config)")
}

// GetConfig returns the configuration in effect: the loaded configuration,
// or the defaults when nothing was loaded. Returns the stored load error if
// loading failed.
func GetConfig() (*config.Config, error) {
	if errConfigLoad != nil {
		return nil, errConfigLoad
	}
	if cfg == nil {
		return config.Default(), nil
	}
	return cfg, nil
}

// IsVerbose returns whether verbose mode is enabled via the -v flag.
func IsVerbose() bool {
	return verbose
}

// logVerbose writes a diagnostic line to stderr when verbose mode is enabled.
func logVerbose(cmd *cobra.Command, format string, args ...any) {
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
