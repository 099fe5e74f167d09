package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/datecalc/internal/templates"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration in the current directory",
	Long: `Init creates the configuration files datecalc reads on start.

This command will create:
  - config.yaml (sample configuration file)
  - .env (environment variable template)

Both are optional: without them datecalc uses its defaults.`,
	Example: `  # Initialize in current directory
  datecalc init

  # Force overwrite existing files
  datecalc init --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "🔧 Initializing datecalc...")

		files := []struct {
			name    string
			content []byte
		}{
			{"config.yaml", templates.ConfigYAML},
			{".env", templates.EnvFile},
		}

		for _, file := range files {
			if _, err := os.Stat(file.name); err == nil && !force {
				_, _ = fmt.Fprintf(out, "⚠️  Skipping %s (already exists, use --force to overwrite)\n", file.name)
				continue
			}

			if err := os.WriteFile(file.name, file.content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", file.name, err)
			}

			_, _ = fmt.Fprintf(out, "✅ Created %s\n", file.name)
		}

		_, _ = fmt.Fprintln(out, "\n🎉 Initialization complete!")
		_, _ = fmt.Fprintln(out, "\n📝 Next steps:")
		_, _ = fmt.Fprintln(out, "   1. Edit config.yaml to choose the calendar mode and optional features")
		_, _ = fmt.Fprintln(out, "   2. Edit .env to add notification credentials")
		_, _ = fmt.Fprintln(out, "   3. Run 'datecalc config' to check the effective configuration")

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration files")
}
