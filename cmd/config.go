package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that datecalc will use at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (config.yaml)
  3. Environment variables (highest priority)

Sensitive values like notification URLs are masked for security.`,
	Example: `  # Show current configuration
  datecalc config

  # Show with custom config file
  datecalc config --config /etc/datecalc/config.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, err := GetConfig()
		if err != nil {
			return fmt.Errorf("%w\n\nTo create a configuration, run: datecalc init", err)
		}

		out := cmd.OutOrStdout()
		source := current.ConfigFilePath
		if source == "" {
			source = "(defaults/environment)"
		}

		_, _ = fmt.Fprintln(out, "=== datecalc Effective Configuration ===")
		_, _ = fmt.Fprintf(out, "Source: %s\n", source)
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, "📅 Calendar Configuration:")
		_, _ = fmt.Fprintf(out, "   Mode:           %s\n", current.Calendar.Mode)
		_, _ = fmt.Fprintf(out, "   Strict Input:   %v\n", current.Input.Strict)
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, "🗂️  History Configuration:")
		_, _ = fmt.Fprintf(out, "   Enabled:        %v\n", current.History.Enabled)
		_, _ = fmt.Fprintf(out, "   File:           %s\n", current.History.File)
		_, _ = fmt.Fprintf(out, "   Max Entries:    %d\n", current.History.MaxEntries)
		_, _ = fmt.Fprintln(out)

		_, _ = fmt.Fprintln(out, "🔔 Notification Configuration:")
		_, _ = fmt.Fprintf(out, "   Enabled:        %v\n", current.Notification.Enabled)
		_, _ = fmt.Fprintf(out, "   Shoutrrr URL:   %s\n", maskShoutrrrURL(current.Notification.ShoutrrURL))
		_, _ = fmt.Fprintln(out)

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
}

// maskShoutrrrURL masks sensitive parts of Shoutrrr URL
func maskShoutrrrURL(url string) string {
	if url == "" {
		return "❌ Not configured"
	}

	// Extract service type (e.g., discord://, slack://, smtp://)
	parts := strings.SplitN(url, "://", 2)
	if len(parts) != 2 {
		return "✅ Configured (invalid format)"
	}

	return fmt.Sprintf("✅ Configured (%s://***)", parts[0])
}
