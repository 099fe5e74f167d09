package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/zorak1103/datecalc/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or reset the calculation history",
	Long: `History commands for inspecting and resetting recorded calculations.

Calculations are only recorded when history.enabled is set in the
configuration (or DATECALC_HISTORY_ENABLED=true).`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded calculations",
	Long: `Display the recorded calculations, oldest first, with the dates as given,
the resulting number of full days and whether an input was clamped.`,
	Example: `  # List recorded calculations
  datecalc history list

  # List from a custom history file
  DATECALC_HISTORY_FILE=/tmp/h.json datecalc history list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, err := GetConfig()
		if err != nil {
			return err
		}

		h, err := history.Load(current.History.File, current.History.MaxEntries)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		out := cmd.OutOrStdout()
		entries := h.GetAll()

		_, _ = fmt.Fprintln(out, "🗂️  Calculation History:")
		_, _ = fmt.Fprintln(out, "")

		if !current.History.Enabled {
			_, _ = fmt.Fprintln(out, "ℹ️  History recording is disabled (history.enabled: false)")
		}

		if len(entries) == 0 {
			_, _ = fmt.Fprintln(out, "ℹ️  No calculations recorded")
			_, _ = fmt.Fprintf(out, "   History file: %s\n", current.History.File)
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, "From\tTill\tDays\tMode\tClamped\tComputed At")
		_, _ = fmt.Fprintln(w, "----\t----\t----\t----\t-------\t-----------")

		for _, e := range entries {
			clamped := "no"
			if e.Clamped {
				clamped = fmt.Sprintf("%s - %s", e.UsedFrom, e.UsedTill)
			}

			computedAt := e.ComputedAt.Format("2006-01-02 15:04:05")
			if e.ComputedAt.IsZero() {
				computedAt = "-"
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", e.From, e.Till, e.Days, e.Mode, clamped, computedAt)
		}

		_ = w.Flush() // error not actionable in CLI display context
		_, _ = fmt.Fprintln(out, "")
		_, _ = fmt.Fprintf(out, "Total: %d calculation(s)\n", len(entries))
		_, _ = fmt.Fprintf(out, "History file: %s\n", current.History.File)
		if !h.LastUpdated.IsZero() {
			_, _ = fmt.Fprintf(out, "Last updated: %s\n", h.LastUpdated.Format(time.RFC3339))
		}

		return nil
	},
}

var historyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded calculations",
	Long: `Reset deletes the history file.

WARNING: recorded calculations cannot be restored afterwards.`,
	Example: `  # Delete the history file
  datecalc history reset --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, err := GetConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "⚠️  Deleting ALL recorded calculations")

		if !force {
			_, _ = fmt.Fprintln(out, "")
			_, _ = fmt.Fprintln(out, "❌ Aborted (use --force to confirm)")
			return nil
		}

		h, err := history.Load(current.History.File, current.History.MaxEntries)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		oldCount := h.Count()
		if err := h.Delete(); err != nil {
			return fmt.Errorf("failed to delete history file: %w", err)
		}

		_, _ = fmt.Fprintln(out, "")
		_, _ = fmt.Fprintln(out, "✅ History reset complete")
		_, _ = fmt.Fprintf(out, "   Removed %d calculation(s)\n", oldCount)
		_, _ = fmt.Fprintf(out, "   Deleted: %s\n", current.History.File)

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyResetCmd)

	historyResetCmd.Flags().BoolVar(&force, "force", false, "confirm history reset")
}
