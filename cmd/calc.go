package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zorak1103/datecalc/internal/calendar"
	"github.com/zorak1103/datecalc/internal/config"
	"github.com/zorak1103/datecalc/internal/daydiff"
	"github.com/zorak1103/datecalc/internal/history"
	"github.com/zorak1103/datecalc/internal/notification"
)

const usageText = `Usage: datecalc <fromDate> <tillDate>
Computes the number of full days between given dates in the range 1901-01-01 to 2999-12-31

Mandatory arguments:
fromDate	period starting date in the format YYYY-MM-DD
tillDate	period ending date in the format YYYY-MM-DD`

// calcOptions controls how a calculation reads its input.
type calcOptions struct {
	mode   daydiff.Mode
	strict bool
}

// calculation is the outcome of one from/till evaluation.
type calculation struct {
	FromArg string
	TillArg string
	From    calendar.Date // Value used, after clamping
	Till    calendar.Date
	Clamped bool
	Mode    daydiff.Mode
	Days    int
}

func runCalculate(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), usageText)
		return nil
	}

	current, err := GetConfig()
	if err != nil {
		return err
	}

	opts, err := resolveOptions(current)
	if err != nil {
		return err
	}

	calc, err := calculate(args[0], args[1], opts)
	if err != nil {
		return err
	}

	if calc.Clamped {
		logVerbose(cmd, "Input clamped: computing %s - %s", calc.From, calc.Till)
	}

	line := formatResult(calc.FromArg, calc.TillArg, calc.Days)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)

	// The result is already printed; side effects only warn on failure.
	if err := recordHistory(cmd, current, calc); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %v\n", err)
	}
	if err := notifyResult(cmd, current, line, calc.Clamped); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %v\n", err)
	}

	return nil
}

// resolveOptions merges command line flags over the configuration.
func resolveOptions(c *config.Config) (calcOptions, error) {
	name := c.Calendar.Mode
	if modeName != "" {
		name = modeName
	}

	mode, err := daydiff.ParseMode(name)
	if err != nil {
		return calcOptions{}, fmt.Errorf("invalid --mode: %w", err)
	}

	return calcOptions{mode: mode, strict: c.Input.Strict || strict}, nil
}

// calculate parses both arguments and computes the full days between them.
// Parse errors are returned as-is and end the program.
func calculate(fromArg, tillArg string, opts calcOptions) (*calculation, error) {
	from, fromClamped, err := parseDateArg(fromArg, opts.strict)
	if err != nil {
		return nil, err
	}

	till, tillClamped, err := parseDateArg(tillArg, opts.strict)
	if err != nil {
		return nil, err
	}

	if opts.strict {
		if err := daydiff.CheckOrder(from, till); err != nil {
			return nil, err
		}
	}

	return &calculation{
		FromArg: fromArg,
		TillArg: tillArg,
		From:    from,
		Till:    till,
		Clamped: fromClamped || tillClamped,
		Mode:    opts.mode,
		Days:    daydiff.Compute(opts.mode, from, till),
	}, nil
}

// parseDateArg returns the clamped date and whether clamping changed it.
func parseDateArg(s string, strictInput bool) (calendar.Date, bool, error) {
	if strictInput {
		if err := calendar.ValidateStrict(s); err != nil {
			return calendar.Date{}, false, err
		}
	}

	raw, err := calendar.ParseUnclamped(s)
	if err != nil {
		return calendar.Date{}, false, err
	}

	clamped := calendar.Clamp(raw)
	return clamped, clamped != raw, nil
}

// formatResult renders "<from> - <till>: N day(s)" using the arguments as given.
func formatResult(fromArg, tillArg string, days int) string {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s - %s: %d %s", fromArg, tillArg, days, unit)
}

func recordHistory(cmd *cobra.Command, c *config.Config, calc *calculation) error {
	if !c.History.Enabled {
		return nil
	}

	h, err := history.Load(c.History.File, c.History.MaxEntries)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	h.Add(history.Entry{
		From:       calc.FromArg,
		Till:       calc.TillArg,
		UsedFrom:   calc.From.String(),
		UsedTill:   calc.Till.String(),
		Clamped:    calc.Clamped,
		Mode:       string(calc.Mode),
		Days:       calc.Days,
		ComputedAt: time.Now(),
	})

	if err := h.Save(); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	logVerbose(cmd, "Recorded calculation in %s (%d entries)", h.FilePath(), h.Count())
	return nil
}

// newNotifier is replaced in tests to avoid real deliveries.
var newNotifier = notification.NewNotifier

func notifyResult(cmd *cobra.Command, c *config.Config, line string, clamped bool) error {
	notifier, err := newNotifier(c)
	if err != nil {
		return err
	}
	if !notifier.IsEnabled() {
		return nil
	}

	if err := notifier.SendResult(line, clamped); err != nil {
		return err
	}

	logVerbose(cmd, "Sent notification via %s", notification.ServiceType(c.Notification.ShoutrrURL))
	return nil
}
