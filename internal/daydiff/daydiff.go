// Package daydiff computes the number of full days between two calendar dates.
//
// A full day is one that lies strictly between the two dates: identical dates
// and consecutive dates are both zero full days apart. The span is computed from
// the day, month and year differences without walking individual days, so the
// cost grows with the number of months and years spanned.
package daydiff

import (
	"fmt"

	"github.com/zorak1103/datecalc/internal/calendar"
	apperrors "github.com/zorak1103/datecalc/internal/errors"
)

// Mode selects the day difference algorithm.
type Mode string

const (
	// ModeGregorian is the exact algorithm under the Gregorian leap rule.
	ModeGregorian Mode = "gregorian"
	// ModeLegacy reproduces the original DateCalc results, including its
	// leap year predicate and month borrow.
	ModeLegacy Mode = "legacy"
)

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGregorian, ModeLegacy:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", s, ModeGregorian, ModeLegacy)
	}
}

// Compute returns the full days between from and till using the algorithm for mode.
// Unknown modes fall back to ModeGregorian.
func Compute(mode Mode, from, till calendar.Date) int {
	if mode == ModeLegacy {
		return Legacy(from, till)
	}
	return FullDays(from, till)
}

// FullDays returns the number of full days strictly between from and till.
// from must not be later than till; the order is not checked.
func FullDays(from, till calendar.Date) int {
	rule := calendar.Gregorian

	// Day part: both dates assumed in the same month.
	days := till.Day - from.Day

	// Month part: shift each date to the start of its year.
	for month := 1; month < till.Month; month++ {
		days += rule.DaysInMonth(month, till.Year)
	}
	for month := 1; month < from.Month; month++ {
		days -= rule.DaysInMonth(month, from.Year)
	}

	// Year part: whole years between the two year starts.
	for year := from.Year; year < till.Year; year++ {
		days += rule.DaysInYear(year)
	}

	// Neither partial end date is a full day.
	if from != till {
		days--
	}
	return days
}

// Legacy returns the result the original DateCalc tool prints for from and till.
//
// Every year is a leap year under its predicate, and when the month difference is
// negative and the dates are two or more years apart one extra year is counted.
// Use FullDays for exact results.
func Legacy(from, till calendar.Date) int {
	rule := calendar.Legacy

	numOfDays := till.Day - from.Day
	numOfMonths := till.Month - from.Month
	numOfYears := till.Year - from.Year
	identical := numOfDays == 0 && numOfMonths == 0 && numOfYears == 0

	days := numOfDays

	switch {
	case numOfMonths > 0:
		for month := from.Month; month < till.Month; month++ {
			days += rule.DaysInMonth(month, from.Year)
		}
	case numOfMonths < 0:
		for month := from.Month; month <= 12; month++ {
			days += rule.DaysInMonth(month, from.Year)
		}
		numOfYears--
		for month := 1; month < till.Month; month++ {
			days += rule.DaysInMonth(month, till.Year)
		}
	}

	if numOfYears > 0 {
		for year := from.Year; year < till.Year; year++ {
			days += rule.DaysInYear(year)
		}
	}

	if !identical {
		days--
	}
	return days
}

// CheckOrder returns a ValidationError when from is later than till.
func CheckOrder(from, till calendar.Date) error {
	if till.Before(from) {
		return &apperrors.ValidationError{
			Input:  from.String() + " - " + till.String(),
			Reason: "from date is later than till date",
		}
	}
	return nil
}
