package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/zorak1103/datecalc/internal/errors"
)

// Supported range boundaries. Dates outside are clamped, never rejected.
var (
	MinDate = Date{Year: 1901, Month: 1, Day: 1}
	MaxDate = Date{Year: 2999, Month: 12, Day: 31}
)

var strictDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar date. Values are compared field by field and never mutated.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse reads a YYYY-MM-DD string and clamps the result into [MinDate, MaxDate].
// Only the year, month and day integers are extracted; calendar validity is
// trusted to the caller. Parts after the third separator are ignored.
func Parse(s string) (Date, error) {
	d, err := ParseUnclamped(s)
	if err != nil {
		return Date{}, err
	}
	return Clamp(d), nil
}

// ParseStrict is the opt-in defensive variant of Parse: s must pass ValidateStrict.
func ParseStrict(s string) (Date, error) {
	if err := ValidateStrict(s); err != nil {
		return Date{}, err
	}
	return Parse(s)
}

// ValidateStrict checks that s is exactly YYYY-MM-DD and names a real Gregorian date.
// The supported range is not checked; out-of-range dates are still clamped later.
func ValidateStrict(s string) error {
	if !strictDateRegex.MatchString(s) {
		return &apperrors.ValidationError{Input: s, Reason: "expected format YYYY-MM-DD"}
	}

	d, err := ParseUnclamped(s)
	if err != nil {
		return err
	}

	if d.Month < 1 || d.Month > 12 {
		return &apperrors.ValidationError{Input: s, Reason: fmt.Sprintf("month %d out of range 1..12", d.Month)}
	}
	if maxDay := DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > maxDay {
		return &apperrors.ValidationError{Input: s, Reason: fmt.Sprintf("day %d out of range 1..%d", d.Day, maxDay)}
	}
	return nil
}

// ParseUnclamped extracts the year, month and day integers from s without clamping.
func ParseUnclamped(s string) (Date, error) {
	parts := strings.Split(s, "-")

	fields := []string{"year", "month", "day"}
	values := make([]int, len(fields))
	for i, field := range fields {
		if i >= len(parts) {
			return Date{}, &apperrors.ParseError{Input: s, Field: field, Err: fmt.Errorf("missing %s part", field)}
		}
		n, err := strconv.ParseUint(parts[i], 10, 31)
		if err != nil {
			return Date{}, &apperrors.ParseError{Input: s, Field: field, Err: err}
		}
		values[i] = int(n)
	}

	return Date{Year: values[0], Month: values[1], Day: values[2]}, nil
}

// Clamp replaces d with MinDate or MaxDate when it lies outside the supported range.
func Clamp(d Date) Date {
	if d.Before(MinDate) {
		return MinDate
	}
	if MaxDate.Before(d) {
		return MaxDate
	}
	return d
}

// Compare returns -1, 0 or +1 comparing year, then month, then day.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// String formats d as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
