package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The package-level helpers follow the Gregorian rule. The Legacy rule keeps the
// original tool's OR-based predicate, which is true for every year.
func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year       int
		gregorian  bool
		legacyRule bool
	}{
		{year: 1900, gregorian: false, legacyRule: true},
		{year: 2000, gregorian: true, legacyRule: true},
		{year: 2024, gregorian: true, legacyRule: true},
		{year: 2023, gregorian: false, legacyRule: true},
		{year: 2100, gregorian: false, legacyRule: true},
		{year: 2400, gregorian: true, legacyRule: true},
		{year: 1901, gregorian: false, legacyRule: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.gregorian, IsLeapYear(tt.year), "IsLeapYear(%d)", tt.year)
		assert.Equal(t, tt.gregorian, Gregorian.IsLeapYear(tt.year), "Gregorian.IsLeapYear(%d)", tt.year)
		assert.Equal(t, tt.legacyRule, Legacy.IsLeapYear(tt.year), "Legacy.IsLeapYear(%d)", tt.year)
	}
}

func TestLegacyRule_EveryYearIsLeap(t *testing.T) {
	t.Parallel()

	for year := MinDate.Year; year <= MaxDate.Year; year++ {
		if !Legacy.IsLeapYear(year) {
			t.Fatalf("Legacy.IsLeapYear(%d) = false, want true", year)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{name: "january", month: 1, year: 2023, want: 31},
		{name: "february regular", month: 2, year: 2023, want: 28},
		{name: "february leap", month: 2, year: 2024, want: 29},
		{name: "february century", month: 2, year: 1900, want: 28},
		{name: "february 400", month: 2, year: 2000, want: 29},
		{name: "april", month: 4, year: 2024, want: 30},
		{name: "december", month: 12, year: 1999, want: 31},
		{name: "month zero", month: 0, year: 2024, want: 0},
		{name: "month thirteen", month: 13, year: 2024, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestDaysInMonth_LegacyFebruary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, Legacy.DaysInMonth(2, 2023))
	assert.Equal(t, 29, Legacy.DaysInMonth(2, 1900))
	assert.Equal(t, 31, Legacy.DaysInMonth(3, 2023))
}

func TestDaysInYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 365, DaysInYear(2023))
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2100))
	assert.Equal(t, 366, DaysInYear(2000))
	assert.Equal(t, 366, Legacy.DaysInYear(2023))
}

func TestDaysInYear_SumsMonths(t *testing.T) {
	t.Parallel()

	for _, rule := range []LeapRule{Gregorian, Legacy} {
		for _, year := range []int{1900, 1901, 2000, 2023, 2024} {
			sum := 0
			for month := 1; month <= 12; month++ {
				sum += rule.DaysInMonth(month, year)
			}
			assert.Equal(t, rule.DaysInYear(year), sum, "%s year %d", rule, year)
		}
	}
}

func TestLeapRule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gregorian", Gregorian.String())
	assert.Equal(t, "legacy", Legacy.String())
}
