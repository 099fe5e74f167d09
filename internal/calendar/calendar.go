// Package calendar defines the Date value used by datecalc together with the
// calendar tables (month lengths, leap years) needed to measure spans between dates.
package calendar

const (
	daysInRegularYear = 365
	daysInLeapYear    = daysInRegularYear + 1
)

// monthLengths is indexed by month-1 (January = 0).
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// LeapRule decides whether a year is a leap year.
type LeapRule int

const (
	// Gregorian is the standard rule: divisible by 4, except centuries not divisible by 400.
	Gregorian LeapRule = iota
	// Legacy reproduces the predicate of the original DateCalc tool,
	// (y%400 == 0) || (y%4 == 0) || (y%100 != 0). It holds for every year.
	Legacy
)

// String returns the configuration name of the rule.
func (r LeapRule) String() string {
	if r == Legacy {
		return "legacy"
	}
	return "gregorian"
}

// IsLeapYear reports whether year is a leap year under r.
func (r LeapRule) IsLeapYear(year int) bool {
	if r == Legacy {
		return (year%400 == 0) || ((year%4 == 0) || (year%100 != 0))
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year under r.
// Months outside 1..12 have no days.
func (r LeapRule) DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	days := monthLengths[month-1]
	if month == 2 && r.IsLeapYear(year) {
		days++
	}
	return days
}

// DaysInYear returns 366 for leap years under r and 365 otherwise.
func (r LeapRule) DaysInYear(year int) int {
	if r.IsLeapYear(year) {
		return daysInLeapYear
	}
	return daysInRegularYear
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return Gregorian.IsLeapYear(year)
}

// DaysInMonth returns the Gregorian length of month in year.
func DaysInMonth(month, year int) int {
	return Gregorian.DaysInMonth(month, year)
}

// DaysInYear returns the Gregorian length of year.
func DaysInYear(year int) int {
	return Gregorian.DaysInYear(year)
}
