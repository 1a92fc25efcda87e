// Package calendar holds the date arithmetic shared by the booking policy
// and the vacancy computation. All dates are timezone-less calendar days,
// represented as UTC midnight.
package calendar

import "time"

// DayFormat is the wire and daterange-literal layout for dates.
const DayFormat = "2006-01-02"

// Day normalizes t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in UTC terms.
func Today() time.Time {
	return Day(time.Now())
}

// InclusiveDayCount counts the calendar days spanning a and b with both
// endpoints counted: 0 when a and b fall on the same day, otherwise
// abs(days between)+1. This is the policy-threshold counting convention,
// not a duration; stored ranges stay half-open.
func InclusiveDayCount(a, b time.Time) int {
	da, db := Day(a), Day(b)
	if da.Equal(db) {
		return 0
	}
	diff := int(db.Sub(da).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff + 1
}

// Sequence enumerates every calendar day from from to toInclusive,
// ascending. Returns nil when toInclusive is before from.
func Sequence(from, toInclusive time.Time) []time.Time {
	from, toInclusive = Day(from), Day(toInclusive)
	if toInclusive.Before(from) {
		return nil
	}
	var out []time.Time
	for d := from; !d.After(toInclusive); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Parse reads a 2006-01-02 date into a UTC-midnight day.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Format renders a day in the 2006-01-02 layout.
func Format(t time.Time) string {
	return t.UTC().Format(DayFormat)
}
