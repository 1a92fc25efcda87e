package booking

import (
	"fmt"
	"time"

	"github.com/example/island-booking/internal/calendar"
)

// Policy holds the three booking thresholds, supplied once at startup and
// immutable for the process lifetime.
type Policy struct {
	MinDaysAhead       int
	MaxConsecutiveDays int
	MaxDaysAhead       int
}

// Validate applies the policy rules to a candidate range. Rules run in a
// fixed order and the first failure wins. Pure function of its inputs;
// "today" is injected, never read from the wall clock here.
func (p Policy) Validate(r Range, today time.Time) error {
	today = calendar.Day(today)
	start, end := calendar.Day(r.Start), calendar.Day(r.End)

	if start.Before(today) || calendar.InclusiveDayCount(today, start) < p.MinDaysAhead {
		return &ValidationError{Reason: fmt.Sprintf("Start date has to be at least %d day(s) ahead of arrival", p.MinDaysAhead)}
	}
	if calendar.InclusiveDayCount(start, end) > p.MaxConsecutiveDays {
		return &ValidationError{Reason: fmt.Sprintf("You can't book more than %d day(s) at a time", p.MaxConsecutiveDays)}
	}
	if calendar.InclusiveDayCount(start, today) > p.MaxDaysAhead {
		return &ValidationError{Reason: fmt.Sprintf("Start date has to be no more than %d day(s) ahead of arrival", p.MaxDaysAhead)}
	}
	return nil
}
