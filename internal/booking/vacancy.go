package booking

import (
	"time"

	"github.com/example/island-booking/internal/calendar"
)

// OpenDates derives the bookable days in [windowStart, windowEnd] (both
// inclusive) from the committed reservations intersecting that window.
//
// For each booked range the occupied days [start, end) are removed, and
// additionally end itself is removed even though the stored half-open range
// treats it as free. Checkout days are therefore never offered as start
// days. This asymmetry is carried over from the historical system; product
// has not confirmed whether it is intentional, so do not "fix" it here.
func OpenDates(windowStart, windowEnd time.Time, booked []Range) []time.Time {
	days := calendar.Sequence(windowStart, windowEnd)
	if len(days) == 0 {
		return nil
	}

	occupied := make(map[time.Time]struct{})
	for _, r := range booked {
		for d := calendar.Day(r.Start); d.Before(calendar.Day(r.End)); d = d.AddDate(0, 0, 1) {
			occupied[d] = struct{}{}
		}
		occupied[calendar.Day(r.End)] = struct{}{}
	}

	open := make([]time.Time, 0, len(days))
	for _, d := range days {
		if _, taken := occupied[d]; !taken {
			open = append(open, d)
		}
	}
	return open
}
