package booking

import (
	"context"
	"time"

	"github.com/example/island-booking/internal/calendar"
)

// Range is a half-open stay interval: Start is the first occupied day,
// End is the first free day after checkout.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange normalizes both bounds to calendar days.
func NewRange(start, end time.Time) Range {
	return Range{Start: calendar.Day(start), End: calendar.Day(end)}
}

// Overlaps reports whether two half-open ranges intersect.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Person is the identity a reservation is booked under. Identity matching
// is the (Email, FullName) pair, deliberately not email alone.
type Person struct {
	ID       int64
	Email    string
	FullName string
}

// ConfirmedReservation is the denormalized read view of a reservation
// joined with its person. It owns no lifecycle of its own.
type ConfirmedReservation struct {
	ID        string
	Email     string
	FullName  string
	StartDate time.Time
	EndDate   time.Time
}

// Range returns the stay interval of the confirmed view.
func (c ConfirmedReservation) Range() Range {
	return NewRange(c.StartDate, c.EndDate)
}

// Ledger is the persistence contract for reservations and persons. Every
// method is atomic with respect to concurrent calls; in particular the two
// mutating range operations must reject an overlapping range in the same
// storage operation that writes it, never as a separate pre-check.
type Ledger interface {
	FindPersonID(ctx context.Context, email, fullName string) (int64, error)
	CreatePerson(ctx context.Context, email, fullName string) (int64, error)

	// InsertReservation fails with ErrRangeConflict when the range
	// intersects any existing reservation.
	InsertReservation(ctx context.Context, id string, personID int64, r Range) error

	// UpdateReservationRange fails with ErrRangeConflict when the new
	// range intersects any reservation other than id's own row.
	UpdateReservationRange(ctx context.Context, id string, r Range) error

	// DeleteReservation is idempotent; a missing id is not an error here.
	DeleteReservation(ctx context.Context, id string) error

	ReservationsByEmail(ctx context.Context, email string, window Range) ([]ConfirmedReservation, error)
	ReservationByID(ctx context.Context, id string) (ConfirmedReservation, error)
	RangesIntersecting(ctx context.Context, window Range) ([]Range, error)
}

// Clock supplies "today" so policy checks stay deterministic under test.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the wall clock in UTC terms.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }
