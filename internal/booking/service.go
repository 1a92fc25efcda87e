package booking

import (
	"context"
	"errors"
	"time"

	"github.com/example/island-booking/internal/calendar"
	"github.com/google/uuid"
)

const (
	msgCreateConflict = "Unable to create reservation, dates overlap with existing reservation"
	msgUpdateConflict = "Unable to update reservationDates, dates overlap with existing reservationDates"
)

// Service composes the validator, the availability calculator and the
// ledger into the booking use cases. Validation always runs before any
// mutation; overlap safety itself lives in the ledger's atomic writes.
type Service struct {
	ledger Ledger
	policy Policy
	clock  Clock
}

func NewService(ledger Ledger, policy Policy, clock Clock) *Service {
	if clock == nil {
		clock = UTCClock{}
	}
	return &Service{ledger: ledger, policy: policy, clock: clock}
}

func (s *Service) today() time.Time {
	return calendar.Day(s.clock.Now())
}

// defaultWindow is today through one month ahead, both ends inclusive.
func (s *Service) defaultWindow() Range {
	today := s.today()
	return Range{Start: today, End: today.AddDate(0, 1, 0)}
}

// ListReservations returns the caller's reservations intersecting the
// default window, in storage order.
func (s *Service) ListReservations(ctx context.Context, email string) ([]ConfirmedReservation, error) {
	out, err := s.ledger.ReservationsByEmail(ctx, email, s.defaultWindow())
	if err != nil {
		return nil, &StorageError{Cause: err}
	}
	return out, nil
}

// CreateReservation validates the candidate range, resolves or lazily
// creates the person, and attempts the atomic overlap-checked insert.
func (s *Service) CreateReservation(ctx context.Context, email, fullName string, start, end time.Time) (ConfirmedReservation, error) {
	r := NewRange(start, end)
	if err := s.policy.Validate(r, s.today()); err != nil {
		return ConfirmedReservation{}, err
	}

	personID, err := s.ledger.FindPersonID(ctx, email, fullName)
	if errors.Is(err, ErrNotFound) {
		personID, err = s.ledger.CreatePerson(ctx, email, fullName)
	}
	if err != nil {
		return ConfirmedReservation{}, &StorageError{Cause: err}
	}

	id := uuid.NewString()
	if err := s.ledger.InsertReservation(ctx, id, personID, r); err != nil {
		if errors.Is(err, ErrRangeConflict) {
			return ConfirmedReservation{}, &DuplicateRangeError{Message: msgCreateConflict}
		}
		return ConfirmedReservation{}, &StorageError{Cause: err}
	}

	return ConfirmedReservation{
		ID:        id,
		Email:     email,
		FullName:  fullName,
		StartDate: r.Start,
		EndDate:   r.End,
	}, nil
}

// GetReservation looks up a reservation by id. Returns ErrNotFound when
// the id does not exist.
func (s *Service) GetReservation(ctx context.Context, id string) (ConfirmedReservation, error) {
	cr, err := s.ledger.ReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ConfirmedReservation{}, ErrNotFound
		}
		return ConfirmedReservation{}, &StorageError{Cause: err}
	}
	return cr, nil
}

// UpdateReservation replaces the date range of an existing reservation.
// The caller resolves existence first (via GetReservation); a missing id
// must never reach this path.
func (s *Service) UpdateReservation(ctx context.Context, existing ConfirmedReservation, start, end time.Time) error {
	r := NewRange(start, end)
	if err := s.policy.Validate(r, s.today()); err != nil {
		return err
	}
	if err := s.ledger.UpdateReservationRange(ctx, existing.ID, r); err != nil {
		if errors.Is(err, ErrRangeConflict) {
			return &DuplicateRangeError{Message: msgUpdateConflict}
		}
		return &StorageError{Cause: err}
	}
	return nil
}

// DeleteReservation removes an existing reservation. Unconditional at this
// layer; existence is the caller's check.
func (s *Service) DeleteReservation(ctx context.Context, existing ConfirmedReservation) error {
	if err := s.ledger.DeleteReservation(ctx, existing.ID); err != nil {
		return &StorageError{Cause: err}
	}
	return nil
}

// Vacancy returns the open dates in the requested window, ascending. A
// zero start defaults to today, a zero end to one month after the start.
func (s *Service) Vacancy(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if start.IsZero() {
		start = s.today()
	} else {
		start = calendar.Day(start)
	}
	if end.IsZero() {
		end = start.AddDate(0, 1, 0)
	} else {
		end = calendar.Day(end)
	}

	booked, err := s.ledger.RangesIntersecting(ctx, Range{Start: start, End: end})
	if err != nil {
		return nil, &StorageError{Cause: err}
	}
	return OpenDates(start, end, booked), nil
}
