package booking_test

import (
	"context"
	"errors"

	"github.com/example/island-booking/internal/booking"
)

// failingLedger simulates a storage outage on every call.
type failingLedger struct{}

var errDown = errors.New("connection refused")

func (failingLedger) FindPersonID(context.Context, string, string) (int64, error) {
	return 0, errDown
}

func (failingLedger) CreatePerson(context.Context, string, string) (int64, error) {
	return 0, errDown
}

func (failingLedger) InsertReservation(context.Context, string, int64, booking.Range) error {
	return errDown
}

func (failingLedger) UpdateReservationRange(context.Context, string, booking.Range) error {
	return errDown
}

func (failingLedger) DeleteReservation(context.Context, string) error {
	return errDown
}

func (failingLedger) ReservationsByEmail(context.Context, string, booking.Range) ([]booking.ConfirmedReservation, error) {
	return nil, errDown
}

func (failingLedger) ReservationByID(context.Context, string) (booking.ConfirmedReservation, error) {
	return booking.ConfirmedReservation{}, errDown
}

func (failingLedger) RangesIntersecting(context.Context, booking.Range) ([]booking.Range, error) {
	return nil, errDown
}
