package web

import (
	"context"
	"errors"

	"github.com/example/island-booking/internal/booking"
)

type downLedger struct{}

var errDown = errors.New("dial tcp: connection refused")

func (downLedger) FindPersonID(context.Context, string, string) (int64, error) { return 0, errDown }
func (downLedger) CreatePerson(context.Context, string, string) (int64, error) { return 0, errDown }
func (downLedger) InsertReservation(context.Context, string, int64, booking.Range) error {
	return errDown
}
func (downLedger) UpdateReservationRange(context.Context, string, booking.Range) error {
	return errDown
}
func (downLedger) DeleteReservation(context.Context, string) error { return errDown }
func (downLedger) ReservationsByEmail(context.Context, string, booking.Range) ([]booking.ConfirmedReservation, error) {
	return nil, errDown
}
func (downLedger) ReservationByID(context.Context, string) (booking.ConfirmedReservation, error) {
	return booking.ConfirmedReservation{}, errDown
}
func (downLedger) RangesIntersecting(context.Context, booking.Range) ([]booking.Range, error) {
	return nil, errDown
}
