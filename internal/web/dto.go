package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/calendar"
	"github.com/go-playground/validator/v10"
)

type createReservationRequest struct {
	Email     string `json:"email" validate:"required"`
	FullName  string `json:"fullName" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type reservationDatesRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type confirmedReservationResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func toResponse(cr booking.ConfirmedReservation) confirmedReservationResponse {
	return confirmedReservationResponse{
		ID:        cr.ID,
		Email:     cr.Email,
		FullName:  cr.FullName,
		StartDate: calendar.Format(cr.StartDate),
		EndDate:   calendar.Format(cr.EndDate),
	}
}

func toDateStrings(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, calendar.Format(d))
	}
	return out
}

// fieldError turns the first failed required-tag into the historical
// "Field 'x' is undefined" message shape.
func fieldError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		// Struct field names lower-camel to the JSON names used on the wire.
		return &booking.ValidationError{Reason: fmt.Sprintf("Field '%s' is undefined", lowerCamel(errs[0].Field()))}
	}
	return &booking.ValidationError{Reason: "invalid request body"}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	s, err := calendar.Parse(start)
	if err != nil {
		return time.Time{}, time.Time{}, &booking.ValidationError{Reason: "Field 'startDate' is invalid"}
	}
	e, err := calendar.Parse(end)
	if err != nil {
		return time.Time{}, time.Time{}, &booking.ValidationError{Reason: "Field 'endDate' is invalid"}
	}
	return s, e, nil
}
