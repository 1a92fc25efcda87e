package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/calendar"
	"github.com/gorilla/mux"
)

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		s.writeError(w, r, &booking.ValidationError{Reason: "Field 'email' is undefined"})
		return
	}

	reservations, err := s.svc.ListReservations(r.Context(), email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]confirmedReservationResponse, 0, len(reservations))
	for _, cr := range reservations {
		out = append(out, toResponse(cr))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, &booking.ValidationError{Reason: "invalid request body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, fieldError(err))
		return
	}
	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cr, err := s.svc.CreateReservation(r.Context(), req.Email, req.FullName, start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toResponse(cr))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	cr, err := s.svc.GetReservation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toResponse(cr))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req reservationDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, &booking.ValidationError{Reason: "invalid request body"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, r, fieldError(err))
		return
	}
	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	existing, err := s.svc.GetReservation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.UpdateReservation(r.Context(), existing, start, end); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	existing, err := s.svc.GetReservation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.DeleteReservation(r.Context(), existing); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVacancy(w http.ResponseWriter, r *http.Request) {
	var start, end time.Time
	if v := r.URL.Query().Get("startDate"); v != "" {
		d, err := calendar.Parse(v)
		if err != nil {
			s.writeError(w, r, &booking.ValidationError{Reason: "Field 'startDate' is invalid"})
			return
		}
		start = d
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		d, err := calendar.Parse(v)
		if err != nil {
			s.writeError(w, r, &booking.ValidationError{Reason: "Field 'endDate' is invalid"})
			return
		}
		end = d
	}

	dates, err := s.svc.Vacancy(r.Context(), start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDateStrings(dates))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Warn("encode response")
	}
}

// writeError maps the booking error taxonomy onto status codes: policy and
// overlap failures carry their message at 400, a missing id is a bare 404,
// and anything else is a bare 503 so storage internals never leak.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *booking.ValidationError
	var de *booking.DuplicateRangeError
	switch {
	case errors.As(err, &ve):
		s.writeJSON(w, http.StatusBadRequest, errorMessage{Message: ve.Reason})
	case errors.As(err, &de):
		s.writeJSON(w, http.StatusBadRequest, errorMessage{Message: de.Message})
	case errors.Is(err, booking.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Warn("request failed")
		w.WriteHeader(http.StatusServiceUnavailable)
	}
}
