// Package memstore is a mutex-guarded in-memory Ledger used for dev mode
// and tests. The single lock makes every operation atomic, which is what
// the Postgres exclusion constraint provides in production.
package memstore

import (
	"context"
	"sync"

	"github.com/example/island-booking/internal/booking"
)

type reservation struct {
	id       string
	personID int64
	r        booking.Range
}

type Ledger struct {
	mu           sync.Mutex
	persons      []booking.Person
	nextPersonID int64
	reservations []reservation
}

func New() *Ledger {
	return &Ledger{nextPersonID: 1}
}

var _ booking.Ledger = (*Ledger)(nil)

func (l *Ledger) FindPersonID(ctx context.Context, email, fullName string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.persons {
		if p.Email == email && p.FullName == fullName {
			return p.ID, nil
		}
	}
	return 0, booking.ErrNotFound
}

func (l *Ledger) CreatePerson(ctx context.Context, email, fullName string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextPersonID
	l.nextPersonID++
	l.persons = append(l.persons, booking.Person{ID: id, Email: email, FullName: fullName})
	return id, nil
}

func (l *Ledger) InsertReservation(ctx context.Context, id string, personID int64, r booking.Range) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.reservations {
		if existing.r.Overlaps(r) {
			return booking.ErrRangeConflict
		}
	}
	l.reservations = append(l.reservations, reservation{id: id, personID: personID, r: r})
	return nil
}

func (l *Ledger) UpdateReservationRange(ctx context.Context, id string, r booking.Range) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.reservations {
		if existing.id != id && existing.r.Overlaps(r) {
			return booking.ErrRangeConflict
		}
	}
	for i := range l.reservations {
		if l.reservations[i].id == id {
			l.reservations[i].r = r
			break
		}
	}
	return nil
}

func (l *Ledger) DeleteReservation(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.reservations {
		if l.reservations[i].id == id {
			l.reservations = append(l.reservations[:i], l.reservations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (l *Ledger) ReservationsByEmail(ctx context.Context, email string, window booking.Range) ([]booking.ConfirmedReservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []booking.ConfirmedReservation
	for _, res := range l.reservations {
		p, ok := l.personByID(res.personID)
		if !ok || p.Email != email {
			continue
		}
		if !intersectsInclusiveWindow(res.r, window) {
			continue
		}
		out = append(out, confirmed(res, p))
	}
	return out, nil
}

func (l *Ledger) ReservationByID(ctx context.Context, id string) (booking.ConfirmedReservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, res := range l.reservations {
		if res.id != id {
			continue
		}
		p, ok := l.personByID(res.personID)
		if !ok {
			return booking.ConfirmedReservation{}, booking.ErrNotFound
		}
		return confirmed(res, p), nil
	}
	return booking.ConfirmedReservation{}, booking.ErrNotFound
}

func (l *Ledger) RangesIntersecting(ctx context.Context, window booking.Range) ([]booking.Range, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []booking.Range
	for _, res := range l.reservations {
		if intersectsInclusiveWindow(res.r, window) {
			out = append(out, res.r)
		}
	}
	return out, nil
}

func (l *Ledger) personByID(id int64) (booking.Person, bool) {
	for _, p := range l.persons {
		if p.ID == id {
			return p, true
		}
	}
	return booking.Person{}, false
}

// Query windows are inclusive of both bounds, matching the [a,b] daterange
// literals the Postgres ledger uses.
func intersectsInclusiveWindow(r, window booking.Range) bool {
	return r.Overlaps(booking.Range{Start: window.Start, End: window.End.AddDate(0, 0, 1)})
}

func confirmed(res reservation, p booking.Person) booking.ConfirmedReservation {
	return booking.ConfirmedReservation{
		ID:        res.id,
		Email:     p.Email,
		FullName:  p.FullName,
		StartDate: res.r.Start,
		EndDate:   res.r.End,
	}
}
