package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/island-booking/internal/booking"
	"github.com/example/island-booking/internal/calendar"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// exclusionViolation is the Postgres SQLSTATE raised when an INSERT or
// UPDATE trips the daterange EXCLUDE constraint.
const exclusionViolation = "23P01"

// ReservationRepo implements booking.Ledger on Postgres. Each method is a
// single statement, so the constraint check and the write commit together.
type ReservationRepo struct{ pool *pgxpool.Pool }

func NewReservationRepo(pool *pgxpool.Pool) *ReservationRepo {
	return &ReservationRepo{pool: pool}
}

var _ booking.Ledger = (*ReservationRepo)(nil)

func (r *ReservationRepo) FindPersonID(ctx context.Context, email, fullName string) (int64, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id FROM person WHERE email=$1 AND full_name=$2`, email, fullName)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, booking.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *ReservationRepo) CreatePerson(ctx context.Context, email, fullName string) (int64, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO person (email, full_name) VALUES ($1,$2) RETURNING id`, email, fullName)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ReservationRepo) InsertReservation(ctx context.Context, id string, personID int64, rng booking.Range) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reservation (id, person_id, duration) VALUES ($1,$2,$3::daterange)`,
		id, personID, halfOpenLiteral(rng),
	)
	return wrapConflict(err)
}

func (r *ReservationRepo) UpdateReservationRange(ctx context.Context, id string, rng booking.Range) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE reservation SET duration=$2::daterange WHERE id=$1`,
		id, halfOpenLiteral(rng),
	)
	return wrapConflict(err)
}

func (r *ReservationRepo) DeleteReservation(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reservation WHERE id=$1`, id)
	return err
}

func (r *ReservationRepo) ReservationsByEmail(ctx context.Context, email string, window booking.Range) ([]booking.ConfirmedReservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT reservation.id, person.email, person.full_name,
		       lower(reservation.duration), upper(reservation.duration)
		FROM reservation JOIN person ON reservation.person_id=person.id
		WHERE person.email=$1 AND reservation.duration && $2::daterange
	`, email, inclusiveLiteral(window))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []booking.ConfirmedReservation
	for rows.Next() {
		cr, err := scanConfirmed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}

func (r *ReservationRepo) ReservationByID(ctx context.Context, id string) (booking.ConfirmedReservation, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT reservation.id, person.email, person.full_name,
		       lower(reservation.duration), upper(reservation.duration)
		FROM reservation JOIN person ON reservation.person_id=person.id
		WHERE reservation.id=$1
	`, id)
	cr, err := scanConfirmed(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.ConfirmedReservation{}, booking.ErrNotFound
		}
		return booking.ConfirmedReservation{}, err
	}
	return cr, nil
}

func (r *ReservationRepo) RangesIntersecting(ctx context.Context, window booking.Range) ([]booking.Range, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lower(duration), upper(duration)
		FROM reservation WHERE duration && $1::daterange
	`, inclusiveLiteral(window))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []booking.Range
	for rows.Next() {
		var rng booking.Range
		if err := rows.Scan(&rng.Start, &rng.End); err != nil {
			return nil, err
		}
		out = append(out, booking.NewRange(rng.Start, rng.End))
	}
	return out, rows.Err()
}

func scanConfirmed(row pgx.Row) (booking.ConfirmedReservation, error) {
	var cr booking.ConfirmedReservation
	if err := row.Scan(&cr.ID, &cr.Email, &cr.FullName, &cr.StartDate, &cr.EndDate); err != nil {
		return booking.ConfirmedReservation{}, err
	}
	cr.StartDate = calendar.Day(cr.StartDate)
	cr.EndDate = calendar.Day(cr.EndDate)
	return cr, nil
}

func wrapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return booking.ErrRangeConflict
	}
	return err
}

// halfOpenLiteral renders the stored stay interval: [start, end).
func halfOpenLiteral(r booking.Range) string {
	return fmt.Sprintf("[%s,%s)", calendar.Format(r.Start), calendar.Format(r.End))
}

// inclusiveLiteral renders a query window covering both bounds: [a, b].
func inclusiveLiteral(r booking.Range) string {
	return fmt.Sprintf("[%s,%s]", calendar.Format(r.Start), calendar.Format(r.End))
}
