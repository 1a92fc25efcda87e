package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The EXCLUDE constraint on duration is the overlap-safety primitive: two
// concurrent writes with intersecting ranges commit at most one row, with
// no application-level pre-check involved.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS person (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL,
	full_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_person_identity ON person(email, full_name);

CREATE TABLE IF NOT EXISTS reservation (
	id TEXT PRIMARY KEY,
	person_id BIGINT NOT NULL REFERENCES person(id),
	duration DATERANGE NOT NULL,
	EXCLUDE USING gist (duration WITH &&)
);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
