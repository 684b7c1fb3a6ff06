package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chateudechevrole/tutor-app-yp/internal/infra"
)

// Collections in the shared document store. The controller writes only to
// bookings; tutor profiles and users are read-only upstream sources.
const (
	CollectionBookings      = "bookings"
	CollectionTutorProfiles = "tutor_profiles"
	CollectionUsers         = "users"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection text NOT NULL,
	id         text NOT NULL,
	doc        jsonb NOT NULL DEFAULT '{}'::jsonb,
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

// Documents is a jsonb-backed document store. Merge relies on the jsonb
// concatenation operator inside a single UPDATE, which gives the atomic
// per-document merge-write the lifecycle handlers assume: concurrent
// merges interleave at the row level instead of overwriting each other.
type Documents struct {
	pool *pgxpool.Pool
}

func NewDocuments(pool *pgxpool.Pool) *Documents {
	return &Documents{pool: pool}
}

func (d *Documents) EnsureSchema(ctx context.Context) error {
	if _, err := d.pool.Exec(ctx, schema); err != nil {
		return infra.WrapRepoErr("failed to ensure documents schema", err)
	}
	return nil
}

// Get returns the raw document, or nil when absent. Absence is not an
// error; callers default their way around it.
func (d *Documents) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := d.pool.QueryRow(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get document", err)
	}
	return doc, nil
}

// Merge upserts the patch into the document. Fields present in the patch
// replace their counterparts; everything else is untouched.
func (d *Documents) Merge(ctx context.Context, collection, id string, patch any) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal patch", err)
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET doc = documents.doc || EXCLUDED.doc, updated_at = now()`,
		collection, id, raw,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to merge document", err)
	}
	return nil
}
