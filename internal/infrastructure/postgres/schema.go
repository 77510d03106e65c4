package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL provisions every table the handlers depend on. Statements are
// idempotent (IF NOT EXISTS) and never destructive: no DROP, no column
// alteration of existing tables.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    email TEXT UNIQUE,
    password TEXT NOT NULL,
    name TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS properties (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    price NUMERIC,
    location TEXT,
    image TEXT,
    address TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS property_likes (
    id BIGSERIAL PRIMARY KEY,
    property_id BIGINT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    liked BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (property_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_property_likes_user_id ON property_likes(user_id);

CREATE TABLE IF NOT EXISTS contacts (
    id BIGSERIAL PRIMARY KEY,
    name TEXT,
    email TEXT,
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// advisoryLockID serializes schema provisioning across processes sharing the
// database. Arbitrary but stable.
const advisoryLockID = 0x484f4d454c59 // "HOMELY"

// SchemaGuard provisions the schema exactly once per process. Ensure is safe
// to call from any number of goroutines; only the first call runs DDL, and a
// failed run is sticky so a missing table is never mistaken for no rows.
type SchemaGuard struct {
	pool *pgxpool.Pool
	once sync.Once
	err  error
}

func NewSchemaGuard(pool *pgxpool.Pool) *SchemaGuard {
	return &SchemaGuard{pool: pool}
}

// Ensure creates the tables and constraints if they do not exist.
func (g *SchemaGuard) Ensure(ctx context.Context) error {
	g.once.Do(func() {
		g.err = g.provision(ctx)
	})
	return g.err
}

func (g *SchemaGuard) provision(ctx context.Context) error {
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// IF NOT EXISTS alone can still race across processes; the transaction
	// scoped advisory lock serializes concurrent provisioners.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", advisoryLockID); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}
	if _, err := tx.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("provision schema: %w", err)
	}
	return tx.Commit(ctx)
}
