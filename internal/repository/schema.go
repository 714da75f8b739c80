package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const tableDDL = `
CREATE TABLE IF NOT EXISTS %[1]s (
	id          TEXT PRIMARY KEY,
	status      TEXT NOT NULL,
	payload     JSONB NOT NULL,
	search_text TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	deleted_at  TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_status ON %[1]s (status) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS idx_%[1]s_created_at ON %[1]s (created_at DESC) WHERE deleted_at IS NULL;
`

// EnsureSchema creates the resource tables and indexes if they do not exist.
// Applied at startup; the DDL is idempotent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables ...string) error {
	for _, table := range tables {
		if _, err := pool.Exec(ctx, fmt.Sprintf(tableDDL, table)); err != nil {
			return fmt.Errorf("ensure schema for %s: %w", table, err)
		}
	}
	return nil
}
