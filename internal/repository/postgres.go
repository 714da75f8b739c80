package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/dto"
)

// Postgres is a document-style Repository backed by one table per resource.
// Records are stored as JSONB payloads with the status, search text, and
// timestamps lifted into columns for filtering; deletes are soft.
type Postgres[T domain.Entity] struct {
	pool  *pgxpool.Pool
	table string
	newFn func() T
}

// NewPostgres creates a repository over the named resource table.
func NewPostgres[T domain.Entity](pool *pgxpool.Pool, table string, newFn func() T) *Postgres[T] {
	return &Postgres[T]{pool: pool, table: table, newFn: newFn}
}

// Create inserts a new record.
func (r *Postgres[T]) Create(ctx context.Context, entity T) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, status, payload, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.table)
	_, err = r.pool.Exec(ctx, query,
		entity.EntityID(),
		string(entity.EntityStatus()),
		payload,
		entity.SearchText(),
		entity.CreatedTime(),
		entity.CreatedTime(),
	)
	return err
}

// GetByID retrieves a record by ID, nil without error on a miss.
func (r *Postgres[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	query := fmt.Sprintf(`
		SELECT payload FROM %s
		WHERE id = $1 AND deleted_at IS NULL
	`, r.table)

	var payload []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, nil
		}
		return zero, err
	}

	record := r.newFn()
	if err := json.Unmarshal(payload, record); err != nil {
		return zero, fmt.Errorf("decode %s: %w", r.table, err)
	}
	return record, nil
}

// List retrieves records matching the query, newest first, with a total count.
func (r *Postgres[T]) List(ctx context.Context, query dto.ListQuery) ([]T, int64, error) {
	query.SetDefaults()

	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	for key, value := range query.Filters {
		if value == "" {
			continue
		}
		if key == "status" {
			whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
			args = append(args, value)
			argIndex++
			continue
		}
		whereClause += fmt.Sprintf(" AND payload->>$%d = $%d", argIndex, argIndex+1)
		args = append(args, key, value)
		argIndex += 2
	}

	if query.Search != "" {
		whereClause += fmt.Sprintf(" AND search_text ILIKE $%d", argIndex)
		args = append(args, "%"+strings.ToLower(query.Search)+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", r.table, whereClause)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	pageQuery := fmt.Sprintf(`
		SELECT payload FROM %s
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, r.table, whereClause, argIndex, argIndex+1)
	args = append(args, query.Limit, offset)

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, 0, err
		}
		record := r.newFn()
		if err := json.Unmarshal(payload, record); err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", r.table, err)
		}
		records = append(records, record)
	}
	return records, total, rows.Err()
}

// Update replaces an existing record's payload and lifted columns.
func (r *Postgres[T]) Update(ctx context.Context, entity T) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.table, err)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, payload = $3, search_text = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, r.table)
	result, err := r.pool.Exec(ctx, query,
		entity.EntityID(),
		string(entity.EntityStatus()),
		payload,
		entity.SearchText(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("record %s not found", entity.EntityID())
	}
	return nil
}

// Apply atomically mutates one record inside a transaction. The row is
// locked with SELECT FOR UPDATE so concurrent Applies on the same record
// serialize instead of overwriting each other.
func (r *Postgres[T]) Apply(ctx context.Context, id string, apply func(T) error) (T, error) {
	var zero T

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return zero, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := fmt.Sprintf(`
		SELECT payload FROM %s
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`, r.table)

	var payload []byte
	if err := tx.QueryRow(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, nil
		}
		return zero, err
	}

	record := r.newFn()
	if err := json.Unmarshal(payload, record); err != nil {
		return zero, fmt.Errorf("decode %s: %w", r.table, err)
	}
	if err := apply(record); err != nil {
		return zero, err
	}

	updated, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", r.table, err)
	}
	update := fmt.Sprintf(`
		UPDATE %s
		SET status = $2, payload = $3, search_text = $4, updated_at = NOW()
		WHERE id = $1
	`, r.table)
	if _, err := tx.Exec(ctx, update,
		id,
		string(record.EntityStatus()),
		updated,
		record.SearchText(),
	); err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, err
	}
	return record, nil
}

// Delete soft deletes a record by setting deleted_at.
func (r *Postgres[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, r.table)
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("record %s not found", id)
	}
	return nil
}
