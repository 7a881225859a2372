package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foliopress/pkg/core/document"
	"foliopress/pkg/observability"
)

// PostgresStore persists catalogs in a single table with the document
// tree serialized to a JSONB column. Name, page count, and timestamp are
// kept in their own columns so listing never deserializes full catalogs.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS catalogs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	pages      INT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	data       JSONB NOT NULL
)`

// NewPostgresStore connects to Postgres and creates the catalog table if
// it does not exist.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create catalog table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*document.Catalog, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM catalogs WHERE id = $1`, id).Scan(&data)
	observability.Store().OnGet("postgres", id, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog %s: %w", id, err)
	}

	var c document.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", id, err)
	}
	return &c, nil
}

func (s *PostgresStore) Put(ctx context.Context, c *document.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode catalog %s: %w", c.ID, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO catalogs (id, name, pages, updated_at, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			pages = EXCLUDED.pages,
			updated_at = EXCLUDED.updated_at,
			data = EXCLUDED.data`,
		c.ID, c.Name, c.PageCount(), c.UpdatedAt, data)
	observability.Store().OnPut("postgres", c.ID, err)
	if err != nil {
		return fmt.Errorf("save catalog %s: %w", c.ID, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM catalogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete catalog %s: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, pages, updated_at
		FROM catalogs
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Pages, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}
