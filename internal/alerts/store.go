// Package alerts implements saved mentor searches and the background runner
// that re-executes them and announces new matches.
package alerts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/model"
)

// ErrNotFound is returned when a saved search is missing or does not belong
// to the user.
var ErrNotFound = fmt.Errorf("saved search not found")

// Store persists saved searches.
//
// Expected table:
//
//	CREATE TABLE saved_searches (
//	    id          UUID PRIMARY KEY,
//	    user_id     TEXT NOT NULL,
//	    name        TEXT NOT NULL,
//	    filters     JSONB NOT NULL,
//	    is_active   BOOLEAN NOT NULL DEFAULT true,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    last_run_at TIMESTAMPTZ
//	);
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts a saved search and returns the stored row.
func (s *Store) Create(ctx context.Context, ss model.SavedSearch) (*model.SavedSearch, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO saved_searches (id, user_id, name, filters, is_active)
		 VALUES ($1, $2, $3, $4::jsonb, $5)
		 RETURNING id, user_id, name, filters, is_active, created_at, last_run_at`,
		ss.ID, ss.UserID, ss.Name, string(ss.Filters), ss.IsActive,
	).Scan(&ss.ID, &ss.UserID, &ss.Name, &ss.Filters, &ss.IsActive, &ss.CreatedAt, &ss.LastRunAt)
	if err != nil {
		return nil, fmt.Errorf("create saved search: %w", err)
	}
	return &ss, nil
}

// ListByUser returns the user's saved searches, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]model.SavedSearch, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, filters, is_active, created_at, last_run_at
		 FROM saved_searches
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}
	defer rows.Close()

	searches := make([]model.SavedSearch, 0)
	for rows.Next() {
		var ss model.SavedSearch
		if err := rows.Scan(&ss.ID, &ss.UserID, &ss.Name, &ss.Filters, &ss.IsActive, &ss.CreatedAt, &ss.LastRunAt); err != nil {
			return nil, fmt.Errorf("scan saved search: %w", err)
		}
		searches = append(searches, ss)
	}
	return searches, rows.Err()
}

// Delete removes a saved search, validating ownership.
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete saved search: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadActive fetches all is_active = true saved searches.
func (s *Store) LoadActive(ctx context.Context) ([]model.SavedSearch, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, filters, is_active, created_at, last_run_at
		 FROM saved_searches
		 WHERE is_active = true`,
	)
	if err != nil {
		return nil, fmt.Errorf("query saved_searches: %w", err)
	}
	defer rows.Close()

	var searches []model.SavedSearch
	for rows.Next() {
		var ss model.SavedSearch
		if err := rows.Scan(&ss.ID, &ss.UserID, &ss.Name, &ss.Filters, &ss.IsActive, &ss.CreatedAt, &ss.LastRunAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		searches = append(searches, ss)
	}
	return searches, rows.Err()
}

// TouchLastRun stamps a saved search after a runner pass.
func (s *Store) TouchLastRun(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE saved_searches SET last_run_at = NOW() WHERE id = $1`,
		id,
	)
	return err
}

// Get returns one saved search by ID, validating ownership.
func (s *Store) Get(ctx context.Context, userID, id string) (*model.SavedSearch, error) {
	var ss model.SavedSearch
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, filters, is_active, created_at, last_run_at
		 FROM saved_searches
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&ss.ID, &ss.UserID, &ss.Name, &ss.Filters, &ss.IsActive, &ss.CreatedAt, &ss.LastRunAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved search: %w", err)
	}
	return &ss, nil
}
