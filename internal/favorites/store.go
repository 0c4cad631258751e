// Package favorites keeps each user's favorite calculators and the list of
// calculators they used most recently.
package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"Buildcalc/internal/repo"
)

type Kind string

const (
	Favorites Kind = "favorites"
	Recents   Kind = "recents"
)

// Store persists ordered calculator id lists per user and kind. Get on a
// missing entry returns an empty list.
type Store interface {
	Get(ctx context.Context, userID int, kind Kind) ([]string, error)
	Set(ctx context.Context, userID int, kind Kind, ids []string) error
}

type key struct {
	user int
	kind Kind
}

type MemoryStore struct {
	mu   sync.Mutex
	data map[key][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[key][]string)}
}

func (s *MemoryStore) Get(ctx context.Context, userID int, kind Kind) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.data[key{userID, kind}]...), nil
}

func (s *MemoryStore) Set(ctx context.Context, userID int, kind Kind, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key{userID, kind}] = append([]string(nil), ids...)
	return nil
}

// SQLStore keeps one JSON-encoded row per user and kind.
type SQLStore struct {
	db      *sql.DB
	dialect repo.Dialect
}

func NewSQLStore(db *sql.DB, d repo.Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d}
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS user_lists (
	user_id INTEGER NOT NULL,
	kind TEXT NOT NULL,
	ids TEXT NOT NULL,
	PRIMARY KEY (user_id, kind)
)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create user_lists table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, userID int, kind Kind) ([]string, error) {
	var raw string
	query := s.dialect.Rebind("SELECT ids FROM user_lists WHERE user_id=$1 AND kind=$2")
	err := s.db.QueryRowContext(ctx, query, userID, string(kind)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("get %s for user %d: %w", kind, userID, err)
	}
	ids := []string{}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode %s for user %d: %w", kind, userID, err)
	}
	return ids, nil
}

func (s *SQLStore) Set(ctx context.Context, userID int, kind Kind, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	query := s.dialect.Rebind(`INSERT INTO user_lists (user_id, kind, ids) VALUES ($1, $2, $3)
ON CONFLICT (user_id, kind) DO UPDATE SET ids = excluded.ids`)
	if _, err := s.db.ExecContext(ctx, query, userID, string(kind), string(raw)); err != nil {
		return fmt.Errorf("set %s for user %d: %w", kind, userID, err)
	}
	return nil
}
