// Package sqlite persists the ledger's two collections in an embedded
// SQLite database, as JSON blobs in a key-value table keyed by two fixed
// names. Each save rewrites the full value for its key.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hurstk8/ProductivityCompetition/internal/domain"
)

// Fixed keys for the two persisted collections. The names are part of the
// stored format; changing one orphans existing blobs.
const (
	UsersKey      = "productivity_users"
	ActivitiesKey = "productivity_activities"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_state (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL
)`

// Store persists ledger state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if necessary) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// LoadUsers implements domain.Store.
func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.load(ctx, UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers implements domain.Store.
func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.save(ctx, UsersKey, users)
}

// LoadActivities implements domain.Store.
func (s *Store) LoadActivities(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := s.load(ctx, ActivitiesKey, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// SaveActivities implements domain.Store.
func (s *Store) SaveActivities(ctx context.Context, activities []domain.Activity) error {
	return s.save(ctx, ActivitiesKey, activities)
}

// load reads and decodes the value under key. An absent key leaves out
// untouched, yielding the empty collection.
func (s *Store) load(ctx context.Context, key string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	var value []byte
	row := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv_state WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(value, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, collection any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	value, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

var _ domain.Store = (*Store)(nil)
