// Package store is the persistence gateway: typed repositories over the ent
// client, transaction primitives for the session life-cycle, and the retry
// policy for transient store failures.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	log    *zap.Logger
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client, log: log}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Users returns the user repository.
func (s *Store) Users() UserRepo { return &userRepo{s} }

// Questions returns the catalog repository.
func (s *Store) Questions() QuestionRepo { return &questionRepo{s} }

// Sessions returns the session repository.
func (s *Store) Sessions() SessionRepo { return &sessionRepo{s} }

// Responses returns the response repository.
func (s *Store) Responses() ResponseRepo { return &responseRepo{s} }

// Quotas returns the quota-counter repository.
func (s *Store) Quotas() QuotaRepo { return &quotaRepo{s} }

// Reviews returns the review-interval repository.
func (s *Store) Reviews() ReviewRepo { return &reviewRepo{s} }

// Snapshots returns the theta-snapshot repository.
func (s *Store) Snapshots() SnapshotRepo { return &snapshotRepo{s} }

// Tiers returns the tier-config repository.
func (s *Store) Tiers() TierRepo { return &tierRepo{s} }

// withTx runs fn inside an ent transaction, rolling back on error or panic.
func (s *Store) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return classify(err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.log.Warn("tx rollback failed", zap.Error(rerr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	return nil
}

// applyPragmas configures SQLite for concurrent server use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. JEEVIBE_DB environment variable
// 2. $XDG_DATA_HOME/jeevibe/jeevibe.db
// 3. ~/.local/share/jeevibe/jeevibe.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("JEEVIBE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "jeevibe", "jeevibe.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
