// Package database handles PostgreSQL connection management and migration
// execution using goose. The Handle type provides lazy, retried connection
// establishment so that the rest of the application can be constructed
// before (or without) a reachable database.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ErrUnavailable is returned when no usable database connection exists,
// either because no DSN was configured or because the server is unreachable.
var ErrUnavailable = errors.New("database unavailable")

// Handle is a lazily-initialized database connection shared for the process
// lifetime. The first call to DB opens and pings the pool; on failure the
// attempt is repeated on the next call rather than cached, so a database
// that comes up later is picked up without a restart. An empty DSN means
// the handle is permanently unavailable.
type Handle struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

// NewHandle creates a Handle for the given DSN. No connection is attempted
// until the first DB call.
func NewHandle(dsn string) *Handle {
	return &Handle{dsn: dsn}
}

// Open wraps an existing connection pool in a Handle. Used by tests.
func Open(db *sql.DB) *Handle {
	return &Handle{db: db}
}

// DB returns the shared connection pool, establishing it on first use.
// Returns an error wrapping ErrUnavailable when no connection can be made.
func (h *Handle) DB() (*sql.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}
	if h.dsn == "" {
		return nil, fmt.Errorf("no DSN configured: %w", ErrUnavailable)
	}

	db, err := Connect(h.dsn)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnavailable)
	}
	h.db = db
	return h.db, nil
}

// Close releases the underlying pool if one was established.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}

// Connect opens a PostgreSQL connection pool using the provided DSN.
// It verifies the connection with a ping before returning.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("database connected")
	return db, nil
}

// Migrate runs all pending goose migrations from the embedded SQL files.
// Migrations are embedded at compile time so no external files are needed
// at runtime.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("database migrations applied")
	return nil
}
