// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"inkwell/internal/database"
	"inkwell/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with local development defaults.
func testDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "inkwell")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "inkwell")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Reset goose global state for other packages.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testHandle wraps an open test connection in a store-ready handle.
func testHandle(t *testing.T, db *sql.DB) *database.Handle {
	t.Helper()
	return database.Open(db)
}

// testAuthor inserts a throwaway admin user and returns it. The row is
// removed when the test finishes.
func testAuthor(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	openID := "test-author-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanUsers(t, db, openID) })

	users := NewUserStore(database.Open(db), "")
	admin := models.RoleAdmin
	u, err := users.Upsert(UpsertUser{OpenID: openID, Role: &admin})
	if err != nil {
		t.Fatalf("create test author: %v", err)
	}
	return u
}

// testCategory inserts a throwaway category and returns its id. The row is
// removed when the test finishes.
func testCategory(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRow(`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM categories WHERE id = $1`, id) })
	return id
}

// testTag inserts a throwaway tag and returns its id.
func testTag(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRow(`INSERT INTO tags (name) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
		t.Fatalf("create test tag: %v", err)
	}
	t.Cleanup(func() { db.Exec(`DELETE FROM tags WHERE id = $1`, id) })
	return id
}

// cleanUsers removes test users by open id. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *sql.DB, openIDs ...string) {
	t.Helper()
	for _, openID := range openIDs {
		db.Exec("DELETE FROM users WHERE open_id = $1", openID)
	}
}

// cleanArticles removes test articles (and their tag links) by slug.
// Call in t.Cleanup().
func cleanArticles(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM article_tags WHERE article_id IN (SELECT id FROM articles WHERE slug = $1)", slug)
		db.Exec("DELETE FROM articles WHERE slug = $1", slug)
	}
}
