package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a handful of
// categories and tags so listings have something to group by. It is a no-op
// when categories already exist. Users are not seeded — accounts are created
// through the identity upsert on first sign-in.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, name := range []string{"Engineering", "Essays", "Notes"} {
		if _, err := db.Exec(`INSERT INTO categories (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("seed insert category %q: %w", name, err)
		}
	}

	for _, name := range []string{"go", "databases", "web"} {
		if _, err := db.Exec(`INSERT INTO tags (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("seed insert tag %q: %w", name, err)
		}
	}

	slog.Info("database seeded with default categories and tags")
	return nil
}
