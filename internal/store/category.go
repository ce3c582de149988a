// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"inkwell/internal/database"
	"inkwell/internal/models"
)

// CategoryStore provides read access to categories. Category rows are
// managed through migrations and seeding, not through this store.
type CategoryStore struct {
	db *database.Handle
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *database.Handle) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by name ascending.
func (s *CategoryStore) List() ([]models.Category, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by id. Returns nil if not found.
func (s *CategoryStore) FindByID(id int64) (*models.Category, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	c := &models.Category{}
	err = db.QueryRow(`SELECT id, name, created_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}
