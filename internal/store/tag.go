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

// TagStore provides read access to tags. Association rows linking tags to
// articles live with ArticleStore, which owns their lifecycle.
type TagStore struct {
	db *database.Handle
}

// NewTagStore returns a new TagStore.
func NewTagStore(db *database.Handle) *TagStore {
	return &TagStore{db: db}
}

// List returns all tags ordered by name ascending.
func (s *TagStore) List() ([]models.Tag, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, name, created_at FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	items := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tag by id. Returns nil if not found.
func (s *TagStore) FindByID(id int64) (*models.Tag, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	t := &models.Tag{}
	err = db.QueryRow(`SELECT id, name, created_at FROM tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return t, nil
}
