// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inkwell/internal/database"
	"inkwell/internal/models"
)

// ArticleStore handles all article-related database operations, including
// the article_tags association rows owned by each article's lifecycle.
type ArticleStore struct {
	db *database.Handle
}

// NewArticleStore creates a new ArticleStore backed by the given handle.
func NewArticleStore(db *database.Handle) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, slug, summary, content, cover_image, category_id,
       author_id, status, published_at, view_count, created_at, updated_at`

// scanArticle scans a row into an Article struct.
func scanArticle(scanner interface{ Scan(...any) error }) (*models.Article, error) {
	var a models.Article
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content, &a.CoverImage,
		&a.CategoryID, &a.AuthorID, &a.Status, &a.PublishedAt,
		&a.ViewCount, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListFilter narrows an article listing. All supplied filters must hold.
// A nil field means "no filter". Limit <= 0 means unbounded.
type ListFilter struct {
	Limit      int
	Offset     int
	CategoryID *int64
	Status     *models.ArticleStatus
	TagID      *int64
}

// List returns articles matching the filter, newest published_at first.
// Drafts (null published_at) sort after everything published. When TagID is
// set and no association rows reference that tag, List short-circuits to an
// empty result without querying the articles table at all.
func (s *ArticleStore) List(f ListFilter) ([]models.Article, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	var conds []string
	var args []any

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		conds = append(conds, "category_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if f.TagID != nil {
		ids, err := s.articleIDsForTag(db, *f.TagID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.Article{}, nil
		}
		args = append(args, ids)
		conds = append(conds, "id = ANY($"+strconv.Itoa(len(args))+")")
	}

	query := `SELECT ` + articleColumns + ` FROM articles`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY published_at DESC NULLS LAST, id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	items := []models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// articleIDsForTag returns the ids of all articles linked to the given tag.
func (s *ArticleStore) articleIDsForTag(db *sql.DB, tagID int64) ([]int64, error) {
	rows, err := db.Query(`SELECT article_id FROM article_tags WHERE tag_id = $1`, tagID)
	if err != nil {
		return nil, fmt.Errorf("articles for tag: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan article id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Count returns the number of articles matching the category and status
// filters. Tag filtering is intentionally not supported here: the listing
// endpoint reports a category/status total alongside tag-filtered pages,
// matching the platform's original contract.
func (s *ArticleStore) Count(categoryID *int64, status *models.ArticleStatus) (int, error) {
	db, err := s.db.DB()
	if err != nil {
		return 0, err
	}

	var conds []string
	var args []any
	if categoryID != nil {
		args = append(args, *categoryID)
		conds = append(conds, "category_id = $"+strconv.Itoa(len(args)))
	}
	if status != nil {
		args = append(args, *status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT COUNT(*) FROM articles`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// FindByID retrieves an article by id. Returns nil if not found. No status
// filter is applied: drafts are reachable by direct lookup.
func (s *ArticleStore) FindByID(id int64) (*models.Article, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindBySlug retrieves an article by its slug. Returns nil if not found.
func (s *ArticleStore) FindBySlug(slug string) (*models.Article, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	a, err := scanArticle(db.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// Create inserts a new article and its tag associations in one transaction.
// An article created directly in published status gets published_at set to
// the creation time.
func (s *ArticleStore) Create(a *models.Article, tagIDs []int64) (*models.Article, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	if a.Status == models.ArticleStatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := scanArticle(tx.QueryRow(`
		INSERT INTO articles (title, slug, summary, content, cover_image,
		                      category_id, author_id, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+articleColumns,
		a.Title, a.Slug, a.Summary, a.Content, a.CoverImage,
		a.CategoryID, a.AuthorID, a.Status, a.PublishedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := insertArticleTags(tx, result.ID, tagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create article: %w", err)
	}
	return result, nil
}

// ArticleUpdate describes a partial article update. Nil fields are left
// untouched. A non-nil TagIDs — even an empty slice — replaces the article's
// entire tag association set.
type ArticleUpdate struct {
	Title      *string
	Slug       *string
	Summary    *string
	Content    *string
	CoverImage *string
	CategoryID *int64
	Status     *models.ArticleStatus
	TagIDs     []int64
}

// Update applies a partial update to an article. Transitioning status to
// published sets published_at only when it was previously unset — the
// COALESCE guard keeps a re-publish from overwriting the original timestamp,
// even under concurrent updates.
func (s *ArticleStore) Update(id int64, u ArticleUpdate) error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Slug != nil {
		set("slug", *u.Slug)
	}
	if u.Summary != nil {
		set("summary", *u.Summary)
	}
	if u.Content != nil {
		set("content", *u.Content)
	}
	if u.CoverImage != nil {
		set("cover_image", *u.CoverImage)
	}
	if u.CategoryID != nil {
		set("category_id", *u.CategoryID)
	}
	if u.Status != nil {
		set("status", *u.Status)
		if *u.Status == models.ArticleStatusPublished {
			sets = append(sets, "published_at = COALESCE(published_at, NOW())")
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if len(sets) > 0 {
		sets = append(sets, "updated_at = NOW()")
		args = append(args, id)
		query := "UPDATE articles SET " + strings.Join(sets, ", ") +
			" WHERE id = $" + strconv.Itoa(len(args))
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
	}

	if u.TagIDs != nil {
		if _, err := tx.Exec(`DELETE FROM article_tags WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("clear article tags: %w", err)
		}
		if err := insertArticleTags(tx, id, u.TagIDs); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update article: %w", err)
	}
	return nil
}

// Delete removes an article and all its tag associations. Deleting an id
// that does not exist is not an error.
func (s *ArticleStore) Delete(id int64) error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM article_tags WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("delete article tags: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM articles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete article: %w", err)
	}
	return nil
}

// TagIDs returns the ids of all tags linked to the given article.
func (s *ArticleStore) TagIDs(articleID int64) ([]int64, error) {
	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT tag_id FROM article_tags WHERE article_id = $1 ORDER BY tag_id`, articleID)
	if err != nil {
		return nil, fmt.Errorf("article tag ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tag id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Stats returns the composite dashboard view: total published count,
// published counts per category, and the five most recently published
// articles. The per-category breakdown LEFT JOINs from categories so that
// categories without any published article still appear with a zero count.
func (s *ArticleStore) Stats() (*models.ArticleStats, error) {
	published := models.ArticleStatusPublished

	total, err := s.Count(nil, &published)
	if err != nil {
		return nil, err
	}

	db, err := s.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT c.id, c.name, COUNT(a.id)
		FROM categories c
		LEFT JOIN articles a ON a.category_id = c.id AND a.status = 'published'
		GROUP BY c.id, c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	defer rows.Close()

	categories := []models.CategoryStat{}
	for rows.Next() {
		var cs models.CategoryStat
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.Count); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		categories = append(categories, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := s.List(ListFilter{Limit: 5, Status: &published})
	if err != nil {
		return nil, err
	}

	return &models.ArticleStats{
		TotalArticles:  total,
		Categories:     categories,
		RecentArticles: recent,
	}, nil
}

// insertArticleTags inserts one association row per tag id. A nil or empty
// slice inserts nothing.
func insertArticleTags(tx *sql.Tx, articleID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID,
		); err != nil {
			return fmt.Errorf("link article %d to tag %d: %w", articleID, tagID, err)
		}
	}
	return nil
}
