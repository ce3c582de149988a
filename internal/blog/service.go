// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog implements the content platform's query and mutation layer:
// public reads over published articles, admin-gated mutations that keep an
// article and its tag associations consistent, and the aggregate stats view.
package blog

import (
	"errors"
	"log/slog"

	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/slug"
	"inkwell/internal/store"
)

// Service composes the data stores with the authorization gate and the
// degraded-read policy. All methods are stateless request/response units.
type Service struct {
	articles   *store.ArticleStore
	categories *store.CategoryStore
	tags       *store.TagStore
	users      *store.UserStore

	// degradedReads controls what happens to read operations when storage
	// is unavailable: true returns empty/zero defaults (the platform's
	// "operate without a database" mode), false surfaces
	// ErrStorageUnavailable. Mutations always fail explicitly.
	degradedReads bool
}

// New creates a Service over the given stores.
func New(articles *store.ArticleStore, categories *store.CategoryStore, tags *store.TagStore, users *store.UserStore, degradedReads bool) *Service {
	return &Service{
		articles:      articles,
		categories:    categories,
		tags:          tags,
		users:         users,
		degradedReads: degradedReads,
	}
}

// requireAdmin is the single authorization predicate applied before every
// mutation. Reads are never gated.
func requireAdmin(actor *models.User) error {
	if actor == nil || !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// degraded reports whether err is a storage-unavailable condition that the
// read path should swallow in favor of an empty result.
func (s *Service) degraded(err error) bool {
	if s.degradedReads && errors.Is(err, database.ErrUnavailable) {
		slog.Warn("storage unavailable, degrading read to empty result")
		return true
	}
	return false
}

// ArticleList is a page of articles together with the unpaginated total for
// the same category/status filters.
type ArticleList struct {
	Items []models.Article `json:"items"`
	Total int              `json:"total"`
}

// ListArticles returns a page of published articles, newest first, filtered
// conjunctively by the optional category and tag. The total counts published
// articles in the category regardless of the tag filter.
func (s *Service) ListArticles(limit, offset int, categoryID, tagID *int64) (*ArticleList, error) {
	published := models.ArticleStatusPublished

	items, err := s.articles.List(store.ListFilter{
		Limit:      limit,
		Offset:     offset,
		CategoryID: categoryID,
		Status:     &published,
		TagID:      tagID,
	})
	if err != nil {
		if s.degraded(err) {
			return &ArticleList{Items: []models.Article{}}, nil
		}
		return nil, err
	}

	total, err := s.articles.Count(categoryID, &published)
	if err != nil {
		if s.degraded(err) {
			return &ArticleList{Items: items}, nil
		}
		return nil, err
	}

	return &ArticleList{Items: items, Total: total}, nil
}

// GetArticleByID looks up an article by id. Drafts are reachable here; the
// admin surface is the only place that links them. Returns nil when the
// article does not exist or when storage is unavailable in degraded mode.
func (s *Service) GetArticleByID(id int64) (*models.Article, error) {
	a, err := s.articles.FindByID(id)
	if err != nil && s.degraded(err) {
		return nil, nil
	}
	return a, err
}

// GetArticleBySlug looks up an article by its slug, draft or published.
func (s *Service) GetArticleBySlug(sl string) (*models.Article, error) {
	a, err := s.articles.FindBySlug(sl)
	if err != nil && s.degraded(err) {
		return nil, nil
	}
	return a, err
}

// ArticleTagIDs returns the tag ids linked to an article.
func (s *Service) ArticleTagIDs(articleID int64) ([]int64, error) {
	ids, err := s.articles.TagIDs(articleID)
	if err != nil && s.degraded(err) {
		return []int64{}, nil
	}
	return ids, err
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories() ([]models.Category, error) {
	items, err := s.categories.List()
	if err != nil && s.degraded(err) {
		return []models.Category{}, nil
	}
	return items, err
}

// GetCategory looks up a category by id.
func (s *Service) GetCategory(id int64) (*models.Category, error) {
	c, err := s.categories.FindByID(id)
	if err != nil && s.degraded(err) {
		return nil, nil
	}
	return c, err
}

// ListTags returns all tags ordered by name.
func (s *Service) ListTags() ([]models.Tag, error) {
	items, err := s.tags.List()
	if err != nil && s.degraded(err) {
		return []models.Tag{}, nil
	}
	return items, err
}

// GetTag looks up a tag by id.
func (s *Service) GetTag(id int64) (*models.Tag, error) {
	t, err := s.tags.FindByID(id)
	if err != nil && s.degraded(err) {
		return nil, nil
	}
	return t, err
}

// ArticleStats returns the aggregate dashboard view. It is recomputed on
// every call; nothing is cached.
func (s *Service) ArticleStats() (*models.ArticleStats, error) {
	stats, err := s.articles.Stats()
	if err != nil && s.degraded(err) {
		return &models.ArticleStats{
			Categories:     []models.CategoryStat{},
			RecentArticles: []models.Article{},
		}, nil
	}
	return stats, err
}

// CreateArticleInput carries the fields for a new article. Slug defaults to
// a generated slug of the title; status defaults to draft.
type CreateArticleInput struct {
	Title      string
	Slug       string
	Summary    *string
	Content    string
	CoverImage *string
	CategoryID int64
	Status     models.ArticleStatus
	TagIDs     []int64
}

// CreateArticle inserts a new article on behalf of the acting admin.
// Creating directly in published status stamps published_at with the
// creation time.
func (s *Service) CreateArticle(actor *models.User, in CreateArticleInput) (*models.Article, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if in.Content == "" {
		return nil, &ValidationError{Field: "content", Reason: "required"}
	}
	if in.CategoryID <= 0 {
		return nil, &ValidationError{Field: "categoryId", Reason: "required"}
	}
	if in.Status == "" {
		in.Status = models.ArticleStatusDraft
	}
	if !in.Status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "must be draft or published"}
	}
	if in.Slug == "" {
		in.Slug = slug.Generate(in.Title)
	}
	if in.Slug == "" {
		return nil, &ValidationError{Field: "slug", Reason: "required"}
	}

	article := &models.Article{
		Title:      in.Title,
		Slug:       in.Slug,
		Summary:    in.Summary,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		AuthorID:   actor.ID,
		Status:     in.Status,
	}

	created, err := s.articles.Create(article, in.TagIDs)
	if err != nil {
		return nil, err
	}

	slog.Info("article created",
		"id", created.ID,
		"slug", created.Slug,
		"status", created.Status,
		"author", actor.OpenID,
	)
	return created, nil
}

// UpdateArticleInput describes a partial article update. Nil fields are left
// untouched; a non-nil TagIDs, even empty, replaces the tag set wholesale.
type UpdateArticleInput struct {
	Title      *string
	Slug       *string
	Summary    *string
	Content    *string
	CoverImage *string
	CategoryID *int64
	Status     *models.ArticleStatus
	TagIDs     []int64
}

// UpdateArticle applies a partial update. Transitioning to published sets
// published_at exactly once; later publishes leave the original timestamp.
// Returns ErrNotFound for an unknown id.
func (s *Service) UpdateArticle(actor *models.User, id int64, in UpdateArticleInput) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if in.Status != nil && !in.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be draft or published"}
	}

	existing, err := s.articles.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	err = s.articles.Update(id, store.ArticleUpdate{
		Title:      in.Title,
		Slug:       in.Slug,
		Summary:    in.Summary,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		CategoryID: in.CategoryID,
		Status:     in.Status,
		TagIDs:     in.TagIDs,
	})
	if err != nil {
		return err
	}

	slog.Info("article updated", "id", id, "author", actor.OpenID)
	return nil
}

// DeleteArticle removes an article and its tag associations. Deleting an id
// that does not exist succeeds: the operation is idempotent.
func (s *Service) DeleteArticle(actor *models.User, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if err := s.articles.Delete(id); err != nil {
		return err
	}

	slog.Info("article deleted", "id", id, "author", actor.OpenID)
	return nil
}
