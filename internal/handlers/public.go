// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API surface: a public handler group
// for readers and an admin group for article mutations.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/markdown"
	"inkwell/internal/models"
)

// Public groups the unauthenticated read endpoints. Only published articles
// surface in listings; direct id/slug lookups return drafts too, matching
// the platform's long-standing read contract.
type Public struct {
	svc *blog.Service
}

// NewPublic creates a new Public handler group.
func NewPublic(svc *blog.Service) *Public {
	return &Public{svc: svc}
}

// ListArticles handles GET /api/articles. Query parameters: limit, offset,
// categoryId, tagId. Responds with {items, total}.
func (p *Public) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := defaultListLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "limit must be an integer")
			return
		}
		limit = clampLimit(n)
	}

	offset := 0
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeBadRequest(w, "offset must be a non-negative integer")
			return
		}
		offset = n
	}

	var categoryID, tagID *int64
	if raw := q.Get("categoryId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeBadRequest(w, "categoryId must be an integer")
			return
		}
		categoryID = &n
	}
	if raw := q.Get("tagId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeBadRequest(w, "tagId must be an integer")
			return
		}
		tagID = &n
	}

	list, err := p.svc.ListArticles(limit, offset, categoryID, tagID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// articleResponse is an article plus its tag ids and, on request, the
// rendered HTML body.
type articleResponse struct {
	models.Article
	TagIDs      []int64 `json:"tagIds"`
	ContentHTML string  `json:"contentHtml,omitempty"`
}

// GetArticleByID handles GET /api/articles/{id}. With ?render=html the
// response additionally carries the Markdown body rendered to HTML.
func (p *Public) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return
	}

	article, err := p.svc.GetArticleByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if article == nil {
		writeNotFound(w)
		return
	}

	p.writeArticle(w, r, article)
}

// GetArticleBySlug handles GET /api/articles/slug/{slug}.
func (p *Public) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := p.svc.GetArticleBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	if article == nil {
		writeNotFound(w)
		return
	}

	p.writeArticle(w, r, article)
}

// writeArticle assembles and writes the single-article response.
func (p *Public) writeArticle(w http.ResponseWriter, r *http.Request, article *models.Article) {
	tagIDs, err := p.svc.ArticleTagIDs(article.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := articleResponse{Article: *article, TagIDs: tagIDs}
	if r.URL.Query().Get("render") == "html" {
		html, err := markdown.ToHTML(article.Content)
		if err != nil {
			slog.Error("markdown render failed", "article", article.ID, "error", err)
		} else {
			resp.ContentHTML = html
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/articles/stats.
func (p *Public) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := p.svc.ArticleStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListCategories handles GET /api/categories.
func (p *Public) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetCategory handles GET /api/categories/{id}.
func (p *Public) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return
	}

	category, err := p.svc.GetCategory(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if category == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// ListTags handles GET /api/tags.
func (p *Public) ListTags(w http.ResponseWriter, r *http.Request) {
	items, err := p.svc.ListTags()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetTag handles GET /api/tags/{id}.
func (p *Public) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return
	}

	tag, err := p.svc.GetTag(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if tag == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}
