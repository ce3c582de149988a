// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
)

// Admin groups the article mutation endpoints. Every request must carry a
// resolved identity; the service layer enforces the admin role on top.
type Admin struct {
	svc *blog.Service
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(svc *blog.Service) *Admin {
	return &Admin{svc: svc}
}

// articlePayload is the request body for create and update. Pointer fields
// distinguish "omitted" from "set to zero value", which update semantics
// depend on: an omitted tagIds leaves associations untouched, an empty one
// clears them.
type articlePayload struct {
	Title      *string `json:"title"`
	Slug       *string `json:"slug"`
	Summary    *string `json:"summary"`
	Content    *string `json:"content"`
	CoverImage *string `json:"coverImage"`
	CategoryID *int64  `json:"categoryId"`
	Status     *string `json:"status"`
	TagIDs     []int64 `json:"tagIds"`
}

// CreateArticle handles POST /api/admin/articles. Responds with {id}.
func (a *Admin) CreateArticle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromCtx(r.Context())
	if actor == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var body articlePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if msg := validateArticleFields(body.Title, body.Slug, body.Content, body.Summary, body.TagIDs); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	in := blog.CreateArticleInput{
		Summary:    body.Summary,
		CoverImage: body.CoverImage,
		TagIDs:     body.TagIDs,
	}
	if body.Title != nil {
		in.Title = *body.Title
	}
	if body.Slug != nil {
		in.Slug = *body.Slug
	}
	if body.Content != nil {
		in.Content = *body.Content
	}
	if body.CategoryID != nil {
		in.CategoryID = *body.CategoryID
	}
	if body.Status != nil {
		in.Status = models.ArticleStatus(*body.Status)
	}

	created, err := a.svc.CreateArticle(actor, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": created.ID})
}

// UpdateArticle handles PUT /api/admin/articles/{id}. Only fields present in
// the body change. Responds with {success:true}.
func (a *Admin) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromCtx(r.Context())
	if actor == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return
	}

	var body articlePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if msg := validateArticleFields(body.Title, body.Slug, body.Content, body.Summary, body.TagIDs); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	in := blog.UpdateArticleInput{
		Title:      body.Title,
		Slug:       body.Slug,
		Summary:    body.Summary,
		Content:    body.Content,
		CoverImage: body.CoverImage,
		CategoryID: body.CategoryID,
		TagIDs:     body.TagIDs,
	}
	if body.Status != nil {
		status := models.ArticleStatus(*body.Status)
		in.Status = &status
	}

	if err := a.svc.UpdateArticle(actor, id, in); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteArticle handles DELETE /api/admin/articles/{id}. Deleting an
// unknown id still succeeds. Responds with {success:true}.
func (a *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromCtx(r.Context())
	if actor == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return
	}

	if err := a.svc.DeleteArticle(actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
