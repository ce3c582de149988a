// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	return s == ArticleStatusDraft || s == ArticleStatusPublished
}

// Article is the central content entity. Drafts are invisible to public
// listings; PublishedAt is set exactly once, at the first transition to
// published, and never overwritten by later edits.
type Article struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Summary     *string       `json:"summary,omitempty"`
	Content     string        `json:"content"`
	CoverImage  *string       `json:"coverImage,omitempty"`
	CategoryID  int64         `json:"categoryId"`
	AuthorID    int64         `json:"authorId"`
	Status      ArticleStatus `json:"status"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
	ViewCount   int           `json:"viewCount"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

// CategoryStat is one row of the per-category published-article breakdown.
type CategoryStat struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// ArticleStats is the composite read-only view returned by the stats
// endpoint: total published count, per-category counts, and the most
// recently published articles.
type ArticleStats struct {
	TotalArticles  int            `json:"totalArticles"`
	Categories     []CategoryStat `json:"categories"`
	RecentArticles []Article      `json:"recentArticles"`
}
