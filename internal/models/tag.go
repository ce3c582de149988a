// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Tag is a labeling entity, many-to-many with Article via the article_tags
// association table.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticleTag links one article to one tag. Rows are fully owned by the
// article's lifecycle: created, replaced, and deleted alongside article
// mutations.
type ArticleTag struct {
	ArticleID int64 `json:"articleId"`
	TagID     int64 `json:"tagId"`
}
