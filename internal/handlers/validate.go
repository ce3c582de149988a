package handlers

import "unicode/utf8"

// Validation limits for article fields, enforced at the transport boundary.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxContentLen = 200_000
	maxSummaryLen = 1_000
	maxTagCount   = 50

	// maxListLimit caps page sizes; the data layer trusts its callers, so
	// the bound lives here.
	maxListLimit     = 100
	defaultListLimit = 10
)

// validateArticleFields checks optional field lengths and returns the first
// error found, or an empty string. Presence of required fields is the
// service layer's concern; only size limits live here.
func validateArticleFields(title, slug, content, summary *string, tagIDs []int64) string {
	if title != nil && utf8.RuneCountInString(*title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if slug != nil && utf8.RuneCountInString(*slug) > maxSlugLen {
		return "slug is too long (max 300 characters)"
	}
	if content != nil && utf8.RuneCountInString(*content) > maxContentLen {
		return "content is too long (max 200,000 characters)"
	}
	if summary != nil && utf8.RuneCountInString(*summary) > maxSummaryLen {
		return "summary is too long (max 1,000 characters)"
	}
	if len(tagIDs) > maxTagCount {
		return "too many tags (max 50)"
	}
	return ""
}

// clampLimit normalizes a requested page size into [1, maxListLimit],
// falling back to the default when unset or invalid.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
