// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from article titles.
package slug

import (
	"regexp"
	"strings"
)

// maxLen caps generated slugs to the column limit enforced at the API
// boundary.
const maxLen = 300

var (
	// invalidChars matches anything that isn't a lowercase letter, digit,
	// space, or hyphen.
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	// repeatedHyphens collapses runs of hyphens into one.
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Shipping Inkwell 1.0!" → "shipping-inkwell-10"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = invalidChars.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = repeatedHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	if len(result) > maxLen {
		result = strings.Trim(result[:maxLen], "-")
	}
	return result
}
