package handlers

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateArticleFields(t *testing.T) {
	tests := []struct {
		name    string
		title   *string
		slug    *string
		content *string
		summary *string
		tagIDs  []int64
		wantErr bool
	}{
		{name: "all nil"},
		{name: "within limits", title: strPtr("Hello"), content: strPtr("Body")},
		{name: "title at limit", title: strPtr(strings.Repeat("x", 300))},
		{name: "title too long", title: strPtr(strings.Repeat("x", 301)), wantErr: true},
		{name: "multibyte title counts runes", title: strPtr(strings.Repeat("ä", 300))},
		{name: "slug too long", slug: strPtr(strings.Repeat("x", 301)), wantErr: true},
		{name: "content too long", content: strPtr(strings.Repeat("x", 200_001)), wantErr: true},
		{name: "summary too long", summary: strPtr(strings.Repeat("x", 1_001)), wantErr: true},
		{name: "too many tags", tagIDs: make([]int64, 51), wantErr: true},
		{name: "max tags ok", tagIDs: make([]int64, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateArticleFields(tt.title, tt.slug, tt.content, tt.summary, tt.tagIDs)
			if tt.wantErr && msg == "" {
				t.Error("expected an error message")
			}
			if !tt.wantErr && msg != "" {
				t.Errorf("unexpected error: %q", msg)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, defaultListLimit},
		{-5, defaultListLimit},
		{1, 1},
		{50, 50},
		{maxListLimit, maxListLimit},
		{maxListLimit + 1, maxListLimit},
		{100000, maxListLimit},
	}

	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
