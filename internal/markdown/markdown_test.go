// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLBasics(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"paragraph", "Hello world", "<p>Hello world</p>"},
		{"emphasis", "Some *markdown* here", "<em>markdown</em>"},
		{"strikethrough", "~~gone~~", "<del>gone</del>"},
		{"autolink", "visit https://example.com now", `<a href="https://example.com"`},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestToHTMLHeadingAnchors(t *testing.T) {
	got, err := ToHTML("## Getting Started")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(got, `id="getting-started"`) {
		t.Errorf("expected auto heading id, got %q", got)
	}
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	// Article bodies are author-supplied and served to anonymous readers,
	// so raw HTML must not pass through.
	got, err := ToHTML(`before <script>alert("x")</script> after`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}

func TestToHTMLCodeHighlighting(t *testing.T) {
	got, err := ToHTML("```go\nfmt.Println(\"hi\")\n```")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(got, "<pre") {
		t.Errorf("expected highlighted code block, got %q", got)
	}
}
