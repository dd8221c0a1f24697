// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "testing"

func TestMarkupTags(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bold",
			line: "a **strong** word",
			want: "a <b>strong</b> word",
		},
		{
			name: "italic",
			line: "an *emphasized* word",
			want: "an <i>emphasized</i> word",
		},
		{
			name: "bold resolved before italic",
			line: "**bold** and *italic*",
			want: "<b>bold</b> and <i>italic</i>",
		},
		{
			name: "adjacent spans",
			line: "**раз***два*",
			want: "<b>раз</b><i>два</i>",
		},
		{
			name: "no markup",
			line: "plain text",
			want: "plain text",
		},
		{
			name: "unterminated markers survive",
			line: "broken **bold",
			want: "broken **bold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkupTags(tt.line); got != tt.want {
				t.Errorf("MarkupTags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("**Заголовок** с *акцентом*"); got != "Заголовок с акцентом" {
		t.Errorf("StripMarkup() = %q", got)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		topic  string
		ext    string
		want   string
	}{
		{
			name:   "spaces and punctuation replaced",
			prefix: "article",
			topic:  "SEO: без боли!",
			want:   "article_SEO__без_боли_.md",
			ext:    "md",
		},
		{
			name:   "truncated to twenty runes",
			prefix: "lead_magnet",
			topic:  "Очень длинное название документа",
			want:   "lead_magnet_Очень_длинное_назван.pdf",
			ext:    "pdf",
		},
		{
			name:   "empty topic",
			prefix: "broadcast",
			topic:  "",
			want:   "broadcast_untitled.html",
			ext:    "html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.prefix, tt.topic, tt.ext); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}
