// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import "testing"

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare array passes through",
			text: `[{"topic":"a"}]`,
			want: `[{"topic":"a"}]`,
		},
		{
			name: "leading prose stripped",
			text: "Вот ваш контент-план:\n[{\"topic\":\"a\"}]",
			want: `[{"topic":"a"}]`,
		},
		{
			name: "trailing commentary stripped",
			text: `[{"topic":"a"}] Надеюсь, план будет полезен!`,
			want: `[{"topic":"a"}]`,
		},
		{
			name: "code fence stripped",
			text: "```json\n[{\"topic\":\"a\"}]\n```",
			want: `[{"topic":"a"}]`,
		},
		{
			name: "widest span survives nested arrays",
			text: `prose [{"tags":["a","b"]},{"tags":["c"]}] more prose`,
			want: `[{"tags":["a","b"]},{"tags":["c"]}]`,
		},
		{
			name: "no brackets returns text unchanged",
			text: "I cannot produce a plan for that request.",
			want: "I cannot produce a plan for that request.",
		},
		{
			name: "closing before opening returns text unchanged",
			text: "] broken [",
			want: "] broken [",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSONArray(tt.text)
			if got != tt.want {
				t.Errorf("ExtractJSONArray() = %q, want %q", got, tt.want)
			}
		})
	}
}
