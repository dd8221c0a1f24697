// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package content turns prompt templates and model output into validated
// content artifacts: structured content plans, broadcast posts, lead
// magnets, and SEO articles.
package content

import "strings"

// ExtractJSONArray cuts the widest bracketed span out of model output:
// everything from the first '[' through the last ']'. Models routinely wrap
// the requested JSON in prose, code fences, or trailing commentary, and the
// widest span survives nested arrays inside the payload. When no such span
// exists the text is returned unchanged so the JSON decoder produces the
// error, keeping the raw output attached to it.
func ExtractJSONArray(text string) string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
