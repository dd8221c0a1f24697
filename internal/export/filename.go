// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"
	"unicode"
)

// maxTopicRunes caps how much of the topic makes it into a filename.
const maxTopicRunes = 20

// Filename builds a filesystem-safe name from a prefix, a free-form topic,
// and an extension. Every rune of the topic that is not a letter or digit
// becomes an underscore, and the topic is truncated to a fixed rune budget
// so Cyrillic topics do not blow past it in bytes.
func Filename(prefix, topic, ext string) string {
	var b strings.Builder
	count := 0
	for _, r := range topic {
		if count == maxTopicRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
		count++
	}
	safe := b.String()
	if safe == "" {
		safe = "untitled"
	}
	return prefix + "_" + safe + "." + ext
}
