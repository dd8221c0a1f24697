// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns generated Markdown into distributable artifacts:
// paginated PDF documents and standalone HTML pages.
package export

import "regexp"

// boldPattern must run before italicPattern so ** spans are consumed before
// single * spans can match their leftover asterisks.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// MarkupTags converts inline Markdown emphasis to the <b>/<i> tags the PDF
// writer understands.
func MarkupTags(line string) string {
	line = boldPattern.ReplaceAllString(line, "<b>$1</b>")
	return italicPattern.ReplaceAllString(line, "<i>$1</i>")
}

// StripMarkup removes inline emphasis markers, keeping the text between
// them. Used for headings, which carry their own weight already.
func StripMarkup(line string) string {
	line = boldPattern.ReplaceAllString(line, "$1")
	return italicPattern.ReplaceAllString(line, "$1")
}
