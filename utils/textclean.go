package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText lowers a free-text description into the stable form used as the
// classification feature: lower-case, alphanumerics and single spaces only.
// Idempotent: CleanText(CleanText(s)) == CleanText(s).
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = nonAlnumPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
