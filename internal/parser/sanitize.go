package parser

import (
	"regexp"
	"strings"
)

var (
	lineBreakPattern = regexp.MustCompile(`[\r\n]`)
	// A gutter star, or the closing "*/", with the whitespace around it.
	gutterPattern = regexp.MustCompile(`\s*\*/?\s*`)
)

// sanitizeComment flattens a chunk of comment text into a single line,
// dropping gutter stars and the comment terminator.
func sanitizeComment(comment string) string {
	flat := lineBreakPattern.ReplaceAllString(comment, " ")
	return strings.TrimSpace(gutterPattern.ReplaceAllString(flat, " "))
}

// normalizeField turns a possibly missing regexp group into a trimmed value.
func normalizeField(component string) string {
	return strings.TrimSpace(component)
}

// sanitizeType strips the braces around a tag type.
func sanitizeType(rawType string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(rawType)
}
