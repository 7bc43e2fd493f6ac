package parser

import (
	"regexp"
	"strings"
)

// exampleGutter is the star plus three spaces that indents example code.
var exampleGutter = regexp.MustCompile(`\s*\*\s\s\s`)

// isExampleTag reports whether the raw body is an @example block, i.e. the
// word "example" alone on the tag line.
func isExampleTag(body string) bool {
	rest, found := strings.CutPrefix(body, ExampleTagName)
	if !found {
		return false
	}
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// parseExampleTag keeps the example code lines with their relative
// indentation. A trailing line that still carries a star is comment
// decoration and is dropped.
func parseExampleTag(body string) Tag {
	rest := body[strings.IndexByte(body, '\n')+1:]
	rest = strings.TrimSuffix(strings.TrimSuffix(rest, "\n"), "\r")

	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		lines[i] = exampleGutter.ReplaceAllString(strings.TrimSuffix(line, "\r"), "")
	}
	if last := len(lines) - 1; strings.Contains(lines[last], "*") {
		lines = lines[:last]
	}

	return NewExampleTag(strings.Join(lines, "\n"))
}
