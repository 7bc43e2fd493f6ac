package parser

import (
	"strings"
	"unicode"
)

// lineKind classifies a single line of a region.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineCode
)

func classifyLine(line string) lineKind {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case trimmed == "":
		return lineBlank
	case trimmed[0] == '*':
		return lineComment
	default:
		return lineCode
	}
}

// splitLines splits text into lines, keeping each line's terminator.
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// extractRegion separates a region into its comment lines and its code
// lines. Blank lines count as code once the first code line has been seen
// and are dropped before that. ok is false when either part is empty.
func extractRegion(fragment string) (comment, code string, ok bool) {
	var commentText, codeText strings.Builder
	seenComment, inCode := false, false

	for _, line := range splitLines(fragment) {
		switch classifyLine(line) {
		case lineComment:
			commentText.WriteString(line)
			seenComment = true
		case lineCode:
			codeText.WriteString(line)
			inCode = true
		case lineBlank:
			if inCode {
				codeText.WriteString(line)
			}
		}
	}

	if !seenComment || !inCode {
		return "", "", false
	}
	return commentText.String(), codeText.String(), true
}
