package parser

import "regexp"

var (
	// tagSeparator matches a gutter star followed by "@".
	tagSeparator = regexp.MustCompile(`\s*\*\s*@`)

	// tagComponents captures name, {type}, identifier and description of a
	// sanitized tag body.
	tagComponents = regexp.MustCompile(`(\w+)\s*(\{[^{}]*\})?\s?([^-]+)?\s?-?\s?(.*)?`)
)

// splitTags returns the free text before the first tag and the raw body of
// every tag, in source order.
func splitTags(comment string) (description string, bodies []string) {
	segments := tagSeparator.Split(comment, -1)
	return segments[0], segments[1:]
}

// parseTag interprets one raw tag body. ok is false when the body does not
// look like a tag at all.
func parseTag(body string) (tag Tag, ok bool) {
	if isExampleTag(body) {
		return parseExampleTag(body), true
	}

	m := tagComponents.FindStringSubmatch(sanitizeComment(body))
	if m == nil {
		return Tag{}, false
	}

	return NewGenericTag(
		normalizeField(m[1]),
		sanitizeType(normalizeField(m[2])),
		normalizeField(m[3]),
		normalizeField(m[4]),
	), true
}
