package parser

import "regexp"

// regionMarker opens a doc comment: "/**" directly followed by a line break.
var regionMarker = regexp.MustCompile(`/\*\*[\r\n]+`)

// splitRegions cuts the file text at every doc comment opener. The marker is
// consumed and anything before the first marker is dropped.
func splitRegions(text string) []string {
	parts := regionMarker.Split(text, -1)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}
