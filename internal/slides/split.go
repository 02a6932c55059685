package slides

import (
	"regexp"
	"strings"
)

// Delimiter separates slides in the source document.
const Delimiter = "---"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Normalize converts \r\n and \r line endings to \n.
func Normalize(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Split partitions content on every occurrence of Delimiter, trims each
// segment and drops the ones left empty. Segment order is preserved.
// A document without a delimiter yields a single segment; a blank document
// yields none.
func Split(content string) []string {
	raw := strings.Split(strings.TrimSpace(content), Delimiter)

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}
