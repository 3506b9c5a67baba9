package outline

import (
	"strings"
	"unicode"
)

// MarkerWidth is the fixed width of every item marker.
const MarkerWidth = 3

const (
	MarkerOpen = "[_]"
	MarkerDone = "[x]"
)

// markers is checked in order; the first prefix match wins.
var markers = []struct {
	literal string
	kind    Kind
}{
	{MarkerOpen, KindOpen},
	{MarkerDone, KindDone},
}

// Classify reports the kind a line starts and the content that follows the
// marker. Lines without a marker are returned unchanged as KindNone.
func Classify(line string) (Kind, string) {
	for _, m := range markers {
		if strings.HasPrefix(line, m.literal) {
			return m.kind, trimLeadingSpace(line[MarkerWidth:])
		}
	}
	return KindNone, line
}

// Marker returns the literal prefix written for kind, or "" for KindNone.
func Marker(kind Kind) string {
	for _, m := range markers {
		if m.kind == kind {
			return m.literal
		}
	}
	return ""
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
