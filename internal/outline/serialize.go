package outline

import "strings"

// LineBreak separates lines in serialized output regardless of the input style.
const LineBreak = "\r\n"

// Serialize renders list as a buffer that Parse reads back. Markers are
// written directly before the first line with no margin.
func Serialize(list List) string {
	rendered := make([]string, 0, len(list))
	for _, it := range list {
		rendered = append(rendered, Marker(it.Kind)+strings.Join(it.Lines, LineBreak))
	}
	return strings.Join(rendered, LineBreak)
}
