package outline

import "unicode/utf16"

// AddItem appends item to list and returns the new list. A trailing
// placeholder (see isPlaceholder) is replaced instead. Otherwise the previous
// last item loses its final two lines, which are the blank lines that opened
// item. The input list and its items are never modified.
func AddItem(list List, item Item) List {
	if len(list) == 0 {
		return List{item}
	}
	last := list[len(list)-1]
	if last.Kind == KindNone && isPlaceholder(last) {
		out := make(List, 0, len(list))
		out = append(out, list[:len(list)-1]...)
		return append(out, item)
	}

	closed := Item{Kind: last.Kind, Lines: []string{}}
	if n := len(last.Lines); n > 2 {
		closed.Lines = append(closed.Lines, last.Lines[:n-2]...)
	}
	out := make(List, 0, len(list)+1)
	out = append(out, list[:len(list)-1]...)
	return append(out, closed, item)
}

// isPlaceholder reports true when no line is a single code unit long while
// the first line is empty. This is narrower than "all lines are blank": an
// item whose first line has content always counts as a placeholder.
func isPlaceholder(it Item) bool {
	for _, line := range it.Lines {
		if utf16Len(line) == 1 && it.Lines[0] == "" {
			return false
		}
	}
	return true
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
