package outline

import "strings"

// Parse folds text into an outline. Any of "\r\n", "\r" or "\n" ends a line
// and empty lines are kept, including one after a trailing break.
//
// Three blank lines in a row open a new OPEN item (the blank-gap rule).
func Parse(text string) List {
	list := List{{Kind: KindNone, Lines: []string{}}}
	for _, raw := range SplitLines(text) {
		kind, rest := Classify(raw)
		if kind.IsTask() {
			list = AddItem(list, Item{Kind: kind, Lines: []string{rest}})
			continue
		}
		last := len(list) - 1
		if raw == "" && endsWithBlankGap(list[last].Lines) {
			list = AddItem(list, Item{Kind: KindOpen, Lines: []string{""}})
			continue
		}
		list[last].Lines = append(list[last].Lines, raw)
	}
	return list
}

// SplitLines splits text on every supported line break.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func endsWithBlankGap(lines []string) bool {
	n := len(lines)
	return n >= 2 && lines[n-1] == "" && lines[n-2] == ""
}
