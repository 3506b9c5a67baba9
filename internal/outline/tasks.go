package outline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrItemOutOfRange = errors.New("outline: item out of range")
	ErrNotTask        = errors.New("outline: item is not a task")
)

type Summary struct {
	Open  int
	Done  int
	Notes int
}

func (s Summary) Tasks() int { return s.Open + s.Done }

func Summarize(list List) Summary {
	var s Summary
	for _, it := range list {
		switch it.Kind {
		case KindOpen:
			s.Open++
		case KindDone:
			s.Done++
		default:
			s.Notes++
		}
	}
	return s
}

// Toggle flips item n (1-based) between open and done on a copy of list.
func Toggle(list List, n int) (List, error) {
	if n < 1 || n > len(list) {
		return nil, fmt.Errorf("%w: %d of %d", ErrItemOutOfRange, n, len(list))
	}
	out := list.Clone()
	it := &out[n-1]
	switch it.Kind {
	case KindOpen:
		it.Kind = KindDone
	case KindDone:
		it.Kind = KindOpen
	default:
		return nil, fmt.Errorf("%w: %d", ErrNotTask, n)
	}
	return out, nil
}

// Markdown renders list as a GitHub-flavored task list. Notes become plain
// paragraphs and continuation lines of a task are indented under it.
func Markdown(list List) string {
	var b strings.Builder
	prevTask := false
	for _, it := range list {
		text := strings.Join(it.Lines, "\n")
		if !it.Kind.IsTask() && strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			if it.Kind.IsTask() && prevTask {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		prevTask = it.Kind.IsTask()
		if !prevTask {
			b.WriteString(strings.TrimSpace(text))
			continue
		}
		box := "[ ]"
		if it.Kind == KindDone {
			box = "[x]"
		}
		first := ""
		if len(it.Lines) > 0 {
			first = it.Lines[0]
		}
		b.WriteString("- " + box + " " + first)
		for _, line := range it.Lines[min(1, len(it.Lines)):] {
			if line == "" {
				continue
			}
			b.WriteString("\n  " + line)
		}
	}
	return b.String()
}
