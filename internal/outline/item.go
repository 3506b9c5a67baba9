// Package outline converts a text buffer into an ordered list of outline
// items and back.
package outline

import "slices"

type Kind string

const (
	KindNone Kind = "none"
	KindOpen Kind = "open"
	KindDone Kind = "done"
)

// IsTask reports whether items of this kind carry a marker.
func (k Kind) IsTask() bool {
	return k == KindOpen || k == KindDone
}

type Item struct {
	Kind  Kind
	Lines []string
}

// Clone returns a copy of the item that shares no backing storage with it.
func (it Item) Clone() Item {
	return Item{Kind: it.Kind, Lines: slices.Clone(it.Lines)}
}

// Equal treats nil and empty line slices as equal.
func (it Item) Equal(other Item) bool {
	return it.Kind == other.Kind && slices.Equal(it.Lines, other.Lines)
}

// List is never empty once produced by Parse.
type List []Item

func (l List) Equal(other List) bool {
	return slices.EqualFunc(l, other, Item.Equal)
}

func (l List) Clone() List {
	out := make(List, len(l))
	for i, it := range l {
		out[i] = it.Clone()
	}
	return out
}

// Empty is the list an empty document parses to.
func Empty() List {
	return List{{Kind: KindNone, Lines: []string{""}}}
}
