package model

import "geodraw/internal/graphic"

// Item is one datum of a List.
type Item struct {
	Name  string
	Value float64
	// HasValue is false for a datum whose value is missing.
	HasValue bool
	Styles   Styles
}

// List is the per-item dataset bound to a map series. Besides data it holds
// the visual colours assigned by a visual mapping step and the graphic
// element rendered for each item.
type List struct {
	items  []Item
	index  map[string]int
	visual []string
	elems  []*graphic.Group
}

func NewList(items []Item) *List {
	l := &List{
		items:  items,
		index:  make(map[string]int, len(items)),
		visual: make([]string, len(items)),
		elems:  make([]*graphic.Group, len(items)),
	}
	for i, it := range items {
		if _, dup := l.index[it.Name]; !dup {
			l.index[it.Name] = i
		}
	}
	return l
}

func (l *List) Count() int { return len(l.items) }

func (l *List) Name(idx int) string {
	if idx < 0 || idx >= len(l.items) {
		return ""
	}
	return l.items[idx].Name
}

func (l *List) Value(idx int) float64 {
	if idx < 0 || idx >= len(l.items) {
		return 0
	}
	return l.items[idx].Value
}

// HasValue reports whether idx carries a value.
func (l *List) HasValue(idx int) bool {
	return idx >= 0 && idx < len(l.items) && l.items[idx].HasValue
}

// IndexOfName returns the first index named name, or -1.
func (l *List) IndexOfName(name string) int {
	if i, ok := l.index[name]; ok {
		return i
	}
	return -1
}

// ItemStyle returns the item's configured style variant.
func (l *List) ItemStyle(idx int, kind StyleKind) ItemStyle {
	if idx < 0 || idx >= len(l.items) {
		return ItemStyle{}
	}
	return l.items[idx].Styles.Of(kind)
}

// SetVisualColor records the colour computed for idx by a visual mapping.
func (l *List) SetVisualColor(idx int, color string) {
	if idx >= 0 && idx < len(l.visual) {
		l.visual[idx] = color
	}
}

// VisualColor returns the assigned visual colour, if any.
func (l *List) VisualColor(idx int) (string, bool) {
	if idx < 0 || idx >= len(l.visual) || l.visual[idx] == "" {
		return "", false
	}
	return l.visual[idx], true
}

// SetItemGraphicEl binds el to idx and tags it with the index.
func (l *List) SetItemGraphicEl(idx int, el *graphic.Group) {
	if idx < 0 || idx >= len(l.elems) {
		return
	}
	if el != nil {
		el.SetDataIndex(idx)
	}
	l.elems[idx] = el
}

func (l *List) ItemGraphicEl(idx int) *graphic.Group {
	if idx < 0 || idx >= len(l.elems) {
		return nil
	}
	return l.elems[idx]
}

// ResetItemGraphicEls drops every element binding.
func (l *List) ResetItemGraphicEls() {
	clear(l.elems)
}

// EachItemGraphicEl calls fn for every item that has an element.
func (l *List) EachItemGraphicEl(fn func(el *graphic.Group, idx int)) {
	for i, el := range l.elems {
		if el != nil {
			fn(el, i)
		}
	}
}
