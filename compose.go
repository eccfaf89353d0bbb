package noticeboard

import "strconv"

// PinMarker is rendered in place of a row number for pinned notices.
const PinMarker = "📌"

// Marker labels a row of the display list: either the pin marker or a
// 1-based number counted across all pages of unpinned notices.
type Marker struct {
	Pinned bool
	Index  int
}

// String renders the marker for display.
func (m Marker) String() string {
	if m.Pinned {
		return PinMarker
	}
	return strconv.Itoa(m.Index)
}

// Row is one entry of a display list.
//
// Type parameter T is the item type, normally Notice.
type Row[T any] struct {
	// Marker is the pin marker or row number shown for this item.
	Marker Marker `json:"marker"`

	// Node is the item itself.
	Node T `json:"node"`
}

// Compose builds the display list for one page: every pinned item followed by
// the current page slice of unpinned items.
//
// firstIndex is the offset of slice within the full unpinned list (see
// offset.Paginator.FirstIndex). Pinned items occupy positions
// 0..len(pinned)-1 and are marked pinned; the unpinned item at combined
// position i is numbered firstIndex + (i - len(pinned)) + 1.
//
// Example, 2 pinned and page 2 of 12 unpinned (firstIndex 10):
//
//	📌 📌 11 12
func Compose[T any](pinned, slice []T, firstIndex int) []Row[T] {
	combined := make([]T, 0, len(pinned)+len(slice))
	combined = append(combined, pinned...)
	combined = append(combined, slice...)

	rows := make([]Row[T], 0, len(combined))
	for i, item := range combined {
		marker := Marker{Pinned: true}
		if i >= len(pinned) {
			marker = Marker{Index: firstIndex + (i - len(pinned)) + 1}
		}
		rows = append(rows, Row[T]{Marker: marker, Node: item})
	}

	return rows
}

// Nodes returns the items of rows in display order.
func Nodes[T any](rows []Row[T]) []T {
	nodes := make([]T, 0, len(rows))
	for _, r := range rows {
		nodes = append(nodes, r.Node)
	}
	return nodes
}
