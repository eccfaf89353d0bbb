// Package offset provides page-number pagination over an in-memory list.
//
// The paginator turns a 1-based page number into a half-open index range
// over the unpinned notices and computes the total page count. It never
// clamps the page against the page count: an out-of-range page yields an
// empty slice, and callers decide which pages to offer.
//
// Example usage:
//
//	slice, totalPages := offset.Paginate(unpinned, page, offset.PageSize)
//
// or, when the index bounds are needed for numbering:
//
//	p := offset.New(page, offset.PageSize, len(unpinned))
//	rows := noticeboard.Compose(pinned, offset.Apply(p, unpinned), p.FirstIndex)
package offset

import (
	"github.com/nrfta/noticeboard-go"
)

// PageSize is the fixed number of unpinned notices shown per page.
const PageSize = 10

// Paginator holds the index arithmetic for one page.
type Paginator struct {
	// Page is the requested 1-based page number.
	Page int

	// PageSize is the number of unpinned items per page.
	PageSize int

	// FirstIndex is the inclusive start of the page range: LastIndex - PageSize.
	FirstIndex int

	// LastIndex is the exclusive end of the page range: Page * PageSize.
	LastIndex int

	// TotalPages is ceil(count / PageSize), 0 when count is 0.
	TotalPages int

	PageInfo noticeboard.PageInfo
}

// New creates a paginator for page over count unpinned items.
//
// A non-positive pageSize falls back to PageSize so the page count never
// divides by zero.
func New(page, pageSize, count int) Paginator {
	if pageSize <= 0 {
		pageSize = PageSize
	}

	lastIndex := page * pageSize
	firstIndex := lastIndex - pageSize
	totalPages := TotalPages(count, pageSize)

	return Paginator{
		Page:       page,
		PageSize:   pageSize,
		FirstIndex: firstIndex,
		LastIndex:  lastIndex,
		TotalPages: totalPages,
		PageInfo:   newPageNumberPageInfo(page, totalPages, count),
	}
}

// TotalPages returns ceil(count / pageSize), or 0 when count is 0.
func TotalPages(count, pageSize int) int {
	if count <= 0 {
		return 0
	}
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return (count + pageSize - 1) / pageSize
}

// Apply returns items[p.FirstIndex:p.LastIndex] with both bounds limited to
// the length of items. A range past the end yields a shorter or empty slice.
func Apply[T any](p Paginator, items []T) []T {
	first := bound(p.FirstIndex, len(items))
	last := bound(p.LastIndex, len(items))
	if first >= last {
		return []T{}
	}
	return items[first:last]
}

// Paginate slices items for page and returns the slice with the total page count.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	p := New(page, pageSize, len(items))
	return Apply(p, items), p.TotalPages
}

func bound(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// newPageNumberPageInfo creates PageInfo for page-number pagination.
func newPageNumberPageInfo(page, totalPages, totalCount int) noticeboard.PageInfo {
	count := totalCount

	return noticeboard.PageInfo{
		TotalCount:      func() (*int, error) { return &count, nil },
		TotalPages:      func() (int, error) { return totalPages, nil },
		CurrentPage:     func() (int, error) { return page, nil },
		HasNextPage:     func() (bool, error) { return page < totalPages, nil },
		HasPreviousPage: func() (bool, error) { return page > 1 && totalPages > 0, nil },
	}
}
