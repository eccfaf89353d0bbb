package noticeboard

import "context"

// Fetcher retrieves the complete notice set from a backend.
// Implementations return every notice, unfiltered and unpaginated. Keyword
// filtering and page slicing happen locally on the returned set.
//
// Example implementations:
//   - sqlboiler.Fetcher: notices loaded through SQLBoiler query mods
//   - rest.Client: notices loaded from the REST list endpoint
type Fetcher interface {
	// FetchAll returns all notices known to the backend.
	// An empty slice with a nil error means no notices exist.
	FetchAll(ctx context.Context) ([]Notice, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
//
// Example:
//
//	fetcher := noticeboard.FetcherFunc(func(ctx context.Context) ([]noticeboard.Notice, error) {
//	    return cache.Notices(), nil
//	})
type FetcherFunc func(ctx context.Context) ([]Notice, error)

// FetchAll calls f(ctx).
func (f FetcherFunc) FetchAll(ctx context.Context) ([]Notice, error) {
	return f(ctx)
}

// OrderBy represents a sort directive applied by storage-backed fetchers.
type OrderBy struct {
	// Column is the name of the column to sort by.
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}
