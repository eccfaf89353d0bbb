package noticeboard

// PageInfo contains metadata about the current page of a display list.
// It uses function fields to allow lazy evaluation, matching how callers
// resolve pagination metadata on demand.
//
// All functions return both a value and an error so implementations backed
// by expensive lookups can report failures.
type PageInfo struct {
	TotalCount      func() (*int, error)
	TotalPages      func() (int, error)
	CurrentPage     func() (int, error)
	HasPreviousPage func() (bool, error)
	HasNextPage     func() (bool, error)
}

// NewEmptyPageInfo returns an empty instance of PageInfo. Useful before the
// first fetch resolves, when nothing is known about the notice set yet.
func NewEmptyPageInfo() *PageInfo {
	return &PageInfo{
		TotalCount:      func() (*int, error) { return nil, nil },
		TotalPages:      func() (int, error) { return 0, nil },
		CurrentPage:     func() (int, error) { return 1, nil },
		HasPreviousPage: func() (bool, error) { return false, nil },
		HasNextPage:     func() (bool, error) { return false, nil },
	}
}

// Metadata provides observability information about the last applied fetch.
type Metadata struct {
	// ItemsExamined is the number of notices returned by the fetcher.
	ItemsExamined int

	// ItemsMatched is the number of notices left after keyword filtering.
	ItemsMatched int

	// FetchTimeMs is the time spent in the fetcher.
	FetchTimeMs int64

	// StaleDiscarded counts fetch results dropped because a newer search
	// superseded them before they resolved.
	StaleDiscarded int
}
