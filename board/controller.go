// Package board drives a notice board list: the staged and applied search
// keyword, the current page, and the fetch that feeds them.
//
// Example usage:
//
//	ctrl := board.New(fetcher, history.RestoreFromToken(token),
//	    board.WithIdentity(board.Identity{UserID: "u-1", Role: board.RoleAdmin}),
//	    board.WithLogger(logger),
//	)
//	if err := ctrl.Mount(ctx); err != nil {
//	    // the view shows the fetch failure message
//	}
//	ctrl.Keystroke("exam")
//	_ = ctrl.CommitSearch(ctx)
//	view := ctrl.View()
package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nrfta/noticeboard-go"
	"github.com/nrfta/noticeboard-go/history"
	"github.com/nrfta/noticeboard-go/metrics"
	"github.com/nrfta/noticeboard-go/offset"
)

// KeyEnter is the key name that commits a search in KeyDown.
const KeyEnter = "Enter"

// State is the query state owned by a Controller.
type State struct {
	// AppliedKeyword is the keyword currently used for filtering and display.
	AppliedKeyword string

	// StagedKeyword is the keyword as typed, not yet committed.
	StagedKeyword string

	// CurrentPage is the 1-based page of unpinned notices.
	CurrentPage int
}

// Request identifies one fetch. It snapshots the applied keyword and a
// sequence number at the time the fetch was issued, so a late result can be
// recognised as stale.
type Request struct {
	Keyword  string
	Sequence uint64
}

// Controller owns the query state of one notice board list.
//
// Transitions are synchronous and safe for concurrent use. Fetches run
// outside the lock; a fetch result is only applied when its Request still
// matches the applied keyword and no newer request has been applied.
type Controller struct {
	fetcher noticeboard.Fetcher
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu       sync.Mutex
	identity Identity
	state    State
	notices  []noticeboard.Notice
	status   noticeboard.Status
	resolved string
	meta     noticeboard.Metadata
	issued   uint64
	applied  uint64
}

// New creates a controller seeded from an optional restore point.
// The restore point is read once here; its page is never re-applied.
func New(fetcher noticeboard.Fetcher, restore *history.RestorePoint, opts ...Option) *Controller {
	keyword, page := history.Seed(restore)

	c := &Controller{
		fetcher: fetcher,
		logger:  slog.New(slog.DiscardHandler),
		state: State{
			AppliedKeyword: keyword,
			StagedKeyword:  keyword,
			CurrentPage:    page,
		},
		status: noticeboard.StatusIdle,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a copy of the current query state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Keystroke replaces the staged keyword. Nothing else changes.
func (c *Controller) Keystroke(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.StagedKeyword = text
}

// BeginSearch commits the staged keyword: it becomes the applied keyword and
// the page resets to 1. The returned request must be passed to Load unless
// Identified reports false; the first Identify then fetches instead.
func (c *Controller) BeginSearch() Request {
	req, _ := c.beginSearch()
	return req
}

func (c *Controller) beginSearch() (Request, bool) {
	c.mu.Lock()
	c.state.AppliedKeyword = c.state.StagedKeyword
	c.state.CurrentPage = 1
	req := c.nextRequest()
	identified := c.identity.UserID != ""
	c.mu.Unlock()

	c.metrics.IncrementSearchesCommitted()
	c.logger.Debug("search committed", "keyword", req.Keyword, "sequence", req.Sequence)
	return req, identified
}

// Identified reports whether a user id is known. No fetch runs before one is.
func (c *Controller) Identified() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity.UserID != ""
}

// Request issues a fetch request for the current applied keyword without
// changing any state. Use it to refresh the list.
func (c *Controller) Request() Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextRequest()
}

func (c *Controller) nextRequest() Request {
	c.issued++
	return Request{Keyword: c.state.AppliedKeyword, Sequence: c.issued}
}

// CommitSearch commits the staged keyword and fetches. Without an identity
// the keyword is still applied but the fetch waits for Identify.
func (c *Controller) CommitSearch(ctx context.Context) error {
	req, identified := c.beginSearch()
	if !identified {
		return nil
	}
	return c.Load(ctx, req)
}

// EnterKey is equivalent to CommitSearch.
func (c *Controller) EnterKey(ctx context.Context) error {
	return c.CommitSearch(ctx)
}

// KeyDown commits the search when key is KeyEnter and ignores other keys.
func (c *Controller) KeyDown(ctx context.Context, key string) error {
	if key != KeyEnter {
		return nil
	}
	return c.CommitSearch(ctx)
}

// ChangePage moves to page n. No fetch happens: pagination slices the
// already filtered set. Pages below 1 are rejected.
func (c *Controller) ChangePage(n int) error {
	if n < 1 {
		return &noticeboard.InvalidPageError{Requested: n}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.CurrentPage = n
	return nil
}

// Restore hydrates the staged keyword from an externally supplied restore
// point. Only a non-empty keyword that differs from the staged one is taken,
// and the page is ignored. It reports whether the staged keyword changed.
func (c *Controller) Restore(rp *history.RestorePoint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	staged, changed := history.Hydrate(rp, c.state.StagedKeyword)
	if changed {
		c.state.StagedKeyword = staged
	}
	return changed
}

// Mount performs the initial fetch when an identity is known.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.identity.UserID == "" {
		c.mu.Unlock()
		return nil
	}
	req := c.nextRequest()
	c.mu.Unlock()

	return c.Load(ctx, req)
}

// Identify records the signed-in identity. A new, non-empty user id
// triggers a fetch for the applied keyword.
func (c *Controller) Identify(ctx context.Context, identity Identity) error {
	c.mu.Lock()
	changed := identity.UserID != c.identity.UserID
	c.identity = identity
	if !changed || identity.UserID == "" {
		c.mu.Unlock()
		return nil
	}
	req := c.nextRequest()
	c.mu.Unlock()

	return c.Load(ctx, req)
}

// Load runs the fetch for req and applies its result.
//
// A fetch failure that is applied returns a *noticeboard.FetchError and
// clears the list. A stale result is discarded and returns nil.
func (c *Controller) Load(ctx context.Context, req Request) error {
	start := time.Now()
	notices, err := c.fetcher.FetchAll(ctx)

	outcome := c.apply(req, notices, err, time.Since(start))
	c.metrics.ObserveFetch(start, outcome)

	if outcome == metrics.OutcomeError {
		return &noticeboard.FetchError{Err: err}
	}
	return nil
}

// Resolve applies a result fetched outside the controller for req.
// It reports whether the result was applied rather than discarded as stale.
func (c *Controller) Resolve(req Request, notices []noticeboard.Notice, err error) bool {
	outcome := c.apply(req, notices, err, 0)
	c.metrics.ObserveFetch(time.Now(), outcome)
	return outcome != metrics.OutcomeStale
}

func (c *Controller) apply(req Request, notices []noticeboard.Notice, fetchErr error, elapsed time.Duration) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Keyword != c.state.AppliedKeyword || req.Sequence < c.applied {
		c.meta.StaleDiscarded++
		c.logger.Debug("discarding stale notice fetch",
			"keyword", req.Keyword,
			"applied_keyword", c.state.AppliedKeyword,
			"sequence", req.Sequence,
		)
		return metrics.OutcomeStale
	}
	c.applied = req.Sequence
	c.resolved = req.Keyword

	if fetchErr != nil {
		c.notices = nil
		c.status = noticeboard.StatusFetchFailed
		c.meta = noticeboard.Metadata{
			FetchTimeMs:    elapsed.Milliseconds(),
			StaleDiscarded: c.meta.StaleDiscarded,
		}
		c.logger.Warn("notice fetch failed", "keyword", req.Keyword, "error", fetchErr)
		return metrics.OutcomeError
	}

	filtered := noticeboard.Filter(notices, req.Keyword)
	c.notices = filtered
	c.status = noticeboard.ResolveStatus(len(filtered), req.Keyword)
	c.meta = noticeboard.Metadata{
		ItemsExamined:  len(notices),
		ItemsMatched:   len(filtered),
		FetchTimeMs:    elapsed.Milliseconds(),
		StaleDiscarded: c.meta.StaleDiscarded,
	}
	c.clampPage()

	return metrics.OutcomeOK
}

// clampPage keeps CurrentPage within [1, max(1, totalPages)] after the
// notice set changed.
func (c *Controller) clampPage() {
	_, unpinned := noticeboard.Partition(c.notices)
	limit := max(offset.TotalPages(len(unpinned), offset.PageSize), 1)

	if c.state.CurrentPage > limit {
		c.logger.Debug("clamping page to last page",
			"page", c.state.CurrentPage,
			"total_pages", limit,
		)
		c.state.CurrentPage = limit
	}
}

// Select returns the hand-off for opening the notice with the given id.
// The bool is false when no notice with that id is in the filtered set.
func (c *Controller) Select(id string) (history.Handoff, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handoff := history.Handoff{
		RecordID: id,
		Page:     c.state.CurrentPage,
		Keyword:  c.state.AppliedKeyword,
	}

	for _, n := range c.notices {
		if n.ID == id {
			return handoff, true
		}
	}
	return handoff, false
}
