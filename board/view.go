package board

import (
	"fmt"

	"github.com/nrfta/noticeboard-go"
	"github.com/nrfta/noticeboard-go/offset"
)

// placeholderText is shown for an empty list that has no status message.
const placeholderText = "no notices"

// View is the render-ready state of the list. It is derived on every call to
// Controller.View and never stored.
type View struct {
	AppliedKeyword string
	StagedKeyword  string
	Page           int
	TotalPages     int

	// Rows holds every pinned notice followed by the current page of
	// unpinned notices.
	Rows []noticeboard.Row[noticeboard.Notice]

	Status  noticeboard.Status
	Message string

	// Banner announces an applied search; empty when no keyword is applied.
	Banner string

	// ShowPager is false when there are no unpinned notices.
	ShowPager bool

	// CanAuthor toggles the write affordance.
	CanAuthor bool

	// PageInfo is empty until the first fetch resolves.
	PageInfo noticeboard.PageInfo
	Metadata noticeboard.Metadata
}

// EmptyText is the text to show in place of rows when Rows is empty.
func (v View) EmptyText() string {
	if v.Message != "" {
		return v.Message
	}
	return placeholderText
}

// View partitions the filtered notices, slices the current page of unpinned
// notices and composes the numbered display list.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	pinned, unpinned := noticeboard.Partition(c.notices)
	p := offset.New(c.state.CurrentPage, offset.PageSize, len(unpinned))
	rows := noticeboard.Compose(pinned, offset.Apply(p, unpinned), p.FirstIndex)

	v := View{
		AppliedKeyword: c.state.AppliedKeyword,
		StagedKeyword:  c.state.StagedKeyword,
		Page:           c.state.CurrentPage,
		TotalPages:     p.TotalPages,
		Rows:           rows,
		Status:         c.status,
		Message:        c.status.Message(c.resolved),
		ShowPager:      p.TotalPages > 0,
		CanAuthor:      c.identity.CanAuthor(),
		PageInfo:       p.PageInfo,
		Metadata:       c.meta,
	}

	if c.status == noticeboard.StatusIdle {
		v.PageInfo = *noticeboard.NewEmptyPageInfo()
	}

	if c.state.AppliedKeyword != "" {
		v.Banner = fmt.Sprintf("search results for '%s'", c.state.AppliedKeyword)
	}

	return v
}
