package noticeboard

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	// PinnedFlag is the only Pin value that marks a notice as pinned.
	PinnedFlag = 1

	// DefaultWriter is shown when a notice has no writer.
	DefaultWriter = "Administrator"
)

// Notice is a single notice board record as returned by a Fetcher.
// Notices are treated as immutable once fetched.
type Notice struct {
	ID         string      `boil:"id" json:"noticeId"`
	Title      string      `boil:"title" json:"title"`
	Content    string      `boil:"content" json:"content"`
	Writer     null.String `boil:"writer" json:"writer"`
	NoticeDate time.Time   `boil:"notice_date" json:"noticeDate"`
	ViewCount  int         `boil:"view_count" json:"viewCount"`
	Pin        int         `boil:"pin" json:"pin"`
}

// IsPinned reports whether the notice carries the pinned sentinel.
// Any other value, including other non-zero values, is unpinned.
func (n Notice) IsPinned() bool {
	return n.Pin == PinnedFlag
}

// Author returns the writer, or DefaultWriter when none is set.
func (n Notice) Author() string {
	if !n.Writer.Valid || n.Writer.String == "" {
		return DefaultWriter
	}
	return n.Writer.String
}
