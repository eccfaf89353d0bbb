// Package history carries notice board view state across navigation.
//
// A Handoff is produced when a notice is opened, so that going back can
// rebuild the list exactly as it was. The list side consumes it as a
// RestorePoint. Hydration is one-way: a restore point seeds the list state
// at construction, and afterwards it can only replace the staged keyword,
// never the page.
package history

// RestorePoint is the (keyword, page) pair a list view is rebuilt from.
type RestorePoint struct {
	Keyword string `json:"keyword,omitempty"`
	Page    int    `json:"page,omitempty"`
}

// Handoff is passed to the detail view when a notice is selected.
type Handoff struct {
	RecordID string `json:"noticeId"`
	Page     int    `json:"page"`
	Keyword  string `json:"keyword"`
}

// RestorePoint returns the restore point a "back" navigation should use.
func (h Handoff) RestorePoint() *RestorePoint {
	return &RestorePoint{
		Keyword: h.Keyword,
		Page:    h.Page,
	}
}

// Seed returns the initial keyword and page for a list view.
// With no restore point, or a non-positive page, the page is 1.
func Seed(rp *RestorePoint) (keyword string, page int) {
	if rp == nil {
		return "", 1
	}

	page = rp.Page
	if page < 1 {
		page = 1
	}
	return rp.Keyword, page
}

// Hydrate returns the staged keyword after observing rp.
//
// Only a non-empty keyword that differs from staged is taken; the bool
// reports whether it was. The inequality guard keeps repeated hydration
// from looping or clobbering later edits with the same value.
func Hydrate(rp *RestorePoint, staged string) (string, bool) {
	if rp == nil || rp.Keyword == "" || rp.Keyword == staged {
		return staged, false
	}
	return rp.Keyword, true
}
