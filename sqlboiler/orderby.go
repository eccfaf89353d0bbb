package sqlboiler

import (
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"github.com/nrfta/noticeboard-go"
)

// DefaultOrderBy lists the newest notices first, with id as a tiebreaker so
// the order is stable across fetches.
var DefaultOrderBy = []noticeboard.OrderBy{
	{Column: "notice_date", Desc: true},
	{Column: "id", Desc: true},
}

// OrderByToQueryMods converts sort directives into SQLBoiler query mods.
// It returns no mods when orderBy is empty.
func OrderByToQueryMods(orderBy []noticeboard.OrderBy) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if len(orderBy) > 0 {
		mods = append(mods, qm.OrderBy(buildOrderByClause(orderBy)))
	}

	return mods
}

// buildOrderByClause constructs an ORDER BY clause from OrderBy directives.
// Assumes len(orderBy) > 0 (caller must verify).
//
// Example:
//
//	[]OrderBy{
//	    {Column: "notice_date", Desc: true},
//	    {Column: "id", Desc: false},
//	}
//	→ "notice_date DESC, id"
func buildOrderByClause(orderBy []noticeboard.OrderBy) string {
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		if o.Desc {
			parts[i] = o.Column + " DESC"
		} else {
			parts[i] = o.Column
		}
	}
	return strings.Join(parts, ", ")
}
