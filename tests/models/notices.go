package models

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"github.com/nrfta/noticeboard-go"
)

// Notice is an object representing the database table.
type Notice struct {
	ID         string      `boil:"id" json:"id"`
	Title      string      `boil:"title" json:"title"`
	Content    string      `boil:"content" json:"content"`
	Writer     null.String `boil:"writer" json:"writer"`
	NoticeDate time.Time   `boil:"notice_date" json:"notice_date"`
	ViewCount  int         `boil:"view_count" json:"view_count"`
	Pin        int         `boil:"pin" json:"pin"`
}

const (
	noticeTable   = "notices"
	noticeColumns = "id, title, content, writer, notice_date, view_count, pin"
)

type noticeQuery struct {
	mods []qm.QueryMod
}

// Notices returns a new query against the notices table.
func Notices(mods ...qm.QueryMod) noticeQuery {
	return noticeQuery{mods: mods}
}

// All returns all Notice records from the query.
func (q noticeQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Notice, error) {
	params := ParseQueryMods(q.mods)
	query := BuildSelectQuery(noticeTable, noticeColumns, params)

	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []*Notice
	for rows.Next() {
		n := &Notice{}
		err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Writer, &n.NoticeDate, &n.ViewCount, &n.Pin)
		if err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// ToNotice converts the row into a board notice.
func (n *Notice) ToNotice() (noticeboard.Notice, error) {
	return noticeboard.Notice{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Writer:     n.Writer,
		NoticeDate: n.NoticeDate,
		ViewCount:  n.ViewCount,
		Pin:        n.Pin,
	}, nil
}
