// Package sqlboiler provides a notice board Fetcher backed by SQLBoiler.
//
// The fetcher loads the complete notice set in a stable order; keyword
// filtering and page slicing happen in memory on the board side. Any
// SQLBoiler model can be used by supplying a transform into
// noticeboard.Notice.
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Notice, error) {
//	        return models.Notices(mods...).All(ctx, db)
//	    },
//	    func(n *models.Notice) (noticeboard.Notice, error) {
//	        return n.ToNotice(), nil
//	    },
//	)
//
//	ctrl := board.New(fetcher, nil, board.WithIdentity(identity))
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/noticeboard-go"
)

// QueryFunc executes a SQLBoiler query and returns results.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.Notice).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// TransformFunc converts one SQLBoiler row into a notice.
type TransformFunc[T any] func(T) (noticeboard.Notice, error)

// Fetcher implements noticeboard.Fetcher for SQLBoiler queries.
type Fetcher[T any] struct {
	queryFunc QueryFunc[T]
	transform TransformFunc[T]
	orderBy   []noticeboard.OrderBy
}

// NewFetcher creates a new SQLBoiler fetcher.
//
// Parameters:
//   - queryFunc: Function that executes SQLBoiler queries with query mods
//   - transform: Function that maps a row to a noticeboard.Notice
//   - orderBy: Sort directives; DefaultOrderBy when none are given
func NewFetcher[T any](
	queryFunc QueryFunc[T],
	transform TransformFunc[T],
	orderBy ...noticeboard.OrderBy,
) noticeboard.Fetcher {
	if len(orderBy) == 0 {
		orderBy = DefaultOrderBy
	}
	return &Fetcher[T]{
		queryFunc: queryFunc,
		transform: transform,
		orderBy:   orderBy,
	}
}

// FetchAll loads every row and converts it into a notice.
func (f *Fetcher[T]) FetchAll(ctx context.Context) ([]noticeboard.Notice, error) {
	rows, err := f.queryFunc(ctx, OrderByToQueryMods(f.orderBy)...)
	if err != nil {
		return nil, errors.Wrap(err, "query notices")
	}

	notices := make([]noticeboard.Notice, 0, len(rows))
	for i, row := range rows {
		notice, err := f.transform(row)
		if err != nil {
			return nil, errors.Wrapf(err, "transform notice row %d", i)
		}
		notices = append(notices, notice)
	}

	return notices, nil
}
