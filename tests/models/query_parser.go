package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// QueryParams holds parsed query parameters extracted from SQLBoiler query mods.
type QueryParams struct {
	Where   string
	OrderBy string
}

// ParseQueryMods extracts query parameters from SQLBoiler query mods.
// Only WHERE and ORDER BY mods are recognised; anything else is ignored.
func ParseQueryMods(mods []qm.QueryMod) QueryParams {
	var params QueryParams

	for _, mod := range mods {
		str := strings.TrimSuffix(strings.Trim(fmt.Sprintf("%v", mod), "{}"), " []")

		switch reflect.TypeOf(mod).String() {
		case "qm.orderByQueryMod":
			params.OrderBy = str
		case "qm.whereQueryMod":
			params.Where = str
		}
	}

	return params
}

// BuildSelectQuery constructs a SELECT query with the given table, columns, and params.
func BuildSelectQuery(table, columns string, params QueryParams) string {
	query := fmt.Sprintf("SELECT %s FROM %s", columns, table)
	if params.Where != "" {
		query += " WHERE " + params.Where
	}
	if params.OrderBy != "" {
		query += " ORDER BY " + params.OrderBy
	}
	return query
}
