// Package query turns generic list parameters into SQL fragments shared by
// every repository: a WHERE predicate built from a free-text search term plus
// exact-match filters, deterministic ordering, and LIMIT/OFFSET slicing.
package query

import (
	"fmt"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	defaultSortColumn = "created_at"
	defaultSortOrder  = "DESC"
)

// Options carries the raw pagination parameters of a list request.
type Options struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Slice is the resolved pagination window.
type Slice struct {
	Page    int
	Limit   int
	Offset  int
	OrderBy string
}

// Resolve normalises the options against a whitelist of sortable columns.
// sortable maps request-facing sort keys to qualified column names; unknown
// keys fall back to the created_at column named by fallback.
func (o Options) Resolve(sortable map[string]string, fallback string) Slice {
	page := o.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := o.Limit
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	column, ok := sortable[o.SortBy]
	if !ok {
		column = fallback
	}
	if column == "" {
		column = defaultSortColumn
	}

	order := strings.ToUpper(o.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = defaultSortOrder
	}

	return Slice{
		Page:    page,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		OrderBy: fmt.Sprintf("%s %s", column, order),
	}
}

// Builder accumulates WHERE conditions with positional placeholders. The zero
// value is ready to use; an empty builder yields a match-all predicate.
type Builder struct {
	conds []string
	args  []interface{}
}

// NewBuilder returns a Builder pre-seeded with the given arguments, so
// callers can reserve placeholders for fragments outside the WHERE clause
// (e.g. join conditions).
func NewBuilder(args ...interface{}) *Builder {
	return &Builder{args: args}
}

// Equal appends an exact-match equality condition for the column.
func (b *Builder) Equal(column string, value interface{}) *Builder {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// Search appends a case-insensitive substring disjunction across the given
// columns. A blank term is a no-op.
func (b *Builder) Search(term string, columns ...string) *Builder {
	if strings.TrimSpace(term) == "" || len(columns) == 0 {
		return b
	}
	b.args = append(b.args, "%"+strings.ToLower(term)+"%")
	placeholder := len(b.args)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE $%d", column, placeholder))
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Where renders the accumulated conditions as a WHERE clause, or an empty
// string when no condition was added.
func (b *Builder) Where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the positional arguments matching the placeholders.
func (b *Builder) Args() []interface{} {
	return b.args
}
