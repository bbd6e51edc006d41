// Package query assembles parameterized WHERE clauses and pagination for list endpoints.
package query

import (
	"fmt"
	"strings"
)

// All is the filter value meaning "do not filter on this column".
const All = "all"

// Where accumulates predicate fragments and the values bound to their placeholders.
// Placeholders are numbered in the order values are added, so Args always lines up
// with Clause.
type Where struct {
	preds []string
	args  []any
}

// bind appends v and returns its placeholder.
func (w *Where) bind(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// Eq adds `column = $n`.
func (w *Where) Eq(column string, value any) {
	w.preds = append(w.preds, column+" = "+w.bind(value))
}

// EqUnless adds `column = $n` unless value is empty or equals sentinel.
func (w *Where) EqUnless(column, value, sentinel string) {
	if value == "" || (sentinel != "" && value == sentinel) {
		return
	}
	w.Eq(column, value)
}

// ILike adds a case-insensitive substring match of term against any of columns.
// The wrapped term is bound once and shared by every branch.
func (w *Where) ILike(term string, columns ...string) {
	if term == "" || len(columns) == 0 {
		return
	}
	ph := w.bind("%" + term + "%")
	branches := make([]string, 0, len(columns))
	for _, c := range columns {
		branches = append(branches, c+" ILIKE "+ph)
	}
	if len(branches) == 1 {
		w.preds = append(w.preds, branches[0])
		return
	}
	w.preds = append(w.preds, "("+strings.Join(branches, " OR ")+")")
}

// Predicates returns the fragments in insertion order.
func (w *Where) Predicates() []string {
	return append([]string(nil), w.preds...)
}

// Clause returns "WHERE ..." or "" when nothing was added.
func (w *Where) Clause() string {
	if len(w.preds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.preds, " AND ")
}

// Args returns the filter parameters only. It is safe to pass to a COUNT query
// built from Clause.
func (w *Where) Args() []any {
	return append([]any(nil), w.args...)
}

// Paginate returns the LIMIT/OFFSET fragment and the full parameter list for the
// page query. The receiver is left untouched so Args stays valid for counting.
func (w *Where) Paginate(p Page) (string, []any) {
	args := make([]any, 0, len(w.args)+2)
	args = append(args, w.args...)
	args = append(args, p.Limit, p.Offset())
	n := len(w.args)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2), args
}
