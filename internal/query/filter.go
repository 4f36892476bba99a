// Package query builds parameterized SQL from an arbitrary subset of optional
// filter predicates. Each With-style method appends a conjunctive condition
// only when its input is present (non-nil pointer); absent inputs are elided
// entirely, so a filter with no predicates selects everything. The ordering is
// fixed per entity and applied regardless of which predicates were set.
package query

import (
	"strconv"
	"strings"
	"time"
)

// Filter accumulates AND-combined predicates with positional arguments.
type Filter struct {
	conds   []string
	args    []any
	orderBy string
}

// New creates a Filter with the entity's fixed ORDER BY clause (without the
// "ORDER BY" keywords).
func New(orderBy string) *Filter {
	return &Filter{orderBy: orderBy}
}

// Bind registers an argument and returns its positional placeholder ($1, $2,
// ...). Repositories use it for arguments outside the predicate set, such as
// pagination cursors and LIMIT, so numbering stays consistent.
func (f *Filter) Bind(arg any) string {
	f.args = append(f.args, arg)
	return "$" + strconv.Itoa(len(f.args))
}

// Append adds a raw condition with pre-bound placeholders. The condition must
// reference placeholders obtained from Bind.
func (f *Filter) Append(cond string) *Filter {
	f.conds = append(f.conds, cond)
	return f
}

// ExactText adds an equality predicate when value is present.
func (f *Filter) ExactText(column string, value *string) *Filter {
	if value == nil {
		return f
	}
	return f.Append(column + " = " + f.Bind(*value))
}

// ExactInt adds an equality predicate when value is present.
func (f *Filter) ExactInt(column string, value *int64) *Filter {
	if value == nil {
		return f
	}
	return f.Append(column + " = " + f.Bind(*value))
}

// DateRange adds inclusive bound predicates for whichever sides are present.
func (f *Filter) DateRange(column string, from, to *time.Time) *Filter {
	if from != nil {
		f.Append(column + " >= " + f.Bind(*from))
	}
	if to != nil {
		f.Append(column + " <= " + f.Bind(*to))
	}
	return f
}

// Pattern adds a SQL LIKE predicate when pattern is present. A present empty
// string is a literal empty-string match, not a no-op. With foldCase the
// comparison is case-insensitive (ILIKE).
func (f *Filter) Pattern(column string, pattern *string, foldCase bool) *Filter {
	if pattern == nil {
		return f
	}
	op := " LIKE "
	if foldCase {
		op = " ILIKE "
	}
	return f.Append(column + op + f.Bind(*pattern))
}

// Flag adds a boolean equality predicate when value is present.
func (f *Filter) Flag(column string, value *bool) *Filter {
	if value == nil {
		return f
	}
	return f.Append(column + " = " + f.Bind(*value))
}

// PresenceFlag adds an IS NOT NULL / IS NULL predicate when want is present:
// true selects rows where the column is set, false rows where it is null.
// Used for reconciliation status (date_reconciled set = reconciled).
func (f *Filter) PresenceFlag(column string, want *bool) *Filter {
	if want == nil {
		return f
	}
	if *want {
		return f.Append(column + " IS NOT NULL")
	}
	return f.Append(column + " IS NULL")
}

// Where renders the accumulated predicates as a WHERE clause, or an empty
// string when no predicate was added.
func (f *Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (f *Filter) Args() []any {
	return f.args
}

// SQL assembles the final statement from a base SELECT, the WHERE clause, and
// the fixed ORDER BY, and returns it with the bound arguments.
func (f *Filter) SQL(baseSelect string) (string, []any) {
	var b strings.Builder
	b.WriteString(baseSelect)
	if where := f.Where(); where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	if f.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(f.orderBy)
	}
	return b.String(), f.args
}
