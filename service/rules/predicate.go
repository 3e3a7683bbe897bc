package rules

import (
	"github.com/QuangTung97/minicrm/model"
	"strings"
	"time"
)

// Column of the customer table
type Column string

const (
	// ColumnTotalSpend ...
	ColumnTotalSpend Column = "total_spend"
	// ColumnVisits ...
	ColumnVisits Column = "visits"
	// ColumnLastActiveAt ...
	ColumnLastActiveAt Column = "last_active_at"
)

// Op is a SQL comparison operator
type Op string

const (
	// OpGreater ...
	OpGreater Op = ">"
	// OpLess ...
	OpLess Op = "<"
	// OpGreaterOrEqual ...
	OpGreaterOrEqual Op = ">="
	// OpLessOrEqual ...
	OpLessOrEqual Op = "<="
	// OpEqual ...
	OpEqual Op = "="
)

// Predicate over a customer, implemented by Compare, And, Or and Const only.
// SQL and Match always agree on which customers are selected
type Predicate interface {
	// SQL returns a parameterized WHERE fragment
	SQL() (string, []interface{})

	// Match evaluates the predicate in memory
	Match(c model.Customer) bool

	isPredicate()
}

// Compare a column with a constant, Time is used for last_active_at and Int for the others
type Compare struct {
	Column Column
	Op     Op
	Int    int64
	Time   time.Time
}

// And of all parts
type And struct {
	Parts []Predicate
}

// Or of all parts
type Or struct {
	Parts []Predicate
}

// Const matches everyone or no one
type Const struct {
	Value bool
}

func (Compare) isPredicate() {}
func (And) isPredicate()     {}
func (Or) isPredicate()      {}
func (Const) isPredicate()   {}

var _ Predicate = Compare{}
var _ Predicate = And{}
var _ Predicate = Or{}
var _ Predicate = Const{}

// SQL ...
func (c Compare) SQL() (string, []interface{}) {
	var arg interface{} = c.Int
	if c.Column == ColumnLastActiveAt {
		arg = c.Time
	}
	return string(c.Column) + " " + string(c.Op) + " ?", []interface{}{arg}
}

// Match ...
func (c Compare) Match(customer model.Customer) bool {
	switch c.Column {
	case ColumnTotalSpend:
		return compareInt(customer.TotalSpend, c.Op, c.Int)
	case ColumnVisits:
		return compareInt(customer.Visits, c.Op, c.Int)
	case ColumnLastActiveAt:
		return compareTime(normalizeTime(customer.LastActiveAt), c.Op, c.Time)
	default:
		return false
	}
}

func compareInt(a int64, op Op, b int64) bool {
	switch op {
	case OpGreater:
		return a > b
	case OpLess:
		return a < b
	case OpGreaterOrEqual:
		return a >= b
	case OpLessOrEqual:
		return a <= b
	case OpEqual:
		return a == b
	default:
		return false
	}
}

func compareTime(a time.Time, op Op, b time.Time) bool {
	switch op {
	case OpGreater:
		return a.After(b)
	case OpLess:
		return a.Before(b)
	case OpGreaterOrEqual:
		return !a.Before(b)
	case OpLessOrEqual:
		return !a.After(b)
	case OpEqual:
		return a.Equal(b)
	default:
		return false
	}
}

// SQL ...
func (a And) SQL() (string, []interface{}) {
	if len(a.Parts) == 0 {
		return Const{Value: true}.SQL()
	}
	return joinSQL(a.Parts, " AND ")
}

// Match ...
func (a And) Match(c model.Customer) bool {
	for _, p := range a.Parts {
		if !p.Match(c) {
			return false
		}
	}
	return true
}

// SQL ...
func (o Or) SQL() (string, []interface{}) {
	if len(o.Parts) == 0 {
		return Const{Value: false}.SQL()
	}
	return joinSQL(o.Parts, " OR ")
}

// Match ...
func (o Or) Match(c model.Customer) bool {
	for _, p := range o.Parts {
		if p.Match(c) {
			return true
		}
	}
	return false
}

// SQL ...
func (c Const) SQL() (string, []interface{}) {
	if c.Value {
		return "1 = 1", nil
	}
	return "1 = 0", nil
}

// Match ...
func (c Const) Match(model.Customer) bool {
	return c.Value
}

func joinSQL(parts []Predicate, sep string) (string, []interface{}) {
	fragments := make([]string, 0, len(parts))
	var args []interface{}
	for _, p := range parts {
		fragment, partArgs := p.SQL()
		fragments = append(fragments, fragment)
		args = append(args, partArgs...)
	}
	return "(" + strings.Join(fragments, sep) + ")", args
}

// normalizeTime matches the DATETIME(6) precision of the store
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
