// Package query builds composable boolean conditions over listing columns
// and renders them into placeholder SQL fragments for the MySQL store.
package query

import "strings"

// Condition is an immutable node in a boolean expression tree. SQL renders
// the node into a `?`-placeholder fragment plus its arguments; rendering is
// deterministic for a given tree.
type Condition interface {
	SQL() (string, []interface{})
}

type comparison struct {
	field string
	op    string
	value interface{}
}

func (c comparison) SQL() (string, []interface{}) {
	return c.field + " " + c.op + " ?", []interface{}{c.value}
}

type inCondition struct {
	field  string
	values []interface{}
}

func (c inCondition) SQL() (string, []interface{}) {
	placeholders := make([]string, len(c.values))
	for i := range c.values {
		placeholders[i] = "?"
	}
	return c.field + " IN (" + strings.Join(placeholders, ", ") + ")", c.values
}

type logical struct {
	op    string
	conds []Condition
}

func (c logical) SQL() (string, []interface{}) {
	parts := make([]string, len(c.conds))
	var args []interface{}
	for i, cond := range c.conds {
		sql, condArgs := cond.SQL()
		parts[i] = sql
		args = append(args, condArgs...)
	}
	return "(" + strings.Join(parts, " "+c.op+" ") + ")", args
}

// Eq matches rows where field equals value.
func Eq(field string, value interface{}) Condition {
	return comparison{field: field, op: "=", value: value}
}

// Gte matches rows where field is greater than or equal to value.
func Gte(field string, value interface{}) Condition {
	return comparison{field: field, op: ">=", value: value}
}

// Lte matches rows where field is less than or equal to value.
func Lte(field string, value interface{}) Condition {
	return comparison{field: field, op: "<=", value: value}
}

// In matches rows where field is any of values.
func In(field string, values ...interface{}) Condition {
	return inCondition{field: field, values: values}
}

// And combines conditions conjunctively. A single condition is returned
// unwrapped.
func And(conds ...Condition) Condition {
	if len(conds) == 1 {
		return conds[0]
	}
	return logical{op: "AND", conds: conds}
}

// Or combines conditions disjunctively. A single condition is returned
// unwrapped.
func Or(conds ...Condition) Condition {
	if len(conds) == 1 {
		return conds[0]
	}
	return logical{op: "OR", conds: conds}
}

// WhereClause joins conditions with AND into a WHERE clause. An empty slice
// yields an empty clause, matching every row.
func WhereClause(conds []Condition) (string, []interface{}) {
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, len(conds))
	var args []interface{}
	for i, cond := range conds {
		sql, condArgs := cond.SQL()
		parts[i] = sql
		args = append(args, condArgs...)
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}
