package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonSQL(t *testing.T) {
	sql, args := Eq("city", "Madrid").SQL()
	assert.Equal(t, "city = ?", sql)
	assert.Equal(t, []interface{}{"Madrid"}, args)

	sql, args = Gte("price", 500.0).SQL()
	assert.Equal(t, "price >= ?", sql)
	assert.Equal(t, []interface{}{500.0}, args)

	sql, args = Lte("price", 900.0).SQL()
	assert.Equal(t, "price <= ?", sql)
	assert.Equal(t, []interface{}{900.0}, args)
}

func TestInSQL(t *testing.T) {
	sql, args := In("rooms", 1, 2, 3).SQL()
	assert.Equal(t, "rooms IN (?, ?, ?)", sql)
	assert.Equal(t, []interface{}{1, 2, 3}, args)
}

func TestLogicalSQL(t *testing.T) {
	cond := Or(Gte("rooms", 4), In("rooms", 1, 2))
	sql, args := cond.SQL()
	assert.Equal(t, "(rooms >= ? OR rooms IN (?, ?))", sql)
	assert.Equal(t, []interface{}{4, 1, 2}, args)

	cond = And(Gte("price", 100.0), Lte("price", 200.0))
	sql, args = cond.SQL()
	assert.Equal(t, "(price >= ? AND price <= ?)", sql)
	assert.Equal(t, []interface{}{100.0, 200.0}, args)
}

func TestLogicalUnwrapsSingleCondition(t *testing.T) {
	sql, _ := And(Eq("city", "Madrid")).SQL()
	assert.Equal(t, "city = ?", sql)

	sql, _ = Or(Eq("city", "Madrid")).SQL()
	assert.Equal(t, "city = ?", sql)
}

func TestWhereClause(t *testing.T) {
	sql, args := WhereClause(nil)
	assert.Empty(t, sql)
	assert.Nil(t, args)

	conds := []Condition{Eq("city", "Madrid"), Eq("type", "room")}
	sql, args = WhereClause(conds)
	assert.Equal(t, "WHERE city = ? AND type = ?", sql)
	assert.Equal(t, []interface{}{"Madrid", "room"}, args)
}

func TestSQLRenderingIsDeterministic(t *testing.T) {
	cond := And(Eq("city", "Madrid"), Or(Gte("rooms", 4), In("rooms", 2, 3)))
	first, firstArgs := cond.SQL()
	second, secondArgs := cond.SQL()
	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
}
