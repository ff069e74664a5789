package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildConditionsEmptyFilters(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{})
	require.NoError(t, err)
	assert.Empty(t, conds)
}

func TestBuildConditionsAllFilters(t *testing.T) {
	f := &models.PropertyFilters{
		City:         "Madrid",
		PropertyType: "room",
		PostalCode:   "28001",
		Country:      "Spain",
		MinPrice:     floatPtr(400),
		MaxPrice:     floatPtr(800),
		Rooms:        []int{2},
		Roommates:    intPtr(3),
	}
	conds, err := BuildConditions(f)
	require.NoError(t, err)

	sql, args := WhereClause(conds)
	assert.Equal(t, "WHERE city = ? AND type = ? AND postal_code = ? AND country = ? AND (price >= ? AND price <= ?) AND rooms IN (?) AND roommates = ?", sql)
	assert.Equal(t, []interface{}{"Madrid", "room", "28001", "Spain", 400.0, 800.0, 2, 3}, args)
}

func TestBuildConditionsInvertedPriceRange(t *testing.T) {
	f := &models.PropertyFilters{
		MinPrice: floatPtr(900),
		MaxPrice: floatPtr(500),
	}
	conds, err := BuildConditions(f)
	require.Error(t, err)
	assert.Nil(t, conds)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidPriceRange, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestBuildConditionsEqualPriceBounds(t *testing.T) {
	f := &models.PropertyFilters{
		MinPrice: floatPtr(600),
		MaxPrice: floatPtr(600),
	}
	conds, err := BuildConditions(f)
	require.NoError(t, err)
	require.Len(t, conds, 1)
}

func TestBuildConditionsSinglePriceBound(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{MinPrice: floatPtr(300)})
	require.NoError(t, err)
	require.Len(t, conds, 1)
	sql, args := conds[0].SQL()
	assert.Equal(t, "price >= ?", sql)
	assert.Equal(t, []interface{}{300.0}, args)

	conds, err = BuildConditions(&models.PropertyFilters{MaxPrice: floatPtr(700)})
	require.NoError(t, err)
	require.Len(t, conds, 1)
	sql, args = conds[0].SQL()
	assert.Equal(t, "price <= ?", sql)
	assert.Equal(t, []interface{}{700.0}, args)
}

func TestBuildConditionsRoomsFourPlus(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{Rooms: []int{4}})
	require.NoError(t, err)
	require.Len(t, conds, 1)
	sql, args := conds[0].SQL()
	assert.Equal(t, "rooms >= ?", sql)
	assert.Equal(t, []interface{}{4}, args)
}

func TestBuildConditionsRoomsMixedSelection(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{Rooms: []int{1, 4}})
	require.NoError(t, err)
	require.Len(t, conds, 1)
	sql, args := conds[0].SQL()
	assert.Equal(t, "(rooms >= ? OR rooms IN (?))", sql)
	assert.Equal(t, []interface{}{4, 1}, args)
}

func TestBuildConditionsRoomsNormalOnly(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{Rooms: []int{2, 3}})
	require.NoError(t, err)
	require.Len(t, conds, 1)
	sql, args := conds[0].SQL()
	assert.Equal(t, "rooms IN (?, ?)", sql)
	assert.Equal(t, []interface{}{2, 3}, args)
}

func TestBuildConditionsRoomsOutOfRangeIgnored(t *testing.T) {
	conds, err := BuildConditions(&models.PropertyFilters{Rooms: []int{0, 7}})
	require.NoError(t, err)
	assert.Empty(t, conds)
}
