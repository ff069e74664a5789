package query

import (
	apperrors "rentsight-backend/internal/errors"
	"rentsight-backend/internal/models"
)

// fourPlusRooms is the selection value meaning "four or more rooms".
const fourPlusRooms = 4

// BuildConditions translates search criteria into column conditions. Every
// absent criterion is simply omitted; an empty result matches all listings.
// An inverted price range is a client input error, reported before any
// query runs.
func BuildConditions(f *models.PropertyFilters) ([]Condition, error) {
	var conds []Condition

	if f.City != "" {
		conds = append(conds, Eq("city", f.City))
	}
	if f.PropertyType != "" {
		conds = append(conds, Eq("type", f.PropertyType))
	}
	if f.PostalCode != "" {
		conds = append(conds, Eq("postal_code", f.PostalCode))
	}
	if f.Country != "" {
		conds = append(conds, Eq("country", f.Country))
	}

	priceCond, err := buildPriceCondition(f.MinPrice, f.MaxPrice)
	if err != nil {
		return nil, err
	}
	if priceCond != nil {
		conds = append(conds, priceCond)
	}

	if roomsCond := buildRoomsCondition(f.Rooms); roomsCond != nil {
		conds = append(conds, roomsCond)
	}

	if f.Roommates != nil {
		conds = append(conds, Eq("roommates", *f.Roommates))
	}

	return conds, nil
}

func buildPriceCondition(minPrice, maxPrice *float64) (Condition, error) {
	if minPrice == nil && maxPrice == nil {
		return nil, nil
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return nil, apperrors.NewInvalidPriceRangeError()
	}

	var conds []Condition
	if minPrice != nil {
		conds = append(conds, Gte("price", *minPrice))
	}
	if maxPrice != nil {
		conds = append(conds, Lte("price", *maxPrice))
	}
	return And(conds...), nil
}

func buildRoomsCondition(selectedRooms []int) Condition {
	if len(selectedRooms) == 0 {
		return nil
	}

	var conds []Condition

	hasFourPlus := false
	for _, r := range selectedRooms {
		if r == fourPlusRooms {
			hasFourPlus = true
			break
		}
	}
	if hasFourPlus {
		conds = append(conds, Gte("rooms", fourPlusRooms))
	}

	var normalRooms []interface{}
	for _, r := range selectedRooms {
		if r >= 1 && r <= 3 {
			normalRooms = append(normalRooms, r)
		}
	}
	if len(normalRooms) > 0 {
		conds = append(conds, In("rooms", normalRooms...))
	}

	if len(conds) == 0 {
		return nil
	}
	return Or(conds...)
}
