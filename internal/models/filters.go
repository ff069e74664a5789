package models

import (
	"fmt"
	"sort"
	"strings"
)

// PropertyFilters carries the optional search criteria for listings.
// City is optional but defaulted by the search service; Rooms holds a
// room-count selection where 4 means "four or more".
type PropertyFilters struct {
	City         string   `form:"city"`
	PropertyType string   `form:"propertyType"`
	PostalCode   string   `form:"postalCode"`
	Country      string   `form:"country"`
	MinPrice     *float64 `form:"minPrice"`
	MaxPrice     *float64 `form:"maxPrice"`
	Rooms        []int    `form:"rooms" collection_format:"csv"`
	Roommates    *int     `form:"roommates"`
	Limit        int      `form:"limit"`
	Offset       int      `form:"offset"`
}

// Fingerprint renders the criteria into a canonical string usable as a
// cache key component. Identical criteria always produce the same string.
func (f *PropertyFilters) Fingerprint() string {
	rooms := append([]int(nil), f.Rooms...)
	sort.Ints(rooms)
	roomsParts := make([]string, len(rooms))
	for i, r := range rooms {
		roomsParts[i] = fmt.Sprintf("%d", r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "city=%s:type=%s:postal=%s:country=%s", strings.ToLower(f.City), strings.ToLower(f.PropertyType), f.PostalCode, strings.ToLower(f.Country))
	if f.MinPrice != nil {
		fmt.Fprintf(&b, ":min=%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		fmt.Fprintf(&b, ":max=%g", *f.MaxPrice)
	}
	fmt.Fprintf(&b, ":rooms=%s", strings.Join(roomsParts, ","))
	if f.Roommates != nil {
		fmt.Fprintf(&b, ":roommates=%d", *f.Roommates)
	}
	fmt.Fprintf(&b, ":limit=%d:offset=%d", f.Limit, f.Offset)
	return b.String()
}
