package models

import "strings"

// PropertyType enumerates the rental categories a listing can have.
type PropertyType string

const (
	PropertyTypeRoom      PropertyType = "room"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeStudio    PropertyType = "studio"
	PropertyTypeChalet    PropertyType = "chalet"
	PropertyTypeDuplex    PropertyType = "duplex"
)

// ParsePropertyType matches a type value case-insensitively.
func ParsePropertyType(value string) (PropertyType, bool) {
	switch strings.ToLower(value) {
	case string(PropertyTypeRoom):
		return PropertyTypeRoom, true
	case string(PropertyTypeApartment):
		return PropertyTypeApartment, true
	case string(PropertyTypeHouse):
		return PropertyTypeHouse, true
	case string(PropertyTypeStudio):
		return PropertyTypeStudio, true
	case string(PropertyTypeChalet):
		return PropertyTypeChalet, true
	case string(PropertyTypeDuplex):
		return PropertyTypeDuplex, true
	}
	return "", false
}

type Address struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Property struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	Price       float64      `json:"price"`
	Rooms       int          `json:"rooms"`
	Bathrooms   int          `json:"bathrooms"`
	Roommates   *int         `json:"roommates,omitempty"`
	Furnished   bool         `json:"furnished"`
	Address     Address      `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// PropertiesPage is the page wrapper returned by the search endpoint.
type PropertiesPage struct {
	Content    []Property `json:"content"`
	HasNext    bool       `json:"hasNext"`
	PageNumber int        `json:"pageNumber"`
}
