package domain

import "time"

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "AP"
	PropertyTypeHouse     PropertyType = "HO"
	PropertyTypeVilla     PropertyType = "VI"
	PropertyTypeCondo     PropertyType = "CO"
	PropertyTypeCabin     PropertyType = "CA"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla, PropertyTypeCondo, PropertyTypeCabin:
		return true
	}
	return false
}

// Display returns the human-readable name for the two-letter code.
func (p PropertyType) Display() string {
	switch p {
	case PropertyTypeApartment:
		return "Apartment"
	case PropertyTypeHouse:
		return "House"
	case PropertyTypeVilla:
		return "Villa"
	case PropertyTypeCondo:
		return "Condo"
	case PropertyTypeCabin:
		return "Cabin"
	}
	return string(p)
}

type Listing struct {
	ID                 string
	HostID             string
	Title              string
	Description        string
	Address            string
	PropertyType       PropertyType
	PricePerNightCents int64
	Bedrooms           int
	Bathrooms          int
	MaxGuests          int
	Amenities          []string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
