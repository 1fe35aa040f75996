package domain

import (
	"fmt"
	"strings"
)

// PropertyType is the kind of dwelling the household is looking for.
type PropertyType string

const (
	PropertyTypeFlat      PropertyType = "Flat"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeOther     PropertyType = "Other"
)

// PropertyTypes lists every supported property type in display order.
var PropertyTypes = []PropertyType{ //nolint: gochecknoglobals
	PropertyTypeFlat,
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeVilla,
	PropertyTypeOther,
}

// ParsePropertyType matches s against the supported property types ignoring
// case and surrounding whitespace, and returns the canonical value.
func ParsePropertyType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	for _, pt := range PropertyTypes {
		if strings.EqualFold(s, string(pt)) {
			return pt, nil
		}
	}

	return "", fmt.Errorf("unknown property type %q", s)
}

// HouseholdRequirement describes who is looking and where.
type HouseholdRequirement struct {
	// FamilySize is the number of people in the household, at least one.
	FamilySize int `json:"familySize"`
	// Budget is the maximum spend in rupees.
	Budget int64 `json:"budget"`
	// City is free text, e.g. "Kolkata".
	City string `json:"city"`
	// Locality is free text, e.g. "Newtown".
	Locality     string       `json:"locality"`
	PropertyType PropertyType `json:"propertyType"`
}

// RoomSizeList holds one entry per bedroom and per bathroom, in sq ft.
// The length of each slice is the room count the user picked.
type RoomSizeList struct {
	BedroomSizes  []float64 `json:"bedroomSizes"`
	BathroomSizes []float64 `json:"bathroomSizes"`
}

// AreaBreakdown holds the sizes of the remaining spaces, in sq ft.
type AreaBreakdown struct {
	KitchenSize float64 `json:"kitchenSize"`
	LivingArea  float64 `json:"livingArea"`
	OtherAreas  float64 `json:"otherAreas"`
}

// Submission is a validated, immutable snapshot of the whole form.
type Submission struct {
	Requirement HouseholdRequirement `json:"requirement"`
	Rooms       RoomSizeList         `json:"rooms"`
	Breakdown   AreaBreakdown        `json:"breakdown"`
}
