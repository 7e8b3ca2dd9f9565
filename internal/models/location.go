package models

// LocationCategory classifies a catalog entry
type LocationCategory string

const (
	CategoryNature    LocationCategory = "nature"
	CategoryBeach     LocationCategory = "beach"
	CategoryWater     LocationCategory = "water"
	CategoryCulture   LocationCategory = "culture"
	CategoryFood      LocationCategory = "food"
	CategoryAdventure LocationCategory = "adventure"
	CategoryHotel     LocationCategory = "hotel"
)

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c LocationCategory) bool {
	switch c {
	case CategoryNature, CategoryBeach, CategoryWater, CategoryCulture,
		CategoryFood, CategoryAdventure, CategoryHotel:
		return true
	}
	return false
}

// Location represents a point of interest. The display name is the
// primary key: it is unique across the curated catalog and a user's
// added locations combined.
type Location struct {
	Name     string           `json:"name"`
	Lat      float64          `json:"lat"`
	Lng      float64          `json:"lng"`
	Category LocationCategory `json:"category"`
	Rating   float64          `json:"rating,omitempty"`
	Notes    string           `json:"notes"`
	Hours    string           `json:"hours,omitempty"`
	Phone    string           `json:"phone,omitempty"`
	Website  string           `json:"website,omitempty"`
	PlaceID  string           `json:"placeId,omitempty"`

	// IsUserAdded marks locations promoted from discovery rather than
	// seeded from the curated catalog.
	IsUserAdded bool `json:"isUserAdded,omitempty"`
}
