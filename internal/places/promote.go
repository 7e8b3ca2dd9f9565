package places

import (
	"strings"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// typeCategory pairs a place type with the catalog category it
// implies. Order matters: a place's types are walked in order and the
// first type with an entry here wins.
var typeCategories = []struct {
	placeType string
	category  models.LocationCategory
}{
	{"restaurant", models.CategoryFood},
	{"cafe", models.CategoryFood},
	{"bakery", models.CategoryFood},
	{"bar", models.CategoryFood},
	{"ice_cream_shop", models.CategoryFood},
	{"tourist_attraction", models.CategoryCulture},
	{"museum", models.CategoryCulture},
	{"park", models.CategoryNature},
}

// inferCategory maps a discovered place's types onto a catalog
// category, defaulting to adventure when nothing matches.
func inferCategory(types []string) models.LocationCategory {
	for _, t := range types {
		for _, tc := range typeCategories {
			if tc.placeType == t {
				return tc.category
			}
		}
	}
	return models.CategoryAdventure
}

// PromoteToLocation converts a discovered place, plus any fetched
// details, into a catalog Location a user can plan with.
func PromoteToLocation(place models.DiscoveredPlace, details *models.PlaceDetails) models.Location {
	// Google place resource names carry a "places/" prefix
	placeID := strings.TrimPrefix(place.ID, "places/")

	notes := place.Address
	if details != nil && details.EditorialSummary != "" {
		notes = details.EditorialSummary
	}
	if notes == "" {
		notes = "Discovered via Google Places"
	}

	loc := models.Location{
		Name:        place.Name,
		Lat:         place.Lat,
		Lng:         place.Lng,
		Category:    inferCategory(place.Types),
		Rating:      place.Rating,
		Notes:       notes,
		PlaceID:     placeID,
		IsUserAdded: true,
	}
	if details != nil {
		loc.Hours = strings.Join(details.WeekdayHours, "; ")
		loc.Phone = details.Phone
		loc.Website = details.Website
	}
	return loc
}
