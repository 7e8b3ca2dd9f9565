package planner

import "github.com/jengzang/trip-planner-go/internal/models"

// Region is a coarse geographic bucket of the island, used to group
// the unassigned pool for display.
type Region string

const (
	RegionNorth     Region = "north"
	RegionPortLouis Region = "port-louis"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionSouthwest Region = "southwest"
	RegionSouth     Region = "south"
)

// RegionOrder is the display order of regions, roughly north to south.
var RegionOrder = []Region{
	RegionNorth,
	RegionPortLouis,
	RegionEast,
	RegionWest,
	RegionSouthwest,
	RegionSouth,
}

// RegionLabels maps regions to display labels.
var RegionLabels = map[Region]string{
	RegionNorth:     "North",
	RegionPortLouis: "Port Louis",
	RegionEast:      "East Coast",
	RegionWest:      "West Coast",
	RegionSouthwest: "Southwest",
	RegionSouth:     "South & Central",
}

// RegionFor classifies a coordinate into an island region. The
// thresholds carve Mauritius into the Port Louis cluster, the north,
// the east coast, the Le Morne / Chamarel corridor, the west coast,
// and a catch-all south/central bucket.
func RegionFor(lat, lng float64) Region {
	switch {
	case lat > -20.17 && lat < -20.14 && lng < 57.55:
		return RegionPortLouis
	case lat > -20.14:
		return RegionNorth
	case lng > 57.7 && lat > -20.35:
		return RegionEast
	case lat < -20.38 && lng < 57.46:
		return RegionSouthwest
	case lng < 57.46 && lat > -20.38:
		return RegionWest
	default:
		return RegionSouth
	}
}

// GroupByRegion buckets locations by island region, preserving the
// input order within each bucket.
func GroupByRegion(locs []models.Location) map[Region][]models.Location {
	groups := make(map[Region][]models.Location)
	for _, l := range locs {
		r := RegionFor(l.Lat, l.Lng)
		groups[r] = append(groups[r], l)
	}
	return groups
}
