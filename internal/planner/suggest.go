package planner

import (
	"math"
	"sort"

	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/spatial"
)

// DefaultSuggestionCount is how many nearby locations to suggest.
const DefaultSuggestionCount = 5

// Suggestion pairs an unassigned location with its estimated road
// distance to the nearest stop of the reference day.
type Suggestion struct {
	Location   models.Location `json:"location"`
	DistanceKm float64         `json:"distanceKm"`
}

// nearestDistance returns the estimated road distance from loc to the
// closest of the reference locations.
func nearestDistance(loc models.Location, refs []models.Location) float64 {
	min := math.Inf(1)
	for _, ref := range refs {
		if d := spatial.RoadDistance(loc.Lat, loc.Lng, ref.Lat, ref.Lng); d < min {
			min = d
		}
	}
	return min
}

// Suggest ranks the unassigned pool by proximity to the active day's
// stops and returns the top n. An empty day falls back to the home
// base as the reference point; with no reference at all there are no
// suggestions.
func Suggest(all []models.Location, days []models.DayPlan, activeDayID string, n int) []Suggestion {
	if n <= 0 {
		n = DefaultSuggestionCount
	}

	byName := make(map[string]models.Location, len(all))
	var home *models.Location
	for _, l := range all {
		byName[l.Name] = l
		if l.Category == models.CategoryHotel && home == nil {
			h := l
			home = &h
		}
	}

	var refs []models.Location
	if day := findDay(days, activeDayID); day != nil {
		for _, name := range day.LocationNames {
			if l, ok := byName[name]; ok {
				refs = append(refs, l)
			}
		}
		if len(refs) == 0 && home != nil {
			refs = []models.Location{*home}
		}
	}
	if len(refs) == 0 {
		return nil
	}

	pool := Unassigned(all, days, "")
	suggestions := make([]Suggestion, 0, len(pool))
	for _, loc := range pool {
		suggestions = append(suggestions, Suggestion{
			Location:   loc,
			DistanceKm: nearestDistance(loc, refs),
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].DistanceKm < suggestions[j].DistanceKm
	})
	if len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}
