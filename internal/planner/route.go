package planner

import (
	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/spatial"
)

// RoundTrip builds the ordered waypoint list for a day's route: home
// base, then the day's stops in order, then home base again.
func RoundTrip(home models.Location, stops []models.Location) []models.Location {
	waypoints := make([]models.Location, 0, len(stops)+2)
	waypoints = append(waypoints, home)
	waypoints = append(waypoints, stops...)
	waypoints = append(waypoints, home)
	return waypoints
}

// EmptyRoute is the route for a day with no stops: zero distance and
// time, no legs, no network call needed.
func EmptyRoute(dayID string) models.RouteInfo {
	return models.RouteInfo{DayID: dayID, Legs: []models.RouteLeg{}}
}

// FallbackRoute estimates the round trip with straight-line legs when
// the directions provider is unavailable: per-leg distance is the
// great-circle distance scaled by the road-winding factor, per-leg
// time assumes the fallback average speed. The path is the waypoint
// polyline itself.
func FallbackRoute(dayID string, waypoints []models.Location) models.RouteInfo {
	info := models.RouteInfo{
		DayID:    dayID,
		Legs:     make([]models.RouteLeg, 0, len(waypoints)),
		Path:     make([][2]float64, 0, len(waypoints)),
		Fallback: true,
	}
	for _, wp := range waypoints {
		info.Path = append(info.Path, [2]float64{wp.Lat, wp.Lng})
	}
	for i := 0; i+1 < len(waypoints); i++ {
		a, b := waypoints[i], waypoints[i+1]
		dist := spatial.RoadDistance(a.Lat, a.Lng, b.Lat, b.Lng)
		info.Legs = append(info.Legs, models.RouteLeg{
			From:     a.Name,
			To:       b.Name,
			Distance: dist,
			Time:     spatial.DriveMinutes(dist),
		})
		info.TotalDistance += dist
	}
	info.TotalTime = spatial.DriveMinutes(info.TotalDistance)
	return info
}
