package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// Road-estimate heuristics. These are rough constants, not calibrated
// values: driving distance over straight-line distance, and the average
// road speed assumed when the directions provider is unavailable.
var (
	RoadWindingFactor = 1.3
	FallbackSpeedKmh  = 50.0
)

// Haversine calculates the great-circle distance between two points
// in kilometers using the Haversine formula
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// RoadDistance estimates driving distance in kilometers by scaling the
// great-circle distance with the road-winding factor
func RoadDistance(lat1, lng1, lat2, lng2 float64) float64 {
	return Haversine(lat1, lng1, lat2, lng2) * RoadWindingFactor
}

// DriveMinutes estimates driving time in minutes for a road distance
// in kilometers at the assumed average speed
func DriveMinutes(distanceKm float64) float64 {
	return distanceKm / FallbackSpeedKmh * 60
}
