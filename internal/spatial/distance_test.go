package spatial

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64 // km
		tolerance              float64
	}{
		{"same point", -20.19, 57.78, -20.19, 57.78, 0, 1e-9},
		// Port Louis to Mahebourg, roughly 37 km apart.
		{"across the island", -20.1609, 57.5012, -20.4081, 57.7000, 34.5, 1.5},
		// One degree of latitude is about 111.19 km on a 6371 km sphere.
		{"one degree latitude", 0, 57.5, 1, 57.5, 111.19, 0.1},
		{"antipodal-ish", 0, 0, 0, 180, math.Pi * EarthRadiusKm, 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Haversine(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if math.Abs(got-tc.want) > tc.tolerance {
				t.Errorf("Haversine = %v, want %v ± %v", got, tc.want, tc.tolerance)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(-20.19, 57.78, -20.45, 57.31)
	b := Haversine(-20.45, 57.31, -20.19, 57.78)
	if math.Abs(a-b) > 1e-12 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

func TestRoadDistance(t *testing.T) {
	h := Haversine(-20.19, 57.78, -20.45, 57.31)
	r := RoadDistance(-20.19, 57.78, -20.45, 57.31)
	if math.Abs(r-h*RoadWindingFactor) > 1e-12 {
		t.Errorf("RoadDistance = %v, want %v", r, h*RoadWindingFactor)
	}
}

func TestDriveMinutes(t *testing.T) {
	// 50 km at 50 km/h is an hour.
	if got := DriveMinutes(50); math.Abs(got-60) > 1e-12 {
		t.Errorf("DriveMinutes(50) = %v, want 60", got)
	}
	if got := DriveMinutes(0); got != 0 {
		t.Errorf("DriveMinutes(0) = %v, want 0", got)
	}
}
