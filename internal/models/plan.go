package models

// DayPlan is one day bucket of the itinerary: an ordered list of
// location names referencing the catalog. The JSON shape (id, label,
// locationNames) is the interchange format for stored plans.
type DayPlan struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	LocationNames []string `json:"locationNames"`
}

// RouteLeg is one point-to-point segment of a day's round trip.
type RouteLeg struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"` // km
	Time     float64 `json:"time"`     // minutes
}

// RouteInfo is the computed round-trip summary for a day. It is a
// derived value, never persisted: it reflects the most recent sequence
// it was computed for.
type RouteInfo struct {
	DayID         string     `json:"dayId"`
	TotalDistance float64    `json:"totalDistance"` // km
	TotalTime     float64    `json:"totalTime"`     // minutes
	Legs          []RouteLeg `json:"legs"`

	// Path is the route geometry as [lat, lng] pairs for map display.
	Path [][2]float64 `json:"path,omitempty"`

	// Fallback is set when the directions provider was unavailable and
	// the legs are straight-line estimates.
	Fallback bool `json:"fallback,omitempty"`
}
