package models

// DiscoveredPlace is a nearby place returned by the places provider,
// reshaped for the client.
type DiscoveredPlace struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	Rating          float64  `json:"rating,omitempty"`
	UserRatingCount int      `json:"userRatingCount,omitempty"`
	Types           []string `json:"types"`
	PhotoURI        string   `json:"photoUri,omitempty"`
	DistanceKm      float64  `json:"distanceKm"`
	Category        string   `json:"category,omitempty"`
}

// PlaceReview is a single user review from the places provider.
type PlaceReview struct {
	Author         string  `json:"author"`
	AuthorPhotoURI string  `json:"authorPhotoUri,omitempty"`
	AuthorURI      string  `json:"authorUri,omitempty"`
	Rating         float64 `json:"rating"`
	Text           string  `json:"text,omitempty"`
	TimeAgo        string  `json:"timeAgo"`
}

// PlaceDetails holds the optional detail fields fetched before
// promoting a discovered place to the catalog.
type PlaceDetails struct {
	EditorialSummary string        `json:"editorialSummary,omitempty"`
	Reviews          []PlaceReview `json:"reviews"`
	Phone            string        `json:"phone,omitempty"`
	Website          string        `json:"website,omitempty"`
	OpenNow          *bool         `json:"openNow,omitempty"`
	WeekdayHours     []string      `json:"weekdayHours,omitempty"`
	PriceLevel       string        `json:"priceLevel,omitempty"`
	GoogleMapsURL    string        `json:"googleMapsUrl,omitempty"`
}
