// Package places wraps the Google Places API (v1) for nearby search
// and place details, and maps discovered places into catalog entries.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jengzang/trip-planner-go/internal/models"
)

const defaultBaseURL = "https://places.googleapis.com/v1"

const (
	searchFieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
		"places.rating,places.userRatingCount,places.types,places.photos"
	detailsFieldMask = "editorialSummary,reviews,internationalPhoneNumber,websiteUri," +
		"currentOpeningHours,priceLevel,googleMapsUri"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("places: discover service not configured")

// Client calls the Google Places API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a places client. An empty API key yields a client
// whose requests fail with ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type nearbyRequest struct {
	LocationRestriction struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"` // meters
		} `json:"circle"`
	} `json:"locationRestriction"`
	IncludedTypes  []string `json:"includedTypes"`
	MaxResultCount int      `json:"maxResultCount"`
	RankPreference string   `json:"rankPreference"`
}

type googlePlace struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"userRatingCount"`
	Types           []string `json:"types"`
	Photos          []struct {
		Name string `json:"name"`
	} `json:"photos"`
}

type nearbyResponse struct {
	Places []googlePlace `json:"places"`
}

// SearchNearby fetches places of the given types around a center. The
// radius is in kilometers. Results are reshaped; distance and category
// classification are left to the caller.
func (c *Client) SearchNearby(ctx context.Context, lat, lng, radiusKm float64, types []string) ([]models.DiscoveredPlace, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(types) == 0 {
		return nil, errors.New("places: no place types requested")
	}

	var reqBody nearbyRequest
	reqBody.LocationRestriction.Circle.Center.Latitude = lat
	reqBody.LocationRestriction.Circle.Center.Longitude = lng
	reqBody.LocationRestriction.Circle.Radius = radiusKm * 1000
	reqBody.IncludedTypes = types
	reqBody.MaxResultCount = 20
	reqBody.RankPreference = "DISTANCE"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/places:searchNearby", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("places search returned status %d: %s", resp.StatusCode, body)
	}

	var searchResp nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	places := make([]models.DiscoveredPlace, 0, len(searchResp.Places))
	for _, p := range searchResp.Places {
		place := models.DiscoveredPlace{
			ID:              p.ID,
			Name:            p.DisplayName.Text,
			Address:         p.FormattedAddress,
			Lat:             p.Location.Latitude,
			Lng:             p.Location.Longitude,
			Rating:          p.Rating,
			UserRatingCount: p.UserRatingCount,
			Types:           p.Types,
		}
		if place.Name == "" {
			place.Name = "Unknown"
		}
		if len(p.Photos) > 0 && p.Photos[0].Name != "" {
			place.PhotoURI = fmt.Sprintf(
				"%s/%s/media?maxHeightPx=200&maxWidthPx=200&key=%s",
				c.baseURL, p.Photos[0].Name, c.apiKey,
			)
		}
		places = append(places, place)
	}
	return places, nil
}

// priceLabels maps the provider's price-level enum to display tiers.
var priceLabels = map[string]string{
	"PRICE_LEVEL_FREE":           "Free",
	"PRICE_LEVEL_INEXPENSIVE":    "$",
	"PRICE_LEVEL_MODERATE":       "$$",
	"PRICE_LEVEL_EXPENSIVE":      "$$$",
	"PRICE_LEVEL_VERY_EXPENSIVE": "$$$$",
}

type detailsResponse struct {
	EditorialSummary struct {
		Text string `json:"text"`
	} `json:"editorialSummary"`
	Reviews []struct {
		AuthorAttribution struct {
			DisplayName string `json:"displayName"`
			PhotoURI    string `json:"photoUri"`
			URI         string `json:"uri"`
		} `json:"authorAttribution"`
		Rating float64 `json:"rating"`
		Text   struct {
			Text string `json:"text"`
		} `json:"text"`
		RelativePublishTimeDescription string `json:"relativePublishTimeDescription"`
	} `json:"reviews"`
	InternationalPhoneNumber string `json:"internationalPhoneNumber"`
	WebsiteURI               string `json:"websiteUri"`
	CurrentOpeningHours      *struct {
		OpenNow             bool     `json:"openNow"`
		WeekdayDescriptions []string `json:"weekdayDescriptions"`
	} `json:"currentOpeningHours"`
	PriceLevel    string `json:"priceLevel"`
	GoogleMapsURI string `json:"googleMapsUri"`
}

// Details fetches the detail fields for a place by id.
func (c *Client) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if placeID == "" {
		return nil, errors.New("places: placeId required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/"+placeID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", detailsFieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("place details returned status %d: %s", resp.StatusCode, body)
	}

	var d detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode place details: %w", err)
	}

	details := &models.PlaceDetails{
		EditorialSummary: d.EditorialSummary.Text,
		Reviews:          make([]models.PlaceReview, 0, len(d.Reviews)),
		Phone:            d.InternationalPhoneNumber,
		Website:          d.WebsiteURI,
		PriceLevel:       priceLabels[d.PriceLevel],
		GoogleMapsURL:    d.GoogleMapsURI,
	}
	if d.CurrentOpeningHours != nil {
		open := d.CurrentOpeningHours.OpenNow
		details.OpenNow = &open
		details.WeekdayHours = d.CurrentOpeningHours.WeekdayDescriptions
	}
	for _, r := range d.Reviews {
		author := r.AuthorAttribution.DisplayName
		if author == "" {
			author = "Anonymous"
		}
		details.Reviews = append(details.Reviews, models.PlaceReview{
			Author:         author,
			AuthorPhotoURI: r.AuthorAttribution.PhotoURI,
			AuthorURI:      r.AuthorAttribution.URI,
			Rating:         r.Rating,
			Text:           r.Text.Text,
			TimeAgo:        r.RelativePublishTimeDescription,
		})
	}
	return details, nil
}
