// Package directions wraps the OpenRouteService driving-car endpoint.
package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// SnapRadiusMeters is how far each waypoint may be from a mapped road.
// Island pins and trailheads are often not on a road at all.
const SnapRadiusMeters = 5000

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("directions: routing service not configured")

// Client calls the OpenRouteService directions API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a directions client. An empty API key yields a
// client whose requests fail with ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Segment is one leg of the returned route.
type Segment struct {
	DistanceKm float64
	TimeMin    float64
}

// Route is the reshaped directions response: a [lat, lng] path for
// map display plus per-segment distance and duration.
type Route struct {
	Path            [][2]float64
	TotalDistanceKm float64
	TotalTimeMin    float64
	Segments        []Segment
}

type orsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Radiuses    []float64    `json:"radiuses"`
}

type orsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// Directions requests a driving route through the given waypoints,
// passed as [lat, lng] pairs. Each waypoint is snapped to the nearest
// road within SnapRadiusMeters.
func (c *Client) Directions(ctx context.Context, waypoints [][2]float64) (*Route, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("directions: need at least 2 waypoints, got %d", len(waypoints))
	}

	// ORS expects [lng, lat] order
	reqBody := orsRequest{
		Coordinates: make([][2]float64, len(waypoints)),
		Radiuses:    make([]float64, len(waypoints)),
	}
	for i, wp := range waypoints {
		reqBody.Coordinates[i] = [2]float64{wp[1], wp[0]}
		reqBody.Radiuses[i] = SnapRadiusMeters
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	apiURL := c.baseURL + "/v2/directions/driving-car/geojson"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("directions returned status %d: %s", resp.StatusCode, body)
	}

	var orsResp orsResponse
	if err := json.NewDecoder(resp.Body).Decode(&orsResp); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if len(orsResp.Features) == 0 {
		return nil, errors.New("directions: no route found")
	}

	feature := orsResp.Features[0]
	route := &Route{
		Path:            make([][2]float64, 0, len(feature.Geometry.Coordinates)),
		TotalDistanceKm: feature.Properties.Summary.Distance / 1000,
		TotalTimeMin:    feature.Properties.Summary.Duration / 60,
		Segments:        make([]Segment, 0, len(feature.Properties.Segments)),
	}
	// GeoJSON coordinates are [lng, lat]; flip to [lat, lng]
	for _, c := range feature.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		route.Path = append(route.Path, [2]float64{c[1], c[0]})
	}
	for _, s := range feature.Properties.Segments {
		route.Segments = append(route.Segments, Segment{
			DistanceKm: s.Distance / 1000,
			TimeMin:    s.Duration / 60,
		})
	}
	return route, nil
}
