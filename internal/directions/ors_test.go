package directions

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDirections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/directions/driving-car/geojson" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req orsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		// Coordinates must be flipped to [lng, lat].
		if req.Coordinates[0] != [2]float64{57.78, -20.19} {
			t.Errorf("first coordinate = %v, want [lng lat]", req.Coordinates[0])
		}
		if len(req.Radiuses) != 2 || req.Radiuses[0] != SnapRadiusMeters {
			t.Errorf("radiuses = %v", req.Radiuses)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [[57.78, -20.19], [57.60, -20.30], [57.55, -20.35]]},
				"properties": {
					"summary": {"distance": 42000, "duration": 3600},
					"segments": [
						{"distance": 20000, "duration": 1800},
						{"distance": 22000, "duration": 1800}
					]
				}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	route, err := client.Directions(context.Background(), [][2]float64{{-20.19, 57.78}, {-20.35, 57.55}})
	if err != nil {
		t.Fatalf("Directions returned error: %v", err)
	}

	if math.Abs(route.TotalDistanceKm-42) > 1e-9 {
		t.Errorf("total distance = %v km, want 42", route.TotalDistanceKm)
	}
	if math.Abs(route.TotalTimeMin-60) > 1e-9 {
		t.Errorf("total time = %v min, want 60", route.TotalTimeMin)
	}
	if len(route.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(route.Segments))
	}
	if math.Abs(route.Segments[0].DistanceKm-20) > 1e-9 {
		t.Errorf("segment distance = %v, want 20", route.Segments[0].DistanceKm)
	}
	// Path points come back flipped to [lat, lng].
	if route.Path[0] != [2]float64{-20.19, 57.78} {
		t.Errorf("first path point = %v", route.Path[0])
	}
	if len(route.Path) != 3 {
		t.Errorf("path length = %d, want 3", len(route.Path))
	}
}

func TestDirectionsNotConfigured(t *testing.T) {
	client := NewClient("")
	_, err := client.Directions(context.Background(), [][2]float64{{0, 0}, {1, 1}})
	if err != ErrNotConfigured {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}

func TestDirectionsTooFewWaypoints(t *testing.T) {
	client := NewClient("key")
	if _, err := client.Directions(context.Background(), [][2]float64{{0, 0}}); err == nil {
		t.Error("expected an error for a single waypoint")
	}
}

func TestDirectionsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBaseURL("key", server.URL)
	if _, err := client.Directions(context.Background(), [][2]float64{{0, 0}, {1, 1}}); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}

func TestDirectionsNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("key", server.URL)
	if _, err := client.Directions(context.Background(), [][2]float64{{0, 0}, {1, 1}}); err == nil {
		t.Error("expected an error when no route is found")
	}
}
