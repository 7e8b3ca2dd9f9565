package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jengzang/trip-planner-go/internal/models"
)

type fakePlaces struct {
	results   []models.DiscoveredPlace
	err       error
	lastTypes []string

	// onSearch, when set, runs before the results are returned.
	onSearch func()
}

func (f *fakePlaces) SearchNearby(ctx context.Context, lat, lng, radiusKm float64, types []string) ([]models.DiscoveredPlace, error) {
	f.lastTypes = types
	if f.onSearch != nil {
		f.onSearch()
	}
	return f.results, f.err
}

func (f *fakePlaces) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	return nil, f.err
}

func TestDiscoverSearch(t *testing.T) {
	center := [2]float64{-20.19, 57.78}
	provider := &fakePlaces{
		results: []models.DiscoveredPlace{
			// ~12 km away, outside the 10 km radius.
			{ID: "far", Name: "Far Cafe", Lat: -20.30, Lng: 57.78, Types: []string{"cafe"}},
			{ID: "mid", Name: "Mid Museum", Lat: -20.23, Lng: 57.78, Types: []string{"museum"}},
			{ID: "near", Name: "Near Bar", Lat: -20.20, Lng: 57.78, Types: []string{"bar"}},
			{ID: "odd", Name: "Unclassified", Lat: -20.19, Lng: 57.79, Types: []string{"lodging"}},
		},
	}
	s := NewDiscoverService(provider, nil)

	got, err := s.Search(context.Background(), "alice", center[0], center[1], 10, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("results = %d, want 2 classified places inside the radius", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DistanceKm < got[i-1].DistanceKm {
			t.Errorf("results not sorted by distance: %v after %v", got[i].DistanceKm, got[i-1].DistanceKm)
		}
	}
	for _, p := range got {
		switch p.ID {
		case "far":
			t.Error("place outside the radius was returned")
		case "odd":
			t.Error("place matching no category was returned")
		case "near":
			if p.Category != "food" {
				t.Errorf("bar classified as %q", p.Category)
			}
		case "mid":
			if p.Category != "attractions" {
				t.Errorf("museum classified as %q", p.Category)
			}
		}
	}
}

func TestDiscoverSearchCategoryFilter(t *testing.T) {
	provider := &fakePlaces{}
	s := NewDiscoverService(provider, nil)

	if _, err := s.Search(context.Background(), "alice", 0, 0, 5, "food"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	for _, typ := range provider.lastTypes {
		if typ == "museum" || typ == "pharmacy" {
			t.Errorf("food search requested type %q", typ)
		}
	}

	if _, err := s.Search(context.Background(), "alice", 0, 0, 5, "nightlife"); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

func TestDiscoverSearchInvalidRadius(t *testing.T) {
	s := NewDiscoverService(&fakePlaces{}, nil)
	for _, r := range []float64{0, 1, 3, 100} {
		if _, err := s.Search(context.Background(), "alice", 0, 0, r, ""); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: error = %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestDiscoverSearchSuperseded(t *testing.T) {
	var s *DiscoverService
	provider := &fakePlaces{
		results: []models.DiscoveredPlace{{ID: "a", Name: "A"}},
	}
	s = NewDiscoverService(provider, nil)

	// A second search for the same user starts while the first is in
	// flight; the first's results must be discarded.
	provider.onSearch = func() {
		provider.onSearch = nil
		if _, err := s.Search(context.Background(), "alice", 0, 0, 5, ""); err != nil {
			t.Errorf("second search failed: %v", err)
		}
	}

	_, err := s.Search(context.Background(), "alice", 0, 0, 5, "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("stale search error = %v, want context.Canceled", err)
	}
}

func TestDiscoverSearchOtherUserDoesNotSupersede(t *testing.T) {
	var s *DiscoverService
	provider := &fakePlaces{
		results: []models.DiscoveredPlace{{ID: "a", Name: "A"}},
	}
	s = NewDiscoverService(provider, nil)

	provider.onSearch = func() {
		provider.onSearch = nil
		if _, err := s.Search(context.Background(), "bob", 0, 0, 5, ""); err != nil {
			t.Errorf("bob's search failed: %v", err)
		}
	}

	if _, err := s.Search(context.Background(), "alice", 0, 0, 5, ""); err != nil {
		t.Errorf("alice's search failed: %v", err)
	}
}
