package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/places"
	"github.com/jengzang/trip-planner-go/internal/spatial"
)

// DiscoverRadiiKm are the only radii the discovery search accepts.
var DiscoverRadiiKm = []float64{2, 5, 10}

// ErrInvalidRadius is returned for a radius outside DiscoverRadiiKm.
var ErrInvalidRadius = errors.New("radius must be one of 2, 5 or 10 km")

// PlacesProvider is the search surface the discovery module calls.
type PlacesProvider interface {
	SearchNearby(ctx context.Context, lat, lng, radiusKm float64, types []string) ([]models.DiscoveredPlace, error)
	Details(ctx context.Context, placeID string) (*models.PlaceDetails, error)
}

// DiscoverService finds nearby places of interest and promotes them
// into the user's catalog. A new search supersedes a prior in-flight
// one for the same user; the stale response is discarded.
type DiscoverService struct {
	provider  PlacesProvider
	locations *LocationService

	mu   sync.Mutex
	gens map[string]uint64
}

// NewDiscoverService creates a new discover service
func NewDiscoverService(provider PlacesProvider, locations *LocationService) *DiscoverService {
	return &DiscoverService{
		provider:  provider,
		locations: locations,
		gens:      make(map[string]uint64),
	}
}

// Search fetches nearby places around a center. An empty category
// searches the full allow-list; otherwise only that category's types.
// Results are classified, filtered to the radius, and sorted by
// distance from the center ascending.
func (s *DiscoverService) Search(ctx context.Context, userName string, lat, lng, radiusKm float64, category string) ([]models.DiscoveredPlace, error) {
	if !validRadius(radiusKm) {
		return nil, ErrInvalidRadius
	}

	types := places.AllTypes()
	if category != "" {
		if !places.ValidCategory(category) {
			return nil, fmt.Errorf("unknown discover category %q", category)
		}
		types = places.CategoryTypes[places.DiscoverCategory(category)]
	}

	gen := s.nextGen(userName)

	results, err := s.provider.SearchNearby(ctx, lat, lng, radiusKm, types)
	if err != nil {
		return nil, err
	}
	if !s.latestGen(userName, gen) {
		return nil, context.Canceled
	}

	filtered := results[:0]
	for _, p := range results {
		p.DistanceKm = spatial.Haversine(lat, lng, p.Lat, p.Lng)
		if p.DistanceKm > radiusKm {
			continue
		}
		// The request only asks for allow-listed types, but the
		// provider may still attach others; drop anything that does
		// not land in exactly one category.
		cat, ok := places.Classify(p.Types)
		if !ok {
			continue
		}
		p.Category = string(cat)
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DistanceKm < filtered[j].DistanceKm
	})
	return filtered, nil
}

// Details fetches the detail fields for a discovered place.
func (s *DiscoverService) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	return s.provider.Details(ctx, placeID)
}

// Promote converts a discovered place into a user-added Location,
// stores it, and returns the stored record.
func (s *DiscoverService) Promote(userName string, place models.DiscoveredPlace, details *models.PlaceDetails) (models.Location, error) {
	loc := places.PromoteToLocation(place, details)
	if err := s.locations.AddUserLocation(userName, loc); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (s *DiscoverService) nextGen(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[key]++
	return s.gens[key]
}

func (s *DiscoverService) latestGen(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[key] == gen
}

func validRadius(r float64) bool {
	for _, allowed := range DiscoverRadiiKm {
		if r == allowed {
			return true
		}
	}
	return false
}
