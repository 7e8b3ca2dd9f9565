package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/jengzang/trip-planner-go/internal/directions"
	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/planner"
)

// DirectionsProvider is the routing surface the resolver calls.
type DirectionsProvider interface {
	Directions(ctx context.Context, waypoints [][2]float64) (*directions.Route, error)
}

// RouteService resolves a day's round-trip route: home base, the
// day's stops in order, home base again. The directions provider is
// asked first; any failure degrades to straight-line estimates.
//
// Requests are superseded per day: starting a new resolution for a
// day cancels the in-flight one, and only the result for the latest
// generation is trusted as a routed result.
type RouteService struct {
	directions DirectionsProvider
	plans      *PlanService
	locations  *LocationService
	homeBase   string

	mu      sync.Mutex
	gens    map[string]uint64
	cancels map[string]context.CancelFunc
}

// NewRouteService creates a new route service
func NewRouteService(provider DirectionsProvider, plans *PlanService, locations *LocationService, homeBase string) *RouteService {
	return &RouteService{
		directions: provider,
		plans:      plans,
		locations:  locations,
		homeBase:   homeBase,
		gens:       make(map[string]uint64),
		cancels:    make(map[string]context.CancelFunc),
	}
}

// RouteForDay computes the round-trip route for one of a user's days.
func (s *RouteService) RouteForDay(ctx context.Context, userName, dayID string) (models.RouteInfo, error) {
	days, err := s.plans.GetDays(userName)
	if err != nil {
		return models.RouteInfo{}, err
	}

	var day *models.DayPlan
	for i := range days {
		if days[i].ID == dayID {
			day = &days[i]
			break
		}
	}
	if day == nil {
		return models.RouteInfo{}, fmt.Errorf("unknown day %q", dayID)
	}
	if len(day.LocationNames) == 0 {
		return planner.EmptyRoute(dayID), nil
	}

	all, err := s.locations.Catalog(userName)
	if err != nil {
		return models.RouteInfo{}, err
	}
	byName := make(map[string]models.Location, len(all))
	for _, l := range all {
		byName[l.Name] = l
	}

	home, ok := byName[s.homeBase]
	if !ok {
		return models.RouteInfo{}, fmt.Errorf("home base %q not in catalog", s.homeBase)
	}

	// Stale names (removed user locations) are skipped, not fatal
	stops := make([]models.Location, 0, len(day.LocationNames))
	for _, name := range day.LocationNames {
		if loc, ok := byName[name]; ok {
			stops = append(stops, loc)
		}
	}
	if len(stops) == 0 {
		return planner.EmptyRoute(dayID), nil
	}

	waypoints := planner.RoundTrip(home, stops)
	return s.resolve(ctx, userName, dayID, waypoints), nil
}

// resolve asks the directions provider and falls back to straight-line
// legs on failure or supersession.
func (s *RouteService) resolve(ctx context.Context, userName, dayID string, waypoints []models.Location) models.RouteInfo {
	key := userName + "/" + dayID
	gen, rctx := s.begin(key, ctx)
	defer s.finish(key, gen)

	coords := make([][2]float64, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = [2]float64{wp.Lat, wp.Lng}
	}

	route, err := s.directions.Directions(rctx, coords)
	if err != nil || !s.isLatest(key, gen) {
		if err != nil && err != directions.ErrNotConfigured && rctx.Err() == nil {
			log.Printf("Directions unavailable for %s, using straight-line estimates: %v", dayID, err)
		}
		return planner.FallbackRoute(dayID, waypoints)
	}

	info := models.RouteInfo{
		DayID:         dayID,
		TotalDistance: route.TotalDistanceKm,
		TotalTime:     route.TotalTimeMin,
		Legs:          make([]models.RouteLeg, 0, len(route.Segments)),
		Path:          route.Path,
	}
	// Pair each returned segment with its consecutive waypoint names
	for i, seg := range route.Segments {
		if i+1 >= len(waypoints) {
			break
		}
		info.Legs = append(info.Legs, models.RouteLeg{
			From:     waypoints[i].Name,
			To:       waypoints[i+1].Name,
			Distance: seg.DistanceKm,
			Time:     seg.TimeMin,
		})
	}
	return info
}

// begin bumps the generation for a key and cancels any in-flight
// request for it. The returned context is cancelled when a newer
// generation starts.
func (s *RouteService) begin(key string, parent context.Context) (uint64, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.cancels[key]; ok {
		cancel()
	}
	s.gens[key]++
	ctx, cancel := context.WithCancel(parent)
	s.cancels[key] = cancel
	return s.gens[key], ctx
}

// isLatest reports whether gen is still the newest for the key.
func (s *RouteService) isLatest(key string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[key] == gen
}

func (s *RouteService) finish(key string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[key] == gen {
		if cancel, ok := s.cancels[key]; ok {
			cancel()
			delete(s.cancels, key)
		}
	}
}
