package service

import (
	"context"
	"sync"
	"time"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// WeatherProvider is the forecast surface the weather service calls.
type WeatherProvider interface {
	Report(ctx context.Context) (*models.WeatherReport, error)
}

// weatherCacheTTL keeps upstream calls down; conditions at a fixed
// destination do not change minute to minute.
const weatherCacheTTL = 30 * time.Minute

// WeatherService serves the destination weather report with a small
// in-memory cache.
type WeatherService struct {
	provider WeatherProvider

	mu        sync.Mutex
	cached    *models.WeatherReport
	fetchedAt time.Time
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

// Report returns the current conditions and daily forecast, reusing a
// cached report while it is fresh.
func (s *WeatherService) Report(ctx context.Context) (*models.WeatherReport, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.fetchedAt) < weatherCacheTTL {
		report := s.cached
		s.mu.Unlock()
		return report, nil
	}
	s.mu.Unlock()

	report, err := s.provider.Report(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = report
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return report, nil
}
