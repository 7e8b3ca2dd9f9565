package service

import (
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/repository"
)

// LocationService merges the curated catalog with a user's added
// locations.
type LocationService struct {
	catalogRepo *repository.LocationRepository
	userRepo    *repository.UserLocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(catalogRepo *repository.LocationRepository, userRepo *repository.UserLocationRepository) *LocationService {
	return &LocationService{catalogRepo: catalogRepo, userRepo: userRepo}
}

// Catalog returns the curated catalog merged with the user's added
// locations. Names are unique across the result; on a clash the
// curated entry wins. An empty user name returns the catalog alone.
func (s *LocationService) Catalog(userName string) ([]models.Location, error) {
	curated, err := s.catalogRepo.ListCatalog()
	if err != nil {
		return nil, err
	}
	if userName == "" {
		return curated, nil
	}

	added, err := s.userRepo.ListByUser(userName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(curated))
	for _, l := range curated {
		seen[l.Name] = true
	}
	merged := curated
	for _, l := range added {
		if seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		merged = append(merged, l)
	}
	return merged, nil
}

// AddUserLocation stores a user-added location. The category must be
// one of the known catalog categories.
func (s *LocationService) AddUserLocation(userName string, loc models.Location) error {
	if !models.ValidCategory(loc.Category) {
		return fmt.Errorf("unknown location category %q", loc.Category)
	}
	return s.userRepo.Upsert(userName, loc)
}

// RemoveUserLocation deletes a user-added location by name.
func (s *LocationService) RemoveUserLocation(userName, name string) error {
	return s.userRepo.Delete(userName, name)
}
