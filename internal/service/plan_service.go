package service

import (
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
	"github.com/jengzang/trip-planner-go/internal/planner"
	"github.com/jengzang/trip-planner-go/internal/repository"
)

// PlanService handles business logic for day plans. Reads come from
// the repository; writes go through the coalescing writer.
type PlanService struct {
	repo      *repository.PlanRepository
	writer    *PlanWriter
	locations *LocationService
	tripDays  int
	homeBase  string
}

// NewPlanService creates a new plan service
func NewPlanService(repo *repository.PlanRepository, writer *PlanWriter, locations *LocationService, tripDays int, homeBase string) *PlanService {
	return &PlanService{
		repo:      repo,
		writer:    writer,
		locations: locations,
		tripDays:  tripDays,
		homeBase:  homeBase,
	}
}

// GetDays returns a user's day plans, defaulting to the configured
// number of empty days when none are stored. An enqueued but not yet
// flushed plan wins over the stored one: reads must see the latest
// accepted edit, not what the debounced write has persisted so far.
func (s *PlanService) GetDays(userName string) ([]models.DayPlan, error) {
	if days, ok := s.writer.Latest(userName); ok {
		return planner.Normalize(days, s.tripDays), nil
	}

	days, err := s.repo.GetPlans(userName)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return planner.DefaultDays(s.tripDays), nil
	}
	return planner.Normalize(days, s.tripDays), nil
}

// EnsureUser creates the user's plans row if none exists, leaving any
// stored plan untouched.
func (s *PlanService) EnsureUser(userName string) error {
	return s.repo.EnsureUser(userName)
}

// SaveDays validates and queues a full plan save.
func (s *PlanService) SaveDays(userName string, days []models.DayPlan) ([]models.DayPlan, error) {
	normalized := planner.Normalize(days, s.tripDays)
	s.writer.Enqueue(userName, normalized)
	return normalized, nil
}

// Reset replaces a user's plan with empty days and persists
// immediately: resets are rare and deliberate, not drag chatter.
func (s *PlanService) Reset(userName string) ([]models.DayPlan, error) {
	days := planner.DefaultDays(s.tripDays)
	if err := s.repo.SavePlans(userName, days); err != nil {
		return nil, err
	}
	// The queue may still hold a pre-reset plan; drop it so it cannot
	// shadow or overwrite the reset.
	s.writer.Discard(userName)
	return days, nil
}

// Move applies a drag-and-drop move given wire-form drag references
// and queues the result. The returned activeDayID is the day UI focus
// should follow to; moved is false for no-op drops.
func (s *PlanService) Move(userName, source, target string) (days []models.DayPlan, activeDayID string, moved bool, err error) {
	src, err := planner.ParseDragRef(source)
	if err != nil {
		return nil, "", false, fmt.Errorf("invalid source: %w", err)
	}
	dst, err := planner.ParseDragRef(target)
	if err != nil {
		return nil, "", false, fmt.Errorf("invalid target: %w", err)
	}

	days, err = s.GetDays(userName)
	if err != nil {
		return nil, "", false, err
	}

	days, activeDayID, moved = planner.Move(days, src, dst)
	if moved {
		s.writer.Enqueue(userName, days)
	}
	return days, activeDayID, moved, nil
}

// Remove takes a location out of a day and queues the result.
func (s *PlanService) Remove(userName, dayID, name string) ([]models.DayPlan, error) {
	days, err := s.GetDays(userName)
	if err != nil {
		return nil, err
	}
	days = planner.Remove(days, dayID, name)
	s.writer.Enqueue(userName, days)
	return days, nil
}

// Suggest ranks unassigned locations by proximity to the given day.
func (s *PlanService) Suggest(userName, dayID string) ([]planner.Suggestion, error) {
	days, err := s.GetDays(userName)
	if err != nil {
		return nil, err
	}
	all, err := s.locations.Catalog(userName)
	if err != nil {
		return nil, err
	}
	return planner.Suggest(all, days, dayID, planner.DefaultSuggestionCount), nil
}

// Unassigned returns the pool of catalog locations not assigned to
// any day, grouped by island region.
func (s *PlanService) Unassigned(userName string) (map[planner.Region][]models.Location, error) {
	days, err := s.GetDays(userName)
	if err != nil {
		return nil, err
	}
	all, err := s.locations.Catalog(userName)
	if err != nil {
		return nil, err
	}
	pool := planner.Unassigned(all, days, s.homeBase)
	return planner.GroupByRegion(pool), nil
}
