package planner

import (
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// DefaultTripDays is the trip length when none is configured.
const DefaultTripDays = 7

// DefaultDays returns n empty day buckets, day-1 through day-n.
func DefaultDays(n int) []models.DayPlan {
	if n < 1 {
		n = DefaultTripDays
	}
	days := make([]models.DayPlan, n)
	for i := range days {
		days[i] = models.DayPlan{
			ID:            fmt.Sprintf("day-%d", i+1),
			Label:         fmt.Sprintf("Day %d", i+1),
			LocationNames: []string{},
		}
	}
	return days
}

// cloneDays deep-copies the day slice so moves never mutate the input.
func cloneDays(days []models.DayPlan) []models.DayPlan {
	out := make([]models.DayPlan, len(days))
	for i, d := range days {
		names := make([]string, len(d.LocationNames))
		copy(names, d.LocationNames)
		out[i] = models.DayPlan{ID: d.ID, Label: d.Label, LocationNames: names}
	}
	return out
}

func findDay(days []models.DayPlan, id string) *models.DayPlan {
	for i := range days {
		if days[i].ID == id {
			return &days[i]
		}
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func remove(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// insertBefore inserts name before target; when the target is absent
// the name is appended (stale drop targets degrade to an append).
func insertBefore(names []string, name, target string) []string {
	idx := -1
	for i, n := range names {
		if n == target {
			idx = i
			break
		}
	}
	if target == "" || idx < 0 {
		return append(names, name)
	}
	out := make([]string, 0, len(names)+1)
	out = append(out, names[:idx]...)
	out = append(out, name)
	out = append(out, names[idx:]...)
	return out
}

// Move applies a drag-and-drop move to the day plans and returns the
// resulting plans plus the id of the day that should become active.
// Unresolvable or malformed moves are no-ops: the input plans are
// returned unchanged and moved is false. Move never mutates its input.
//
// Supported moves:
//   - pool → day: insert before the target name, or append
//   - day → day (including the same day): remove then reinsert
func Move(days []models.DayPlan, src, dst DragRef) (result []models.DayPlan, activeDayID string, moved bool) {
	if src.Name == "" || dst.Kind != RefDay || dst.DayID == "" {
		return days, "", false
	}

	out := cloneDays(days)
	target := findDay(out, dst.DayID)
	if target == nil {
		return days, "", false
	}

	switch src.Kind {
	case RefPool:
		// The source must actually be unassigned, and the guard below
		// keeps a duplicate drop from inserting the name twice.
		if contains(target.LocationNames, src.Name) {
			return days, "", false
		}
		for i := range out {
			if contains(out[i].LocationNames, src.Name) {
				return days, "", false
			}
		}
		target.LocationNames = insertBefore(target.LocationNames, src.Name, dst.Name)
		return out, target.ID, true

	case RefDay:
		source := findDay(out, src.DayID)
		if source == nil || !contains(source.LocationNames, src.Name) {
			return days, "", false
		}
		if source.ID != target.ID && contains(target.LocationNames, src.Name) {
			return days, "", false
		}
		source.LocationNames = remove(source.LocationNames, src.Name)
		target.LocationNames = insertBefore(target.LocationNames, src.Name, dst.Name)
		return out, target.ID, true
	}

	return days, "", false
}

// Remove takes a location out of a day, returning it to the pool.
func Remove(days []models.DayPlan, dayID, name string) []models.DayPlan {
	out := cloneDays(days)
	if d := findDay(out, dayID); d != nil {
		d.LocationNames = remove(d.LocationNames, name)
	}
	return out
}

// AssignedNames returns the set of location names present in any day.
func AssignedNames(days []models.DayPlan) map[string]bool {
	assigned := make(map[string]bool)
	for _, d := range days {
		for _, n := range d.LocationNames {
			assigned[n] = true
		}
	}
	return assigned
}

// Unassigned returns the catalog locations not assigned to any day.
// The home base is excluded: every route starts and ends there.
func Unassigned(all []models.Location, days []models.DayPlan, homeBase string) []models.Location {
	assigned := AssignedNames(days)
	var pool []models.Location
	for _, l := range all {
		if assigned[l.Name] || l.Name == homeBase || l.Category == models.CategoryHotel {
			continue
		}
		pool = append(pool, l)
	}
	return pool
}

// Normalize reconciles stored plans with the configured trip length:
// missing days are created empty, duplicate names keep their first
// occurrence, and nil name slices become empty ones.
func Normalize(days []models.DayPlan, tripDays int) []models.DayPlan {
	defaults := DefaultDays(tripDays)
	seen := make(map[string]bool)
	for i := range defaults {
		if stored := findDay(days, defaults[i].ID); stored != nil {
			names := make([]string, 0, len(stored.LocationNames))
			for _, n := range stored.LocationNames {
				if n == "" || seen[n] {
					continue
				}
				seen[n] = true
				names = append(names, n)
			}
			defaults[i].LocationNames = names
			if stored.Label != "" {
				defaults[i].Label = stored.Label
			}
		}
	}
	return defaults
}
