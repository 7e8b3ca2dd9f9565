package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// UserLocationRepository handles database operations for user-added locations
type UserLocationRepository struct {
	db *sql.DB
}

// NewUserLocationRepository creates a new user location repository
func NewUserLocationRepository(db *sql.DB) *UserLocationRepository {
	return &UserLocationRepository{db: db}
}

// ListByUser retrieves all locations a user has added, ordered by
// creation time
func (r *UserLocationRepository) ListByUser(userName string) ([]models.Location, error) {
	rows, err := r.db.Query(`
		SELECT name, lat, lng, category, rating, notes, hours, phone, website, place_id
		FROM user_locations WHERE user_name = ? ORDER BY created_at`, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to query user locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		loc.IsUserAdded = true
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// Upsert inserts a user location or updates the existing row with the
// same (user, name) key
func (r *UserLocationRepository) Upsert(userName string, loc models.Location) error {
	_, err := r.db.Exec(`
		INSERT INTO user_locations
			(user_name, name, lat, lng, category, rating, notes, hours, phone, website, place_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_name, name) DO UPDATE SET
			lat = excluded.lat,
			lng = excluded.lng,
			category = excluded.category,
			rating = excluded.rating,
			notes = excluded.notes,
			hours = excluded.hours,
			phone = excluded.phone,
			website = excluded.website,
			place_id = excluded.place_id`,
		userName, loc.Name, loc.Lat, loc.Lng, string(loc.Category),
		nullableFloat(loc.Rating), loc.Notes,
		nullableString(loc.Hours), nullableString(loc.Phone),
		nullableString(loc.Website), nullableString(loc.PlaceID),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user location: %w", err)
	}
	return nil
}

// Delete removes a user-added location. Deleting a location the user
// never added is not an error.
func (r *UserLocationRepository) Delete(userName, name string) error {
	_, err := r.db.Exec(
		"DELETE FROM user_locations WHERE user_name = ? AND name = ?",
		userName, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete user location: %w", err)
	}
	return nil
}

func nullableFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
