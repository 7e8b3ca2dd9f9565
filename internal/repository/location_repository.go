package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// LocationRepository handles database operations for the curated catalog
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ListCatalog retrieves all curated locations ordered by name
func (r *LocationRepository) ListCatalog() ([]models.Location, error) {
	rows, err := r.db.Query(`
		SELECT name, lat, lng, category, rating, notes, hours, phone, website, place_id
		FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// GetByName retrieves a single curated location, or nil when absent
func (r *LocationRepository) GetByName(name string) (*models.Location, error) {
	row := r.db.QueryRow(`
		SELECT name, lat, lng, category, rating, notes, hours, phone, website, place_id
		FROM locations WHERE name = ?`, name)

	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &loc, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (models.Location, error) {
	var loc models.Location
	var rating sql.NullFloat64
	var hours, phone, website, placeID sql.NullString

	err := row.Scan(
		&loc.Name, &loc.Lat, &loc.Lng, &loc.Category,
		&rating, &loc.Notes, &hours, &phone, &website, &placeID,
	)
	if err == sql.ErrNoRows {
		return loc, err
	}
	if err != nil {
		return loc, fmt.Errorf("failed to scan location: %w", err)
	}

	loc.Rating = rating.Float64
	loc.Hours = hours.String
	loc.Phone = phone.String
	loc.Website = website.String
	loc.PlaceID = placeID.String
	return loc, nil
}
