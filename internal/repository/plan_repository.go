package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jengzang/trip-planner-go/internal/models"
)

// PlanRepository handles database operations for per-user day plans.
// A user's whole plan is stored as one JSON blob: an ordered array of
// {id, label, locationNames} objects.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetPlans retrieves a user's stored day plans. Returns (nil, nil)
// when the user has no stored plans yet.
func (r *PlanRepository) GetPlans(userName string) ([]models.DayPlan, error) {
	var blob string
	err := r.db.QueryRow(
		"SELECT plans FROM user_plans WHERE user_name = ?", userName,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	var days []models.DayPlan
	if err := json.Unmarshal([]byte(blob), &days); err != nil {
		return nil, fmt.Errorf("failed to decode stored plans: %w", err)
	}
	return days, nil
}

// SavePlans stores a user's day plans, creating the row when needed.
func (r *PlanRepository) SavePlans(userName string, days []models.DayPlan) error {
	blob, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to encode plans: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO user_plans (user_name, plans, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_name) DO UPDATE SET
			plans = excluded.plans,
			updated_at = CURRENT_TIMESTAMP`,
		userName, string(blob),
	)
	if err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}
	return nil
}

// EnsureUser creates an empty plans row for a user if none exists.
func (r *PlanRepository) EnsureUser(userName string) error {
	_, err := r.db.Exec(
		"INSERT OR IGNORE INTO user_plans (user_name, plans) VALUES (?, '[]')",
		userName,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}
