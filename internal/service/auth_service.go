package service

import (
	"errors"
	"strings"

	"github.com/jengzang/trip-planner-go/internal/auth"
	"github.com/jengzang/trip-planner-go/internal/models"
)

// ErrInvalidCredentials is returned when the shared trip token does
// not match.
var ErrInvalidCredentials = errors.New("invalid name or token")

// AuthService validates the shared trip token and mints session
// tokens. All trip members share one token; the name only selects
// whose plan to load.
type AuthService struct {
	sharedToken string
	jwt         *auth.JWTService
	plans       *PlanService
}

// NewAuthService creates a new auth service
func NewAuthService(sharedToken string, jwt *auth.JWTService, plans *PlanService) *AuthService {
	return &AuthService{sharedToken: sharedToken, jwt: jwt, plans: plans}
}

// NormalizeUserName canonicalizes a display name into the stored key.
func NormalizeUserName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Login checks the shared token and, on success, returns a session
// token together with the user's stored day plans.
func (s *AuthService) Login(name, token string) (sessionToken string, days []models.DayPlan, err error) {
	userName := NormalizeUserName(name)
	if userName == "" || token == "" {
		return "", nil, ErrInvalidCredentials
	}
	if s.sharedToken == "" || token != s.sharedToken {
		return "", nil, ErrInvalidCredentials
	}

	sessionToken, err = s.jwt.GenerateToken(userName)
	if err != nil {
		return "", nil, err
	}

	if err = s.plans.EnsureUser(userName); err != nil {
		return "", nil, err
	}
	days, err = s.plans.GetDays(userName)
	if err != nil {
		return "", nil, err
	}
	return sessionToken, days, nil
}
