package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// AuthToken is the shared trip token users log in with
	AuthToken string

	// External API keys; features degrade when unset
	ORSAPIKey     string
	GoogleAPIKey  string
	WeatherAPIKey string

	// Trip shape
	TripDays     int
	HomeBaseName string

	// Destination center for the weather report
	CenterLat float64
	CenterLng float64

	// PlanFlushDelay is the debounce window for coalesced plan writes
	PlanFlushDelay time.Duration
}

// Load reads configuration from the environment, falling back to
// development defaults. A .env file is loaded when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", ":8080"),
		DBPath:         getEnv("DB_PATH", "./data/planner.db"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AuthToken:      getEnv("AUTH_TOKEN", ""),
		ORSAPIKey:      getEnv("OPENROUTESERVICE_API_KEY", ""),
		GoogleAPIKey:   getEnv("GOOGLE_PLACES_API_KEY", ""),
		WeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		TripDays:       getEnvInt("TRIP_DAYS", 7),
		HomeBaseName:   getEnv("HOME_BASE_NAME", "C Mauritius (Hotel)"),
		CenterLat:      getEnvFloat("CENTER_LAT", -20.2),
		CenterLng:      getEnvFloat("CENTER_LNG", 57.5),
		PlanFlushDelay: getEnvDuration("PLAN_FLUSH_DELAY", 500*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
