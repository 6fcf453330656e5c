package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	StateDBPath string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:  envOr("FOODCOURT_API_URL", "http://localhost:5555"),
		StateDBPath: envOr("FOODCOURT_STATE_DB", "foodcourt.db"),
		HTTPTimeout: durationOr("FOODCOURT_HTTP_TIMEOUT", 15*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
