package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port   int
	DBPath string

	ValhallaURL    string
	OverpassURL    string
	TripPlannerURL string
	TfNSWAPIKey    string

	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	CacheTTL time.Duration
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system env vars")
	}

	return &Config{
		Port:   getEnvInt("PORT", 8080),
		DBPath: getEnv("DB_PATH", "data/rentsmart.db"),

		ValhallaURL:    getEnv("VALHALLA_URL", ""),
		OverpassURL:    getEnv("OVERPASS_URL", ""),
		TripPlannerURL: getEnv("TRIP_PLANNER_URL", ""),
		TfNSWAPIKey:    getEnv("TFNSW_API_KEY", ""),

		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),

		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
