package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	RelayPort   string
	DBUrl       string
	FrontendURL string
	// Notification relay (Resend)
	ResendAPIKey     string
	ContactEmailFrom string
	ContactEmailTo   string
	RelayURL         string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		RelayPort: getEnv("RELAY_PORT", "8787"),
		DBUrl:     getEnv("DATABASE_URL", ""),
		// Strip trailing slash so origin comparison in CORS stays exact
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		// Notification relay
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", "Portfolio <onboarding@resend.dev>"),
		ContactEmailTo:   getEnv("CONTACT_EMAIL_TO", "edisokenou@gmail.com"),
		RelayURL:         strings.TrimRight(getEnv("RELAY_URL", "http://localhost:8787"), "/"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY not configured. Contact-email relay will reject every send.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
