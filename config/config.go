package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries all environment-sourced settings.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	SpotifyClientID     string
	SpotifyClientSecret string

	JWTSecret string

	AllowedOrigins []string
	LogLevel       string
}

// Load reads .env when present, then the environment. MONGODB_URL and
// SECRET_KEY are required; everything else has a default.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	mongoURI := os.Getenv("MONGODB_URL")
	if mongoURI == "" {
		return Config{}, errors.New("MONGODB_URL env var is required")
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return Config{}, errors.New("SECRET_KEY env var is required")
	}

	return Config{
		Port:                envOrDefault("PORT", "9000"),
		MongoURI:            mongoURI,
		MongoDB:             envOrDefault("MONGODB_DATABASE", "songreview"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		JWTSecret:           secret,
		AllowedOrigins:      splitOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:            envOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
