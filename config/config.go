package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// Metadata gateway configuration
	TMDBAPIKey  string
	TMDBBaseURL string

	// Database configuration
	MongoURI string
	DBName   string

	// Security configuration
	JWTSecret string

	// Server configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: env file %s not found, using process environment", envFile)
	}

	cfg := &Config{
		// Metadata gateway configuration
		TMDBAPIKey:  getEnvOrDefault("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),

		// Database configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "moviediscovery"),

		// Security configuration
		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),

		// Server configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
