package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	// AuthSecret enables bearer-token auth when non-empty. The API runs
	// open otherwise.
	AuthSecret  string
	TokenExpiry time.Duration

	MaxHierarchyDepth int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	tokenExpiry, err := time.ParseDuration(getEnv("TOKEN_EXPIRY", "24h"))
	if err != nil {
		tokenExpiry = 24 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnvOrPanic("DATABASE_URL"),

		AuthSecret:  getEnv("AUTH_SECRET", ""),
		TokenExpiry: tokenExpiry,

		MaxHierarchyDepth: 100,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
