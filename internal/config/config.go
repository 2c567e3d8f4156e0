package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolSize int

	// Every query runs under this deadline so a saturated pool is reported
	// instead of queueing indefinitely.
	QueryTimeout time.Duration

	RedisURL        string
	RateLimitVerify time.Duration

	// Tenant profile served by the (non-persistent) profile endpoints.
	ProfileFullName     string
	ProfileOrganization string
	ProfileEmail        string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASS"),
		DBName:     getEnv("DB_NAME", "certdash"),

		RedisURL: os.Getenv("REDIS_URL"),

		ProfileFullName:     getEnv("PROFILE_FULL_NAME", "John Doe"),
		ProfileOrganization: getEnv("PROFILE_ORGANIZATION", "Acme Education"),
		ProfileEmail:        getEnv("PROFILE_EMAIL", "john.doe@example.com"),
	}

	poolSize, err := strconv.Atoi(getEnv("DB_POOL_SIZE", "10"))
	if err != nil || poolSize <= 0 {
		return nil, fmt.Errorf("invalid DB_POOL_SIZE: %q", getEnv("DB_POOL_SIZE", "10"))
	}
	cfg.DBPoolSize = poolSize

	cfg.QueryTimeout, err = time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_QUERY_TIMEOUT: %w", err)
	}

	cfg.RateLimitVerify, err = time.ParseDuration(getEnv("RATE_LIMIT_VERIFY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_VERIFY: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
