package config

import (
	"errors"
	"os"
	"time"
)

// Config is process-wide and loaded once at startup; nothing reads the
// environment after this point.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	JWTExpiresIn time.Duration
	RedisURL     string
	RateLimitRPS int
}

func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return &Config{
		Port:         GetEnvAsString("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    secret,
		JWTExpiresIn: time.Duration(GetEnvAsInt("JWT_EXPIRES_IN", 86400)) * time.Second,
		RedisURL:     os.Getenv("REDIS_URL"),
		RateLimitRPS: GetEnvAsInt("RATE_LIMIT_RPS", 20),
	}, nil
}
