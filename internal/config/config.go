package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bebe-pirat/edugame-api/internal/auth"
)

// Config holds runtime configuration sourced from env vars
type Config struct {
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	StorageType string
	RedisURL    string
}

// Load reads configuration from the environment and performs minimal validation
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		StorageType: fallback(os.Getenv("STORAGE_TYPE"), "memory"),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	hours := fallback(os.Getenv("TOKEN_TTL_HOURS"), "24")
	if ttlHours, err := strconv.Atoi(hours); err == nil && ttlHours > 0 {
		cfg.TokenTTL = time.Duration(ttlHours) * time.Hour
	} else {
		cfg.TokenTTL = auth.DefaultTokenTTL
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return Config{}, errors.New("REDIS_URL is required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
