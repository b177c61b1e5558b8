package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	CORSOrigin string
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development. JWTSecret has no default and is validated
// by the caller.
func Load() Config {
	addr := envString("ADDR", "")
	if addr == "" {
		addr = ":" + envString("PORT", "5000")
	}

	return Config{
		Addr:       addr,
		DBPath:     envString("DATABASE_PATH", "openpress.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   envDuration("JWT_TTL", 24*time.Hour),
		BcryptCost: envInt("BCRYPT_COST", 12),
		CORSOrigin: envString("CORS_ORIGIN", "http://localhost:3000"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
