// Package config loads process-wide configuration from the environment.
// Configuration is read once at startup and passed explicitly through
// constructors; nothing in this package is consulted after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// defaultTokenTTL is the access token lifetime used when TOKEN_TTL is unset.
const defaultTokenTTL = 15 * time.Minute

// Config holds every runtime setting the server needs.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// DBUser, DBPassword, DBHost, DBPort and DBName describe the
	// PostgreSQL connection.
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// RunMigrations enables GORM auto-migration at startup.
	RunMigrations bool

	// RedisHost, RedisPort and RedisPassword describe the optional Redis
	// cache. An empty RedisHost disables caching.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// JWTSecret is the symmetric signing key for access tokens.
	// It must never appear in logs or responses.
	JWTSecret string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration
}

// Load reads configuration from environment variables.
// It returns an error if JWT_SECRET is missing, since the server cannot
// issue or verify tokens without it.
func Load() (Config, error) {
	cfg := Config{
		Port:          getenvDefault("PORT", "8080"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getenvDefault("DB_HOST", "localhost"),
		DBPort:        getenvDefault("DB_PORT", "5432"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenvDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      defaultTokenTTL,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// RedisAddr returns the host:port address of the Redis server, or an empty
// string when Redis is not configured.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
