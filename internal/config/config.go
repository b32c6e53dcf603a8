package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// DefaultBackendURL is used when BACKEND_URL is not set.
const DefaultBackendURL = "https://7a87a294961a47fa-128-54-132-165.serveousercontent.com"

// MaxUserIDLength bounds the user identifiers accepted from requests and configuration.
const MaxUserIDLength = 128

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	S3        S3Config
	Analytics AnalyticsConfig
	Catalog   CatalogConfig
	Session   SessionConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
// The catalogue is served from memory unless Enabled is set.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
// An empty APIKey disables API key checks.
type AuthConfig struct {
	APIKey string
}

// S3Config holds AWS S3 configuration for catalogue fixture files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "catalog/")
}

// AnalyticsConfig holds configuration for the recommendations backend.
type AnalyticsConfig struct {
	BackendURL       string
	TunnelSignatures []string
	DefaultLimit     int
}

// CatalogConfig holds configuration for the dining catalogue.
type CatalogConfig struct {
	File string // empty means the embedded fixture
	Seed bool   // reseed the database from the fixture at startup
}

// SessionConfig holds per-user session configuration.
type SessionConfig struct {
	DefaultUserID string
	MaxStores     int // least recently used stores are evicted beyond this; 0 means unbounded
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Enabled:         getEnvAsBool("DB_ENABLED", false),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "dining"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "catalog/"),
		},
		Analytics: AnalyticsConfig{
			BackendURL:       strings.TrimRight(getEnv("BACKEND_URL", DefaultBackendURL), "/"),
			TunnelSignatures: getEnvAsSlice("ANALYTICS_TUNNEL_SIGNATURES", []string{"serveo"}),
			DefaultLimit:     getEnvAsInt("ANALYTICS_DEFAULT_LIMIT", 10),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
			Seed: getEnvAsBool("CATALOG_SEED", false),
		},
		Session: SessionConfig{
			DefaultUserID: getEnv("DEFAULT_USER_ID", "user123"),
			MaxStores:     getEnvAsInt("SESSION_MAX_STORES", 10000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}

		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}

		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}

		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	if err := validateOrigin(c.Analytics.BackendURL); err != nil {
		return err
	}

	if c.Analytics.DefaultLimit < 1 {
		return fmt.Errorf("analytics default limit must be at least 1")
	}

	if c.Session.DefaultUserID == "" {
		return fmt.Errorf("default user ID is required")
	}

	if len(c.Session.DefaultUserID) > MaxUserIDLength {
		return fmt.Errorf("default user ID must be at most %d characters", MaxUserIDLength)
	}

	if c.Session.MaxStores < 0 {
		return fmt.Errorf("session max stores must not be negative")
	}

	return nil
}

// validateOrigin checks that origin is an absolute http(s) URL with a host.
func validateOrigin(origin string) error {
	if origin == "" {
		return fmt.Errorf("backend URL is required")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: scheme must be http or https", origin)
	}

	if u.Host == "" {
		return fmt.Errorf("invalid backend URL %q: host is required", origin)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma separated environment variable or returns a default value.
// Blank entries are dropped.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
