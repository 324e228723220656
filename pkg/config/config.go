// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, upstream, cache and rate limiting

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Upstream contains parking data upstream configuration
	Upstream UpstreamConfig

	// Cache contains response memoization cache configuration
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per minute per client IP
	RateLimit int

	// MaxResults caps the limit query parameter
	MaxResults int
}

// UpstreamConfig holds parking data upstream configuration
type UpstreamConfig struct {
	// BaseURL is the upstream API root
	BaseURL string

	// FacilitiesPath is appended to BaseURL for facility metadata
	FacilitiesPath string

	// AvailabilityPath is appended to BaseURL for live availability
	AvailabilityPath string

	// HTTPTimeout bounds each individual upstream request attempt
	HTTPTimeout time.Duration

	// RequestTimeout bounds one recommendation request end to end
	RequestTimeout time.Duration

	// FacilitiesTTL is how long facility metadata stays fresh
	FacilitiesTTL time.Duration

	// AvailabilityTTL is how long an availability snapshot stays fresh
	AvailabilityTTL time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// ResultTTL is how long assembled recommendation responses are
	// memoized; 0 disables memoization
	ResultTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// FacilitiesURL joins the base URL with the facilities path.
func (c UpstreamConfig) FacilitiesURL() string {
	return joinURL(c.BaseURL, c.FacilitiesPath)
}

// AvailabilityURL joins the base URL with the availability path.
func (c UpstreamConfig) AvailabilityURL() string {
	return joinURL(c.BaseURL, c.AvailabilityPath)
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			MaxResults: getEnvAsIntOrDefault("MAX_RESULTS", 5),
		},
		Upstream: UpstreamConfig{
			BaseURL:          getEnvOrDefault("UPSTREAM_BASE_URL", ""),
			FacilitiesPath:   getEnvOrDefault("FACILITIES_PATH", "/facilities"),
			AvailabilityPath: getEnvOrDefault("AVAILABILITY_PATH", "/availability"),
			HTTPTimeout:      getEnvAsDurationOrDefault("HTTP_TIMEOUT_MS", 5*time.Second, time.Millisecond),
			RequestTimeout:   getEnvAsDurationOrDefault("REQUEST_TIMEOUT_MS", 10*time.Second, time.Millisecond),
			FacilitiesTTL:    getEnvAsDurationOrDefault("FACILITIES_TTL_SECONDS", 24*time.Hour, time.Second),
			AvailabilityTTL:  getEnvAsDurationOrDefault("AVAILABILITY_TTL_SECONDS", 30*time.Second, time.Second),
		},
		Cache: CacheConfig{
			Type:      getEnvOrDefault("CACHE_TYPE", "memory"),
			ResultTTL: getEnvAsDurationOrDefault("RESULT_CACHE_TTL_MS", 10*time.Second, time.Millisecond),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault reads an integer environment variable and
// scales it by unit, falling back to defaultValue when unset or invalid.
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration, unit time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue >= 0 {
			return time.Duration(intValue) * unit
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.MaxResults < 1 {
		return errors.New("max results must be at least 1")
	}

	if c.Upstream.BaseURL == "" {
		return errors.New("upstream base URL cannot be empty")
	}
	if parsed, err := url.Parse(c.Upstream.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("upstream base URL must be an absolute URL")
	}

	if c.Upstream.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}
	if c.Upstream.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.Upstream.FacilitiesTTL <= 0 {
		return errors.New("facilities TTL must be positive")
	}
	if c.Upstream.AvailabilityTTL <= 0 {
		return errors.New("availability TTL must be positive")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}
	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
