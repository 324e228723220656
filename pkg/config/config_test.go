package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg, _ := LoadFromEnv()
	cfg.Upstream.BaseURL = "https://parking.example.com/api"
	return cfg
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Server.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.Server.MaxResults)
	}
	if cfg.Upstream.FacilitiesPath != "/facilities" {
		t.Errorf("FacilitiesPath = %q", cfg.Upstream.FacilitiesPath)
	}
	if cfg.Upstream.FacilitiesTTL != 24*time.Hour {
		t.Errorf("FacilitiesTTL = %v, want 24h", cfg.Upstream.FacilitiesTTL)
	}
	if cfg.Upstream.AvailabilityTTL != 30*time.Second {
		t.Errorf("AvailabilityTTL = %v, want 30s", cfg.Upstream.AvailabilityTTL)
	}
	if cfg.Upstream.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.Upstream.HTTPTimeout)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want memory", cfg.Cache.Type)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("UPSTREAM_BASE_URL", "https://upstream.example")
	t.Setenv("AVAILABILITY_TTL_SECONDS", "60")
	t.Setenv("HTTP_TIMEOUT_MS", "1500")
	t.Setenv("CACHE_TYPE", "redis")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Upstream.BaseURL != "https://upstream.example" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.AvailabilityTTL != time.Minute {
		t.Errorf("AvailabilityTTL = %v, want 1m", cfg.Upstream.AvailabilityTTL)
	}
	if cfg.Upstream.HTTPTimeout != 1500*time.Millisecond {
		t.Errorf("HTTPTimeout = %v, want 1.5s", cfg.Upstream.HTTPTimeout)
	}
	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache.Type = %q", cfg.Cache.Type)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AVAILABILITY_TTL_SECONDS", "soon")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.Upstream.AvailabilityTTL != 30*time.Second {
		t.Errorf("AvailabilityTTL = %v, want default 30s", cfg.Upstream.AvailabilityTTL)
	}
}

func TestEndpointURLs(t *testing.T) {
	upstream := UpstreamConfig{
		BaseURL:          "https://parking.example.com/api/",
		FacilitiesPath:   "/facilities",
		AvailabilityPath: "availability",
	}

	if got := upstream.FacilitiesURL(); got != "https://parking.example.com/api/facilities" {
		t.Errorf("FacilitiesURL = %q", got)
	}
	if got := upstream.AvailabilityURL(); got != "https://parking.example.com/api/availability" {
		t.Errorf("AvailabilityURL = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"missing base URL", func(c *Config) { c.Upstream.BaseURL = "" }, true},
		{"relative base URL", func(c *Config) { c.Upstream.BaseURL = "parking.example" }, true},
		{"zero http timeout", func(c *Config) { c.Upstream.HTTPTimeout = 0 }, true},
		{"zero request timeout", func(c *Config) { c.Upstream.RequestTimeout = 0 }, true},
		{"zero facilities TTL", func(c *Config) { c.Upstream.FacilitiesTTL = 0 }, true},
		{"zero availability TTL", func(c *Config) { c.Upstream.AvailabilityTTL = 0 }, true},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "etcd" }, true},
		{"redis without address", func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.Redis.Address = ""
		}, true},
		{"zero max results", func(c *Config) { c.Server.MaxResults = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
