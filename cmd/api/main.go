// ABOUTME: Main entry point for the ParkRadar API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"parkradar-api/api"
	"parkradar-api/api/handlers"
	"parkradar-api/core/interfaces"
	"parkradar-api/core/parking"
	"parkradar-api/infrastructure/cache/memory"
	"parkradar-api/infrastructure/cache/redis"
	stdhttp "parkradar-api/infrastructure/http/standard"
	logruslogger "parkradar-api/infrastructure/logger/logrus"
	"parkradar-api/pkg/config"
)

func main() {
	// Load .env if present; environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting ParkRadar API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"cache_type":       cfg.Cache.Type,
		"upstream":         cfg.Upstream.BaseURL,
		"facilities_ttl":   cfg.Upstream.FacilitiesTTL.String(),
		"availability_ttl": cfg.Upstream.AvailabilityTTL.String(),
	})

	// Create cache for response memoization
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cfg.Cache.ResultTTL, time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(cfg.Cache.ResultTTL, time.Minute)
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client with retry support
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Upstream.HTTPTimeout, logger)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create caches and the recommendation service
	facilities := parking.NewFacilityCache(deps, cfg.Upstream.FacilitiesURL(), cfg.Upstream.FacilitiesTTL)
	availability := parking.NewAvailabilityCache(deps, cfg.Upstream.AvailabilityURL(), cfg.Upstream.AvailabilityTTL)
	service := parking.NewRecommendationService(deps, facilities, availability, cfg.Upstream.RequestTimeout, cfg.Cache.ResultTTL)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	parkingHandler := handlers.NewParkingHandler(service, cfg.Server.MaxResults)
	parkingHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
