// Package api provides the HTTP API layer for the ParkRadar application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type GetRecommendationsInput struct {
//	    Lat    float64 `query:"lat" required:"true" minimum:"-90" maximum:"90"`
//	    Lon    float64 `query:"lon" required:"true" minimum:"-180" maximum:"180"`
//	    Radius float64 `query:"radius" default:"800" minimum:"1" maximum:"10000"`
//	    Limit  int     `query:"limit" default:"5" minimum:"1"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "Upstream temporarily unavailable"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
