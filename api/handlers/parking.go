// ABOUTME: Parking handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for recommendations, facilities and availability

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"parkradar-api/api/dto/mappers"
	"parkradar-api/api/dto/responses"
	"parkradar-api/core/domain"
	"parkradar-api/core/parking"
)

// ParkingService interface defines the methods needed from the
// recommendation service
type ParkingService interface {
	Recommend(ctx context.Context, query parking.RecommendQuery) (*domain.RecommendationSet, error)
	Facilities(ctx context.Context) ([]domain.FacilityMetadata, error)
	Availability(ctx context.Context) (domain.AvailabilityResult, error)
}

// ParkingHandler handles parking-related HTTP requests
type ParkingHandler struct {
	service    ParkingService
	maxResults int
}

// NewParkingHandler creates a new parking handler. maxResults caps the
// limit query parameter.
func NewParkingHandler(service ParkingService, maxResults int) *ParkingHandler {
	return &ParkingHandler{
		service:    service,
		maxResults: maxResults,
	}
}

// RegisterRoutes registers all parking-related routes
func (h *ParkingHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodGet,
		Path:        "/recommendations",
		Summary:     "Recommend nearby parking facilities",
		Description: "Ranks facilities within the radius by distance and free spaces, joining cached metadata with live availability",
		Tags:        []string{"Parking"},
	}, h.GetRecommendations)

	huma.Register(api, huma.Operation{
		OperationID: "listFacilities",
		Method:      http.MethodGet,
		Path:        "/facilities",
		Summary:     "List all known parking facilities",
		Tags:        []string{"Parking"},
	}, h.ListFacilities)

	huma.Register(api, huma.Operation{
		OperationID: "getAvailability",
		Method:      http.MethodGet,
		Path:        "/availability",
		Summary:     "Get the live availability snapshot",
		Description: "Returns the cached availability snapshot; stale=true means a refresh is pending or the last refresh failed",
		Tags:        []string{"Parking"},
	}, h.GetAvailability)
}

// GetRecommendationsInput defines the query parameters for recommendations
type GetRecommendationsInput struct {
	Lat    float64 `query:"lat" required:"true" minimum:"-90" maximum:"90" doc:"Latitude of the query point"`
	Lon    float64 `query:"lon" required:"true" minimum:"-180" maximum:"180" doc:"Longitude of the query point"`
	Radius float64 `query:"radius" default:"800" minimum:"1" maximum:"10000" doc:"Search radius in meters"`
	Limit  int     `query:"limit" default:"5" minimum:"1" doc:"Maximum number of recommendations"`
}

// GetRecommendationsOutput defines the output for recommendations
type GetRecommendationsOutput struct {
	Body responses.RecommendationsResponse
}

// GetRecommendations handles GET /recommendations
func (h *ParkingHandler) GetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*GetRecommendationsOutput, error) {
	limit := input.Limit
	if limit > h.maxResults {
		limit = h.maxResults
	}

	set, err := h.service.Recommend(ctx, parking.RecommendQuery{
		Lat:          input.Lat,
		Lon:          input.Lon,
		RadiusMeters: input.Radius,
		Limit:        limit,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetRecommendationsOutput{Body: mappers.ToRecommendationsResponse(set)}, nil
}

// ListFacilitiesOutput defines the output for the facility list
type ListFacilitiesOutput struct {
	Body responses.FacilitiesResponse
}

// ListFacilities handles GET /facilities
func (h *ParkingHandler) ListFacilities(ctx context.Context, input *struct{}) (*ListFacilitiesOutput, error) {
	facilities, err := h.service.Facilities(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListFacilitiesOutput{Body: mappers.ToFacilitiesResponse(facilities)}, nil
}

// GetAvailabilityOutput defines the output for the availability snapshot
type GetAvailabilityOutput struct {
	Body responses.AvailabilityResponse
}

// GetAvailability handles GET /availability
func (h *ParkingHandler) GetAvailability(ctx context.Context, input *struct{}) (*GetAvailabilityOutput, error) {
	result, err := h.service.Availability(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetAvailabilityOutput{Body: mappers.ToAvailabilityResponse(result)}, nil
}
