// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"parkradar-api/api/dto/responses"
	"parkradar-api/core/domain"
)

// ToFacilityResponse converts a domain FacilityMetadata to a DTO
func ToFacilityResponse(facility domain.FacilityMetadata) responses.FacilityResponse {
	return responses.FacilityResponse{
		ID:         facility.ID,
		Name:       facility.Name,
		Lat:        facility.Lat,
		Lon:        facility.Lon,
		Capacity:   facility.Capacity,
		TariffNote: facility.TariffNote,
		ZoneCode:   facility.ZoneCode,
		SourceURL:  facility.SourceURL,
	}
}

// ToFacilitiesResponse converts a facility list to the list DTO
func ToFacilitiesResponse(facilities []domain.FacilityMetadata) responses.FacilitiesResponse {
	out := make([]responses.FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		out = append(out, ToFacilityResponse(facility))
	}
	return responses.FacilitiesResponse{
		Facilities: out,
		Total:      len(out),
	}
}

// ToAvailabilityResponse converts an availability result to its DTO
func ToAvailabilityResponse(result domain.AvailabilityResult) responses.AvailabilityResponse {
	entries := make(map[string]responses.AvailabilityEntryResponse, len(result.Data))
	for id, snapshot := range result.Data {
		entries[id] = responses.AvailabilityEntryResponse{
			ID:          snapshot.ID,
			FreeSpaces:  snapshot.FreeSpaces,
			Capacity:    snapshot.Capacity,
			LastUpdated: snapshot.LastUpdated,
		}
	}
	return responses.AvailabilityResponse{
		Availability: entries,
		Stale:        result.Stale,
	}
}

// ToRecommendationsResponse converts a recommendation set to its DTO
func ToRecommendationsResponse(set *domain.RecommendationSet) responses.RecommendationsResponse {
	recs := make([]responses.RecommendationResponse, 0, len(set.Recommendations))
	for _, rec := range set.Recommendations {
		recs = append(recs, responses.RecommendationResponse{
			Facility:       ToFacilityResponse(rec.Facility),
			DistanceMeters: rec.DistanceMeters,
			WalkMinutes:    rec.WalkMinutes,
			FreeSpaces:     rec.FreeSpaces,
			Capacity:       rec.Capacity,
			LastUpdated:    rec.LastUpdated,
		})
	}
	return responses.RecommendationsResponse{
		Recommendations: recs,
		Total:           len(recs),
		Stale:           set.Stale,
	}
}
