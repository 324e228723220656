// ABOUTME: Response DTOs for parking-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// FacilityResponse represents facility metadata in API responses
type FacilityResponse struct {
	ID         string  `json:"id" doc:"Stable facility identifier"`
	Name       string  `json:"name" doc:"Facility name"`
	Lat        float64 `json:"lat" doc:"Latitude in decimal degrees"`
	Lon        float64 `json:"lon" doc:"Longitude in decimal degrees"`
	Capacity   *int    `json:"capacity,omitempty" doc:"Total number of spaces, when known"`
	TariffNote *string `json:"tariff_note,omitempty" doc:"Free-form tariff description"`
	ZoneCode   *string `json:"zone_code,omitempty" doc:"Parking zone code"`
	SourceURL  string  `json:"source_url" doc:"Where this record came from"`
}

// FacilitiesResponse represents the response for listing facilities
type FacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities" doc:"All known facilities"`
	Total      int                `json:"total" doc:"Number of facilities"`
}

// AvailabilityEntryResponse represents one facility's live availability
type AvailabilityEntryResponse struct {
	ID          string  `json:"id" doc:"Facility identifier"`
	FreeSpaces  *int    `json:"free_spaces,omitempty" doc:"Currently free spaces, when known"`
	Capacity    *int    `json:"capacity,omitempty" doc:"Total spaces, when known"`
	LastUpdated *string `json:"last_updated,omitempty" doc:"Upstream timestamp, passed through verbatim"`
}

// AvailabilityResponse represents the full availability snapshot
type AvailabilityResponse struct {
	Availability map[string]AvailabilityEntryResponse `json:"availability" doc:"Live availability keyed by facility id"`
	Stale        bool                                 `json:"stale" doc:"True when the snapshot is past its TTL"`
}

// RecommendationResponse represents one ranked parking candidate
type RecommendationResponse struct {
	Facility       FacilityResponse `json:"facility" doc:"The recommended facility"`
	DistanceMeters float64          `json:"distance_meters" doc:"Great-circle distance from the query point"`
	WalkMinutes    int              `json:"walk_minutes" doc:"Estimated walking time, rounded up"`
	FreeSpaces     *int             `json:"free_spaces,omitempty" doc:"Currently free spaces, when known"`
	Capacity       *int             `json:"capacity,omitempty" doc:"Total spaces, when known"`
	LastUpdated    *string          `json:"last_updated,omitempty" doc:"Upstream availability timestamp"`
}

// RecommendationsResponse represents the ranked recommendation list
type RecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations" doc:"Candidates ordered by distance, then free spaces"`
	Total           int                      `json:"total" doc:"Number of recommendations returned"`
	Stale           bool                     `json:"stale" doc:"True when availability data may be outdated"`
}
