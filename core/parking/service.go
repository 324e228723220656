// ABOUTME: Recommendation service joining facility metadata with availability
// ABOUTME: Filters by radius, ranks by distance and free spaces, memoizes results

package parking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"parkradar-api/core/domain"
	coreerrors "parkradar-api/core/errors"
	"parkradar-api/core/interfaces"
	"parkradar-api/pkg/utils/geo"
)

// RecommendQuery describes one recommendation request.
type RecommendQuery struct {
	Lat          float64
	Lon          float64
	RadiusMeters float64
	Limit        int
}

// RecommendationService assembles ranked parking recommendations from the
// facility and availability caches.
type RecommendationService struct {
	deps           interfaces.Dependencies
	facilities     *FacilityCache
	availability   *AvailabilityCache
	requestTimeout time.Duration
	resultCacheTTL time.Duration
}

// NewRecommendationService creates a recommendation service.
// requestTimeout bounds one request's cache fetches end to end;
// resultCacheTTL enables short-lived response memoization through
// deps.Cache (0 disables it).
func NewRecommendationService(
	deps interfaces.Dependencies,
	facilities *FacilityCache,
	availability *AvailabilityCache,
	requestTimeout time.Duration,
	resultCacheTTL time.Duration,
) *RecommendationService {
	return &RecommendationService{
		deps:           deps,
		facilities:     facilities,
		availability:   availability,
		requestTimeout: requestTimeout,
		resultCacheTTL: resultCacheTTL,
	}
}

// Recommend returns up to query.Limit facilities within the radius,
// ordered by distance ascending with free spaces descending as the
// tie-break. The result's Stale flag mirrors the availability snapshot.
func (s *RecommendationService) Recommend(ctx context.Context, query RecommendQuery) (*domain.RecommendationSet, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	cacheKey := s.memoKey(query)
	if cached := s.memoGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	// Overall per-request deadline; on expiry both fetches are cancelled
	// through the derived context.
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var (
		facilities []domain.FacilityMetadata
		avail      domain.AvailabilityResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facilities, err = s.facilities.Facilities(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		avail, err = s.availability.Availability(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := make([]domain.Recommendation, 0, len(facilities))
	for _, facility := range facilities {
		distance := geo.HaversineMeters(query.Lat, query.Lon, facility.Lat, facility.Lon)
		if distance > query.RadiusMeters {
			continue
		}

		rec := domain.Recommendation{
			Facility:       facility,
			DistanceMeters: distance,
			WalkMinutes:    geo.EstimateWalkMinutes(distance),
			Capacity:       facility.Capacity,
		}
		if snapshot, ok := avail.Data[facility.ID]; ok {
			rec.FreeSpaces = snapshot.FreeSpaces
			rec.LastUpdated = snapshot.LastUpdated
			if snapshot.Capacity != nil {
				rec.Capacity = snapshot.Capacity
			}
		}
		recs = append(recs, rec)
	}

	domain.SortRecommendations(recs)
	if len(recs) > query.Limit {
		recs = recs[:query.Limit]
	}

	result := &domain.RecommendationSet{
		Recommendations: recs,
		Stale:           avail.Stale,
	}

	s.memoSet(ctx, cacheKey, result)

	return result, nil
}

// Facilities exposes the facility cache to the API layer, bounded by the
// overall request timeout.
func (s *RecommendationService) Facilities(ctx context.Context) ([]domain.FacilityMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return s.facilities.Facilities(ctx)
}

// Availability exposes the availability cache to the API layer, bounded by
// the overall request timeout.
func (s *RecommendationService) Availability(ctx context.Context) (domain.AvailabilityResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return s.availability.Availability(ctx)
}

func validateQuery(query RecommendQuery) error {
	if query.Lat < -90 || query.Lat > 90 {
		return &coreerrors.ValidationError{Field: "lat", Message: "must be between -90 and 90"}
	}
	if query.Lon < -180 || query.Lon > 180 {
		return &coreerrors.ValidationError{Field: "lon", Message: "must be between -180 and 180"}
	}
	if query.RadiusMeters <= 0 {
		return &coreerrors.ValidationError{Field: "radius", Message: "must be positive"}
	}
	if query.Limit <= 0 {
		return &coreerrors.ValidationError{Field: "limit", Message: "must be positive"}
	}
	return nil
}

// memoKey rounds coordinates to ~11m so nearby repeat queries share one
// memoized answer.
func (s *RecommendationService) memoKey(query RecommendQuery) string {
	return fmt.Sprintf("recommend:%.4f:%.4f:%.0f:%d", query.Lat, query.Lon, query.RadiusMeters, query.Limit)
}

func (s *RecommendationService) memoGet(ctx context.Context, key string) *domain.RecommendationSet {
	if s.deps.Cache == nil || s.resultCacheTTL <= 0 {
		return nil
	}

	raw, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var result domain.RecommendationSet
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}

// memoSet caches the assembled result; cache errors are ignored, they
// must never affect the response.
func (s *RecommendationService) memoSet(ctx context.Context, key string, result *domain.RecommendationSet) {
	if s.deps.Cache == nil || s.resultCacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, raw, s.resultCacheTTL)
}
