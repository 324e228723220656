// ABOUTME: Long-TTL cache of normalized facility metadata
// ABOUTME: Refreshes synchronously on expiry, callers wait for the fetch

// Package parking holds the data-freshness layer for parking data: a
// long-TTL facility metadata cache, a stale-while-revalidate availability
// cache and the recommendation service that joins the two.
package parking

import (
	"context"
	"sync"
	"time"

	"parkradar-api/core/domain"
	"parkradar-api/core/interfaces"
	"parkradar-api/core/normalize"
)

// FacilityCache is a single-slot cache of the full facility metadata list.
// Expiry triggers a synchronous refresh: callers wait for the upstream
// fetch. There is deliberately no refresh de-duplication — with a TTL of
// hours and rarely-changing metadata, concurrent redundant fetches around
// expiry are cheaper than the coordination to avoid them.
type FacilityCache struct {
	deps interfaces.Dependencies
	url  string
	ttl  time.Duration
	now  func() time.Time

	mu    sync.Mutex
	entry *facilityEntry
}

type facilityEntry struct {
	facilities []domain.FacilityMetadata
	expiresAt  time.Time
}

// NewFacilityCache creates a facility cache over the given endpoint URL.
func NewFacilityCache(deps interfaces.Dependencies, url string, ttl time.Duration, opts ...Option) *FacilityCache {
	options := newCacheOptions(opts)
	return &FacilityCache{
		deps: deps,
		url:  url,
		ttl:  ttl,
		now:  options.now,
	}
}

// Facilities returns the cached facility list, fetching from upstream when
// the slot is empty or expired. The returned slice is shared and must be
// treated as read-only.
func (c *FacilityCache) Facilities(ctx context.Context) ([]domain.FacilityMetadata, error) {
	c.mu.Lock()
	if c.entry != nil && c.now().Before(c.entry.expiresAt) {
		facilities := c.entry.facilities
		c.mu.Unlock()
		return facilities, nil
	}
	c.mu.Unlock()

	records, err := fetchArray(ctx, c.deps, c.url)
	if err != nil {
		return nil, err
	}

	facilities := make([]domain.FacilityMetadata, 0, len(records))
	for _, record := range records {
		if facility, ok := normalize.Facility(record, c.url); ok {
			facilities = append(facilities, *facility)
		}
	}

	c.mu.Lock()
	c.entry = &facilityEntry{
		facilities: facilities,
		expiresAt:  c.now().Add(c.ttl),
	}
	c.mu.Unlock()

	return facilities, nil
}
