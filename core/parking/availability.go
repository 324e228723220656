// ABOUTME: Short-TTL availability cache with stale-while-revalidate semantics
// ABOUTME: Expired reads serve stale data while one background refresh runs

package parking

import (
	"context"
	"sync"
	"time"

	"parkradar-api/core/domain"
	"parkradar-api/core/interfaces"
	"parkradar-api/core/normalize"
)

// AvailabilityCache is a single-slot, stale-while-revalidate cache of the
// live availability snapshot, keyed by facility id.
//
// State machine per slot:
//   - empty: first access fetches synchronously; failure with nothing
//     cached propagates to the caller.
//   - fresh: served as-is, no network call.
//   - expired, idle: the in-flight marker is installed under the mutex and
//     exactly one background refresh starts; the caller gets the stale
//     snapshot immediately.
//   - expired, refreshing: stale snapshot served, no second flight.
//
// A failed background refresh keeps the old snapshot and clears the
// marker, so the next access after the failure starts a new attempt.
// Snapshots are replaced wholesale; callers never observe partial data.
type AvailabilityCache struct {
	deps interfaces.Dependencies
	url  string
	ttl  time.Duration
	now  func() time.Time

	mu         sync.Mutex
	entry      *availabilityEntry
	refreshing bool
}

type availabilityEntry struct {
	data      map[string]domain.FacilityAvailability
	expiresAt time.Time
}

// NewAvailabilityCache creates an availability cache over the given
// endpoint URL.
func NewAvailabilityCache(deps interfaces.Dependencies, url string, ttl time.Duration, opts ...Option) *AvailabilityCache {
	options := newCacheOptions(opts)
	return &AvailabilityCache{
		deps: deps,
		url:  url,
		ttl:  ttl,
		now:  options.now,
	}
}

// Availability returns the current snapshot. Stale is true whenever the
// returned data is past its TTL — either a background refresh is pending
// or a previous refresh failed and the last good snapshot is being served.
// An error is only returned when no snapshot has ever been cached and the
// first fetch fails. The returned map is shared and must be treated as
// read-only.
func (c *AvailabilityCache) Availability(ctx context.Context) (domain.AvailabilityResult, error) {
	c.mu.Lock()
	entry := c.entry
	if entry != nil {
		if c.now().Before(entry.expiresAt) {
			c.mu.Unlock()
			return domain.AvailabilityResult{Data: entry.data, Stale: false}, nil
		}
		// Install the in-flight marker before releasing the mutex: this
		// is the single-flight guarantee. Concurrent expired readers see
		// refreshing=true and serve stale without a second fetch.
		if !c.refreshing {
			c.refreshing = true
			go c.refresh()
		}
		c.mu.Unlock()
		return domain.AvailabilityResult{Data: entry.data, Stale: true}, nil
	}
	c.mu.Unlock()

	data, err := c.fetchSnapshot(ctx)
	if err != nil {
		// A concurrent first access may have populated the slot while we
		// were fetching; prefer its snapshot over failing the caller.
		c.mu.Lock()
		fallback := c.entry
		c.mu.Unlock()
		if fallback != nil {
			return domain.AvailabilityResult{Data: fallback.data, Stale: true}, nil
		}
		return domain.AvailabilityResult{}, err
	}

	c.mu.Lock()
	c.entry = &availabilityEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return domain.AvailabilityResult{Data: data, Stale: false}, nil
}

// refresh runs in the background, detached from the request that
// triggered it: a caller's deadline must not cancel a refresh other
// requests will benefit from.
func (c *AvailabilityCache) refresh() {
	data, err := c.fetchSnapshot(context.Background())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing = false

	if err != nil {
		if c.deps.Logger != nil {
			c.deps.Logger.Error("availability refresh failed", map[string]interface{}{
				"url":   c.url,
				"error": err.Error(),
			})
		}
		// Old entry stays in place past expiry; the next access retries.
		return
	}

	c.entry = &availabilityEntry{data: data, expiresAt: c.now().Add(c.ttl)}
}

func (c *AvailabilityCache) fetchSnapshot(ctx context.Context) (map[string]domain.FacilityAvailability, error) {
	records, err := fetchArray(ctx, c.deps, c.url)
	if err != nil {
		return nil, err
	}

	data := make(map[string]domain.FacilityAvailability, len(records))
	for _, record := range records {
		if avail, ok := normalize.Availability(record); ok {
			data[avail.ID] = *avail
		}
	}
	return data, nil
}
