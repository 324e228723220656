// ABOUTME: Domain models for parking facilities and live availability
// ABOUTME: Normalized snapshots are immutable once constructed

package domain

// FacilityMetadata describes a parking facility. Instances are built by
// the normalizer and never mutated afterwards; consumers treat them as
// read-only.
type FacilityMetadata struct {
	ID         string
	Name       string
	Lat        float64
	Lon        float64
	Capacity   *int
	TariffNote *string
	ZoneCode   *string
	SourceURL  string
}

// FacilityAvailability is one facility's live free-space snapshot.
// LastUpdated is passed through verbatim from the upstream record and is
// never parsed or validated.
type FacilityAvailability struct {
	ID          string
	FreeSpaces  *int
	Capacity    *int
	LastUpdated *string
}

// AvailabilityResult is what the availability cache hands to callers.
// Stale signals that Data may be outdated: either a background refresh is
// pending, or Data is the last-known-good fallback after a refresh error.
type AvailabilityResult struct {
	Data  map[string]FacilityAvailability
	Stale bool
}
