// ABOUTME: Normalizes loosely-typed upstream parking records into domain models
// ABOUTME: Field resolution is table-driven over candidate key names

// Package normalize maps heterogeneous upstream JSON records into the
// canonical facility and availability shapes. Upstream feeds disagree on
// field naming, so each logical attribute is resolved through an ordered
// list of candidate keys. The functions here are pure and total over
// arbitrary JSON-decoded input: malformed records are dropped or have
// individual fields nulled, never panicked on.
package normalize

import (
	"math"
	"strconv"

	"parkradar-api/core/domain"
)

// Candidate key tables, tried in priority order. Kept as data rather than
// branching logic so new upstream naming variants are one-line additions.
var (
	idKeys       = []string{"id", "Id", "ID", "facilityId", "FacilityId", "facility_id"}
	nameKeys     = []string{"name", "Name", "title", "Title"}
	latKeys      = []string{"lat", "Lat", "latitude", "Latitude"}
	lonKeys      = []string{"lon", "Lon", "lng", "Lng", "longitude", "Longitude"}
	positionKeys = []string{"position", "Position", "coordinates", "Coordinates"}
	capacityKeys = []string{"capacity", "Capacity", "totalSpaces", "total_spaces"}
	tariffKeys   = []string{"tariffNote", "TariffNote", "tariff", "Tariff", "fee", "Fee"}
	zoneKeys     = []string{"zoneCode", "ZoneCode", "zone", "Zone", "zone_code"}
	sourceKeys   = []string{"sourceUrl", "SourceUrl", "sourceURL", "source_url", "url", "Url"}

	freeSpacesKeys  = []string{"freeSpaces", "FreeSpaces", "free_spaces", "free", "Free", "available", "Available", "availableSpaces"}
	lastUpdatedKeys = []string{"lastUpdated", "LastUpdated", "last_updated", "updated", "Updated", "timestamp", "Timestamp"}
)

// Facility normalizes one raw upstream record into FacilityMetadata.
// It returns false when id, name, latitude or longitude cannot be
// resolved; endpointURL is used as SourceURL fallback.
func Facility(record interface{}, endpointURL string) (*domain.FacilityMetadata, bool) {
	rec, ok := record.(map[string]interface{})
	if !ok {
		return nil, false
	}

	id, ok := lookupString(rec, idKeys)
	if !ok {
		return nil, false
	}
	name, ok := lookupString(rec, nameKeys)
	if !ok {
		return nil, false
	}

	lat, latOK := lookupNumber(rec, latKeys)
	lon, lonOK := lookupNumber(rec, lonKeys)
	if !latOK || !lonOK {
		// Coordinates may live in a nested position object.
		if pos, found := lookupObject(rec, positionKeys); found {
			if !latOK {
				lat, latOK = lookupNumber(pos, latKeys)
			}
			if !lonOK {
				lon, lonOK = lookupNumber(pos, lonKeys)
			}
		}
	}
	if !latOK || !lonOK {
		return nil, false
	}

	sourceURL, ok := lookupString(rec, sourceKeys)
	if !ok {
		sourceURL = endpointURL
	}

	return &domain.FacilityMetadata{
		ID:         id,
		Name:       name,
		Lat:        lat,
		Lon:        lon,
		Capacity:   lookupNonNegativeInt(rec, capacityKeys),
		TariffNote: lookupOptionalString(rec, tariffKeys),
		ZoneCode:   lookupOptionalString(rec, zoneKeys),
		SourceURL:  sourceURL,
	}, true
}

// Availability normalizes one raw upstream record into
// FacilityAvailability. Only the id is required; numeric fields that fail
// coercion become nil.
func Availability(record interface{}) (*domain.FacilityAvailability, bool) {
	rec, ok := record.(map[string]interface{})
	if !ok {
		return nil, false
	}

	id, ok := lookupString(rec, idKeys)
	if !ok {
		return nil, false
	}

	return &domain.FacilityAvailability{
		ID:          id,
		FreeSpaces:  lookupInt(rec, freeSpacesKeys),
		Capacity:    lookupInt(rec, capacityKeys),
		LastUpdated: lookupOptionalString(rec, lastUpdatedKeys),
	}, true
}

// lookupString resolves the first candidate key holding a non-empty string.
func lookupString(rec map[string]interface{}, keys []string) (string, bool) {
	for _, key := range keys {
		if raw, exists := rec[key]; exists {
			if s, ok := raw.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// lookupOptionalString is lookupString with a nil result instead of a
// second return, for nullable metadata fields.
func lookupOptionalString(rec map[string]interface{}, keys []string) *string {
	if s, ok := lookupString(rec, keys); ok {
		return &s
	}
	return nil
}

// lookupObject resolves the first candidate key holding a JSON object.
func lookupObject(rec map[string]interface{}, keys []string) (map[string]interface{}, bool) {
	for _, key := range keys {
		if raw, exists := rec[key]; exists {
			if obj, ok := raw.(map[string]interface{}); ok {
				return obj, true
			}
		}
	}
	return nil, false
}

// lookupNumber resolves the first candidate key coercible to a finite
// float64. Numeric strings are accepted; NaN and infinities are not.
func lookupNumber(rec map[string]interface{}, keys []string) (float64, bool) {
	for _, key := range keys {
		raw, exists := rec[key]
		if !exists {
			continue
		}
		if v, ok := coerceNumber(raw); ok {
			return v, true
		}
	}
	return 0, false
}

// lookupInt returns the first resolvable numeric candidate truncated to
// int, or nil when absent or non-finite.
func lookupInt(rec map[string]interface{}, keys []string) *int {
	if v, ok := lookupNumber(rec, keys); ok {
		n := int(v)
		return &n
	}
	return nil
}

// lookupNonNegativeInt is lookupInt with negative values sanitized to nil,
// for fields that are non-negative by contract.
func lookupNonNegativeInt(rec map[string]interface{}, keys []string) *int {
	n := lookupInt(rec, keys)
	if n != nil && *n < 0 {
		return nil
	}
	return n
}

func coerceNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
