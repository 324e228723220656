// ABOUTME: Recommendation model joining facility metadata with availability
// ABOUTME: Provides the ranking order used by the recommendation service

package domain

import "sort"

// Recommendation is one ranked candidate: a facility, its distance from
// the query point and the availability snapshot joined in (if any).
type Recommendation struct {
	Facility       FacilityMetadata
	DistanceMeters float64
	WalkMinutes    int
	FreeSpaces     *int
	Capacity       *int
	LastUpdated    *string
}

// RecommendationSet is the assembled answer for one query.
type RecommendationSet struct {
	Recommendations []Recommendation
	Stale           bool
}

// SortRecommendations orders candidates by distance ascending, breaking
// ties by free spaces descending. A nil free-space count ranks below any
// non-negative count.
func SortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].DistanceMeters != recs[j].DistanceMeters {
			return recs[i].DistanceMeters < recs[j].DistanceMeters
		}
		return freeSpacesRank(recs[i].FreeSpaces) > freeSpacesRank(recs[j].FreeSpaces)
	})
}

func freeSpacesRank(free *int) int {
	if free == nil {
		return -1
	}
	return *free
}
