package domain

import "testing"

func intPtr(n int) *int { return &n }

func TestSortRecommendations_ByDistanceAscending(t *testing.T) {
	recs := []Recommendation{
		{Facility: FacilityMetadata{ID: "b"}, DistanceMeters: 200},
		{Facility: FacilityMetadata{ID: "a"}, DistanceMeters: 100},
		{Facility: FacilityMetadata{ID: "c"}, DistanceMeters: 300},
	}

	SortRecommendations(recs)

	got := []string{recs[0].Facility.ID, recs[1].Facility.ID, recs[2].Facility.ID}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestSortRecommendations_TieBreakByFreeSpacesDescending(t *testing.T) {
	recs := []Recommendation{
		{Facility: FacilityMetadata{ID: "a"}, DistanceMeters: 150, FreeSpaces: intPtr(2)},
		{Facility: FacilityMetadata{ID: "b"}, DistanceMeters: 150, FreeSpaces: intPtr(5)},
		{Facility: FacilityMetadata{ID: "c"}, DistanceMeters: 150, FreeSpaces: nil},
	}

	SortRecommendations(recs)

	got := []string{recs[0].Facility.ID, recs[1].Facility.ID, recs[2].Facility.ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestSortRecommendations_NilFreeSpacesRanksBelowZero(t *testing.T) {
	recs := []Recommendation{
		{Facility: FacilityMetadata{ID: "unknown"}, DistanceMeters: 100, FreeSpaces: nil},
		{Facility: FacilityMetadata{ID: "full"}, DistanceMeters: 100, FreeSpaces: intPtr(0)},
	}

	SortRecommendations(recs)

	if recs[0].Facility.ID != "full" {
		t.Errorf("zero free spaces should rank above unknown, got %v first", recs[0].Facility.ID)
	}
}

func TestSortRecommendations_DistanceWinsOverFreeSpaces(t *testing.T) {
	recs := []Recommendation{
		{Facility: FacilityMetadata{ID: "far"}, DistanceMeters: 500, FreeSpaces: intPtr(100)},
		{Facility: FacilityMetadata{ID: "near"}, DistanceMeters: 50, FreeSpaces: nil},
	}

	SortRecommendations(recs)

	if recs[0].Facility.ID != "near" {
		t.Error("distance must be the primary sort key")
	}
}
