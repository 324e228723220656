// ABOUTME: Geographic helpers for distance and walk-time estimation
// ABOUTME: Pure functions, no external state

// Package geo provides small geographic helpers used by the
// recommendation service.
package geo

import "math"

const (
	earthRadiusMeters = 6371000

	// walkSpeedMetersPerMinute is a conservative pedestrian pace.
	walkSpeedMetersPerMinute = 80
)

// HaversineMeters returns the great-circle distance in meters between two
// WGS84 coordinate pairs.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// EstimateWalkMinutes converts a distance in meters to whole walking
// minutes, rounded up. Zero or negative distances take zero minutes.
func EstimateWalkMinutes(distanceMeters float64) int {
	if distanceMeters <= 0 {
		return 0
	}
	return int(math.Ceil(distanceMeters / walkSpeedMetersPerMinute))
}
