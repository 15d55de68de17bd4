package ports

import "world-travel-planner/internal/domain"

// Contract for measuring the distance between two cities.
type DistanceProvider interface {
	// Return the distance in kilometres between two cities.
	// Implementations must be pure: same inputs, same result.
	DistanceKm(from, to domain.City) float64
}
