package distance

import (
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/geo"
)

// GreatCircleProvider implements DistanceProvider with the haversine
// great-circle distance between city coordinates.
//
// It holds no state and is safe for concurrent use.
type GreatCircleProvider struct{}

func NewGreatCircleProvider() GreatCircleProvider {
	return GreatCircleProvider{}
}

func (GreatCircleProvider) DistanceKm(from, to domain.City) float64 {
	return geo.DistanceKm(from.Location.Lat, from.Location.Lon, to.Location.Lat, to.Location.Lon)
}
