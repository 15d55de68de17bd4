package domain

import (
	"fmt"

	"world-travel-planner/internal/geo"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinates lie within the valid degree ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// DistanceKm returns the great-circle distance to other in kilometres.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	return geo.DistanceKm(c.Lat, c.Lon, other.Lat, other.Lon)
}
