package ports

import (
	"context"

	"world-travel-planner/internal/domain"
)

// Port: a boundary for loading the city catalog from a data source.
type CityRepository interface {
	// Retrieve every city in a fixed, reproducible order.
	ListCities(ctx context.Context) ([]domain.City, error)
}
