package repositories

import (
	"database/sql"
	"fmt"

	"world-travel-planner/internal/domain"
)

// scanCities reads city rows selected as
// (city_id, name, continent_id, lat, lon).
func scanCities(rows *sql.Rows) ([]domain.City, error) {
	cities := make([]domain.City, 0, 64)
	for rows.Next() {
		var (
			id, name, continent string
			lat, lon            float64
		)
		if err := rows.Scan(&id, &name, &continent, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list cities: scan row: %w", err)
		}

		cont, err := domain.ParseContinentID(continent)
		if err != nil {
			return nil, fmt.Errorf("list cities: city_id=%q: %w", id, err)
		}

		cities = append(cities, domain.City{
			ID:          id,
			Name:        name,
			ContinentID: cont,
			Location:    domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cities: row iteration: %w", err)
	}

	return cities, nil
}
