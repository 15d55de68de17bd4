package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"world-travel-planner/internal/domain"
)

// SQLite-backed implementation of the CityRepository port.
type SqliteCityRepository struct{ DB *sql.DB }

func NewSqliteCityRepository(db *sql.DB) *SqliteCityRepository {
	return &SqliteCityRepository{DB: db}
}

// Return all cities in seed order.
func (s *SqliteCityRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite city repository: DB is nil")
	}

	query := `
	SELECT
		city_id,
		name,
		continent_id,
		lat,
		lon
	FROM cities
	ORDER BY position, city_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: query cities table: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}
