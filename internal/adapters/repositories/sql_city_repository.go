package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/obs"
)

// SQLCityRepository is a Postgres-backed implementation of the
// CityRepository port.
type SQLCityRepository struct {
	DB *sql.DB
}

func NewSQLCityRepository(db *sql.DB) *SQLCityRepository {
	return &SQLCityRepository{DB: db}
}

func (s *SQLCityRepository) ListCities(ctx context.Context) (_ []domain.City, err error) {
	defer obs.Time(ctx, "cities.sql.ListCities")(&err)

	if s.DB == nil {
		return nil, errors.New("sql city repository: DB is nil")
	}

	q := `
	SELECT city_id, name, continent_id, lat, lon
    FROM cities
    ORDER BY position, city_id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list cities: query cities table: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}
