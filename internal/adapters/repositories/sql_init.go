package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"world-travel-planner/internal/domain"
)

// Initialize the Postgres database schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS cities (
			city_id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			continent_id TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_cities_continent
		ON cities(continent_id);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the contents of the Postgres cities table with cities.
func SeedSQLCities(ctx context.Context, db *sql.DB, cities []domain.City) error {
	if db == nil {
		return errors.New("seed cities: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed cities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The seed is the whole catalog; rows missing from it must not survive.
	if _, err := tx.ExecContext(ctx, `DELETE FROM cities;`); err != nil {
		return fmt.Errorf("seed cities: clear cities: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cities (city_id, position, name, continent_id, lat, lon)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (city_id) DO UPDATE
	SET position = EXCLUDED.position,
		name = EXCLUDED.name,
		continent_id = EXCLUDED.continent_id,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("seed cities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range cities {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("seed cities: entry %d: %w", i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, i, c.Name, string(c.ContinentID), c.Location.Lat, c.Location.Lon); err != nil {
			return fmt.Errorf("seed cities: insert city_id=%q: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cities: commit tx: %w", err)
	}

	return nil
}
