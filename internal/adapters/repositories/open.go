package repositories

import (
	"errors"
	"fmt"

	"world-travel-planner/internal/config"
	"world-travel-planner/internal/platform/db"
	"world-travel-planner/internal/ports"
)

// Open returns the city repository selected by cfg.Source and a func that
// releases whatever the repository holds open.
func Open(cfg config.Catalog) (ports.CityRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case "", config.SourceEmbedded:
		return NewEmbeddedCityRepository(), noop, nil

	case config.SourceFile:
		if cfg.Path == "" {
			return nil, nil, errors.New("open catalog: CATALOG_PATH is required for the file source")
		}
		return NewFileCityRepository(cfg.Path), noop, nil

	case config.SourceSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		return NewSqliteCityRepository(conn), conn.Close, nil

	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, errors.New("open catalog: DATABASE_URL is required for the postgres source")
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		return NewSQLCityRepository(conn), conn.Close, nil

	case config.SourceS3:
		repo, err := NewS3CityRepository(cfg.S3)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		return repo, noop, nil
	}

	return nil, nil, fmt.Errorf("open catalog: unknown source %q", cfg.Source)
}
