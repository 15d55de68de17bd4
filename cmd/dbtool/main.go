package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"world-travel-planner/internal/adapters/repositories"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/config"
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/db"
	"world-travel-planner/internal/platform/graceful"
)

func main() {
	target := flag.String("target", config.SourceSQLite, "where to seed the catalog: sqlite, postgres or s3")
	seedPath := flag.String("seed", "", "catalog JSON file, defaults to the embedded catalog")
	flag.Parse()

	config.Load()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	if err := run(ctx, *target, *seedPath, config.CatalogFromEnv()); err != nil {
		log.Printf("dbtool failed: err=%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, target, seedPath string, cfg config.Catalog) error {
	cities, err := loadSeed(ctx, seedPath)
	if err != nil {
		return err
	}
	log.Printf("Seed loaded cities=%d", len(cities))

	switch target {
	case config.SourceSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer conn.Close()

		log.Println("Initializing database schema...")
		if err := repositories.InitSchema(ctx, conn); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		log.Println("Seeding database...")
		if err := repositories.SeedCities(ctx, conn, cities); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

	case config.SourcePostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for target %q", target)
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		log.Println("Initializing database schema...")
		if err := repositories.InitSQLSchema(ctx, conn); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		log.Println("Seeding database...")
		if err := repositories.SeedSQLCities(ctx, conn, cities); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

	case config.SourceS3:
		repo, err := repositories.NewS3CityRepository(cfg.S3)
		if err != nil {
			return err
		}
		log.Printf("Uploading catalog bucket=%s key=%s", cfg.S3.Bucket, cfg.S3.ObjectKey)
		if err := repo.UploadCities(ctx, cities); err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

	default:
		return fmt.Errorf("unknown target %q", target)
	}

	log.Println("Seeding complete.")
	return nil
}

// loadSeed reads the seed cities and validates them as a catalog before
// anything is written.
func loadSeed(ctx context.Context, seedPath string) ([]domain.City, error) {
	repo := repositories.NewEmbeddedCityRepository()
	if seedPath != "" {
		repo = repositories.NewFileCityRepository(seedPath)
	}

	cat, err := catalog.Load(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return cat.Cities(), nil
}
