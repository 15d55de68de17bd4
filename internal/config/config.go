// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources understood by the repositories package.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceS3       = "s3"
)

// Load reads a .env file from the working directory when one exists.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Bool parses key as a boolean, returning fallback when unset or malformed.
func Bool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: ignoring malformed boolean %s=%q", key, v)
		return fallback
	}
	return b
}

type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	ObjectKey string
}

// Catalog describes where the city catalog is loaded from.
type Catalog struct {
	Source      string
	Path        string
	SQLitePath  string
	DatabaseURL string
	S3          S3
}

func CatalogFromEnv() Catalog {
	return Catalog{
		Source:      strings.ToLower(Get("CATALOG_SOURCE", SourceEmbedded)),
		Path:        Get("CATALOG_PATH", "data/cities.json"),
		SQLitePath:  Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		S3: S3{
			Endpoint:  Get("MINIO_ENDPOINT", ""),
			AccessKey: Get("MINIO_ACCESS_KEY", ""),
			SecretKey: Get("MINIO_SECRET_KEY", ""),
			UseSSL:    Bool("MINIO_USE_SSL", false),
			Bucket:    Get("CATALOG_BUCKET", "travel-planner"),
			ObjectKey: Get("CATALOG_OBJECT_KEY", "cities.json"),
		},
	}
}
