package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"world-travel-planner/data"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/domain"
)

// JSONCityRepository reads a catalog document (see catalog.Decode) on every
// ListCities call.
type JSONCityRepository struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewEmbeddedCityRepository serves the catalog compiled into the binary.
func NewEmbeddedCityRepository() *JSONCityRepository {
	return &JSONCityRepository{
		name: "embedded",
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data.Cities)), nil
		},
	}
}

// NewFileCityRepository serves the catalog stored at path.
func NewFileCityRepository(path string) *JSONCityRepository {
	return &JSONCityRepository{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

func (j *JSONCityRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := j.open()
	if err != nil {
		return nil, fmt.Errorf("list cities: open %s catalog: %w", j.name, err)
	}
	defer rc.Close()

	cities, err := catalog.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("list cities: %s catalog: %w", j.name, err)
	}
	return cities, nil
}
