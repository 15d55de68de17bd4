// Package catalog holds the read-only set of cities an itinerary is planned
// over. A Catalog keeps its cities in load order; that order decides which
// city wins when two candidates are equally far away.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/ports"
)

// Catalog is immutable after New returns and safe for concurrent use.
type Catalog struct {
	cities []domain.City
	byID   map[string]int
}

// New builds a catalog from cities in iteration order.
// IDs must be unique and every city must pass domain validation.
func New(cities []domain.City) (*Catalog, error) {
	c := &Catalog{
		cities: make([]domain.City, 0, len(cities)),
		byID:   make(map[string]int, len(cities)),
	}

	for i, city := range cities {
		if err := city.Validate(); err != nil {
			return nil, fmt.Errorf("new catalog: entry %d: %w", i+1, err)
		}
		if _, dup := c.byID[city.ID]; dup {
			return nil, fmt.Errorf("new catalog: duplicate city id %q", city.ID)
		}
		c.byID[city.ID] = len(c.cities)
		c.cities = append(c.cities, city)
	}

	return c, nil
}

// Load reads all cities from repo and builds a catalog.
func Load(ctx context.Context, repo ports.CityRepository) (*Catalog, error) {
	if repo == nil {
		return nil, errors.New("load catalog: repository is nil")
	}

	cities, err := repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: list cities: %w", err)
	}

	c, err := New(cities)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// NormalizeID turns user input into catalog key form.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Lookup finds a city by its exact ID.
func (c *Catalog) Lookup(id string) (domain.City, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.City{}, false
	}
	return c.cities[i], true
}

// All iterates the cities in catalog order.
func (c *Catalog) All() iter.Seq[domain.City] {
	return func(yield func(domain.City) bool) {
		for _, city := range c.cities {
			if !yield(city) {
				return
			}
		}
	}
}

// Cities returns a copy of the cities in catalog order.
func (c *Catalog) Cities() []domain.City {
	return slices.Clone(c.cities)
}

// InContinent returns the cities of one continent in catalog order.
func (c *Catalog) InContinent(id domain.ContinentID) []domain.City {
	out := make([]domain.City, 0)
	for _, city := range c.cities {
		if city.ContinentID == id {
			out = append(out, city)
		}
	}
	return out
}

func (c *Catalog) Len() int { return len(c.cities) }

// Continents returns the distinct continents present, in canonical order.
func (c *Catalog) Continents() []domain.ContinentID {
	present := make(map[domain.ContinentID]struct{}, domain.ContinentCount)
	for _, city := range c.cities {
		present[city.ContinentID] = struct{}{}
	}

	out := make([]domain.ContinentID, 0, len(present))
	for _, id := range domain.Continents() {
		if _, ok := present[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// MissingContinents returns the continents with no city, in canonical order.
func (c *Catalog) MissingContinents() []domain.ContinentID {
	have := c.Continents()
	out := make([]domain.ContinentID, 0)
	for _, id := range domain.Continents() {
		if !slices.Contains(have, id) {
			out = append(out, id)
		}
	}
	return out
}
