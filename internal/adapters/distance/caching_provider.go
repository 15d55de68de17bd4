package distance

import (
	"errors"
	"fmt"

	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/ports"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingProvider memoizes distances of another provider by directed
// city ID pair, keeping at most size pairs.
//
// Safe for concurrent use when the wrapped provider is.
type CachingProvider struct {
	next ports.DistanceProvider
	c    *lru.Cache[string, float64]
}

func NewCachingProvider(next ports.DistanceProvider, size int) (*CachingProvider, error) {
	if next == nil {
		return nil, errors.New("caching provider: wrapped provider is nil")
	}

	c, err := lru.New[string, float64](size)
	if err != nil {
		return nil, fmt.Errorf("caching provider: size=%d: %w", size, err)
	}

	return &CachingProvider{next: next, c: c}, nil
}

func (p *CachingProvider) DistanceKm(from, to domain.City) float64 {
	key := from.ID + "|" + to.ID
	if km, ok := p.c.Get(key); ok {
		return km
	}

	km := p.next.DistanceKm(from, to)
	p.c.Add(key, km)
	return km
}

// Len reports how many pairs are cached.
func (p *CachingProvider) Len() int {
	return p.c.Len()
}
