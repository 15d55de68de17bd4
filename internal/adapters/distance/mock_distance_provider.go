package distance

import "world-travel-planner/internal/domain"

type MockPair struct {
	From, To string
	Km       float64
}

// MockDistanceProvider serves fixed distances keyed by city ID pairs.
// Pairs are looked up in both directions; unknown pairs get Default.
type MockDistanceProvider struct {
	m       map[string]float64
	Default float64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) DistanceKm(from, to domain.City) float64 {
	if from.ID == to.ID {
		return 0
	}
	if km, ok := p.m[from.ID+"|"+to.ID]; ok {
		return km
	}
	if km, ok := p.m[to.ID+"|"+from.ID]; ok {
		return km
	}
	return p.Default
}
