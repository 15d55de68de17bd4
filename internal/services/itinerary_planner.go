package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/obs"
	"world-travel-planner/internal/ports"
)

// Plan a round-the-world itinerary using a greedy continent-hopping algorithm.
//
// Starting at startID, each step moves to the nearest (ModeMinimize) or
// farthest (ModeMaximize) city on a continent not yet visited, until every
// continent is covered; a final leg returns to the start city.
// It does not attempt global route optimization. Candidates are scanned in
// catalog order and only a strictly better distance replaces the current
// choice, so the earliest city wins ties.
//
// startID must already be in catalog key form (see catalog.NormalizeID).
func PlanItinerary(
	ctx context.Context,
	cat *catalog.Catalog,
	startID string,
	mode domain.Mode,
	distances ports.DistanceProvider,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Plan")(&err)

	if cat == nil {
		return nil, errors.New("plan itinerary: catalog must be non-nil")
	}
	if distances == nil {
		return nil, errors.New("plan itinerary: distance provider must be non-nil")
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("plan itinerary: invalid mode %q", mode)
	}

	done := obs.ObservePlan(string(mode))
	defer func() { done(planStatus(err)) }()

	start, ok := cat.Lookup(startID)
	if !ok {
		return nil, &domain.UnknownCityError{ID: startID}
	}

	// Coverage is checked up front so a step can never come up empty-handed.
	if missing := cat.MissingContinents(); len(missing) > 0 {
		return nil, &domain.InsufficientCoverageError{Missing: missing}
	}

	covered := make([]domain.ContinentID, 0, domain.ContinentCount)
	covered = append(covered, start.ContinentID)

	stops := make([]domain.City, 0, domain.ContinentCount+1)
	stops = append(stops, start)

	legs := make([]domain.Leg, 0, domain.ContinentCount)
	total := 0.0
	current := start

	for len(covered) < domain.ContinentCount {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan itinerary: %w", err)
		}

		next, km, found := nextCity(cat, current, covered, mode, distances)
		if !found {
			return nil, fmt.Errorf("plan itinerary: no candidate city from %q outside %v", current.ID, covered)
		}

		legs = append(legs, domain.Leg{From: current, To: next, DistanceKm: km})
		stops = append(stops, next)
		covered = append(covered, next.ContinentID)
		total += km
		current = next
	}

	// Close the loop back to the origin; its continent is already covered.
	back := distances.DistanceKm(current, start)
	legs = append(legs, domain.Leg{From: current, To: start, DistanceKm: back})
	stops = append(stops, start)
	total += back

	return &domain.Itinerary{
		Mode:              mode,
		Stops:             stops,
		Legs:              legs,
		ContinentsCovered: covered,
		TotalDistanceKm:   total,
	}, nil
}

// nextCity selects the extremal candidate from current among cities whose
// continent is not in covered.
func nextCity(
	cat *catalog.Catalog,
	current domain.City,
	covered []domain.ContinentID,
	mode domain.Mode,
	distances ports.DistanceProvider,
) (domain.City, float64, bool) {
	bound := math.Inf(1)
	if mode == domain.ModeMaximize {
		bound = math.Inf(-1)
	}

	var best domain.City
	found := false

	for city := range cat.All() {
		if slices.Contains(covered, city.ContinentID) {
			continue
		}

		km := distances.DistanceKm(current, city)
		if mode.Better(km, bound) {
			bound = km
			best = city
			found = true
		}
	}

	return best, bound, found
}

func planStatus(err error) string {
	if err == nil {
		return obs.StatusSuccess
	}

	var unknown *domain.UnknownCityError
	if errors.As(err, &unknown) {
		return obs.StatusUnknownCity
	}

	var coverage *domain.InsufficientCoverageError
	if errors.As(err, &coverage) {
		return obs.StatusInsufficientCoverage
	}

	return obs.StatusError
}
