package services

import (
	"bytes"
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"world-travel-planner/data"
	"world-travel-planner/internal/adapters/distance"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/domain"
)

func embeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cities, err := catalog.Decode(bytes.NewReader(data.Cities))
	if err != nil {
		t.Fatalf("decode embedded catalog: %v", err)
	}
	cat, err := catalog.New(cities)
	if err != nil {
		t.Fatalf("build embedded catalog: %v", err)
	}
	return cat
}

func syntheticCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	continents := map[string]domain.ContinentID{
		"S": domain.Asia, "E1": domain.Europe, "E2": domain.Europe, "F": domain.Africa,
		"N": domain.NorthAmerica, "SA": domain.SouthAmerica, "O": domain.Oceania,
	}
	cities := make([]domain.City, 0, len(ids))
	for _, id := range ids {
		cities = append(cities, domain.City{ID: id, Name: id, ContinentID: continents[id]})
	}
	cat, err := catalog.New(cities)
	if err != nil {
		t.Fatalf("build synthetic catalog: %v", err)
	}
	return cat
}

func stopIDs(it *domain.Itinerary) []string {
	ids := make([]string, 0, len(it.Stops))
	for _, c := range it.Stops {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestPlanItineraryFromMumbai(t *testing.T) {
	cat := embeddedCatalog(t)
	provider := distance.NewGreatCircleProvider()

	cases := []struct {
		mode  domain.Mode
		stops []string
		total float64
	}{
		{domain.ModeMinimize, []string{"BOM", "ADD", "IST", "JFK", "CCS", "PPT", "BOM"}, 44168.20},
		{domain.ModeMaximize, []string{"BOM", "LIM", "PER", "JFK", "JNB", "KEF", "BOM"}, 82454.46},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			plan, err := PlanItinerary(context.Background(), cat, "BOM", tc.mode, provider)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := stopIDs(plan); !slices.Equal(got, tc.stops) {
				t.Fatalf("stops = %v, want %v", got, tc.stops)
			}
			if math.Abs(plan.TotalDistanceKm-tc.total) > 0.01 {
				t.Fatalf("total = %.4f, want %.2f", plan.TotalDistanceKm, tc.total)
			}
			if plan.Mode != tc.mode {
				t.Fatalf("mode = %q, want %q", plan.Mode, tc.mode)
			}
		})
	}
}

func TestPlanItineraryMinimizeBeatsMaximize(t *testing.T) {
	cat := embeddedCatalog(t)
	provider := distance.NewGreatCircleProvider()

	for _, start := range []string{"BOM", "JFK", "SYD", "PPT", "KEF"} {
		minPlan, err := PlanItinerary(context.Background(), cat, start, domain.ModeMinimize, provider)
		if err != nil {
			t.Fatalf("%s min: %v", start, err)
		}
		maxPlan, err := PlanItinerary(context.Background(), cat, start, domain.ModeMaximize, provider)
		if err != nil {
			t.Fatalf("%s max: %v", start, err)
		}
		if minPlan.TotalDistanceKm >= maxPlan.TotalDistanceKm {
			t.Errorf("%s: min total %.2f should be below max total %.2f",
				start, minPlan.TotalDistanceKm, maxPlan.TotalDistanceKm)
		}
	}
}

// Every successful plan covers six distinct continents starting with the
// origin's, is closed, and takes an extremal candidate at every step.
func TestPlanItineraryInvariants(t *testing.T) {
	cat := embeddedCatalog(t)
	provider := distance.NewGreatCircleProvider()

	for city := range cat.All() {
		for _, mode := range []domain.Mode{domain.ModeMinimize, domain.ModeMaximize} {
			plan, err := PlanItinerary(context.Background(), cat, city.ID, mode, provider)
			if err != nil {
				t.Fatalf("%s/%s: %v", city.ID, mode, err)
			}

			if len(plan.Stops) != domain.ContinentCount+1 || len(plan.Legs) != domain.ContinentCount {
				t.Fatalf("%s/%s: %d stops, %d legs", city.ID, mode, len(plan.Stops), len(plan.Legs))
			}
			if !plan.Closed() || plan.Start().ID != city.ID {
				t.Fatalf("%s/%s: itinerary not closed on its origin: %v", city.ID, mode, stopIDs(plan))
			}
			if len(plan.ContinentsCovered) != domain.ContinentCount || plan.ContinentsCovered[0] != city.ContinentID {
				t.Fatalf("%s/%s: continents covered = %v", city.ID, mode, plan.ContinentsCovered)
			}
			seen := map[domain.ContinentID]bool{}
			for _, c := range plan.ContinentsCovered {
				if seen[c] {
					t.Fatalf("%s/%s: continent %q covered twice", city.ID, mode, c)
				}
				seen[c] = true
			}

			sum := 0.0
			for i, leg := range plan.Legs {
				sum += leg.DistanceKm
				if leg.From.ID != plan.Stops[i].ID || leg.To.ID != plan.Stops[i+1].ID {
					t.Fatalf("%s/%s: leg %d does not join stops", city.ID, mode, i)
				}
				if i == len(plan.Legs)-1 {
					break
				}

				excluded := plan.ContinentsCovered[:i+1]
				if slices.Contains(excluded, leg.To.ContinentID) {
					t.Fatalf("%s/%s: step %d picked excluded continent %q", city.ID, mode, i, leg.To.ContinentID)
				}
				assertExtremal(t, cat, provider, mode, leg, excluded)
			}

			if math.Abs(sum-plan.TotalDistanceKm) > 1e-6 {
				t.Fatalf("%s/%s: legs sum %.6f != total %.6f", city.ID, mode, sum, plan.TotalDistanceKm)
			}
		}
	}
}

func assertExtremal(
	t *testing.T,
	cat *catalog.Catalog,
	provider distance.GreatCircleProvider,
	mode domain.Mode,
	leg domain.Leg,
	excluded []domain.ContinentID,
) {
	t.Helper()
	chosenSeen := false
	for c := range cat.All() {
		if slices.Contains(excluded, c.ContinentID) {
			continue
		}
		if c.ID == leg.To.ID {
			chosenSeen = true
			continue
		}

		d := provider.DistanceKm(leg.From, c)
		// Earlier candidates must be strictly worse; later ones may tie.
		if !chosenSeen && !mode.Better(leg.DistanceKm, d) {
			t.Fatalf("step from %s: chose %s (%.2f) but earlier candidate %s is %.2f",
				leg.From.ID, leg.To.ID, leg.DistanceKm, c.ID, d)
		}
		if chosenSeen && mode.Better(d, leg.DistanceKm) {
			t.Fatalf("step from %s: chose %s (%.2f) but later candidate %s is better at %.2f",
				leg.From.ID, leg.To.ID, leg.DistanceKm, c.ID, d)
		}
	}
	if !chosenSeen {
		t.Fatalf("chosen city %s not found among candidates", leg.To.ID)
	}
}

func TestPlanItineraryTieBreakFavorsCatalogOrder(t *testing.T) {
	cases := []struct {
		name  string
		mode  domain.Mode
		order []string
		pairs []distance.MockPair
		stops []string
		total float64
	}{
		{
			name:  "minimize earliest wins",
			mode:  domain.ModeMinimize,
			order: []string{"S", "E1", "E2", "F", "N", "SA", "O"},
			pairs: []distance.MockPair{{From: "S", To: "E1", Km: 10}, {From: "S", To: "E2", Km: 10}},
			stops: []string{"S", "E1", "F", "N", "SA", "O", "S"},
			total: 2510,
		},
		{
			name:  "minimize order reversed",
			mode:  domain.ModeMinimize,
			order: []string{"S", "E2", "E1", "F", "N", "SA", "O"},
			pairs: []distance.MockPair{{From: "S", To: "E1", Km: 10}, {From: "S", To: "E2", Km: 10}},
			stops: []string{"S", "E2", "F", "N", "SA", "O", "S"},
			total: 2510,
		},
		{
			name:  "maximize earliest wins",
			mode:  domain.ModeMaximize,
			order: []string{"S", "E1", "E2", "F", "N", "SA", "O"},
			pairs: []distance.MockPair{{From: "S", To: "E1", Km: 1000}, {From: "S", To: "E2", Km: 1000}},
			stops: []string{"S", "E1", "F", "N", "SA", "O", "S"},
			total: 3500,
		},
		{
			name:  "maximize order reversed",
			mode:  domain.ModeMaximize,
			order: []string{"S", "E2", "E1", "F", "N", "SA", "O"},
			pairs: []distance.MockPair{{From: "S", To: "E1", Km: 1000}, {From: "S", To: "E2", Km: 1000}},
			stops: []string{"S", "E2", "F", "N", "SA", "O", "S"},
			total: 3500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := syntheticCatalog(t, tc.order...)
			provider := distance.NewMockDistanceProvider(tc.pairs)
			provider.Default = 500

			// Repeat to show the result is reproducible.
			for i := 0; i < 3; i++ {
				plan, err := PlanItinerary(context.Background(), cat, "S", tc.mode, provider)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got := stopIDs(plan); !slices.Equal(got, tc.stops) {
					t.Fatalf("stops = %v, want %v", got, tc.stops)
				}
				if plan.TotalDistanceKm != tc.total {
					t.Fatalf("total = %v, want %v", plan.TotalDistanceKm, tc.total)
				}
			}
		})
	}
}

func TestPlanItineraryTieOnIdenticalCoordinates(t *testing.T) {
	at := func(id string, c domain.ContinentID, lat, lon float64) domain.City {
		return domain.City{ID: id, Name: id, ContinentID: c, Location: domain.Coordinates{Lat: lat, Lon: lon}}
	}
	cat, err := catalog.New([]domain.City{
		at("S", domain.Asia, 0, 0),
		at("EB", domain.Europe, 10, 10),
		at("EA", domain.Europe, 10, 10),
		at("F", domain.Africa, -40, 60),
		at("N", domain.NorthAmerica, 40, -100),
		at("SA", domain.SouthAmerica, -30, -60),
		at("O", domain.Oceania, -30, 150),
	})
	if err != nil {
		t.Fatal(err)
	}

	plan, err := PlanItinerary(context.Background(), cat, "S", domain.ModeMinimize, distance.NewGreatCircleProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Stops[1].ID != "EB" {
		t.Fatalf("first hop = %s, want EB (scanned before EA)", plan.Stops[1].ID)
	}
}

func TestPlanItineraryClosesOnOriginalStart(t *testing.T) {
	cat := syntheticCatalog(t, "S", "E1", "F", "N", "SA", "O")
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "S", To: "E1", Km: 1},
		{From: "E1", To: "F", Km: 2},
		{From: "F", To: "N", Km: 3},
		{From: "N", To: "SA", Km: 4},
		{From: "SA", To: "O", Km: 5},
		{From: "O", To: "S", Km: 60},
		{From: "O", To: "SA", Km: 5},
	})
	provider.Default = 100

	plan, err := PlanItinerary(context.Background(), cat, "S", domain.ModeMinimize, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last := plan.Legs[len(plan.Legs)-1]
	if last.From.ID != "O" || last.To.ID != "S" || last.DistanceKm != 60 {
		t.Fatalf("closing leg = %s->%s %.0f, want O->S 60", last.From.ID, last.To.ID, last.DistanceKm)
	}
	if plan.TotalDistanceKm != 75 {
		t.Fatalf("total = %v, want 75", plan.TotalDistanceKm)
	}
	if len(plan.ContinentsCovered) != domain.ContinentCount {
		t.Fatalf("closing step must not re-add the origin continent: %v", plan.ContinentsCovered)
	}
}

func TestPlanItineraryUnknownCity(t *testing.T) {
	cat := embeddedCatalog(t)

	plan, err := PlanItinerary(context.Background(), cat, "XYZ", domain.ModeMinimize, distance.NewGreatCircleProvider())
	if plan != nil {
		t.Fatalf("expected no itinerary, got %v", stopIDs(plan))
	}

	var unknown *domain.UnknownCityError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCityError, got %v", err)
	}
	if unknown.ID != "XYZ" {
		t.Fatalf("UnknownCityError.ID = %q, want XYZ", unknown.ID)
	}
}

type countingProvider struct {
	calls int
}

func (p *countingProvider) DistanceKm(from, to domain.City) float64 {
	p.calls++
	return 1
}

func TestPlanItineraryInsufficientCoverage(t *testing.T) {
	cat := syntheticCatalog(t, "S", "E1", "F", "N", "SA")
	provider := &countingProvider{}

	plan, err := PlanItinerary(context.Background(), cat, "S", domain.ModeMaximize, provider)
	if plan != nil {
		t.Fatalf("expected no itinerary, got %v", stopIDs(plan))
	}

	var coverage *domain.InsufficientCoverageError
	if !errors.As(err, &coverage) {
		t.Fatalf("expected InsufficientCoverageError, got %v", err)
	}
	if !slices.Equal(coverage.Missing, []domain.ContinentID{domain.Oceania}) {
		t.Fatalf("missing = %v, want [oceania]", coverage.Missing)
	}
	if provider.calls != 0 {
		t.Fatalf("distance provider called %d times before coverage check", provider.calls)
	}
}

type nanProvider struct{}

func (nanProvider) DistanceKm(from, to domain.City) float64 { return math.NaN() }

func TestPlanItineraryNoCandidateIsAnError(t *testing.T) {
	cat := syntheticCatalog(t, "S", "E1", "F", "N", "SA", "O")

	plan, err := PlanItinerary(context.Background(), cat, "S", domain.ModeMinimize, nanProvider{})
	if err == nil || plan != nil {
		t.Fatalf("expected an error and no itinerary, got %v, %v", plan, err)
	}
}

func TestPlanItineraryInvalidArguments(t *testing.T) {
	cat := embeddedCatalog(t)
	ctx := context.Background()

	if _, err := PlanItinerary(ctx, nil, "BOM", domain.ModeMinimize, distance.NewGreatCircleProvider()); err == nil {
		t.Error("nil catalog: expected error")
	}
	if _, err := PlanItinerary(ctx, cat, "BOM", domain.ModeMinimize, nil); err == nil {
		t.Error("nil provider: expected error")
	}
	if _, err := PlanItinerary(ctx, cat, "BOM", domain.Mode("shortest"), distance.NewGreatCircleProvider()); err == nil {
		t.Error("invalid mode: expected error")
	}
}

func TestPlanItineraryCanceledContext(t *testing.T) {
	cat := embeddedCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlanItinerary(ctx, cat, "BOM", domain.ModeMinimize, distance.NewGreatCircleProvider())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPlanItinerarySharedCatalogConcurrently(t *testing.T) {
	cat := embeddedCatalog(t)
	provider := distance.NewGreatCircleProvider()

	want, err := PlanItinerary(context.Background(), cat, "SYD", domain.ModeMaximize, provider)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := PlanItinerary(context.Background(), cat, "SYD", domain.ModeMaximize, provider)
			if err != nil {
				t.Errorf("concurrent plan: %v", err)
				return
			}
			if !slices.Equal(stopIDs(got), stopIDs(want)) || got.TotalDistanceKm != want.TotalDistanceKm {
				t.Errorf("concurrent plan diverged: %v vs %v", stopIDs(got), stopIDs(want))
			}
		}()
	}
	wg.Wait()
}
