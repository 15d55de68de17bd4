package api

import (
	"net/http"

	"world-travel-planner/internal/api/handlers"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/ports"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// The catalog is shared read-only by every request.
func NewRouter(cat *catalog.Catalog, provider ports.DistanceProvider) http.Handler {
	mux := http.NewServeMux()

	cityHandler := &handlers.CityHandler{Catalog: cat}
	planHandler := &handlers.PlanHandler{
		Catalog:  cat,
		Provider: provider,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cities", cityHandler.List)
	mux.HandleFunc("/cities/{id}", cityHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
