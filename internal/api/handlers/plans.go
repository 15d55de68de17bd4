package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"world-travel-planner/internal/api/dto"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/obs"
	"world-travel-planner/internal/ports"
	"world-travel-planner/internal/services"
)

type PlanHandler struct {
	Catalog  *catalog.Catalog
	Provider ports.DistanceProvider
}

// Plan validates the request and runs the itinerary planner against the
// shared catalog.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	start := catalog.NormalizeID(req.Start)
	if start == "" {
		writeError(w, r, http.StatusBadRequest, "start is required")
		return
	}

	minimize := true
	if req.Minimize != nil {
		minimize = *req.Minimize
	}

	plan, err := services.PlanItinerary(r.Context(), h.Catalog, start, domain.ModeFromMinimize(minimize), h.Provider)
	if err != nil {
		var unknown *domain.UnknownCityError
		if errors.As(err, &unknown) {
			writeError(w, r, http.StatusNotFound, unknown.Error())
			return
		}

		var coverage *domain.InsufficientCoverageError
		if errors.As(err, &coverage) {
			log.Printf("plan itinerary failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusInternalServerError, coverage.Error())
			return
		}

		log.Printf("plan itinerary failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, planResponse(plan))
}
