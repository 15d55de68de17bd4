package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"world-travel-planner/internal/api/dto"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/domain"
)

// CityHandler exposes read-only catalog endpoints.
type CityHandler struct {
	Catalog *catalog.Catalog
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	cities := h.Catalog.Cities()
	if raw := strings.TrimSpace(r.URL.Query().Get("continent")); raw != "" {
		continent, err := domain.ParseContinentID(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown continent %q", raw))
			return
		}
		cities = h.Catalog.InContinent(continent)
	}

	res := dto.ListCitiesResponse{
		Cities: make([]dto.CityResponse, 0, len(cities)),
	}
	for _, c := range cities {
		res.Cities = append(res.Cities, cityResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := catalog.NormalizeID(r.PathValue("id"))
	city, ok := h.Catalog.Lookup(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown city %q", id))
		return
	}

	writeJSON(w, r, http.StatusOK, cityResponse(city))
}
