package handlers

import (
	"world-travel-planner/internal/api/dto"
	"world-travel-planner/internal/domain"
)

func cityResponse(c domain.City) dto.CityResponse {
	return dto.CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContinentID: string(c.ContinentID),
		Lat:         c.Location.Lat,
		Lon:         c.Location.Lon,
	}
}

func planResponse(it *domain.Itinerary) dto.PlanResponse {
	res := dto.PlanResponse{
		Mode:              string(it.Mode),
		Start:             it.Start().ID,
		Stops:             make([]dto.CityResponse, 0, len(it.Stops)),
		Legs:              make([]dto.PlanLegResponse, 0, len(it.Legs)),
		ContinentsCovered: make([]string, 0, len(it.ContinentsCovered)),
		TotalDistanceKm:   it.TotalDistanceKm,
	}

	for _, s := range it.Stops {
		res.Stops = append(res.Stops, cityResponse(s))
	}
	for _, l := range it.Legs {
		res.Legs = append(res.Legs, dto.PlanLegResponse{
			From:       l.From.ID,
			To:         l.To.ID,
			DistanceKm: l.DistanceKm,
		})
	}
	for _, c := range it.ContinentsCovered {
		res.ContinentsCovered = append(res.ContinentsCovered, string(c))
	}

	return res
}
