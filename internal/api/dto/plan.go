package dto

type PlanRequest struct {
	Start    string `json:"start"`
	Minimize *bool  `json:"minimize"`
}

type PlanLegResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type PlanResponse struct {
	Mode              string            `json:"mode"`
	Start             string            `json:"start"`
	Stops             []CityResponse    `json:"stops"`
	Legs              []PlanLegResponse `json:"legs"`
	ContinentsCovered []string          `json:"continents_covered"`
	TotalDistanceKm   float64           `json:"total_distance_km"`
}
