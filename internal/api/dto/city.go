package dto

type CityResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContinentID string  `json:"continent_id"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}
