package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"world-travel-planner/internal/domain"
)

type cityRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContinentID string `json:"contId"`
	Location    struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"location"`
}

// Decode reads a catalog document: a JSON object keyed by city ID whose
// values carry id, name, contId and location. Key order is preserved.
func Decode(r io.Reader) ([]domain.City, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode catalog: read opening token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("decode catalog: expected a JSON object keyed by city id")
	}

	cities := make([]domain.City, 0, 64)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode catalog: read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode catalog: unexpected token %v", tok)
		}

		var rec cityRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode catalog: city %q: %w", key, err)
		}

		city, err := rec.toCity(key)
		if err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		cities = append(cities, city)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode catalog: read closing token: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode catalog: unexpected content after the catalog object")
	}

	return cities, nil
}

func (rec cityRecord) toCity(key string) (domain.City, error) {
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = key
	}
	if id != key {
		return domain.City{}, fmt.Errorf("city key %q does not match id %q", key, rec.ID)
	}

	continent, err := domain.ParseContinentID(rec.ContinentID)
	if err != nil {
		return domain.City{}, fmt.Errorf("city %q: %w", key, err)
	}

	if rec.Location.Lat == nil || rec.Location.Lon == nil {
		return domain.City{}, fmt.Errorf("city %q: location requires lat and lon", key)
	}

	return domain.City{
		ID:          id,
		Name:        strings.TrimSpace(rec.Name),
		ContinentID: continent,
		Location:    domain.Coordinates{Lat: *rec.Location.Lat, Lon: *rec.Location.Lon},
	}, nil
}

// Encode writes cities in the same document shape Decode reads.
func Encode(w io.Writer, cities []domain.City) error {
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	for i, c := range cities {
		var rec cityRecord
		rec.ID = c.ID
		rec.Name = c.Name
		rec.ContinentID = string(c.ContinentID)
		lat, lon := c.Location.Lat, c.Location.Lon
		rec.Location.Lat = &lat
		rec.Location.Lon = &lon

		key, err := json.Marshal(c.ID)
		if err != nil {
			return fmt.Errorf("encode catalog: city %q: %w", c.ID, err)
		}
		val, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode catalog: city %q: %w", c.ID, err)
		}

		sep := ",\n"
		if i == len(cities)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "  %s: %s%s", key, val, sep); err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
