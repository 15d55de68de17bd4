package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ContinentID tags the continent a city belongs to.
type ContinentID string

const (
	Asia         ContinentID = "asia"
	Europe       ContinentID = "europe"
	Africa       ContinentID = "africa"
	NorthAmerica ContinentID = "north-america"
	SouthAmerica ContinentID = "south-america"
	Oceania      ContinentID = "oceania"
)

// ContinentCount is the number of continents an itinerary must cover.
const ContinentCount = 6

// Continents lists every continent identifier in canonical order.
func Continents() []ContinentID {
	return []ContinentID{Asia, Europe, Africa, NorthAmerica, SouthAmerica, Oceania}
}

// ParseContinentID accepts a continent identifier in any letter case.
func ParseContinentID(s string) (ContinentID, error) {
	id := ContinentID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("unknown continent %q", s)
	}
	return id, nil
}

func (c ContinentID) Valid() bool {
	switch c {
	case Asia, Europe, Africa, NorthAmerica, SouthAmerica, Oceania:
		return true
	}
	return false
}

// City is read-only reference data. Two cities are the same city when their
// IDs are equal.
type City struct {
	ID          string
	Name        string
	ContinentID ContinentID
	Location    Coordinates
}

// Validate checks the invariants every catalog entry must satisfy.
func (c City) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("city id must not be empty")
	}
	if !c.ContinentID.Valid() {
		return fmt.Errorf("city %q: unknown continent %q", c.ID, c.ContinentID)
	}
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("city %q: %w", c.ID, err)
	}
	return nil
}
