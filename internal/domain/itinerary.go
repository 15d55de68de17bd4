package domain

import (
	"fmt"
	"strings"
)

// Mode selects whether each greedy step takes the nearest or farthest city.
type Mode string

const (
	ModeMinimize Mode = "min"
	ModeMaximize Mode = "max"
)

// ModeFromMinimize maps the yes/no "minimize distance" answer onto a Mode.
func ModeFromMinimize(minimize bool) Mode {
	if minimize {
		return ModeMinimize
	}
	return ModeMaximize
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize", "minimum":
		return ModeMinimize, nil
	case "max", "maximize", "maximum":
		return ModeMaximize, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

func (m Mode) Valid() bool {
	return m == ModeMinimize || m == ModeMaximize
}

// Better reports whether candidate strictly beats current under m.
// Equal distances never win, so the first candidate seen keeps its place.
func (m Mode) Better(candidate, current float64) bool {
	if m == ModeMaximize {
		return candidate > current
	}
	return candidate < current
}

// Label is the human-readable adjective for the mode.
func (m Mode) Label() string {
	if m == ModeMaximize {
		return "maximum"
	}
	return "minimum"
}

// Represents a single hop of an itinerary.
type Leg struct {
	From       City
	To         City
	DistanceKm float64
}

// Represents a planned round-the-world trip.
// Stops are in visiting order and start and end at the same city; Legs[i]
// joins Stops[i] and Stops[i+1]. ContinentsCovered starts with the origin's
// continent and holds each continent once. An Itinerary is immutable planning
// data once returned by the planner.
type Itinerary struct {
	Mode              Mode
	Stops             []City
	Legs              []Leg
	ContinentsCovered []ContinentID
	TotalDistanceKm   float64
}

// Start returns the origin city.
func (it *Itinerary) Start() City {
	if len(it.Stops) == 0 {
		return City{}
	}
	return it.Stops[0]
}

// Closed reports whether the itinerary returns to its origin.
func (it *Itinerary) Closed() bool {
	n := len(it.Stops)
	return n > 1 && it.Stops[0].ID == it.Stops[n-1].ID
}
