package domain

import (
	"fmt"
	"strings"
)

// UnknownCityError is returned when a starting city is not in the catalog.
type UnknownCityError struct {
	ID string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown city %q", e.ID)
}

// InsufficientCoverageError is returned before planning starts when the
// catalog has no city on one or more continents.
type InsufficientCoverageError struct {
	Missing []ContinentID
}

func (e *InsufficientCoverageError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, c := range e.Missing {
		names = append(names, string(c))
	}
	return fmt.Sprintf(
		"catalog covers %d of %d continents; missing: %s",
		ContinentCount-len(e.Missing), ContinentCount, strings.Join(names, ", "),
	)
}
