package collapse

import (
	"fmt"
	"strings"
)

// Side is the category of one tile edge. Two tiles fit next to each other
// when their touching sides are equal.
type Side uint8

// Side constants
const (
	Water Side = iota
	Field
	Road
	City
)

// SideCount is the number of distinct sides
const SideCount = 4

// AllSides returns every side in ascending order
func AllSides() []Side {
	return []Side{Water, Field, Road, City}
}

// String returns the name of the side
func (s Side) String() string {
	switch s {
	case Water:
		return "Water"
	case Field:
		return "Field"
	case Road:
		return "Road"
	case City:
		return "City"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the defined sides
func (s Side) IsValid() bool {
	return s <= City
}

// ParseSide returns the side with the given name, ignoring case
func ParseSide(name string) (Side, error) {
	for _, s := range AllSides() {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}
