package skoda

import (
	"fmt"
	"strconv"
)

// Reading names a value derived from a well-known field of the status bundle.
type Reading string

const (
	KilometersRemaining Reading = "kilometers_remaining"
)

type fieldRef struct {
	Group string
	Field string
}

var readings = map[Reading]fieldRef{
	KilometersRemaining: {Group: "0x030103FFFF", Field: "0x0301030006"},
}

// Group returns the first data group with the given id.
func (s VehicleStatus) Group(id string) (*VehicleDataGroup, error) {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, id)
}

// Field returns the first field with the given id.
func (g VehicleDataGroup) Field(id string) (*VehicleField, error) {
	for i := range g.Fields {
		if g.Fields[i].ID == id {
			return &g.Fields[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s in group %s", ErrFieldNotFound, id, g.ID)
}

// Reading looks up r in the bundle and parses its value as a base-10 integer.
func (s VehicleStatus) Reading(r Reading) (int, error) {
	ref, ok := readings[r]
	if !ok {
		return 0, fmt.Errorf("unknown reading %q", r)
	}

	group, err := s.Group(ref.Group)
	if err != nil {
		return 0, err
	}
	field, err := group.Field(ref.Field)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(field.Value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", r, err)
	}
	return value, nil
}

// Kilometer returns the remaining range in kilometers.
func (s VehicleStatus) Kilometer() (int, error) {
	return s.Reading(KilometersRemaining)
}
