package hospital

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Code identifies the kind of an occupant. Occupants of different kinds are
// ordered by their code alone.
type Code uint8

const (
	CodeStaff   Code = 1
	CodePatient Code = 2
)

// Occupant is anything that can be checked in to a Hospital
type Occupant interface {
	// Info returns a human readable, single line description
	Info() string
	// Type returns the kind label, e.g. "Patient"
	Type() string
	Code() Code
}

// CompareOccupants orders occupants by Code only; the fields of the
// underlying records are ignored. Staff sorts before patients.
func CompareOccupants(a, b Occupant) int {
	return cmp.Compare(a.Code(), b.Code())
}

// SortOccupants stably sorts occupants by CompareOccupants, which groups them
// by kind while keeping the relative order within each kind.
func SortOccupants(occupants []Occupant) []Occupant {
	slices.SortStableFunc(occupants, CompareOccupants)
	return occupants
}
