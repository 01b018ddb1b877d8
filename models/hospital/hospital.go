package hospital

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilOccupant is returned when checking in a nil Occupant
var ErrNilOccupant = errors.New("nil occupant")

// Hospital holds a mixed list of patients and staff in check-in order.
// It is not safe for concurrent use.
type Hospital struct {
	Name      string
	Occupants []Occupant
}

// New returns a Hospital that takes ownership of occupants.
func New(name string, occupants []Occupant) *Hospital {
	return &Hospital{
		Name:      name,
		Occupants: occupants,
	}
}

// CheckIn appends o to the occupant list. There is no capacity limit and no
// duplicate check.
func (h *Hospital) CheckIn(o Occupant) error {
	if o == nil {
		return ErrNilOccupant
	}
	h.Occupants = append(h.Occupants, o)
	return nil
}

func (h *Hospital) Len() int {
	return len(h.Occupants)
}

// Sort groups the occupants by kind, see SortOccupants.
func (h *Hospital) Sort() {
	SortOccupants(h.Occupants)
}

// PrintOccupants writes the Info line of every occupant in current order.
func (h *Hospital) PrintOccupants(w io.Writer) error {
	for _, o := range h.Occupants {
		if _, err := fmt.Fprintln(w, o.Info()); err != nil {
			return fmt.Errorf("failed to print occupant: %w", err)
		}
	}
	return nil
}

func (h *Hospital) String() string {
	return fmt.Sprintf("Name: %s, Current Occupants: %d", h.Name, len(h.Occupants))
}

// Occupants builds a mixed occupant list from patients followed by staff.
func Occupants(patients []Patient, staff []HospitalStaff) []Occupant {
	occupants := make([]Occupant, 0, len(patients)+len(staff))
	for _, p := range patients {
		occupants = append(occupants, p)
	}
	for _, s := range staff {
		occupants = append(occupants, s)
	}
	return occupants
}
