package hospital

import (
	"fmt"
	"strings"
)

// Position is the role code of a HospitalStaff member
type Position uint8

const (
	PositionNurse       Position = 1
	PositionDoctor      Position = 2
	PositionOfficeStaff Position = 3
)

func (p Position) String() string {
	switch p {
	case PositionNurse:
		return "Nurse"
	case PositionDoctor:
		return "Doctor"
	case PositionOfficeStaff:
		return "Office Staff"
	default:
		return "other"
	}
}

type HospitalStaff struct {
	LastName  string   `json:"last_name"`
	FirstName string   `json:"first_name"`
	Age       uint8    `json:"age"`
	Position  Position `json:"position"`
}

func NewHospitalStaff(firstName, lastName string, age uint8, position Position) HospitalStaff {
	return HospitalStaff{
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Position:  position,
	}
}

func (s HospitalStaff) Info() string {
	return fmt.Sprintf("Name: %s, %s - Position: %s - Age: %d",
		s.LastName, s.FirstName, s.Position, s.Age)
}

func (s HospitalStaff) Type() string { return "HospitalStaff" }

func (s HospitalStaff) Code() Code { return CodeStaff }

func (s HospitalStaff) String() string { return s.Info() }

// Compare orders staff by last name and then first name. Names are compared
// byte-wise, so the ordering is case-sensitive ("Zoe" < "adam").
func (s HospitalStaff) Compare(other HospitalStaff) int {
	if s.LastName == other.LastName {
		return strings.Compare(s.FirstName, other.FirstName)
	}
	return strings.Compare(s.LastName, other.LastName)
}

// Equal reports whether s and other share a full name; age and position are
// ignored.
func (s HospitalStaff) Equal(other HospitalStaff) bool {
	return s.LastName == other.LastName && s.FirstName == other.FirstName
}

func CompareStaff(a, b HospitalStaff) int {
	return a.Compare(b)
}
