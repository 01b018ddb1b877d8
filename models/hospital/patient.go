package hospital

import (
	"cmp"
	"fmt"
)

// Condition is the severity code of a Patient
type Condition uint8

const (
	ConditionStable   Condition = 1
	ConditionUnstable Condition = 2
	ConditionCritical Condition = 3
)

func (c Condition) String() string {
	switch c {
	case ConditionStable:
		return "Stable"
	case ConditionUnstable:
		return "Unstable"
	case ConditionCritical:
		return "Critical"
	default:
		return "[invalid condition code]"
	}
}

type Patient struct {
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Age       uint8     `json:"age"`
	Condition Condition `json:"condition"`
}

// NewPatient returns a Patient. The condition is not validated; unknown codes
// only affect how the patient is displayed.
func NewPatient(firstName, lastName string, age uint8, condition Condition) Patient {
	return Patient{
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Condition: condition,
	}
}

func (p Patient) Info() string {
	return fmt.Sprintf("Name: %s, %s - age: %d - condition: %s",
		p.LastName, p.FirstName, p.Age, p.Condition)
}

func (p Patient) Type() string { return "Patient" }

func (p Patient) Code() Code { return CodePatient }

func (p Patient) String() string { return p.Info() }

// Compare orders patients by condition and then by age, both ascending.
// Names take no part in the ordering.
func (p Patient) Compare(other Patient) int {
	if p.Condition == other.Condition {
		return cmp.Compare(p.Age, other.Age)
	}
	return cmp.Compare(p.Condition, other.Condition)
}

// Equal reports whether p and other have the same condition and age. Two
// different people can be Equal.
func (p Patient) Equal(other Patient) bool {
	return p.Condition == other.Condition && p.Age == other.Age
}

// ComparePatients is Patient.Compare in function form.
func ComparePatients(a, b Patient) int {
	return a.Compare(b)
}
