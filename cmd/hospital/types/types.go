package types

import "github.com/SanteonNL/occupancy/models/hospital"

// Summary is the response of GET /hospital
type Summary struct {
	Name      string `json:"name"`
	Occupants int    `json:"occupants"`
	Summary   string `json:"summary"` // e.g. "Name: Saint Anna, Current Occupants: 8"
}

// OccupantView is the JSON form of a Patient or HospitalStaff. Exactly one of
// Condition and Position is set.
type OccupantView struct {
	Type      string `json:"type"`
	Code      uint8  `json:"code"`
	Info      string `json:"info"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       uint8  `json:"age"`
	Condition *uint8 `json:"condition,omitempty"`
	Position  *uint8 `json:"position,omitempty"`
}

type PatientRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       uint8  `json:"age"`
	Condition uint8  `json:"condition"`
}

type StaffRequest struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Age       uint8  `json:"age"`
	Position  uint8  `json:"position"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewOccupantView(o hospital.Occupant) OccupantView {
	v := OccupantView{
		Type: o.Type(),
		Code: uint8(o.Code()),
		Info: o.Info(),
	}

	switch occ := o.(type) {
	case hospital.Patient:
		condition := uint8(occ.Condition)
		v.LastName, v.FirstName, v.Age, v.Condition = occ.LastName, occ.FirstName, occ.Age, &condition
	case hospital.HospitalStaff:
		position := uint8(occ.Position)
		v.LastName, v.FirstName, v.Age, v.Position = occ.LastName, occ.FirstName, occ.Age, &position
	}
	return v
}

// Occupant converts the view back into a Patient or HospitalStaff. It returns
// false for unknown codes.
func (v OccupantView) Occupant() (hospital.Occupant, bool) {
	switch hospital.Code(v.Code) {
	case hospital.CodePatient:
		var condition uint8
		if v.Condition != nil {
			condition = *v.Condition
		}
		return hospital.NewPatient(v.FirstName, v.LastName, v.Age, hospital.Condition(condition)), true
	case hospital.CodeStaff:
		var position uint8
		if v.Position != nil {
			position = *v.Position
		}
		return hospital.NewHospitalStaff(v.FirstName, v.LastName, v.Age, hospital.Position(position)), true
	default:
		return nil, false
	}
}
