package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/occupancy/cmd/hospital/ledger"
	"github.com/SanteonNL/occupancy/cmd/hospital/types"
	"github.com/SanteonNL/occupancy/models/hospital"
)

type fakeStore struct {
	saved []hospital.Occupant
	err   error
}

func (s *fakeStore) SaveOccupant(_ context.Context, _ string, o hospital.Occupant) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.saved = append(s.saved, o)
	return uuid.New(), nil
}

type fakeLedger struct {
	entries []ledger.CheckIn
	err     error
}

func (l *fakeLedger) Record(name string, o hospital.Occupant) (ledger.CheckIn, error) {
	if l.err != nil {
		return ledger.CheckIn{}, l.err
	}
	entry := ledger.NewCheckIn(name, o)
	l.entries = append(l.entries, entry)
	return entry, nil
}

func saintAnna() *hospital.Hospital {
	patients := []hospital.Patient{
		hospital.NewPatient("May", "Susie", 54, hospital.ConditionUnstable),
		hospital.NewPatient("Porsche", "Megan", 22, hospital.ConditionStable),
		hospital.NewPatient("Mars", "Tommy", 65, hospital.ConditionCritical),
	}
	staff := []hospital.HospitalStaff{
		hospital.NewHospitalStaff("Jackie", "Robinson", 28, hospital.PositionNurse),
		hospital.NewHospitalStaff("House", "McCabin", 45, hospital.PositionDoctor),
		hospital.NewHospitalStaff("Martha", "Stewart", 40, hospital.PositionOfficeStaff),
		hospital.NewHospitalStaff("Morgan", "Williams", 30, hospital.PositionDoctor),
	}
	return hospital.New("Saint Anna", hospital.Occupants(patients, staff))
}

func serve(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestSummaryAfterCheckIn(t *testing.T) {
	store, book := &fakeStore{}, &fakeLedger{}
	handler := NewHospitalRouter(saintAnna(), store, book, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodGet, "/hospital", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Name: Saint Anna, Current Occupants: 7", decodeBody[types.Summary](t, w).Summary)

	w = serve(t, handler, http.MethodPost, "/hospital/patients",
		`{"last_name":"Dennis","first_name":"Maria","age":27,"condition":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[types.OccupantView](t, w)
	assert.Equal(t, "Name: Dennis, Maria - age: 27 - condition: Stable", created.Info)
	require.NotNil(t, created.Condition)
	assert.Nil(t, created.Position)

	w = serve(t, handler, http.MethodGet, "/hospital", "")
	summary := decodeBody[types.Summary](t, w)
	assert.Equal(t, 8, summary.Occupants)
	assert.Equal(t, "Name: Saint Anna, Current Occupants: 8", summary.Summary)

	assert.Len(t, store.saved, 1)
	require.Len(t, book.entries, 1)
	assert.Equal(t, "Patient", book.entries[0].OccupantType)
}

func TestCheckInStaff(t *testing.T) {
	handler := NewHospitalRouter(hospital.New("Empty", nil), nil, nil, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodPost, "/hospital/staff",
		`{"last_name":"Grey","first_name":"Meredith","age":35,"position":7}`)
	require.Equal(t, http.StatusCreated, w.Code)
	view := decodeBody[types.OccupantView](t, w)
	assert.Equal(t, "Name: Grey, Meredith - Position: other - Age: 35", view.Info)
	assert.Equal(t, uint8(hospital.CodeStaff), view.Code)
}

func TestCheckInBadRequests(t *testing.T) {
	handler := NewHospitalRouter(saintAnna(), nil, nil, zerolog.Nop()).SetupRoutes()

	for name, body := range map[string]string{
		"not json":      `{`,
		"age overflow":  `{"last_name":"A","age":300}`,
		"unknown field": `{"last_name":"A","ward":"B"}`,
		"missing name":  `{"first_name":"A"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := serve(t, handler, http.MethodPost, "/hospital/patients", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeBody[types.ErrorResponse](t, w).Error)
		})
	}

	w := serve(t, handler, http.MethodGet, "/hospital", "")
	assert.Equal(t, 7, decodeBody[types.Summary](t, w).Occupants)
}

func TestCheckInStoreFailure(t *testing.T) {
	h := saintAnna()
	handler := NewHospitalRouter(h, &fakeStore{err: errors.New("db down")}, nil, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodPost, "/hospital/staff", `{"last_name":"A","position":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 7, h.Len())
}

func TestCheckInLedgerFailureStillChecksIn(t *testing.T) {
	h := saintAnna()
	handler := NewHospitalRouter(h, nil, &fakeLedger{err: errors.New("db down")}, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodPost, "/hospital/staff", `{"last_name":"A","position":1}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 8, h.Len())
}

func TestOccupantsSortedByCode(t *testing.T) {
	h := saintAnna()
	handler := NewHospitalRouter(h, nil, nil, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodGet, "/hospital/occupants", "")
	require.Equal(t, http.StatusOK, w.Code)
	unsorted := decodeBody[[]types.OccupantView](t, w)
	require.Len(t, unsorted, 7)
	assert.Equal(t, "Patient", unsorted[0].Type)

	w = serve(t, handler, http.MethodGet, "/hospital/occupants?sort=code", "")
	sorted := decodeBody[[]types.OccupantView](t, w)
	require.Len(t, sorted, 7)
	for i, v := range sorted {
		if i < 4 {
			assert.Equal(t, "HospitalStaff", v.Type)
		} else {
			assert.Equal(t, "Patient", v.Type)
		}
	}
	assert.Equal(t, "Robinson", sorted[0].LastName)

	// Sorting a response leaves the hospital itself untouched.
	assert.Equal(t, "Patient", h.Occupants[0].Type())

	w = serve(t, handler, http.MethodGet, "/hospital/occupants?sort=age", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatientsAndStaffOrder(t *testing.T) {
	handler := NewHospitalRouter(saintAnna(), nil, nil, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodGet, "/hospital/patients?order=desc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	for _, v := range decodeBody[[]types.OccupantView](t, w) {
		names = append(names, v.LastName)
	}
	assert.Equal(t, []string{"Tommy", "Susie", "Megan"}, names)

	w = serve(t, handler, http.MethodGet, "/hospital/staff?order=asc", "")
	require.Equal(t, http.StatusOK, w.Code)
	names = nil
	for _, v := range decodeBody[[]types.OccupantView](t, w) {
		names = append(names, v.LastName)
	}
	assert.Equal(t, []string{"McCabin", "Robinson", "Stewart", "Williams"}, names)

	w = serve(t, handler, http.MethodGet, "/hospital/staff?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	handler := NewHospitalRouter(saintAnna(), nil, nil, zerolog.Nop()).SetupRoutes()

	w := serve(t, handler, http.MethodDelete, "/hospital/patients", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
