package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/SanteonNL/occupancy/cmd/hospital/ledger"
	"github.com/SanteonNL/occupancy/cmd/hospital/types"
	"github.com/SanteonNL/occupancy/models/hospital"
	"github.com/SanteonNL/occupancy/util"
)

// OccupantStore persists checked in occupants
type OccupantStore interface {
	SaveOccupant(ctx context.Context, hospitalName string, o hospital.Occupant) (uuid.UUID, error)
}

// CheckInRecorder keeps a history of check-ins
type CheckInRecorder interface {
	Record(hospitalName string, o hospital.Occupant) (ledger.CheckIn, error)
}

type HospitalRouter struct {
	mu       sync.RWMutex
	hospital *hospital.Hospital
	store    OccupantStore   // optional
	ledger   CheckInRecorder // optional
	log      zerolog.Logger
}

// NewHospitalRouter serves h. store and recorder may be nil.
func NewHospitalRouter(h *hospital.Hospital, store OccupantStore, recorder CheckInRecorder, log zerolog.Logger) *HospitalRouter {
	return &HospitalRouter{
		hospital: h,
		store:    store,
		ledger:   recorder,
		log:      log.With().Str("component", "api").Logger(),
	}
}

func (hr *HospitalRouter) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(hr.logRequests)

	r.HandleFunc("/hospital", hr.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/hospital/occupants", hr.handleOccupants).Methods(http.MethodGet)
	r.HandleFunc("/hospital/patients", hr.handlePatients).Methods(http.MethodGet)
	r.HandleFunc("/hospital/patients", hr.handleCheckInPatient).Methods(http.MethodPost)
	r.HandleFunc("/hospital/staff", hr.handleStaff).Methods(http.MethodGet)
	r.HandleFunc("/hospital/staff", hr.handleCheckInStaff).Methods(http.MethodPost)

	return r
}

func (hr *HospitalRouter) handleSummary(w http.ResponseWriter, r *http.Request) {
	hr.mu.RLock()
	summary := types.Summary{
		Name:      hr.hospital.Name,
		Occupants: hr.hospital.Len(),
		Summary:   hr.hospital.String(),
	}
	hr.mu.RUnlock()

	respondWithJSON(w, http.StatusOK, summary)
}

// handleOccupants lists all occupants in check-in order, or grouped by kind
// with ?sort=code.
func (hr *HospitalRouter) handleOccupants(w http.ResponseWriter, r *http.Request) {
	occupants := hr.snapshot()

	switch r.URL.Query().Get("sort") {
	case "":
	case "code":
		hospital.SortOccupants(occupants)
	default:
		respondWithError(w, http.StatusBadRequest, fmt.Errorf("unsupported sort %q", r.URL.Query().Get("sort")))
		return
	}

	respondWithJSON(w, http.StatusOK, views(occupants))
}

// handlePatients lists the patients, optionally ordered by condition and age
// with ?order=asc or ?order=desc.
func (hr *HospitalRouter) handlePatients(w http.ResponseWriter, r *http.Request) {
	var patients []hospital.Patient
	for _, o := range hr.snapshot() {
		if p, ok := o.(hospital.Patient); ok {
			patients = append(patients, p)
		}
	}

	if err := order(r.URL.Query().Get("order"), patients, hospital.ComparePatients); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	respondWithJSON(w, http.StatusOK, views(patients))
}

// handleStaff lists the staff, optionally ordered by name.
func (hr *HospitalRouter) handleStaff(w http.ResponseWriter, r *http.Request) {
	var staff []hospital.HospitalStaff
	for _, o := range hr.snapshot() {
		if s, ok := o.(hospital.HospitalStaff); ok {
			staff = append(staff, s)
		}
	}

	if err := order(r.URL.Query().Get("order"), staff, hospital.CompareStaff); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	respondWithJSON(w, http.StatusOK, views(staff))
}

func (hr *HospitalRouter) handleCheckInPatient(w http.ResponseWriter, r *http.Request) {
	var req types.PatientRequest
	if err := decode(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if req.LastName == "" {
		respondWithError(w, http.StatusBadRequest, errors.New("missing last_name"))
		return
	}

	hr.checkIn(w, r, hospital.NewPatient(req.FirstName, req.LastName, req.Age, hospital.Condition(req.Condition)))
}

func (hr *HospitalRouter) handleCheckInStaff(w http.ResponseWriter, r *http.Request) {
	var req types.StaffRequest
	if err := decode(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}
	if req.LastName == "" {
		respondWithError(w, http.StatusBadRequest, errors.New("missing last_name"))
		return
	}

	hr.checkIn(w, r, hospital.NewHospitalStaff(req.FirstName, req.LastName, req.Age, hospital.Position(req.Position)))
}

func (hr *HospitalRouter) checkIn(w http.ResponseWriter, r *http.Request, o hospital.Occupant) {
	hr.mu.Lock()
	defer hr.mu.Unlock()

	if hr.store != nil {
		if _, err := hr.store.SaveOccupant(r.Context(), hr.hospital.Name, o); err != nil {
			hr.log.Error().Err(err).Msg("Failed to save occupant")
			respondWithError(w, http.StatusInternalServerError, errors.New("failed to save occupant"))
			return
		}
	}

	if err := hr.hospital.CheckIn(o); err != nil {
		respondWithError(w, http.StatusBadRequest, err)
		return
	}

	// The occupant is checked in at this point, a ledger failure is only logged.
	if hr.ledger != nil {
		if _, err := hr.ledger.Record(hr.hospital.Name, o); err != nil {
			hr.log.Error().Err(err).Msg("Failed to record check-in")
		}
	}

	hr.log.Info().
		Str("type", o.Type()).
		Int("occupants", hr.hospital.Len()).
		Msg("Checked in occupant")

	respondWithJSON(w, http.StatusCreated, types.NewOccupantView(o))
}

// snapshot copies the occupant list so it can be sorted outside the lock
func (hr *HospitalRouter) snapshot() []hospital.Occupant {
	hr.mu.RLock()
	defer hr.mu.RUnlock()
	return append([]hospital.Occupant(nil), hr.hospital.Occupants...)
}

func (hr *HospitalRouter) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		hr.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// Helper functions

func order[T any](direction string, s []T, compare func(a, b T) int) error {
	switch direction {
	case "":
	case "asc":
		util.SortAscFunc(s, compare)
	case "desc":
		util.SortDescFunc(s, compare)
	default:
		return fmt.Errorf("unsupported order %q", direction)
	}
	return nil
}

func views[T hospital.Occupant](s []T) []types.OccupantView {
	out := make([]types.OccupantView, 0, len(s))
	for _, o := range s {
		out = append(out, types.NewOccupantView(o))
	}
	return out
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func respondWithError(w http.ResponseWriter, status int, err error) {
	respondWithJSON(w, status, types.ErrorResponse{Error: err.Error()})
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
