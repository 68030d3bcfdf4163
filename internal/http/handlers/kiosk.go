package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/healthkiosk/platform/internal/booking"
	"github.com/healthkiosk/platform/internal/catalog"
	"github.com/healthkiosk/platform/internal/kiosk"
	"github.com/healthkiosk/platform/internal/observability/metrics"
	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/internal/triage"
	"github.com/healthkiosk/platform/internal/wizard"
	"github.com/healthkiosk/platform/pkg/logging"
)

// KioskHandler exposes the consultation flow over HTTP. Every route is
// scoped to a device id; the handler rebuilds that device's service from
// the KV on each request, so the HTTP layer itself stays stateless.
type KioskHandler struct {
	kv        session.KV
	finalizer *booking.Finalizer
	metrics   *metrics.KioskMetrics
	logger    *logging.Logger

	analysisDelay time.Duration
	bookingDelay  time.Duration
}

// NewKioskHandler creates a new kiosk handler. Metrics may be nil.
func NewKioskHandler(kv session.KV, fin *booking.Finalizer, m *metrics.KioskMetrics, logger *logging.Logger, analysisDelay, bookingDelay time.Duration) *KioskHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &KioskHandler{
		kv:            kv,
		finalizer:     fin,
		metrics:       m,
		logger:        logger,
		analysisDelay: analysisDelay,
		bookingDelay:  bookingDelay,
	}
}

func (h *KioskHandler) service(r *http.Request) (*kiosk.Service, error) {
	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		return nil, errors.New("missing device id")
	}
	store := session.NewStore(h.kv, deviceID)
	if err := store.Restore(r.Context()); err != nil {
		return nil, err
	}
	return kiosk.NewService(store, h.finalizer, h.metrics, h.logger, h.analysisDelay, h.bookingDelay), nil
}

// HealthCheck handles GET /health requests
func (h *KioskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StateResponse is the full device record returned by GET state.
type StateResponse struct {
	Language    session.Language          `json:"language"`
	Step        wizard.Step               `json:"step"`
	Session     *session.Session          `json:"session,omitempty"`
	Symptoms    *session.SymptomSelection `json:"symptoms,omitempty"`
	Triage      *triage.Outcome           `json:"triage,omitempty"`
	Facility    *catalog.Facility         `json:"facility,omitempty"`
	Appointment *booking.Appointment      `json:"appointment,omitempty"`
}

// GetState handles GET /kiosk/{deviceID}/state requests
func (h *KioskHandler) GetState(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// SelectLanguage handles POST /kiosk/{deviceID}/language requests
func (h *KioskHandler) SelectLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language string `json:"language"`
	}
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := svc.SelectLanguage(r.Context(), req.Language); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// Login handles POST /kiosk/{deviceID}/login requests
func (h *KioskHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mobile string `json:"mobile"`
		OTP    string `json:"otp"`
	}
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := svc.Login(r.Context(), req.Mobile, req.OTP); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// SubmitPatientDetails handles POST /kiosk/{deviceID}/patient-details requests
func (h *KioskHandler) SubmitPatientDetails(w http.ResponseWriter, r *http.Request) {
	var req kiosk.PatientDetailsRequest
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	sess, err := svc.SubmitPatientDetails(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// SubmitSymptoms handles POST /kiosk/{deviceID}/symptoms requests
func (h *KioskHandler) SubmitSymptoms(w http.ResponseWriter, r *http.Request) {
	var req kiosk.SymptomsRequest
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	outcome, err := svc.SubmitSymptoms(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// GetGuidance handles GET /kiosk/{deviceID}/guidance requests
func (h *KioskHandler) GetGuidance(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	outcome, err := svc.Guidance()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// FacilitiesResponse is the response for listing facilities
type FacilitiesResponse struct {
	Facilities []catalog.Facility `json:"facilities"`
	Count      int                `json:"count"`
}

// ListFacilities handles GET /kiosk/{deviceID}/facilities requests
func (h *KioskHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	list := svc.ListFacilities(r.URL.Query().Get("department"))
	writeJSON(w, http.StatusOK, FacilitiesResponse{Facilities: list, Count: len(list)})
}

// SelectFacility handles POST /kiosk/{deviceID}/facility requests
func (h *KioskHandler) SelectFacility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FacilityID string `json:"facility_id"`
	}
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	fac, err := svc.SelectFacility(r.Context(), req.FacilityID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fac)
}

// BookAppointment handles POST /kiosk/{deviceID}/appointment requests
func (h *KioskHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req kiosk.BookingRequest
	if !decode(w, r, &req) {
		return
	}
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	appt, err := svc.BookAppointment(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// Back handles POST /kiosk/{deviceID}/back requests
func (h *KioskHandler) Back(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if _, _, err := svc.Back(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// Advance handles POST /kiosk/{deviceID}/next requests
func (h *KioskHandler) Advance(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if _, _, err := svc.Advance(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// Reset handles POST /kiosk/{deviceID}/reset requests
func (h *KioskHandler) Reset(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := svc.StartNewConsultation(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondState(w, svc)
}

// CatalogResponse bundles the static reference data the screens render.
type CatalogResponse struct {
	Symptoms  []catalog.Symptom  `json:"symptoms"`
	Durations []catalog.Duration `json:"durations"`
	TimeSlots []string           `json:"time_slots"`
}

// GetCatalog handles GET /catalog requests
func (h *KioskHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Symptoms:  catalog.Symptoms(),
		Durations: catalog.Durations(),
		TimeSlots: catalog.TimeSlots(),
	})
}

func (h *KioskHandler) respondState(w http.ResponseWriter, svc *kiosk.Service) {
	st, step := svc.State()
	writeJSON(w, http.StatusOK, StateResponse{
		Language:    st.Language,
		Step:        step,
		Session:     st.Session,
		Symptoms:    st.Symptoms,
		Triage:      st.Triage,
		Facility:    st.SelectedFacility,
		Appointment: st.Appointment,
	})
}

func (h *KioskHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, kiosk.ErrOutOfOrder),
		errors.Is(err, kiosk.ErrNoActiveSession),
		errors.Is(err, booking.ErrInvalidBookingState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("kiosk request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		kiosk.ErrInvalidLanguage,
		kiosk.ErrInvalidMobile,
		kiosk.ErrInvalidOTP,
		kiosk.ErrInvalidName,
		kiosk.ErrInvalidAge,
		kiosk.ErrInvalidGender,
		kiosk.ErrConsentRequired,
		kiosk.ErrInvalidAadhaar,
		kiosk.ErrNoSymptoms,
		kiosk.ErrInvalidDuration,
		kiosk.ErrUnknownFacility,
		kiosk.ErrInvalidDate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
