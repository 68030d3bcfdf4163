// Package kiosk is the application service behind the kiosk's screens.
// It drives the wizard controller, runs the simulated analysis and
// booking delays, and commits each step's data through the session store.
package kiosk

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthkiosk/platform/internal/booking"
	"github.com/healthkiosk/platform/internal/catalog"
	"github.com/healthkiosk/platform/internal/observability/metrics"
	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/internal/triage"
	"github.com/healthkiosk/platform/internal/wizard"
	"github.com/healthkiosk/platform/pkg/logging"
)

// wireDateFormat is how appointment dates arrive from the client.
const wireDateFormat = "2006-01-02"

// Service handles one device's consultation flow. Construct it per request
// over a restored store; it carries no cross-request state of its own.
type Service struct {
	store     *session.Store
	flow      *wizard.Controller
	finalizer *booking.Finalizer
	metrics   *metrics.KioskMetrics
	logger    *logging.Logger

	analysisDelay time.Duration
	bookingDelay  time.Duration
	now           func() time.Time
}

// NewService creates a kiosk service over a restored session store.
// Metrics may be nil.
func NewService(store *session.Store, fin *booking.Finalizer, m *metrics.KioskMetrics, logger *logging.Logger, analysisDelay, bookingDelay time.Duration) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:         store,
		flow:          wizard.NewController(store, logger),
		finalizer:     fin,
		metrics:       m,
		logger:        logger,
		analysisDelay: analysisDelay,
		bookingDelay:  bookingDelay,
		now:           time.Now,
	}
}

// State returns the device's full record plus its current step.
func (s *Service) State() (session.State, wizard.Step) {
	return s.store.State(), s.flow.Current()
}

// SelectLanguage commits the display language and moves to login.
func (s *Service) SelectLanguage(ctx context.Context, lang string) error {
	l := session.Language(lang)
	if !l.Valid() {
		return ErrInvalidLanguage
	}
	ok, err := s.flow.AdvanceLanguage(ctx, l)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutOfOrder
	}
	return nil
}

// Login passes the mock OTP screen. Both values are shape-checked only and
// never persisted.
func (s *Service) Login(ctx context.Context, mobile, otp string) error {
	if !wizard.ValidMobile(mobile) {
		return ErrInvalidMobile
	}
	if !wizard.ValidOTP(otp) {
		return ErrInvalidOTP
	}
	ok, err := s.flow.AdvanceLogin(ctx, mobile, otp)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOutOfOrder
	}
	return nil
}

// SubmitPatientDetails creates the patient session and moves to symptoms.
// A resubmission replaces the previous session outright.
func (s *Service) SubmitPatientDetails(ctx context.Context, req PatientDetailsRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.flow.Current() != wizard.StepPatientDetails {
		return nil, ErrOutOfOrder
	}

	sess := &session.Session{
		ID:            "sess-" + uuid.NewString(),
		Language:      s.store.State().Language,
		CreatedAt:     s.now().UTC(),
		PatientName:   strings.TrimSpace(req.Name),
		PatientAge:    req.Age,
		PatientGender: req.Gender,
		Aadhaar:       req.Aadhaar,
	}
	if err := s.store.SetSession(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.SetStep(ctx, string(wizard.StepSymptoms)); err != nil {
		return nil, err
	}
	s.metrics.ObserveSessionStarted()
	s.logger.Info("patient session started", "session_id", sess.ID)
	return sess, nil
}

// SubmitSymptoms runs the simulated analysis and commits the selection, its
// triage outcome and the guidance step as one atomic write. Nothing is
// persisted when ctx is cancelled during the delay.
func (s *Service) SubmitSymptoms(ctx context.Context, req SymptomsRequest) (*triage.Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := catalog.DurationByID(req.Duration); !ok {
		return nil, ErrInvalidDuration
	}
	if s.flow.Current() != wizard.StepSymptoms {
		return nil, ErrOutOfOrder
	}

	started := s.now()
	if err := s.sleep(ctx, s.analysisDelay); err != nil {
		return nil, err
	}

	sel := &session.SymptomSelection{
		Symptoms: req.Symptoms,
		Duration: req.Duration,
		Severity: req.Severity,
	}
	if sel.Severity == "" {
		sel.Severity = session.SeverityModerate
	}
	outcome := triage.Resolve(sel.Symptoms)
	if err := s.store.CommitAnalysis(ctx, sel, &outcome, string(wizard.StepGuidance)); err != nil {
		return nil, err
	}
	s.metrics.ObserveTriage(outcome.RecommendedDepartment)
	s.metrics.ObserveAnalysisLatency(s.now().Sub(started).Seconds())
	s.logger.Info("symptoms analyzed",
		"symptoms", len(sel.Symptoms),
		"department", outcome.RecommendedDepartment)
	return &outcome, nil
}

// Guidance returns the committed triage outcome.
func (s *Service) Guidance() (*triage.Outcome, error) {
	st := s.store.State()
	if st.Triage == nil {
		return nil, ErrOutOfOrder
	}
	return st.Triage, nil
}

// ListFacilities returns facilities offering the given department, or all
// facilities when department is empty. The department may be the bilingual
// label; matching uses its English half.
func (s *Service) ListFacilities(department string) []catalog.Facility {
	want := englishHalf(department)
	if want == "" {
		return catalog.Facilities()
	}
	var out []catalog.Facility
	for _, f := range catalog.Facilities() {
		for _, spec := range f.Specialties {
			if strings.EqualFold(spec, want) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// SelectFacility stores the chosen facility snapshot and moves to the
// appointment step.
func (s *Service) SelectFacility(ctx context.Context, facilityID string) (*catalog.Facility, error) {
	fac, ok := catalog.FacilityByID(facilityID)
	if !ok {
		return nil, ErrUnknownFacility
	}
	if s.flow.Current() != wizard.StepFacilities {
		return nil, ErrOutOfOrder
	}
	if err := s.store.SetFacility(ctx, &fac); err != nil {
		return nil, err
	}
	if err := s.store.SetStep(ctx, string(wizard.StepAppointment)); err != nil {
		return nil, err
	}
	return &fac, nil
}

// BookAppointment runs the simulated booking delay and commits the
// appointment and the terminal step atomically. The active session and the
// selected facility are re-checked here so a wiped session cannot produce a
// confirmation.
func (s *Service) BookAppointment(ctx context.Context, req BookingRequest) (*booking.Appointment, error) {
	st := s.store.State()
	if st.Session == nil {
		return nil, ErrNoActiveSession
	}
	if st.SelectedFacility == nil {
		return nil, booking.ErrInvalidBookingState
	}
	if req.FacilityID != "" && req.FacilityID != st.SelectedFacility.ID {
		return nil, booking.ErrInvalidBookingState
	}
	if s.flow.Current() != wizard.StepAppointment {
		return nil, ErrOutOfOrder
	}
	date, err := time.ParseInLocation(wireDateFormat, req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := s.sleep(ctx, s.bookingDelay); err != nil {
		return nil, err
	}

	appt, err := s.finalizer.Book(st.SelectedFacility, date, req.Time)
	if err != nil {
		return nil, err
	}
	if err := s.store.CommitBooking(ctx, appt, string(wizard.StepConfirmation)); err != nil {
		return nil, err
	}
	s.metrics.ObserveBooking(appt.Facility.ID)
	s.logger.Info("appointment booked",
		"reference_id", appt.ReferenceID,
		"facility_id", appt.Facility.ID,
		"date", appt.Date,
		"time", appt.Time)
	return appt, nil
}

// Back moves one step backward without discarding entered data.
func (s *Service) Back(ctx context.Context) (wizard.Step, bool, error) {
	return s.flow.Back(ctx)
}

// Advance moves one step forward when the store already holds the current
// step's data.
func (s *Service) Advance(ctx context.Context) (wizard.Step, bool, error) {
	return s.flow.Advance(ctx)
}

// StartNewConsultation wipes the device's run and returns to language
// selection.
func (s *Service) StartNewConsultation(ctx context.Context) error {
	if err := s.flow.StartNew(ctx); err != nil {
		return err
	}
	s.metrics.ObserveReset()
	return nil
}

func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func englishHalf(label string) string {
	label = strings.TrimSpace(label)
	if i := strings.Index(label, " / "); i >= 0 {
		return label[:i]
	}
	return label
}
