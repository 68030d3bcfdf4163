package session

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/healthkiosk/platform/internal/booking"
	"github.com/healthkiosk/platform/internal/catalog"
	"github.com/healthkiosk/platform/internal/triage"
)

// Slot names; each maps to one durable key per device.
const (
	slotLanguage    = "language"
	slotSession     = "session"
	slotSymptoms    = "symptoms"
	slotTriage      = "triage"
	slotFacility    = "facility"
	slotAppointment = "appointment"
	slotStep        = "step"
)

var allSlots = []string{
	slotLanguage, slotSession, slotSymptoms,
	slotTriage, slotFacility, slotAppointment, slotStep,
}

// Store is the single mutable record for one kiosk device's run.
// Every setter replaces its slot and writes through to the KV immediately.
// Restore must run before any step reads state.
type Store struct {
	kv       KV
	deviceID string
	state    State
	tracer   trace.Tracer
}

// NewStore creates a store scoped to one kiosk device.
func NewStore(kv KV, deviceID string) *Store {
	if kv == nil {
		panic("session: kv backend cannot be nil")
	}
	return &Store{
		kv:       kv,
		deviceID: deviceID,
		state:    defaultState(),
		tracer:   otel.Tracer("kiosk.internal.session"),
	}
}

func (s *Store) key(slot string) string {
	return fmt.Sprintf("kiosk:%s:%s", s.deviceID, slot)
}

// State returns the current in-memory record.
func (s *Store) State() State {
	return s.state
}

// Restore repopulates the record from durable storage. Missing keys fall
// back to defaults: language hindi, everything else empty.
func (s *Store) Restore(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "session.restore")
	defer span.End()

	s.state = defaultState()

	if err := s.load(ctx, slotLanguage, &s.state.Language); err != nil {
		span.RecordError(err)
		return err
	}
	if !s.state.Language.Valid() {
		s.state.Language = DefaultLanguage
	}
	if err := s.load(ctx, slotSession, &s.state.Session); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.load(ctx, slotSymptoms, &s.state.Symptoms); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.load(ctx, slotTriage, &s.state.Triage); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.load(ctx, slotFacility, &s.state.SelectedFacility); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.load(ctx, slotAppointment, &s.state.Appointment); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.load(ctx, slotStep, &s.state.Step); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *Store) load(ctx context.Context, slot string, dst any) error {
	data, err := s.kv.Get(ctx, s.key(slot))
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A corrupt slot degrades to its default rather than wedging the kiosk.
		return nil
	}
	return nil
}

func (s *Store) save(ctx context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: failed to encode %s: %w", slot, err)
	}
	return s.kv.Set(ctx, s.key(slot), data)
}

// SetLanguage commits the display language.
func (s *Store) SetLanguage(ctx context.Context, lang Language) error {
	if err := s.save(ctx, slotLanguage, lang); err != nil {
		return err
	}
	s.state.Language = lang
	return nil
}

// SetSession stores the patient session, overwriting any previous run's
// session without requiring a reset first.
func (s *Store) SetSession(ctx context.Context, sess *Session) error {
	if err := s.save(ctx, slotSession, sess); err != nil {
		return err
	}
	s.state.Session = sess
	return nil
}

// SetFacility stores the chosen facility snapshot.
func (s *Store) SetFacility(ctx context.Context, f *catalog.Facility) error {
	if err := s.save(ctx, slotFacility, f); err != nil {
		return err
	}
	s.state.SelectedFacility = f
	return nil
}

// SetStep parks the wizard at the given step.
func (s *Store) SetStep(ctx context.Context, step string) error {
	if err := s.save(ctx, slotStep, step); err != nil {
		return err
	}
	s.state.Step = step
	return nil
}

// CommitAnalysis lands the symptom selection, the derived triage outcome and
// the next wizard step as one atomic write. Either all three slots update or
// none does.
func (s *Store) CommitAnalysis(ctx context.Context, sel *SymptomSelection, outcome *triage.Outcome, step string) error {
	ctx, span := s.tracer.Start(ctx, "session.commit_analysis")
	defer span.End()

	entries, err := encodeEntries(map[string]any{
		s.key(slotSymptoms): sel,
		s.key(slotTriage):   outcome,
		s.key(slotStep):     step,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.kv.SetMulti(ctx, entries); err != nil {
		span.RecordError(err)
		return err
	}
	s.state.Symptoms = sel
	s.state.Triage = outcome
	s.state.Step = step
	return nil
}

// CommitBooking lands the appointment and the terminal step atomically.
func (s *Store) CommitBooking(ctx context.Context, appt *booking.Appointment, step string) error {
	ctx, span := s.tracer.Start(ctx, "session.commit_booking")
	defer span.End()

	entries, err := encodeEntries(map[string]any{
		s.key(slotAppointment): appt,
		s.key(slotStep):        step,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.kv.SetMulti(ctx, entries); err != nil {
		span.RecordError(err)
		return err
	}
	s.state.Appointment = appt
	s.state.Step = step
	return nil
}

// Reset clears every durable key for this device and returns the record to
// defaults. This is the only way a run ends.
func (s *Store) Reset(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "session.reset")
	defer span.End()

	keys := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		keys = append(keys, s.key(slot))
	}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		span.RecordError(err)
		return err
	}
	s.state = defaultState()
	return nil
}

func encodeEntries(values map[string]any) (map[string][]byte, error) {
	entries := make(map[string][]byte, len(values))
	for k, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("session: failed to encode %s: %w", k, err)
		}
		entries[k] = data
	}
	return entries, nil
}
