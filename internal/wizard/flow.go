// Package wizard enforces the kiosk's step ordering: language selection
// through booking confirmation. Forward moves are gated per step; an
// invalid advance is withheld, never an error. Backward moves never
// discard entered data.
package wizard

import (
	"context"

	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/pkg/logging"
)

// Step is one screen of the kiosk flow.
type Step string

const (
	StepLanguageSelect Step = "language_select"
	StepLogin          Step = "login"
	StepPatientDetails Step = "patient_details"
	StepSymptoms       Step = "symptoms"
	StepGuidance       Step = "guidance"
	StepFacilities     Step = "facilities"
	StepAppointment    Step = "appointment"
	StepConfirmation   Step = "confirmation"
)

var order = []Step{
	StepLanguageSelect,
	StepLogin,
	StepPatientDetails,
	StepSymptoms,
	StepGuidance,
	StepFacilities,
	StepAppointment,
	StepConfirmation,
}

func indexOf(s Step) int {
	for i, step := range order {
		if step == s {
			return i
		}
	}
	return -1
}

// Terminal reports whether s is the confirmed end state.
func (s Step) Terminal() bool {
	return s == StepConfirmation
}

// ValidMobile requires exactly 10 digits, as the login screen collects.
func ValidMobile(mobile string) bool {
	return allDigits(mobile) && len(mobile) == 10
}

// ValidOTP requires exactly 6 digits. The code itself is never verified;
// this kiosk's login is a mock.
func ValidOTP(otp string) bool {
	return allDigits(otp) && len(otp) == 6
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Controller drives the step machine over the session store. The current
// step is itself a persisted slot, so an idle kiosk stays parked at its
// step across restarts.
type Controller struct {
	store  *session.Store
	logger *logging.Logger
}

// NewController creates a controller over a restored store.
func NewController(store *session.Store, logger *logging.Logger) *Controller {
	if store == nil {
		panic("wizard: store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{store: store, logger: logger}
}

// Current returns the step the kiosk is parked at. A fresh or unknown
// record starts at language selection.
func (c *Controller) Current() Step {
	s := Step(c.store.State().Step)
	if indexOf(s) < 0 {
		return StepLanguageSelect
	}
	return s
}

// AdvanceLanguage commits the chosen language and moves to login. This is
// the one transition with a side effect beyond the step change.
func (c *Controller) AdvanceLanguage(ctx context.Context, lang session.Language) (bool, error) {
	if c.Current() != StepLanguageSelect || !lang.Valid() {
		return false, nil
	}
	if err := c.store.SetLanguage(ctx, lang); err != nil {
		return false, err
	}
	if err := c.store.SetStep(ctx, string(StepLogin)); err != nil {
		return false, err
	}
	c.logger.Info("language selected", "language", lang)
	return true, nil
}

// AdvanceLogin moves past the mock OTP screen when both credentials have
// the right shape. Neither value is persisted.
func (c *Controller) AdvanceLogin(ctx context.Context, mobile, otp string) (bool, error) {
	if c.Current() != StepLogin || !ValidMobile(mobile) || !ValidOTP(otp) {
		return false, nil
	}
	if err := c.store.SetStep(ctx, string(StepPatientDetails)); err != nil {
		return false, err
	}
	return true, nil
}

// Advance moves one step forward when the current step's data is present
// in the store. It returns the step after the call and whether a move
// happened; an unmet predicate withholds the move without error.
//
// The symptoms and appointment steps normally advance through their
// submission commits; Advance still honors them when the store already
// holds their data, so going back and forward again does not force a
// resubmission.
func (c *Controller) Advance(ctx context.Context) (Step, bool, error) {
	cur := c.Current()
	st := c.store.State()

	var next Step
	switch cur {
	case StepPatientDetails:
		if st.Session == nil {
			return cur, false, nil
		}
		next = StepSymptoms
	case StepSymptoms:
		if st.Symptoms == nil || st.Triage == nil {
			return cur, false, nil
		}
		next = StepGuidance
	case StepGuidance:
		next = StepFacilities
	case StepFacilities:
		if st.SelectedFacility == nil {
			return cur, false, nil
		}
		next = StepAppointment
	case StepAppointment:
		if st.Appointment == nil {
			return cur, false, nil
		}
		next = StepConfirmation
	default:
		// language and login carry inputs; confirmation is terminal
		return cur, false, nil
	}

	if err := c.store.SetStep(ctx, string(next)); err != nil {
		return cur, false, err
	}
	return next, true, nil
}

// Back moves one step backward. The initial step has nowhere to go and
// the terminal step only exits through StartNew. Data entered at the
// step being left stays in the store.
func (c *Controller) Back(ctx context.Context) (Step, bool, error) {
	cur := c.Current()
	if cur == StepLanguageSelect || cur.Terminal() {
		return cur, false, nil
	}
	prev := order[indexOf(cur)-1]
	if err := c.store.SetStep(ctx, string(prev)); err != nil {
		return cur, false, err
	}
	return prev, true, nil
}

// StartNew wipes the run and returns to language selection. This is the
// only exit from the confirmation step.
func (c *Controller) StartNew(ctx context.Context) error {
	if err := c.store.Reset(ctx); err != nil {
		return err
	}
	c.logger.Info("consultation reset")
	return nil
}
