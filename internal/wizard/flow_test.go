package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthkiosk/platform/internal/catalog"
	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/internal/triage"
)

func newController(t *testing.T) (*Controller, *session.Store) {
	t.Helper()
	store := session.NewStore(session.NewMemoryKV(), "kiosk-test")
	require.NoError(t, store.Restore(context.Background()))
	return NewController(store, nil), store
}

func TestValidMobile(t *testing.T) {
	assert.True(t, ValidMobile("9876543210"))
	assert.False(t, ValidMobile("987654321"))   // 9 digits
	assert.False(t, ValidMobile("98765432100")) // 11 digits
	assert.False(t, ValidMobile("98765x3210"))
	assert.False(t, ValidMobile(""))
}

func TestValidOTP(t *testing.T) {
	assert.True(t, ValidOTP("123456"))
	assert.False(t, ValidOTP("12345"))
	assert.False(t, ValidOTP("1234567"))
	assert.False(t, ValidOTP("12345a"))
}

func TestFreshControllerStartsAtLanguageSelect(t *testing.T) {
	c, _ := newController(t)
	assert.Equal(t, StepLanguageSelect, c.Current())
}

func TestAdvanceLanguageCommitsLanguage(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)

	ok, err := c.AdvanceLanguage(ctx, "klingon")
	require.NoError(t, err)
	assert.False(t, ok, "invalid language must be withheld")
	assert.Equal(t, StepLanguageSelect, c.Current())

	ok, err = c.AdvanceLanguage(ctx, session.LanguageHindi)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepLogin, c.Current())
	assert.Equal(t, session.LanguageHindi, store.State().Language)
}

func TestAdvanceLoginGating(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t)
	_, err := c.AdvanceLanguage(ctx, session.LanguageEnglish)
	require.NoError(t, err)

	ok, err := c.AdvanceLogin(ctx, "98765", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StepLogin, c.Current())

	ok, err = c.AdvanceLogin(ctx, "9876543210", "12345")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.AdvanceLogin(ctx, "9876543210", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepPatientDetails, c.Current())
}

func TestAdvanceWithheldWithoutSession(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)
	_, err := c.AdvanceLanguage(ctx, session.LanguageHindi)
	require.NoError(t, err)
	_, err = c.AdvanceLogin(ctx, "9876543210", "123456")
	require.NoError(t, err)

	// no patient details submitted: advance is a no-op
	step, ok, err := c.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StepPatientDetails, step)

	require.NoError(t, store.SetSession(ctx, &session.Session{ID: "sess-1", PatientName: "Ravi"}))
	step, ok, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepSymptoms, step)
}

func advanceToSymptoms(t *testing.T, ctx context.Context, c *Controller, store *session.Store) {
	t.Helper()
	_, err := c.AdvanceLanguage(ctx, session.LanguageHindi)
	require.NoError(t, err)
	_, err = c.AdvanceLogin(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.NoError(t, store.SetSession(ctx, &session.Session{ID: "sess-1", PatientName: "Ravi"}))
	_, ok, err := c.Advance(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBackKeepsEnteredData(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)
	advanceToSymptoms(t, ctx, c, store)

	sel := &session.SymptomSelection{Symptoms: []string{"fever"}, Duration: "3-5", Severity: session.SeverityModerate}
	outcome := triage.Resolve(sel.Symptoms)
	require.NoError(t, store.CommitAnalysis(ctx, sel, &outcome, string(StepGuidance)))
	assert.Equal(t, StepGuidance, c.Current())

	// back to symptoms: the selection is still there
	step, ok, err := c.Back(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepSymptoms, step)
	require.NotNil(t, store.State().Symptoms)
	assert.Equal(t, []string{"fever"}, store.State().Symptoms.Symptoms)
	assert.Equal(t, "3-5", store.State().Symptoms.Duration)

	// forward again without resubmitting
	step, ok, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepGuidance, step)
}

func TestBackFromInitialAndTerminal(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)

	_, ok, err := c.Back(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "initial step has nowhere to go back to")

	require.NoError(t, store.SetStep(ctx, string(StepConfirmation)))
	_, ok, err = c.Back(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "terminal step only exits through StartNew")
}

func TestFacilityAndBookingGates(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)
	advanceToSymptoms(t, ctx, c, store)

	sel := &session.SymptomSelection{Symptoms: []string{"fever"}, Duration: "1-2", Severity: session.SeverityModerate}
	outcome := triage.Resolve(sel.Symptoms)
	require.NoError(t, store.CommitAnalysis(ctx, sel, &outcome, string(StepGuidance)))

	// guidance always advances
	step, ok, err := c.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepFacilities, step)

	// no facility chosen yet
	_, ok, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	fac, _ := catalog.FacilityByID("fac-002")
	require.NoError(t, store.SetFacility(ctx, &fac))
	step, ok, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepAppointment, step)

	// no appointment booked yet
	_, ok, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStartNewReturnsToLanguageSelect(t *testing.T) {
	ctx := context.Background()
	c, store := newController(t)
	advanceToSymptoms(t, ctx, c, store)

	require.NoError(t, c.StartNew(ctx))
	assert.Equal(t, StepLanguageSelect, c.Current())
	st := store.State()
	assert.Nil(t, st.Session)
	assert.Nil(t, st.Symptoms)
	assert.Equal(t, session.LanguageHindi, st.Language)
}
