// Package session owns the state a patient accumulates during one kiosk
// run and persists it write-through to a key-value backend, so a reboot
// or page reload resumes where the patient left off.
package session

import (
	"time"

	"github.com/healthkiosk/platform/internal/booking"
	"github.com/healthkiosk/platform/internal/catalog"
	"github.com/healthkiosk/platform/internal/triage"
)

// Language is the kiosk display language.
type Language string

const (
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageHindi || l == LanguageEnglish
}

// DefaultLanguage is used until the patient picks one.
const DefaultLanguage = LanguageHindi

// Severity levels for a symptom selection. The kiosk does not ask for
// severity explicitly, so it defaults to moderate.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Session identifies one patient's run through the kiosk.
// Patient fields are set once at patient-details submission.
type Session struct {
	ID            string    `json:"id"`
	Language      Language  `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
	PatientName   string    `json:"patient_name"`
	PatientAge    string    `json:"patient_age"`
	PatientGender string    `json:"patient_gender"`
	Aadhaar       string    `json:"aadhaar,omitempty"`
}

// SymptomSelection is the patient's reported complaint.
type SymptomSelection struct {
	Symptoms []string `json:"symptoms"`
	Duration string   `json:"duration"`
	Severity string   `json:"severity"`
}

// State is the full record one kiosk device accumulates during a run.
// Nil slots have not been reached yet.
type State struct {
	Language         Language             `json:"language"`
	Session          *Session             `json:"session,omitempty"`
	Symptoms         *SymptomSelection    `json:"symptoms,omitempty"`
	Triage           *triage.Outcome      `json:"triage,omitempty"`
	SelectedFacility *catalog.Facility    `json:"selected_facility,omitempty"`
	Appointment      *booking.Appointment `json:"appointment,omitempty"`
	Step             string               `json:"step,omitempty"`
}

func defaultState() State {
	return State{Language: DefaultLanguage}
}
