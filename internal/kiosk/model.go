package kiosk

import "strings"

// PatientDetailsRequest is the patient-details form submission.
type PatientDetailsRequest struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Aadhaar string `json:"aadhaar,omitempty"`
	Consent bool   `json:"consent"`
}

// Validate validates the patient details request
func (r *PatientDetailsRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if !validAge(r.Age) {
		return ErrInvalidAge
	}
	switch r.Gender {
	case "male", "female", "other":
	default:
		return ErrInvalidGender
	}
	if r.Aadhaar != "" && !digitsOfLen(r.Aadhaar, 12) {
		return ErrInvalidAadhaar
	}
	if !r.Consent {
		return ErrConsentRequired
	}
	return nil
}

// SymptomsRequest is the symptom-page submission. Severity is optional and
// defaults to moderate.
type SymptomsRequest struct {
	Symptoms []string `json:"symptoms"`
	Duration string   `json:"duration"`
	Severity string   `json:"severity,omitempty"`
}

// Validate validates the symptoms request
func (r *SymptomsRequest) Validate() error {
	if len(r.Symptoms) == 0 {
		return ErrNoSymptoms
	}
	if r.Duration == "" {
		return ErrInvalidDuration
	}
	return nil
}

// BookingRequest is the appointment-page submission. Date is wire-formatted
// YYYY-MM-DD; the confirmation screen renders it long-form. FacilityID is
// optional and, when set, must match the stored selection.
type BookingRequest struct {
	FacilityID string `json:"facility_id,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

func validAge(age string) bool {
	if age == "" || len(age) > 3 {
		return false
	}
	n := 0
	for _, r := range age {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}
	return n <= 120
}

func digitsOfLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
