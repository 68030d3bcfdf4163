package kiosk

import "errors"

var (
	// ErrInvalidLanguage is returned when the language is not hindi or english
	ErrInvalidLanguage = errors.New("language must be hindi or english")

	// ErrInvalidMobile is returned when the mobile number is not 10 digits
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")

	// ErrInvalidOTP is returned when the OTP is not 6 digits
	ErrInvalidOTP = errors.New("otp must be exactly 6 digits")

	// ErrInvalidName is returned when the patient name is empty
	ErrInvalidName = errors.New("patient name is required")

	// ErrInvalidAge is returned when the age is not a number between 0 and 120
	ErrInvalidAge = errors.New("age must be a number between 0 and 120")

	// ErrInvalidGender is returned when the gender is not a supported value
	ErrInvalidGender = errors.New("gender must be male, female or other")

	// ErrConsentRequired is returned when the patient has not given consent
	ErrConsentRequired = errors.New("consent is required to continue")

	// ErrInvalidAadhaar is returned when a provided aadhaar is not 12 digits
	ErrInvalidAadhaar = errors.New("aadhaar must be exactly 12 digits")

	// ErrNoSymptoms is returned when the selection has no symptoms
	ErrNoSymptoms = errors.New("at least one symptom is required")

	// ErrInvalidDuration is returned when the duration is missing or not in
	// the catalog
	ErrInvalidDuration = errors.New("a valid symptom duration is required")

	// ErrUnknownFacility is returned when the facility id is not in the catalog
	ErrUnknownFacility = errors.New("unknown facility")

	// ErrInvalidDate is returned when an appointment date cannot be parsed
	ErrInvalidDate = errors.New("appointment date must be formatted YYYY-MM-DD")

	// ErrNoActiveSession is returned when booking is attempted without a session
	ErrNoActiveSession = errors.New("no active patient session")

	// ErrOutOfOrder is returned when an operation is not available at the
	// kiosk's current step
	ErrOutOfOrder = errors.New("operation not available at the current step")
)
