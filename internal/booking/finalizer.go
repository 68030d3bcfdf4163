// Package booking turns a facility/date/time choice into a confirmed
// appointment record with a unique, human-presentable reference ID.
package booking

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthkiosk/platform/internal/catalog"
)

// ErrInvalidBookingState is returned when booking is attempted without a
// facility selection or with an out-of-window date or unknown time slot.
// It is always raised before any side effect.
var ErrInvalidBookingState = errors.New("invalid booking state")

// DateFormat is how confirmed appointment dates are rendered.
const DateFormat = "02 January 2006"

// Appointment is a finalized booking. Facility is a snapshot copy, not a
// reference: later catalog edits never alter a historical booking.
type Appointment struct {
	ID          string           `json:"id"`
	ReferenceID string           `json:"reference_id"`
	Facility    catalog.Facility `json:"facility"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	BookedAt    time.Time        `json:"booked_at"`
}

// Finalizer validates booking invariants and mints appointment records.
type Finalizer struct {
	windowDays int
	now        func() time.Time
}

// NewFinalizer creates a finalizer that accepts dates from today through
// today+windowDays inclusive.
func NewFinalizer(windowDays int) *Finalizer {
	if windowDays <= 0 {
		windowDays = 30
	}
	return &Finalizer{windowDays: windowDays, now: time.Now}
}

// Book validates the inputs and returns the appointment. No side effects
// happen before validation passes; persisting the result is the caller's
// concern.
func (f *Finalizer) Book(facility *catalog.Facility, date time.Time, slot string) (*Appointment, error) {
	if facility == nil || facility.ID == "" {
		return nil, fmt.Errorf("%w: no facility selected", ErrInvalidBookingState)
	}
	now := f.now()
	if !f.dateInWindow(date, now) {
		return nil, fmt.Errorf("%w: date %s outside booking window", ErrInvalidBookingState, date.Format("2006-01-02"))
	}
	if !catalog.ValidTimeSlot(slot) {
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrInvalidBookingState, slot)
	}

	return &Appointment{
		ID:          "apt-" + uuid.NewString(),
		ReferenceID: NewReferenceID(now),
		Facility:    facility.Clone(),
		Date:        date.Format(DateFormat),
		Time:        slot,
		BookedAt:    now,
	}, nil
}

// dateInWindow checks today <= date <= today+windowDays by calendar day.
func (f *Finalizer) dateInWindow(date, now time.Time) bool {
	today := truncateToDay(now)
	day := truncateToDay(date.In(now.Location()))
	last := today.AddDate(0, 0, f.windowDays)
	return !day.Before(today) && !day.After(last)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReferenceID builds the patient-facing booking reference: "HK-" plus
// the millisecond timestamp in base 36 and a random base-36 suffix, so two
// bookings in the same millisecond still get distinct references.
func NewReferenceID(now time.Time) string {
	var suffix strings.Builder
	for i := 0; i < 4; i++ {
		suffix.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "HK-" + ts + suffix.String()
}
