// Package eventwhen is the temporal model for event listings.
//
// An event's "when" is collected as a calendar date plus independently chosen
// start and end times of day, combined into wall-clock instants (events whose
// end time of day is numerically at or before the start roll over midnight),
// rendered into a single canonical string that is the only persisted
// representation, and parsed back out of that string for editing, sorting and
// filtering. Everything here is pure and deterministic; instants carry no
// zone information beyond the location of the inputs.
package eventwhen

import (
	"errors"
	"time"
)

// TimeOfDay is an hour/minute pair with no calendar date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the time of day as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int { return t.Hour*60 + t.Minute }

// Window is the in-memory editing representation of an event's when.
// Date is a calendar date (time of day ignored); Start and End stay nil until
// the user picks them. Start and End are meaningless while Date is nil.
type Window struct {
	Date  *time.Time
	Start *TimeOfDay
	End   *TimeOfDay
}

// Combined holds the derived instants for a window. It is recomputed on
// demand and never persisted; the canonical string is the stored form.
type Combined struct {
	Start *time.Time
	End   *time.Time
}

// Combine builds the start and end instants for date plus the two times of
// day. A nil date or nil start yields an empty Combined (the window is
// incomplete). Instants are truncated to minute precision. When the end's
// minute of day is at or before the start's the event crosses midnight and
// the end lands on the following calendar day; exact equality is deliberately
// overnight (11 PM to 11 PM the next night), not a zero-length event.
//
// No duration sanity check happens here; bounding is a validation concern.
func Combine(date *time.Time, start, end *TimeOfDay) Combined {
	if date == nil || start == nil {
		return Combined{}
	}
	s := at(*date, *start)
	out := Combined{Start: &s}
	if end == nil {
		return out
	}
	e := at(*date, *end)
	if end.MinuteOfDay() <= start.MinuteOfDay() {
		e = e.AddDate(0, 0, 1)
	}
	out.End = &e
	return out
}

// Combine derives the window's instants.
func (w Window) Combine() Combined { return Combine(w.Date, w.Start, w.End) }

// IsOvernight reports whether the pair of times of day describes an event
// that ends on the following calendar day. False when either side is unset,
// so the UI can call it while the window is still incomplete.
func IsOvernight(start, end *TimeOfDay) bool {
	if start == nil || end == nil {
		return false
	}
	return end.MinuteOfDay() <= start.MinuteOfDay()
}

// at pins a time of day onto d's calendar date, minute precision, keeping
// d's location.
func at(d time.Time, t TimeOfDay) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, d.Location())
}

// Validation policy errors. These are the only errors the temporal model
// surfaces to users; every parse failure degrades to missing data instead.
var (
	// ErrDateInPast means the event date is before today.
	ErrDateInPast = errors.New("event date is in the past")

	// ErrDateTooFar means the event date is more than two months out.
	ErrDateTooFar = errors.New("event date is more than two months away")
)

// maxLead is how far ahead an event may be scheduled.
const maxLeadMonths = 2

// ValidateDate checks the posting policy: the event date must fall within
// [today, today+2 months] inclusive, measured against local midnight
// boundaries at the moment of validation. This window moves with now, so a
// date that validated at selection time can fail at submit time.
func ValidateDate(date, now time.Time) error {
	today := midnight(now)
	d := midnight(date)
	if d.Before(today) {
		return ErrDateInPast
	}
	if d.After(today.AddDate(0, maxLeadMonths, 0)) {
		return ErrDateTooFar
	}
	return nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
