package eventwhen

import (
	"strings"
	"time"
)

// Parsed is the structured result of a strict parse. Date and Start are
// always the same instant when present; callers that want a bare date
// truncate the time of day themselves. A nil Start means the stored value
// was unparseable and the UI should show a TBA placeholder.
type Parsed struct {
	Date  *time.Time
	Start *time.Time
	End   *time.Time
}

// Layouts tried, most specific first, when recovering instants from stored
// text. The canonical layouts lead; the rest cover hand-entered and legacy
// shapes seen in old records.
var dateTimeLayouts = []string{
	dateLayout + " " + clockLayout, // canonical: "Mar 14, 2026 12:30 PM"
	"January 2, 2006 3:04 PM",
	"Jan 2 2006 3:04 PM",
	"January 2 2006 3:04 PM",
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04",
}

var dateOnlyLayouts = []string{
	dateLayout, // "Mar 14, 2026"
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2006-01-02",
}

// isoLayouts cover records persisted before the canonical format existed,
// which stored a raw ISO-8601 instant.
var isoLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

// ParseLoose recovers a single representative instant from a stored value of
// unknown provenance, for chronological ordering and upcoming/past bucketing
// only: end-time detail is discarded by design. The ok result is false for
// empty or unparseable input; callers treat that as "unknown date" and must
// not fail the record.
func ParseLoose(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	datePart, timePart, found := strings.Cut(value, "•")
	if found {
		datePart = strings.TrimSpace(datePart)
		timePart = strings.TrimSpace(timePart)
		if timePart != "" {
			// re-join date text with the leading slice of the time range and
			// let the layout list recover the start instant
			return parseInstant(datePart + " " + timePart)
		}
		return parseInstant(datePart)
	}
	return parseInstant(value)
}

// ParseStrict recovers the full structured window needed by an edit form.
// Failure semantics are asymmetric on purpose: a malformed start segment
// voids the whole result (start time is load-bearing for sort order) while a
// malformed end segment degrades to "no end time".
func ParseStrict(value string) Parsed {
	value = strings.TrimSpace(value)
	if value == "" {
		return Parsed{}
	}

	if looksISO(value) {
		t, ok := parseISO(value)
		if !ok {
			return Parsed{}
		}
		return Parsed{Date: &t, Start: &t}
	}

	datePart, timePart, found := strings.Cut(value, "•")
	if !found {
		t, ok := parseInstant(value)
		if !ok {
			return Parsed{}
		}
		return Parsed{Date: &t, Start: &t}
	}

	datePart = strings.TrimSpace(datePart)
	startText, endText, hasEnd := strings.Cut(strings.TrimSpace(timePart), rangeSep)

	start, ok := parseInstant(datePart + " " + strings.TrimSpace(startText))
	if !ok {
		// partially-invalid canonical strings are wholly unparseable
		return Parsed{}
	}
	out := Parsed{Date: &start, Start: &start}

	if hasEnd {
		if end, ok := parseInstant(datePart + " " + strings.TrimSpace(endText)); ok {
			// the string never records the rollover, so re-derive it: an end
			// at or before the start belongs to the next calendar day
			if !end.After(start) {
				end = end.AddDate(0, 0, 1)
			}
			out.End = &end
		}
	}
	return out
}

// looksISO detects the legacy raw-instant form. The substring probe is the
// contract: any value carrying both "T" and "Z" is treated as ISO-8601.
func looksISO(s string) bool {
	return strings.Contains(s, "T") && strings.Contains(s, "Z")
}

func parseISO(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseInstant tries the composite layouts against s, cutting off anything
// after a range separator first so "Mar 14, 2026 12:30 PM - 4:20 PM" yields
// the start. Non-ISO values are wall-clock local. ISO values keep their
// encoded offset.
func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if looksISO(s) {
		return parseISO(s)
	}
	if head, _, found := strings.Cut(s, rangeSep); found {
		s = strings.TrimSpace(head)
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Input helpers for the API write path, which collects the date and the two
// times of day as separate fields.

// ParseDateOnly parses a YYYY-MM-DD form field into a local calendar date.
func ParseDateOnly(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseTimeOfDay parses an HH:MM 24-hour form field.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, true
}
