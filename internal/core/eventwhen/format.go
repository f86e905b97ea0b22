package eventwhen

import "time"

// Wire format constants. The persisted string must parse identically on every
// device that ever reads it, so the format is pinned here rather than derived
// from any runtime locale. Go reference layouts are themselves fixed English,
// which is exactly the pinning the contract needs.
const (
	// dateLayout renders "Mar 14, 2026": abbreviated English month, day
	// without leading zero, four-digit year.
	dateLayout = "Jan 2, 2006"

	// clockLayout renders "4:20 PM": 12-hour clock, no leading zero on the
	// hour, two-digit minute, uppercase AM/PM.
	clockLayout = "3:04 PM"

	// bullet separates the date portion from the time-range portion.
	// Producers must emit exactly this; parsers split on its first occurrence.
	bullet = " • "

	// rangeSep separates start and end inside the time-range portion. Note
	// the surrounding spaces; a bare hyphen belongs to nothing here since the
	// date portion carries none.
	rangeSep = " - "
)

// Format renders the canonical persisted string for a start instant and an
// optional end instant, e.g. "Mar 14, 2026 • 12:30 PM - 4:20 PM". The end
// portion is omitted when end is nil. This is the only producer of the stored
// field; callers persist its output, never the raw instants.
func Format(start time.Time, end *time.Time) string {
	s := start.Format(dateLayout) + bullet + start.Format(clockLayout)
	if end == nil {
		return s
	}
	return s + rangeSep + end.Format(clockLayout)
}

// FormatCombined is Format lifted over a Combined; it returns "" when the
// window was incomplete.
func FormatCombined(c Combined) string {
	if c.Start == nil {
		return ""
	}
	return Format(*c.Start, c.End)
}
