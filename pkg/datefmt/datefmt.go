// Package datefmt renders the API's ISO-8601 date strings for display.
// Every function fails soft on unparseable input.
package datefmt

import "time"

const invalid = "Invalid Date"

// parse accepts the two shapes the API emits: a bare date and a full
// RFC 3339 timestamp.
func parse(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders "Jan 02, 2006" style dates.
func FormatDate(s string) string {
	t, ok := parse(s)
	if !ok {
		return invalid
	}
	return t.Format("Jan 02, 2006")
}

// FormatDateTime renders the date with a 12-hour clock time.
func FormatDateTime(s string) string {
	t, ok := parse(s)
	if !ok {
		return invalid
	}
	return t.Format("Jan 02, 2006 3:04 PM")
}

// FormatTime renders a bare "HH:mm" clock string as 12-hour time.
func FormatTime(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return invalid
	}
	return t.Format("3:04 PM")
}

// IsToday reports whether s falls on the current local date.
func IsToday(s string) bool {
	t, ok := parse(s)
	if !ok {
		return false
	}
	now := time.Now()
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsUpcoming reports whether s falls on or after the current local date.
func IsUpcoming(s string) bool {
	t, ok := parse(s)
	if !ok {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !t.Before(today)
}

// IsPast reports whether s falls strictly before the current local date.
func IsPast(s string) bool {
	t, ok := parse(s)
	if !ok {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(today)
}
