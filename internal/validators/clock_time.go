package validators

import "time"

// IsClockTime reports whether s is a zero-padded "HH:MM" clock string.
// time.Parse alone tolerates single-digit hours, so the round-trip guard
// rejects inputs like "9:00".
func IsClockTime(s string) bool {
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}

// ClockTimeBefore reports whether a < b, both "HH:MM" strings. Invalid
// input counts as not-before.
func ClockTimeBefore(a, b string) bool {
	// Zero-padded clock strings order chronologically.
	return IsClockTime(a) && IsClockTime(b) && a < b
}
