package schedule

import (
	"time"

	"github.com/vilasclinic/frontdesk/internal/httperr"
)

const (
	// BookingBuffer is the minimum separation between two Booked
	// appointments for the same doctor.
	BookingBuffer = 30 * time.Minute

	// AppointmentDuration is how long a visit is assumed to occupy the
	// doctor. Same value as BookingBuffer today, kept as a distinct
	// constant on purpose.
	AppointmentDuration = 30 * time.Minute
)

// Layouts without an explicit offset are interpreted in the doctor's zone.
var slotLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// NormalizeTime parses a client supplied time slot and returns it as a UTC
// instant. Everything downstream compares normalized instants only.
func NormalizeTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range slotLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, httperr.ErrBusiness("invalid_time_slot", "Invalid time slot.")
}

// ConflictWindow is the open interval around slot inside which another
// Booked appointment counts as a clash.
func ConflictWindow(slot time.Time) (from, to time.Time) {
	return slot.Add(-BookingBuffer), slot.Add(BookingBuffer)
}

// Conflicts applies the buffer policy pairwise: two slots clash iff they
// are strictly closer than BookingBuffer. Exactly 30 minutes apart is fine.
func Conflicts(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d < BookingBuffer
}
