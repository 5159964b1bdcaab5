package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/vilasclinic/frontdesk/internal/models"
)

// ===============================
// Live status projection
// ===============================

const (
	BoardAvailable    = "Available"
	BoardBusy         = "Busy"
	BoardNotAvailable = "Not Available"
)

type DoctorStatus struct {
	IsFreeNow            bool                 `json:"is_free_now"`
	TimeUntilFreeMinutes int                  `json:"time_until_free_minutes"`
	Upcoming             []models.Appointment `json:"upcoming"`
}

// ProjectStatus derives the live status from the doctor's Booked
// appointments that have not finished yet, ordered ascending by time slot.
// An appointment occupies [start, start+AppointmentDuration).
func ProjectStatus(upcoming []models.Appointment, now time.Time) DoctorStatus {
	st := DoctorStatus{
		IsFreeNow: true,
		Upcoming:  upcoming,
	}
	if len(upcoming) == 0 {
		return st
	}

	first := upcoming[0].TimeSlot

	if !now.Before(first) && now.Before(first.Add(AppointmentDuration)) {
		st.IsFreeNow = false
		st.TimeUntilFreeMinutes = ceilMinutes(first.Add(AppointmentDuration).Sub(now))
		return st
	}

	if first.After(now) {
		// Free, but only until the next appointment starts.
		st.TimeUntilFreeMinutes = ceilMinutes(first.Sub(now))
	}

	return st
}

// DescribeBoard computes one line of the front-desk status board.
// available is the set of active weekdays, todays the doctor's Booked
// appointments for the local day in ascending order, and now the current
// instant in the doctor's zone. The busy check runs before the free-window
// phrasing; keep that order.
func DescribeBoard(
	available map[time.Weekday]bool,
	todays []models.Appointment,
	now time.Time,
) (status string, nextAvailable string) {

	today := now.Weekday()

	if !available[today] {
		// Fixed display convention, not the actual window start.
		return BoardNotAvailable, fmt.Sprintf("Next %s at 09:00 AM", nextAvailableDay(available, today))
	}

	for _, ap := range todays {
		start := ap.TimeSlot.In(now.Location())
		end := start.Add(AppointmentDuration)

		if !now.Before(start) && now.Before(end) {
			return BoardBusy, fmt.Sprintf("Free in %d minutes", ceilMinutes(end.Sub(now)))
		}

		if start.After(now) {
			return BoardAvailable, fmt.Sprintf("Free for next %d minutes", ceilMinutes(start.Sub(now)))
		}
	}

	return BoardAvailable, "Available now"
}

// nextAvailableDay walks the 7-day cycle and returns the nearest future
// available weekday (smallest positive offset).
func nextAvailableDay(available map[time.Weekday]bool, from time.Weekday) time.Weekday {
	for offset := 1; offset <= 7; offset++ {
		day := time.Weekday((int(from) + offset) % 7)
		if available[day] {
			return day
		}
	}
	return from
}

func ceilMinutes(d time.Duration) int {
	return int(math.Ceil(d.Seconds() / 60))
}
