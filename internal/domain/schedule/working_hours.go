package schedule

import (
	"time"

	"github.com/vilasclinic/frontdesk/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func WeekdayFromName(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}

// DayWindow returns the working-hours row for the given weekday.
func DayWindow(hours []models.WorkingHours, day time.Weekday) (models.WorkingHours, bool) {
	for _, wh := range hours {
		if wh.Weekday == int(day) {
			return wh, true
		}
	}
	return models.WorkingHours{}, false
}

// AvailableDays is the set of weekdays with an active window.
func AvailableDays(hours []models.WorkingHours) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, len(hours))
	for _, wh := range hours {
		if wh.Active {
			days[time.Weekday(wh.Weekday)] = true
		}
	}
	return days
}

// WithinWorkingHours reports whether local falls inside [start, end) on its
// own day. start/end are "15:04" clock strings in the doctor's zone; the
// start is bookable, the closing minute is not.
func WithinWorkingHours(local time.Time, startHM, endHM string) (bool, error) {
	start, err := time.Parse("15:04", startHM)
	if err != nil {
		return false, err
	}
	end, err := time.Parse("15:04", endHM)
	if err != nil {
		return false, err
	}

	onDay := func(t time.Time) time.Time {
		return time.Date(
			local.Year(), local.Month(), local.Day(),
			t.Hour(), t.Minute(), 0, 0,
			local.Location(),
		)
	}

	dayStart := onDay(start)
	dayEnd := onDay(end)

	return !local.Before(dayStart) && local.Before(dayEnd), nil
}
