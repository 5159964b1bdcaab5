package schedule

import (
	"testing"
	"time"

	"github.com/vilasclinic/frontdesk/internal/models"
)

func TestWithinWorkingHours(t *testing.T) {
	day := func(hour, min int) time.Time {
		return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
	}

	cases := []struct {
		name  string
		local time.Time
		start string
		end   string
		want  bool
	}{
		{"at opening", day(9, 0), "09:00", "17:00", true},
		{"minute before opening", day(8, 59), "09:00", "17:00", false},
		{"mid shift", day(12, 30), "09:00", "17:00", true},
		{"last bookable minute", day(16, 59), "09:00", "17:00", true},
		{"at closing", day(17, 0), "09:00", "17:00", false},
		{"after closing", day(18, 0), "09:00", "17:00", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WithinWorkingHours(tt.local, tt.start, tt.end)
			if err != nil {
				t.Fatalf("WithinWorkingHours: %v", err)
			}
			if got != tt.want {
				t.Fatalf("WithinWorkingHours(%v, %s, %s) = %v, want %v",
					tt.local, tt.start, tt.end, got, tt.want)
			}
		})
	}

	if _, err := WithinWorkingHours(day(10, 0), "9am", "17:00"); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}

func TestDayWindow(t *testing.T) {
	hours := []models.WorkingHours{
		{Weekday: int(time.Monday), Active: true, StartTime: "09:00", EndTime: "17:00"},
		{Weekday: int(time.Wednesday), Active: false, StartTime: "10:00", EndTime: "14:00"},
	}

	wh, ok := DayWindow(hours, time.Monday)
	if !ok {
		t.Fatal("expected a Monday window")
	}
	if wh.StartTime != "09:00" || wh.EndTime != "17:00" {
		t.Fatalf("Monday window = %s-%s, want 09:00-17:00", wh.StartTime, wh.EndTime)
	}

	// Inactive rows are still returned; the caller decides what inactive means.
	if _, ok := DayWindow(hours, time.Wednesday); !ok {
		t.Fatal("expected an inactive Wednesday window")
	}

	if _, ok := DayWindow(hours, time.Sunday); ok {
		t.Fatal("did not expect a Sunday window")
	}
}

func TestAvailableDays(t *testing.T) {
	hours := []models.WorkingHours{
		{Weekday: int(time.Monday), Active: true},
		{Weekday: int(time.Tuesday), Active: true},
		{Weekday: int(time.Wednesday), Active: false},
	}

	days := AvailableDays(hours)
	if len(days) != 2 {
		t.Fatalf("len(days) = %d, want 2", len(days))
	}
	if !days[time.Monday] || !days[time.Tuesday] {
		t.Fatalf("days = %v, want Monday and Tuesday", days)
	}
	if days[time.Wednesday] {
		t.Fatal("inactive Wednesday must not be available")
	}
}

func TestWeekdayFromName(t *testing.T) {
	d, ok := WeekdayFromName("Monday")
	if !ok || d != time.Monday {
		t.Fatalf("WeekdayFromName(Monday) = %v, %v", d, ok)
	}
	if _, ok := WeekdayFromName("monday"); ok {
		t.Fatal("weekday names are case-sensitive")
	}
	if _, ok := WeekdayFromName("Funday"); ok {
		t.Fatal("unknown weekday accepted")
	}
}
