package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
)

func TestReschedule(t *testing.T) {
	slot := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("moves the slot", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		seedAppointment(repo, "ap-1", "doc-1", schedule.StatusBooked, slot)
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		ap, err := uc.Execute(context.Background(), "ap-1", "2026-09-07 14:00")
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if want := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC); !ap.TimeSlot.Equal(want) {
			t.Fatalf("TimeSlot = %v, want %v", ap.TimeSlot, want)
		}
		if repo.conflictSaveCalls != 1 {
			t.Fatalf("conflictSaveCalls = %d, want the checked save path", repo.conflictSaveCalls)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		_, err := uc.Execute(context.Background(), "missing", "2026-09-07 14:00")
		wantBusiness(t, err, "appointment_not_found")
	})

	t.Run("past target", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		seedAppointment(repo, "ap-1", "doc-1", schedule.StatusBooked, slot)
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		_, err := uc.Execute(context.Background(), "ap-1", "2026-08-31 14:00")
		wantBusiness(t, err, "past_time")
	})

	t.Run("target outside working hours", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		seedAppointment(repo, "ap-1", "doc-1", schedule.StatusBooked, slot)
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		_, err := uc.Execute(context.Background(), "ap-1", "2026-09-07 18:00")
		wantBusiness(t, err, "outside_working_hours")
	})

	t.Run("target taken by another appointment", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		seedAppointment(repo, "ap-1", "doc-1", schedule.StatusBooked, slot)
		seedAppointment(repo, "ap-2", "doc-1", schedule.StatusBooked, slot.Add(2*time.Hour))
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		_, err := uc.Execute(context.Background(), "ap-1", "2026-09-07 12:10")
		wantBusiness(t, err, "time_conflict")
	})

	// Moving an appointment a few minutes must not clash with its own
	// previous slot.
	t.Run("own slot is excluded", func(t *testing.T) {
		repo := newFakeRepo(weekdayDoctor())
		seedAppointment(repo, "ap-1", "doc-1", schedule.StatusBooked, slot)
		uc := NewReschedule(repo, clock.Fixed{T: testNow}, nil)

		if _, err := uc.Execute(context.Background(), "ap-1", "2026-09-07 10:10"); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})
}
