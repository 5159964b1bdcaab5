package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
	"github.com/vilasclinic/frontdesk/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	PatientName string
	DoctorID    string
	TimeSlot    string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  schedule.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewBook(
	repo schedule.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *Book {
	return &Book{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if strings.TrimSpace(in.PatientName) == "" {
		return nil, httperr.ErrBusiness("invalid_request", "Patient name is required.")
	}

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found", "Doctor not found.")
	}

	loc := timezone.Location(doctor.Timezone)

	slot, err := schedule.NormalizeTime(in.TimeSlot, loc)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()
	if slot.Before(now) {
		return nil, httperr.ErrBusiness("past_time", "Cannot book an appointment in the past.")
	}

	if err := checkCalendar(doctor, slot, loc); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PatientName: strings.TrimSpace(in.PatientName),
		DoctorID:    doctor.ID,
		TimeSlot:    slot,
		Status:      schedule.StatusBooked,
	}

	// Conflict scan and insert happen atomically in the repository.
	if err := uc.repo.CreateBooked(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"doctor_id": doctor.ID,
					"time_slot": slot,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// checkCalendar runs the doctor-local availability checks: weekday, window
// presence, and [start, end) time-of-day containment.
func checkCalendar(
	doctor *models.Doctor,
	slot time.Time,
	loc *time.Location,
) error {

	local := slot.In(loc)

	wh, ok := schedule.DayWindow(doctor.WorkingHours, local.Weekday())
	if !ok || !wh.Active {
		return httperr.ErrBusiness("day_unavailable", "Doctor is not available on "+local.Weekday().String())
	}

	if wh.StartTime == "" || wh.EndTime == "" {
		return httperr.ErrBusiness("no_working_hours", "Doctor has no working hours set for "+local.Weekday().String())
	}

	within, err := schedule.WithinWorkingHours(local, wh.StartTime, wh.EndTime)
	if err != nil {
		return httperr.ErrBusiness("no_working_hours", "Doctor has no working hours set for "+local.Weekday().String())
	}
	if !within {
		return httperr.ErrBusiness(
			"outside_working_hours",
			"Appointment time must be within working hours: "+wh.StartTime+"-"+wh.EndTime,
		)
	}

	return nil
}
