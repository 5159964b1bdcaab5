package appointment

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
	"github.com/vilasclinic/frontdesk/internal/timezone"
)

type Reschedule struct {
	repo  schedule.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewReschedule(
	repo schedule.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

// Execute moves an appointment to a new slot. Same validation pipeline as
// booking, against the appointment's existing doctor, with the appointment
// itself excluded from the conflict scan.
func (uc *Reschedule) Execute(
	ctx context.Context,
	id string,
	rawNewTime string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found", "Appointment not found.")
	}

	loc := timezone.Location(ap.Doctor.Timezone)

	slot, err := schedule.NormalizeTime(rawNewTime, loc)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()
	if slot.Before(now) {
		return nil, httperr.ErrBusiness("past_time", "Cannot select a past time")
	}

	if err := checkCalendar(&ap.Doctor, slot, loc); err != nil {
		return nil, err
	}

	ap.TimeSlot = slot
	if err := uc.repo.SaveWithConflictCheck(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"time_slot": slot},
	})

	return ap, nil
}
