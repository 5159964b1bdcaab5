package appointment

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type UpdateStatus struct {
	repo  schedule.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo schedule.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

// Execute sets the appointment status. Transitions away from Booked are
// unconditional; reverting to Booked re-validates the existing slot as if it
// were booked fresh.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id string,
	newStatus string,
) (*models.Appointment, error) {

	if !schedule.ValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_request", "Unknown appointment status.")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found", "Appointment not found.")
	}

	if newStatus == schedule.StatusBooked {
		now := uc.clk.Now()

		from, to := schedule.ConflictWindow(ap.TimeSlot)
		clashes, err := uc.repo.ListBookedInWindow(ctx, ap.DoctorID, from, to, ap.ID)
		if err != nil {
			return nil, err
		}
		if len(clashes) > 0 {
			return nil, httperr.ErrBusiness("time_conflict", "Doctor is already booked around this time (±30 min).")
		}

		if ap.TimeSlot.Before(now) {
			return nil, httperr.ErrBusiness("past_time", "Cannot revert to booked for a past time.")
		}

		ap.Status = newStatus
		// The advisory check above can race; the write re-checks under lock.
		if err := uc.repo.SaveWithConflictCheck(ctx, ap); err != nil {
			return nil, err
		}
	} else {
		ap.Status = newStatus
		if err := uc.repo.SaveStatus(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": newStatus},
	})

	return ap, nil
}
