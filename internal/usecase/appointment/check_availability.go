package appointment

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/timezone"
)

// CheckAvailability is the advisory pre-check used by the dashboard before
// reverting an appointment to Booked. Read-only; booking re-checks anyway.
type CheckAvailability struct {
	repo schedule.Repository
}

func NewCheckAvailability(repo schedule.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	doctorID string,
	rawTimeSlot string,
) error {

	doctor, err := uc.repo.GetDoctor(ctx, doctorID)
	if err != nil {
		return httperr.ErrBusiness("doctor_not_found", "Doctor not found.")
	}

	slot, err := schedule.NormalizeTime(rawTimeSlot, timezone.Location(doctor.Timezone))
	if err != nil {
		return err
	}

	from, to := schedule.ConflictWindow(slot)
	clashes, err := uc.repo.ListBookedInWindow(ctx, doctor.ID, from, to, "")
	if err != nil {
		return err
	}
	if len(clashes) > 0 {
		return httperr.ErrBusiness("time_conflict", "Time slot clashes with another appointment")
	}

	return nil
}
