package doctor

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
)

// ScheduleStatus answers "is this doctor free right now, and for/until
// when" from the booked schedule.
type ScheduleStatus struct {
	repo schedule.Repository
	clk  clock.Clock
}

func NewScheduleStatus(
	repo schedule.Repository,
	clk clock.Clock,
) *ScheduleStatus {
	return &ScheduleStatus{
		repo: repo,
		clk:  clk,
	}
}

func (uc *ScheduleStatus) Execute(
	ctx context.Context,
	doctorID string,
) (schedule.DoctorStatus, error) {

	if _, err := uc.repo.GetDoctor(ctx, doctorID); err != nil {
		return schedule.DoctorStatus{}, httperr.ErrBusiness("doctor_not_found", "Doctor not found.")
	}

	now := uc.clk.Now()

	// Reach back one appointment length so a visit in progress still
	// counts against the doctor's availability.
	upcoming, err := uc.repo.ListBookedFrom(ctx, doctorID, now.Add(-schedule.AppointmentDuration))
	if err != nil {
		return schedule.DoctorStatus{}, err
	}

	return schedule.ProjectStatus(upcoming, now), nil
}
