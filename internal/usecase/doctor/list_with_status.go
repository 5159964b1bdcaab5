package doctor

import (
	"context"
	"time"

	"github.com/vilasclinic/frontdesk/internal/cache"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/dto"
	"github.com/vilasclinic/frontdesk/internal/timezone"
)

// ListWithStatus builds the front-desk status board: every doctor with a
// live Available/Busy/Not Available line.
type ListWithStatus struct {
	repo  schedule.Repository
	clk   clock.Clock
	board *cache.StatusBoard
}

func NewListWithStatus(
	repo schedule.Repository,
	clk clock.Clock,
	board *cache.StatusBoard,
) *ListWithStatus {
	return &ListWithStatus{
		repo:  repo,
		clk:   clk,
		board: board,
	}
}

func (uc *ListWithStatus) Execute(ctx context.Context) ([]dto.DoctorWithStatus, error) {

	if rows, ok := uc.board.Get(ctx); ok {
		return rows, nil
	}

	doctors, err := uc.repo.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clk.Now()

	rows := make([]dto.DoctorWithStatus, 0, len(doctors))
	for _, doc := range doctors {
		loc := timezone.Location(doc.Timezone)
		localNow := now.In(loc)

		// The doctor's local calendar day, as a UTC range.
		dayStart := time.Date(
			localNow.Year(), localNow.Month(), localNow.Day(),
			0, 0, 0, 0,
			loc,
		)
		dayEnd := dayStart.Add(24 * time.Hour)

		todays, err := uc.repo.ListBookedBetween(ctx, doc.ID, dayStart.UTC(), dayEnd.UTC())
		if err != nil {
			return nil, err
		}

		status, next := schedule.DescribeBoard(
			schedule.AvailableDays(doc.WorkingHours),
			todays,
			localNow,
		)

		rows = append(rows, dto.DoctorWithStatus{
			Doctor:        doc,
			Status:        status,
			NextAvailable: next,
		})
	}

	uc.board.Set(ctx, rows)

	return rows, nil
}
