package appointment

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type List struct {
	repo schedule.Repository
}

func NewList(repo schedule.Repository) *List {
	return &List{repo: repo}
}

// Execute returns every appointment, newest first.
func (uc *List) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
