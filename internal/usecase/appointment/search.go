package appointment

import (
	"context"
	"strings"

	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/models"
)

// Search finds appointments by a case-insensitive patient-name fragment,
// earliest slot first.
type Search struct {
	repo schedule.Repository
}

func NewSearch(repo schedule.Repository) *Search {
	return &Search{repo: repo}
}

func (uc *Search) Execute(
	ctx context.Context,
	fragment string,
) ([]models.Appointment, error) {
	return uc.repo.SearchByPatientName(ctx, strings.TrimSpace(fragment))
}
