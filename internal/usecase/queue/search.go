package queue

import (
	"context"
	"strings"

	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/models"
)

// Search finds queue entries by a case-insensitive name fragment, ordered
// by position in the line.
type Search struct {
	repo queue.Repository
}

func NewSearch(repo queue.Repository) *Search {
	return &Search{repo: repo}
}

func (uc *Search) Execute(
	ctx context.Context,
	fragment string,
) ([]models.QueueEntry, error) {
	return uc.repo.SearchByName(ctx, strings.TrimSpace(fragment))
}

type List struct {
	repo queue.Repository
}

func NewList(repo queue.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context) ([]models.QueueEntry, error) {
	return uc.repo.List(ctx)
}
