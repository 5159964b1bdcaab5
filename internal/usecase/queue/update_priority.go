package queue

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type UpdatePriority struct {
	repo  queue.Repository
	audit *audit.Dispatcher
}

func NewUpdatePriority(
	repo queue.Repository,
	audit *audit.Dispatcher,
) *UpdatePriority {
	return &UpdatePriority{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdatePriority) Execute(
	ctx context.Context,
	id string,
	priority string,
) (*models.QueueEntry, error) {

	if !queue.ValidPriority(priority) {
		return nil, httperr.ErrBusiness("invalid_request", "Unknown queue priority.")
	}

	e, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("queue_entry_not_found", "Queue entry not found.")
	}

	e.Priority = priority
	if err := uc.repo.SaveAndReorder(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "queue_priority_updated",
		Entity:   "queue_entry",
		EntityID: &e.ID,
		Metadata: map[string]any{"priority": priority},
	})

	return e, nil
}
