package queue

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type UpdateStatus struct {
	repo  queue.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo queue.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets the entry status. Any status is reachable from any other;
// the line is renumbered whenever an entry enters or leaves Waiting.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id string,
	status string,
) (*models.QueueEntry, error) {

	if !queue.ValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_request", "Unknown queue status.")
	}

	e, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("queue_entry_not_found", "Queue entry not found.")
	}

	from := e.Status
	e.Status = status

	if queue.TouchesWaiting(from, status) {
		err = uc.repo.SaveAndReorder(ctx, e)
	} else {
		err = uc.repo.Save(ctx, e)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "queue_status_updated",
		Entity:   "queue_entry",
		EntityID: &e.ID,
		Metadata: map[string]any{"from": from, "to": status},
	})

	return e, nil
}
