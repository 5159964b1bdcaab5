package queue

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/httperr"
)

type DeletePatient struct {
	repo  queue.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(
	repo queue.Repository,
	audit *audit.Dispatcher,
) *DeletePatient {
	return &DeletePatient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeletePatient) Execute(
	ctx context.Context,
	id string,
) error {

	e, err := uc.repo.Get(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("queue_entry_not_found", "Queue entry not found.")
	}

	if err := uc.repo.DeleteAndReorder(ctx, e.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "queue_patient_removed",
		Entity:   "queue_entry",
		EntityID: &e.ID,
	})

	return nil
}
