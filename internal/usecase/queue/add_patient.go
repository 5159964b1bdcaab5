package queue

import (
	"context"
	"strings"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type AddPatient struct {
	repo  queue.Repository
	clk   clock.Clock
	audit *audit.Dispatcher
}

func NewAddPatient(
	repo queue.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *AddPatient {
	return &AddPatient{
		repo:  repo,
		clk:   clk,
		audit: audit,
	}
}

// Execute puts a walk-in patient on the queue. Every add recomputes the
// whole line so a High-priority arrival jumps ahead of waiting Normals.
func (uc *AddPatient) Execute(
	ctx context.Context,
	patientName string,
	priority string,
) (*models.QueueEntry, error) {

	if strings.TrimSpace(patientName) == "" {
		return nil, httperr.ErrBusiness("invalid_request", "Patient name is required.")
	}

	if priority == "" {
		priority = queue.PriorityNormal
	}
	if !queue.ValidPriority(priority) {
		return nil, httperr.ErrBusiness("invalid_request", "Unknown queue priority.")
	}

	e := &models.QueueEntry{
		PatientName: strings.TrimSpace(patientName),
		Priority:    priority,
		Status:      queue.StatusWaiting,
		ArrivalTime: uc.clk.Now(),
	}

	if err := uc.repo.CreateAndReorder(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "queue_patient_added",
		Entity:   "queue_entry",
		EntityID: &e.ID,
		Metadata: map[string]any{"priority": e.Priority},
	})

	return e, nil
}
