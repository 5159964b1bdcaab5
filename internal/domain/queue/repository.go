package queue

import (
	"context"

	"github.com/vilasclinic/frontdesk/internal/models"
)

type Repository interface {
	Get(
		ctx context.Context,
		id string,
	) (*models.QueueEntry, error)

	// Full queue, waiting line first in position order.
	List(
		ctx context.Context,
	) ([]models.QueueEntry, error)

	SearchByName(
		ctx context.Context,
		fragment string,
	) ([]models.QueueEntry, error)

	Save(
		ctx context.Context,
		e *models.QueueEntry,
	) error

	// The *AndReorder writes run the mutation and the full recompute in a
	// single transaction over locked rows, then reload e with its assigned
	// position.
	CreateAndReorder(
		ctx context.Context,
		e *models.QueueEntry,
	) error

	SaveAndReorder(
		ctx context.Context,
		e *models.QueueEntry,
	) error

	DeleteAndReorder(
		ctx context.Context,
		id string,
	) error
}
