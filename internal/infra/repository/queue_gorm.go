package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type QueueGormRepository struct {
	db *gorm.DB
}

func NewQueueGormRepository(db *gorm.DB) *QueueGormRepository {
	return &QueueGormRepository{db: db}
}

func (r *QueueGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.QueueEntry, error) {

	var e models.QueueEntry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *QueueGormRepository) List(
	ctx context.Context,
) ([]models.QueueEntry, error) {

	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).
		Order(waitingFirst).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *QueueGormRepository) SearchByName(
	ctx context.Context,
	fragment string,
) ([]models.QueueEntry, error) {

	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).
		Where("patient_name ILIKE ?", "%"+fragment+"%").
		Order(waitingFirst).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *QueueGormRepository) Save(
	ctx context.Context,
	e *models.QueueEntry,
) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// --------------------------------------------------
// Mutations with full renumbering
// --------------------------------------------------

func (r *QueueGormRepository) CreateAndReorder(
	ctx context.Context,
	e *models.QueueEntry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		if err := reorderLocked(tx); err != nil {
			return err
		}
		return tx.First(e, "id = ?", e.ID).Error
	})
}

func (r *QueueGormRepository) SaveAndReorder(
	ctx context.Context,
	e *models.QueueEntry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		if err := reorderLocked(tx); err != nil {
			return err
		}
		return tx.First(e, "id = ?", e.ID).Error
	})
}

func (r *QueueGormRepository) DeleteAndReorder(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.QueueEntry{}, "id = ?", id).Error; err != nil {
			return err
		}
		return reorderLocked(tx)
	})
}

// reorderLocked renumbers the waiting line under row locks. Writes only
// entries whose position actually changed, keeping the recompute idempotent.
func reorderLocked(tx *gorm.DB) error {
	var entries []models.QueueEntry
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("arrival_time ASC").
		Find(&entries).Error; err != nil {
		return err
	}

	for _, e := range domain.Reorder(entries) {
		if err := tx.
			Model(&models.QueueEntry{}).
			Where("id = ?", e.ID).
			Update("queue_number", e.QueueNumber).Error; err != nil {
			return err
		}
	}
	return nil
}

const waitingFirst = "CASE WHEN status = 'Waiting' THEN 0 ELSE 1 END, queue_number ASC, arrival_time ASC"

// Compile-time check
var _ domain.Repository = (*QueueGormRepository)(nil)
