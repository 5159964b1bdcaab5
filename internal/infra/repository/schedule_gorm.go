package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Doctor directory
// --------------------------------------------------

func (r *ScheduleGormRepository) GetDoctor(
	ctx context.Context,
	id string,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours").
		First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ScheduleGormRepository) ListDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var docs []models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours").
		Order("name ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor.WorkingHours").
		Preload("Doctor").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListBookedInWindow(
	ctx context.Context,
	doctorID string,
	from time.Time,
	to time.Time,
	excludeID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status = ? AND time_slot > ? AND time_slot < ?",
			doctorID, domain.StatusBooked, from, to,
		)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var aps []models.Appointment
	if err := q.Order("time_slot ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListBookedFrom(
	ctx context.Context,
	doctorID string,
	from time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status = ? AND time_slot > ?",
			doctorID, domain.StatusBooked, from,
		).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListBookedBetween(
	ctx context.Context,
	doctorID string,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status = ? AND time_slot >= ? AND time_slot < ?",
			doctorID, domain.StatusBooked, from, to,
		).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) SearchByPatientName(
	ctx context.Context,
	fragment string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_name ILIKE ?", "%"+fragment+"%").
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBooked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoClash(tx, ap.DoctorID, ap.TimeSlot, ""); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) SaveWithConflictCheck(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertNoClash(tx, ap.DoctorID, ap.TimeSlot, ap.ID); err != nil {
			return err
		}
		return tx.Omit("Doctor").Save(ap).Error
	})
}

func (r *ScheduleGormRepository) SaveStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Doctor").Save(ap).Error
}

// assertNoClash locks the doctor's surrounding Booked rows and applies the
// buffer policy. Runs inside the caller's transaction so check and write
// are a single atomic unit.
func assertNoClash(
	tx *gorm.DB,
	doctorID string,
	slot time.Time,
	excludeID string,
) error {

	// Row locks alone cover nothing when the window has no rows yet; the
	// per-doctor advisory lock serializes concurrent bookings into an
	// untouched window for the rest of the transaction.
	if err := tx.Exec(
		"SELECT pg_advisory_xact_lock(hashtext(?))", doctorID,
	).Error; err != nil {
		return err
	}

	from, to := domain.ConflictWindow(slot)

	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"doctor_id = ? AND status = ? AND time_slot > ? AND time_slot < ?",
			doctorID, domain.StatusBooked, from, to,
		)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var clashes []models.Appointment
	if err := q.Find(&clashes).Error; err != nil {
		return err
	}
	if len(clashes) > 0 {
		return httperr.ErrBusiness(
			"time_conflict",
			"Doctor not available at this time (conflicts with another appointment).",
		)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
