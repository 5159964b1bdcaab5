package schedule

import (
	"context"
	"time"

	"github.com/vilasclinic/frontdesk/internal/models"
)

type Repository interface {
	// -------- Doctor directory --------
	GetDoctor(
		ctx context.Context,
		id string,
	) (*models.Doctor, error)

	ListDoctors(
		ctx context.Context,
	) ([]models.Doctor, error)

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// Booked appointments with excludeID filtered out, strictly inside
	// (from, to), ascending. Pass excludeID == "" to keep everything.
	ListBookedInWindow(
		ctx context.Context,
		doctorID string,
		from time.Time,
		to time.Time,
		excludeID string,
	) ([]models.Appointment, error)

	// Booked appointments with time_slot > from, ascending.
	ListBookedFrom(
		ctx context.Context,
		doctorID string,
		from time.Time,
	) ([]models.Appointment, error)

	// Booked appointments with from <= time_slot < to, ascending.
	ListBookedBetween(
		ctx context.Context,
		doctorID string,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	SearchByPatientName(
		ctx context.Context,
		fragment string,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------

	// CreateBooked re-runs the conflict scan and inserts inside one
	// transaction, so two concurrent bookings cannot both pass the check.
	CreateBooked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveWithConflictCheck persists ap after re-checking the conflict
	// window around ap.TimeSlot, excluding ap itself, in one transaction.
	SaveWithConflictCheck(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
