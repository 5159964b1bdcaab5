package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory schedule.Repository with the same conflict
// semantics as the gorm implementation.
type fakeRepo struct {
	doctors      map[string]*models.Doctor
	appointments map[string]*models.Appointment

	nextID int

	saveStatusCalls   int
	conflictSaveCalls int
	createBookedCalls int
}

var _ schedule.Repository = (*fakeRepo)(nil)

func newFakeRepo(doctors ...*models.Doctor) *fakeRepo {
	r := &fakeRepo{
		doctors:      make(map[string]*models.Doctor),
		appointments: make(map[string]*models.Appointment),
	}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *fakeRepo) GetDoctor(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	if d, ok := r.doctors[ap.DoctorID]; ok {
		cp.Doctor = *d
	}
	return &cp, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListBookedInWindow(
	_ context.Context,
	doctorID string,
	from, to time.Time,
	excludeID string,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID || ap.Status != schedule.StatusBooked || ap.ID == excludeID {
			continue
		}
		if ap.TimeSlot.After(from) && ap.TimeSlot.Before(to) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookedFrom(
	_ context.Context,
	doctorID string,
	from time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.Status == schedule.StatusBooked && ap.TimeSlot.After(from) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookedBetween(
	_ context.Context,
	doctorID string,
	from, to time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID || ap.Status != schedule.StatusBooked {
			continue
		}
		if !ap.TimeSlot.Before(from) && ap.TimeSlot.Before(to) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) SearchByPatientName(_ context.Context, fragment string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if fragment == "" || ap.PatientName == fragment {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) clash(doctorID string, slot time.Time, excludeID string) bool {
	for _, other := range r.appointments {
		if other.DoctorID != doctorID || other.Status != schedule.StatusBooked || other.ID == excludeID {
			continue
		}
		if schedule.Conflicts(slot, other.TimeSlot) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateBooked(_ context.Context, ap *models.Appointment) error {
	r.createBookedCalls++
	if r.clash(ap.DoctorID, ap.TimeSlot, "") {
		return httperr.ErrBusiness("time_conflict", "Doctor not available at this time (conflicts with another appointment).")
	}
	if ap.ID == "" {
		r.nextID++
		ap.ID = fmt.Sprintf("ap-%d", r.nextID)
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) SaveWithConflictCheck(_ context.Context, ap *models.Appointment) error {
	r.conflictSaveCalls++
	if r.clash(ap.DoctorID, ap.TimeSlot, ap.ID) {
		return httperr.ErrBusiness("time_conflict", "Doctor not available at this time (conflicts with another appointment).")
	}
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) SaveStatus(_ context.Context, ap *models.Appointment) error {
	r.saveStatusCalls++
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}
