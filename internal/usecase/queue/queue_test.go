package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/domain/queue"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/models"
)

// fakeQueue applies the same recompute as the gorm repository, inside plain
// map writes instead of a transaction, and records which save path ran.
type fakeQueue struct {
	entries map[string]*models.QueueEntry
	nextID  int

	saveCalls           int
	saveAndReorderCalls int
	deleteCalls         int
}

var _ queue.Repository = (*fakeQueue)(nil)

func newFakeQueue() *fakeQueue {
	return &fakeQueue{entries: make(map[string]*models.QueueEntry)}
}

func (f *fakeQueue) reorder() {
	all := make([]models.QueueEntry, 0, len(f.entries))
	for _, e := range f.entries {
		all = append(all, *e)
	}
	for _, c := range queue.Reorder(all) {
		f.entries[c.ID].QueueNumber = c.QueueNumber
	}
}

func (f *fakeQueue) Get(_ context.Context, id string) (*models.QueueEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *e
	return &cp, nil
}

func (f *fakeQueue) List(_ context.Context) ([]models.QueueEntry, error) {
	out := make([]models.QueueEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeQueue) SearchByName(_ context.Context, fragment string) ([]models.QueueEntry, error) {
	var out []models.QueueEntry
	for _, e := range f.entries {
		if fragment == "" || e.PatientName == fragment {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeQueue) Save(_ context.Context, e *models.QueueEntry) error {
	f.saveCalls++
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeQueue) CreateAndReorder(_ context.Context, e *models.QueueEntry) error {
	if e.ID == "" {
		f.nextID++
		e.ID = fmt.Sprintf("q-%d", f.nextID)
	}
	cp := *e
	f.entries[e.ID] = &cp
	f.reorder()
	*e = *f.entries[e.ID]
	return nil
}

func (f *fakeQueue) SaveAndReorder(_ context.Context, e *models.QueueEntry) error {
	f.saveAndReorderCalls++
	cp := *e
	f.entries[e.ID] = &cp
	f.reorder()
	*e = *f.entries[e.ID]
	return nil
}

func (f *fakeQueue) DeleteAndReorder(_ context.Context, id string) error {
	f.deleteCalls++
	delete(f.entries, id)
	f.reorder()
	return nil
}

var arrivalBase = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

// addPatients walks the clock forward one minute per arrival.
func addPatients(t *testing.T, repo *fakeQueue, patients ...[2]string) []*models.QueueEntry {
	t.Helper()
	out := make([]*models.QueueEntry, 0, len(patients))
	for i, p := range patients {
		uc := NewAddPatient(repo, clock.Fixed{T: arrivalBase.Add(time.Duration(i) * time.Minute)}, nil)
		e, err := uc.Execute(context.Background(), p[0], p[1])
		if err != nil {
			t.Fatalf("add %q: %v", p[0], err)
		}
		out = append(out, e)
	}
	return out
}

func TestAddPatientDefaults(t *testing.T) {
	repo := newFakeQueue()
	uc := NewAddPatient(repo, clock.Fixed{T: arrivalBase}, nil)

	e, err := uc.Execute(context.Background(), "  Dana Cruz  ", "")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if e.PatientName != "Dana Cruz" {
		t.Fatalf("PatientName = %q, want trimmed", e.PatientName)
	}
	if e.Priority != queue.PriorityNormal {
		t.Fatalf("Priority = %q, want Normal default", e.Priority)
	}
	if e.Status != queue.StatusWaiting {
		t.Fatalf("Status = %q, want Waiting", e.Status)
	}
	if !e.ArrivalTime.Equal(arrivalBase) {
		t.Fatalf("ArrivalTime = %v, want clock instant", e.ArrivalTime)
	}
	if e.QueueNumber != 1 {
		t.Fatalf("QueueNumber = %d, want 1", e.QueueNumber)
	}
}

func TestAddPatientValidation(t *testing.T) {
	repo := newFakeQueue()
	uc := NewAddPatient(repo, clock.Fixed{T: arrivalBase}, nil)

	_, err := uc.Execute(context.Background(), "   ", "High")
	if !httperr.IsBusiness(err, "invalid_request") {
		t.Fatalf("empty name: err = %v, want invalid_request", err)
	}

	_, err = uc.Execute(context.Background(), "Dana", "Urgent")
	if !httperr.IsBusiness(err, "invalid_request") {
		t.Fatalf("bad priority: err = %v, want invalid_request", err)
	}

	if len(repo.entries) != 0 {
		t.Fatalf("rejected adds were stored: %d entries", len(repo.entries))
	}
}

func TestAddPatientHighJumpsLine(t *testing.T) {
	repo := newFakeQueue()
	added := addPatients(t, repo,
		[2]string{"Normal One", "Normal"},
		[2]string{"Normal Two", "Normal"},
		[2]string{"Priority Case", "High"},
	)

	if added[2].QueueNumber != 1 {
		t.Fatalf("High arrival number = %d, want 1", added[2].QueueNumber)
	}

	n1, _ := repo.Get(context.Background(), added[0].ID)
	n2, _ := repo.Get(context.Background(), added[1].ID)
	if n1.QueueNumber != 2 || n2.QueueNumber != 3 {
		t.Fatalf("Normals = %d, %d, want 2, 3", n1.QueueNumber, n2.QueueNumber)
	}
}

func TestUpdateStatusReorderPaths(t *testing.T) {
	cases := []struct {
		name        string
		from        string
		to          string
		wantReorder bool
	}{
		{"called in", queue.StatusWaiting, queue.StatusWithDoctor, true},
		{"walked out", queue.StatusWaiting, queue.StatusCompleted, true},
		{"back in line", queue.StatusWithDoctor, queue.StatusWaiting, true},
		{"visit finished", queue.StatusWithDoctor, queue.StatusCompleted, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeQueue()
			repo.entries["q-1"] = &models.QueueEntry{
				ID: "q-1", PatientName: "Dana", Priority: queue.PriorityNormal,
				Status: tt.from, ArrivalTime: arrivalBase,
			}
			repo.reorder()

			uc := NewUpdateStatus(repo, nil)
			e, err := uc.Execute(context.Background(), "q-1", tt.to)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if e.Status != tt.to {
				t.Fatalf("Status = %q, want %q", e.Status, tt.to)
			}

			if tt.wantReorder && repo.saveAndReorderCalls != 1 {
				t.Fatalf("saveAndReorderCalls = %d, want 1", repo.saveAndReorderCalls)
			}
			if !tt.wantReorder && (repo.saveAndReorderCalls != 0 || repo.saveCalls != 1) {
				t.Fatalf("saveCalls = %d, saveAndReorderCalls = %d, want plain save",
					repo.saveCalls, repo.saveAndReorderCalls)
			}
		})
	}
}

func TestUpdateStatusFreesPosition(t *testing.T) {
	repo := newFakeQueue()
	added := addPatients(t, repo,
		[2]string{"First", "Normal"},
		[2]string{"Second", "Normal"},
	)

	uc := NewUpdateStatus(repo, nil)
	e, err := uc.Execute(context.Background(), added[0].ID, queue.StatusWithDoctor)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if e.QueueNumber != 0 {
		t.Fatalf("departed entry number = %d, want 0", e.QueueNumber)
	}

	second, _ := repo.Get(context.Background(), added[1].ID)
	if second.QueueNumber != 1 {
		t.Fatalf("remaining entry number = %d, want 1", second.QueueNumber)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeQueue()
	uc := NewUpdateStatus(repo, nil)

	_, err := uc.Execute(context.Background(), "q-1", "Gone")
	if !httperr.IsBusiness(err, "invalid_request") {
		t.Fatalf("err = %v, want invalid_request", err)
	}

	_, err = uc.Execute(context.Background(), "missing", queue.StatusCompleted)
	if !httperr.IsBusiness(err, "queue_entry_not_found") {
		t.Fatalf("err = %v, want queue_entry_not_found", err)
	}
}

func TestUpdatePriorityMovesEntry(t *testing.T) {
	repo := newFakeQueue()
	added := addPatients(t, repo,
		[2]string{"First", "Normal"},
		[2]string{"Second", "Normal"},
	)

	uc := NewUpdatePriority(repo, nil)
	e, err := uc.Execute(context.Background(), added[1].ID, queue.PriorityHigh)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if e.QueueNumber != 1 {
		t.Fatalf("upgraded entry number = %d, want 1", e.QueueNumber)
	}

	first, _ := repo.Get(context.Background(), added[0].ID)
	if first.QueueNumber != 2 {
		t.Fatalf("displaced entry number = %d, want 2", first.QueueNumber)
	}

	_, err = uc.Execute(context.Background(), added[0].ID, "Urgent")
	if !httperr.IsBusiness(err, "invalid_request") {
		t.Fatalf("err = %v, want invalid_request", err)
	}
}

func TestDeletePatientClosesGap(t *testing.T) {
	repo := newFakeQueue()
	added := addPatients(t, repo,
		[2]string{"First", "Normal"},
		[2]string{"Second", "Normal"},
	)

	uc := NewDeletePatient(repo, nil)
	if err := uc.Execute(context.Background(), added[0].ID); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if _, err := repo.Get(context.Background(), added[0].ID); err == nil {
		t.Fatal("deleted entry still present")
	}
	second, _ := repo.Get(context.Background(), added[1].ID)
	if second.QueueNumber != 1 {
		t.Fatalf("remaining entry number = %d, want 1", second.QueueNumber)
	}

	err := uc.Execute(context.Background(), "missing")
	if !httperr.IsBusiness(err, "queue_entry_not_found") {
		t.Fatalf("err = %v, want queue_entry_not_found", err)
	}
}
