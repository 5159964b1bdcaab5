package queue

import (
	"sort"

	"github.com/vilasclinic/frontdesk/internal/models"
)

const (
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

const (
	StatusWaiting    = "Waiting"
	StatusWithDoctor = "With Doctor"
	StatusCompleted  = "Completed"
)

func ValidPriority(p string) bool {
	return p == PriorityNormal || p == PriorityHigh
}

func ValidStatus(s string) bool {
	switch s {
	case StatusWaiting, StatusWithDoctor, StatusCompleted:
		return true
	}
	return false
}

// TouchesWaiting reports whether a status change requires a reorder:
// positions only move when an entry enters or leaves the waiting line.
func TouchesWaiting(from, to string) bool {
	return from == StatusWaiting || to == StatusWaiting
}

// Reorder recomputes the whole waiting line: High before Normal, earlier
// arrival first, queue numbers 1..N. Entries outside the line drop to 0.
// Returns only the entries whose number changed, so applying the result and
// running Reorder again yields nothing.
func Reorder(entries []models.QueueEntry) []models.QueueEntry {
	var waiting []models.QueueEntry
	var changed []models.QueueEntry

	for _, e := range entries {
		if e.Status == StatusWaiting {
			waiting = append(waiting, e)
		} else if e.QueueNumber != 0 {
			e.QueueNumber = 0
			changed = append(changed, e)
		}
	}

	sort.SliceStable(waiting, func(i, j int) bool {
		if waiting[i].Priority != waiting[j].Priority {
			return waiting[i].Priority == PriorityHigh
		}
		return waiting[i].ArrivalTime.Before(waiting[j].ArrivalTime)
	})

	for i := range waiting {
		if waiting[i].QueueNumber != i+1 {
			waiting[i].QueueNumber = i + 1
			changed = append(changed, waiting[i])
		}
	}

	return changed
}
