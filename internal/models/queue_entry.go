package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueueEntry struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	PatientName string `gorm:"size:100;not null" json:"patient_name"`

	Priority string `gorm:"size:10;default:'Normal'" json:"priority"` // Normal | High
	Status   string `gorm:"size:20;default:'Waiting'" json:"status"`  // Waiting | With Doctor | Completed

	// Position in the waiting line. Meaningful only while Waiting; reset to
	// 0 once the entry leaves the queue.
	QueueNumber int `json:"queue_number"`

	// Tie-break between entries of equal priority. Set once at creation.
	ArrivalTime time.Time `json:"arrival_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (q *QueueEntry) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
