package models

import "time"

// One row per weekday. A day is part of the doctor's availability iff its
// row is active; an active row always carries a window.
type WorkingHours struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DoctorID string `gorm:"type:uuid;index" json:"doctor_id"`

	Weekday int  `json:"weekday"` // time.Weekday numbering, 0 = Sunday
	Active  bool `json:"active"`

	StartTime string `gorm:"size:5" json:"start_time"` // "09:00"
	EndTime   string `gorm:"size:5" json:"end_time"`   // "17:00"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
