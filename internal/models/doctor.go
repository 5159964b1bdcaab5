package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Doctor struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Gender         string `gorm:"size:20" json:"gender"`
	Location       string `gorm:"size:100" json:"location"`

	// IANA zone of the doctor's practice. Calendar checks (weekday,
	// working hours) happen in this zone; time slots are stored in UTC.
	Timezone string `gorm:"size:64" json:"timezone"`

	WorkingHours []WorkingHours `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE;" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
