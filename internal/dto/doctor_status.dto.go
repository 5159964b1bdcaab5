package dto

import "github.com/vilasclinic/frontdesk/internal/models"

// One row of the front-desk status board.
type DoctorWithStatus struct {
	models.Doctor

	Status        string `json:"status"`         // Available | Busy | Not Available
	NextAvailable string `json:"next_available"` // display phrasing, e.g. "Free in 20 minutes"
}
