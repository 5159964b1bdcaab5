package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilasclinic/frontdesk/internal/cache"
	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/httpresp"
	"github.com/vilasclinic/frontdesk/internal/models"
	"github.com/vilasclinic/frontdesk/internal/timezone"
	ucdoctor "github.com/vilasclinic/frontdesk/internal/usecase/doctor"
	"github.com/vilasclinic/frontdesk/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	db             *gorm.DB
	scheduleStatus *ucdoctor.ScheduleStatus
	listWithStatus *ucdoctor.ListWithStatus
	board          *cache.StatusBoard
}

func NewDoctorHandler(
	db *gorm.DB,
	scheduleStatus *ucdoctor.ScheduleStatus,
	listWithStatus *ucdoctor.ListWithStatus,
	board *cache.StatusBoard,
) *DoctorHandler {
	return &DoctorHandler{
		db:             db,
		scheduleStatus: scheduleStatus,
		listWithStatus: listWithStatus,
		board:          board,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingDayConfig struct {
	Day       string `json:"day" binding:"required"` // weekday name, e.g. "Monday"
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorRequest struct {
	Name           string             `json:"name" binding:"required"`
	Specialization string             `json:"specialization"`
	Gender         string             `json:"gender"`
	Location       string             `json:"location"`
	Timezone       string             `json:"timezone"`
	WorkingHours   []WorkingDayConfig `json:"working_hours"`
}

// buildWorkingHours validates the per-day windows: active days need a
// well-formed window with start < end.
func buildWorkingHours(days []WorkingDayConfig) ([]models.WorkingHours, error) {
	var rows []models.WorkingHours

	for _, d := range days {
		weekday, ok := schedule.WeekdayFromName(d.Day)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_request", "Unknown weekday: "+d.Day)
		}

		if d.Active {
			if !validators.IsClockTime(d.StartTime) || !validators.IsClockTime(d.EndTime) {
				return nil, httperr.ErrBusiness("invalid_request", "Working hours for "+d.Day+" must be HH:MM.")
			}
			if !validators.ClockTimeBefore(d.StartTime, d.EndTime) {
				return nil, httperr.ErrBusiness("invalid_request", "Working hours for "+d.Day+" must start before they end.")
			}
		}

		rows = append(rows, models.WorkingHours{
			Weekday:   int(weekday),
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	return rows, nil
}

// ======================================================
// CRUD
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rows, err := buildWorkingHours(req.WorkingHours)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	doc := models.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Gender:         req.Gender,
		Location:       req.Location,
		Timezone:       tz,
		WorkingHours:   rows,
	}

	if err := h.db.Create(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	h.board.Invalidate(c.Request.Context())
	httpresp.Created(c, doc)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	var doc models.Doctor
	if err := h.db.Preload("WorkingHours").First(&doc, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}
	httpresp.OK(c, doc)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var doc models.Doctor
	if err := h.db.First(&doc, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	rows, err := buildWorkingHours(req.WorkingHours)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	doc.Name = req.Name
	doc.Specialization = req.Specialization
	doc.Gender = req.Gender
	doc.Location = req.Location
	if timezone.IsValid(req.Timezone) {
		doc.Timezone = req.Timezone
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doc.ID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].DoctorID = doc.ID
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Save(&doc).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update doctor.")
		return
	}

	doc.WorkingHours = rows
	h.board.Invalidate(c.Request.Context())
	httpresp.OK(c, doc)
}

// Delete removes the doctor and, in the same transaction, every
// appointment referencing them. The cascade is explicit, not a schema
// side effect.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var doc models.Doctor
	if err := h.db.First(&doc, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", id).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Doctor{}, "id = ?", id).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Could not delete doctor.")
		return
	}

	h.board.Invalidate(c.Request.Context())
	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// STATUS PROJECTIONS
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	rows, err := h.listWithStatus.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *DoctorHandler) Schedule(c *gin.Context) {
	st, err := h.scheduleStatus.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, st)
}
