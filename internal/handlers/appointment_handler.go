package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vilasclinic/frontdesk/internal/domain/schedule"
	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/httpresp"
	ucappointment "github.com/vilasclinic/frontdesk/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucappointment.Book
	check        *ucappointment.CheckAvailability
	updateStatus *ucappointment.UpdateStatus
	reschedule   *ucappointment.Reschedule
	search       *ucappointment.Search
	list         *ucappointment.List
}

func NewAppointmentHandler(
	book *ucappointment.Book,
	check *ucappointment.CheckAvailability,
	updateStatus *ucappointment.UpdateStatus,
	reschedule *ucappointment.Reschedule,
	search *ucappointment.Search,
	list *ucappointment.List,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		check:        check,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		search:       search,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	DoctorID    string `json:"doctor_id" binding:"required"`
	TimeSlot    string `json:"time_slot" binding:"required"`
}

type CheckAvailabilityRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	TimeSlot string `json:"time_slot" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucappointment.BookInput{
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		TimeSlot:    req.TimeSlot,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Check(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.check.Execute(c.Request.Context(), req.DoctorID, req.TimeSlot); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"available": true})
}

func (h *AppointmentHandler) Search(c *gin.Context) {
	aps, err := h.search.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), c.Param("id"), req.TimeSlot)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Cancel is sugar for a status update to Cancelled.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), schedule.StatusCancelled)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
