package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vilasclinic/frontdesk/internal/httperr"
	"github.com/vilasclinic/frontdesk/internal/httpresp"
	ucqueue "github.com/vilasclinic/frontdesk/internal/usecase/queue"
)

// ======================================================
// HANDLER
// ======================================================

type QueueHandler struct {
	add            *ucqueue.AddPatient
	updateStatus   *ucqueue.UpdateStatus
	updatePriority *ucqueue.UpdatePriority
	del            *ucqueue.DeletePatient
	search         *ucqueue.Search
	list           *ucqueue.List
}

func NewQueueHandler(
	add *ucqueue.AddPatient,
	updateStatus *ucqueue.UpdateStatus,
	updatePriority *ucqueue.UpdatePriority,
	del *ucqueue.DeletePatient,
	search *ucqueue.Search,
	list *ucqueue.List,
) *QueueHandler {
	return &QueueHandler{
		add:            add,
		updateStatus:   updateStatus,
		updatePriority: updatePriority,
		del:            del,
		search:         search,
		list:           list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddPatientRequest struct {
	PatientName string `json:"patient_name" binding:"required"`
	Priority    string `json:"priority"`
}

type UpdateQueueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateQueuePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *QueueHandler) Add(c *gin.Context) {
	var req AddPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	e, err := h.add.Execute(c.Request.Context(), req.PatientName, req.Priority)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, e)
}

func (h *QueueHandler) List(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, entries)
}

func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	var req UpdateQueueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	e, err := h.updateStatus.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *QueueHandler) UpdatePriority(c *gin.Context) {
	var req UpdateQueuePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	e, err := h.updatePriority.Execute(c.Request.Context(), c.Param("id"), req.Priority)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *QueueHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), c.Param("id")); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}

func (h *QueueHandler) Search(c *gin.Context) {
	entries, err := h.search.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, entries)
}
