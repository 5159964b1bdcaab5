package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/vilasclinic/frontdesk/internal/audit"
	"github.com/vilasclinic/frontdesk/internal/cache"
	"github.com/vilasclinic/frontdesk/internal/clock"
	"github.com/vilasclinic/frontdesk/internal/config"
	"github.com/vilasclinic/frontdesk/internal/handlers"
	infraRepo "github.com/vilasclinic/frontdesk/internal/infra/repository"
	"github.com/vilasclinic/frontdesk/internal/middleware"
	ucAppointment "github.com/vilasclinic/frontdesk/internal/usecase/appointment"
	ucDoctor "github.com/vilasclinic/frontdesk/internal/usecase/doctor"
	ucQueue "github.com/vilasclinic/frontdesk/internal/usecase/queue"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	queueRepo := infraRepo.NewQueueGormRepository(db)

	clk := clock.System()
	board := cache.NewStatusBoard(rdb, 15*time.Second)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(scheduleRepo, clk, auditDispatcher)
	checkUC := ucAppointment.NewCheckAvailability(scheduleRepo)
	updateStatusUC := ucAppointment.NewUpdateStatus(scheduleRepo, clk, auditDispatcher)
	rescheduleUC := ucAppointment.NewReschedule(scheduleRepo, clk, auditDispatcher)
	searchUC := ucAppointment.NewSearch(scheduleRepo)
	listUC := ucAppointment.NewList(scheduleRepo)

	// ======================================================
	// USE CASES — DOCTORS
	// ======================================================
	scheduleStatusUC := ucDoctor.NewScheduleStatus(scheduleRepo, clk)
	listWithStatusUC := ucDoctor.NewListWithStatus(scheduleRepo, clk, board)

	// ======================================================
	// USE CASES — QUEUE
	// ======================================================
	addPatientUC := ucQueue.NewAddPatient(queueRepo, clk, auditDispatcher)
	queueStatusUC := ucQueue.NewUpdateStatus(queueRepo, auditDispatcher)
	queuePriorityUC := ucQueue.NewUpdatePriority(queueRepo, auditDispatcher)
	deletePatientUC := ucQueue.NewDeletePatient(queueRepo, auditDispatcher)
	queueSearchUC := ucQueue.NewSearch(queueRepo)
	queueListUC := ucQueue.NewList(queueRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		checkUC,
		updateStatusUC,
		rescheduleUC,
		searchUC,
		listUC,
	)
	doctorHandler := handlers.NewDoctorHandler(db, scheduleStatusUC, listWithStatusUC, board)
	queueHandler := handlers.NewQueueHandler(
		addPatientUC,
		queueStatusUC,
		queuePriorityUC,
		deletePatientUC,
		queueSearchUC,
		queueListUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments/check", appointmentHandler.Check)
			secured.GET("/appointments/search", appointmentHandler.Search)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// DOCTORS
			// ------------------------------
			secured.POST("/doctors", doctorHandler.Create)
			secured.GET("/doctors", doctorHandler.List)
			secured.GET("/doctors/:id", doctorHandler.Get)
			secured.PUT("/doctors/:id", doctorHandler.Update)
			secured.DELETE("/doctors/:id", doctorHandler.Delete)
			secured.GET("/doctors/:id/schedule", doctorHandler.Schedule)

			// ------------------------------
			// QUEUE
			// ------------------------------
			secured.POST("/queue", queueHandler.Add)
			secured.GET("/queue", queueHandler.List)
			secured.GET("/queue/search", queueHandler.Search)
			secured.PUT("/queue/:id/status", queueHandler.UpdateStatus)
			secured.PUT("/queue/:id/priority", queueHandler.UpdatePriority)
			secured.DELETE("/queue/:id", queueHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
