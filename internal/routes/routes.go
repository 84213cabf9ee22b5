package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/handlers"
	"github.com/BruksfildServices01/sales-calendar/internal/observability/metrics"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	ucAppointment "github.com/BruksfildServices01/sales-calendar/internal/usecase/appointment"
	ucCalendar "github.com/BruksfildServices01/sales-calendar/internal/usecase/calendar"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
	ucDashboard "github.com/BruksfildServices01/sales-calendar/internal/usecase/dashboard"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB       *gorm.DB
	Repo     domain.Repository
	Sales    *config.Sales
	Loc      *time.Location
	Broker   realtime.Broker
	Changes  *changes.Recorder
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(d.Repo, d.Sales, d.Changes)
	updateStatusUC := ucAppointment.NewUpdateStatus(d.Repo, d.Changes)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(d.Repo, d.Sales, d.Changes)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Repo, d.Changes)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(d.Repo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(d.Repo, d.Loc)

	// ======================================================
	// USE CASES: CALENDAR / DASHBOARD
	// ======================================================
	getCalendarUC := ucCalendar.NewGetCalendar(d.Repo, d.Sales)
	getRosterUC := ucCalendar.NewGetRoster(d.Repo, d.Sales)
	setAttendanceUC := ucCalendar.NewSetAttendance(d.Repo, d.Sales, d.Changes)
	toggleUC := ucCalendar.NewToggleUnavailable(d.Repo, d.Sales, d.Changes)

	dashboardUC := ucDashboard.NewGetDashboard(d.Repo, d.Sales, d.Metrics, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		d.Loc,
		bookUC,
		updateStatusUC,
		rescheduleUC,
		deleteUC,
		listByDateUC,
		listByMonthUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		d.Loc,
		getCalendarUC,
		getRosterUC,
		setAttendanceUC,
		toggleUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(d.Loc, dashboardUC, d.Broker, d.Metrics, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	healthHandler := handlers.NewHealthHandler(d.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)

	metricsHandler := promhttp.Handler()
	if d.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.ListByDate)
		api.GET("/appointments/month", appointmentHandler.ListByMonth)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.POST("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// CALENDAR
		// ------------------------------
		api.GET("/calendar", calendarHandler.Calendar)
		api.GET("/roster", calendarHandler.Roster)
		api.PUT("/roster/:name/attendance", calendarHandler.SetAttendance)
		api.PUT("/slots/unavailable", calendarHandler.ToggleUnavailable)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Get)
		api.GET("/dashboard/stream", dashboardHandler.Stream)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
