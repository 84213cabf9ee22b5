package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/httpresp"
	"github.com/BruksfildServices01/sales-calendar/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/sales-calendar/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	loc *time.Location

	book         *ucAppointment.BookAppointment
	updateStatus *ucAppointment.UpdateStatus
	reschedule   *ucAppointment.RescheduleAppointment
	remove       *ucAppointment.DeleteAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	loc *time.Location,
	book *ucAppointment.BookAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	reschedule *ucAppointment.RescheduleAppointment,
	remove *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		loc:          loc,
		book:         book,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		remove:       remove,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date        string `json:"date" binding:"required,day"`
	Time        string `json:"time" binding:"required,slot_time"`
	SalesPerson string `json:"sales_person" binding:"required"`

	SetterName     string `json:"setter_name" binding:"required"`
	InitialPitch   string `json:"initial_pitch_type" binding:"required,pitch_type"`
	LeadSource     string `json:"lead_source" binding:"required,lead_source"`
	LeadQuality    string `json:"lead_quality" binding:"omitempty,lead_quality"`
	InitialPayment string `json:"initial_payment" binding:"omitempty,deposit"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`

	Force bool `json:"force"`
}

type UpdateStatusRequest struct {
	Status      string     `json:"status" binding:"required"`
	PitchedType string     `json:"pitched_type"`
	PaymentType string     `json:"payment_type"`
	CallLaterAt *time.Time `json:"call_later_at"`
	CallNotes   string     `json:"call_notes"`
}

type RescheduleRequest struct {
	Date        string `json:"date" binding:"required,day"`
	Time        string `json:"time" binding:"required,slot_time"`
	SalesPerson string `json:"sales_person" binding:"required"`
	Force       bool   `json:"force"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Date:           parseDay(req.Date, h.loc),
		Time:           req.Time,
		SalesPerson:    req.SalesPerson,
		SetterName:     req.SetterName,
		InitialPitch:   domain.Track(req.InitialPitch),
		LeadSource:     domain.LeadSource(req.LeadSource),
		LeadQuality:    domain.LeadQuality(req.LeadQuality),
		InitialPayment: domain.DepositState(req.InitialPayment),
		Name:           req.Name,
		Phone:          req.Phone,
		Notes:          req.Notes,
		Force:          req.Force,
		Actor:          middleware.Actor(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		ID: c.Param("id"),
		Update: domain.StatusUpdate{
			Status:      domain.Status(req.Status),
			PitchedType: domain.Track(req.PitchedType),
			PaymentType: domain.PaymentCode(req.PaymentType),
			CallLaterAt: req.CallLaterAt,
			CallNotes:   req.CallNotes,
		},
		Actor: middleware.Actor(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		ID: c.Param("id"),
		Target: domain.RescheduleTarget{
			Date:        parseDay(req.Date, h.loc),
			Time:        req.Time,
			SalesPerson: req.SalesPerson,
		},
		Force: req.Force,
		Actor: middleware.Actor(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// CLEAR SLOT
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), middleware.Actor(c)); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	day, ok := queryDay(c, h.loc)
	if !ok {
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}
