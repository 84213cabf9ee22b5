package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/httpresp"
	"github.com/BruksfildServices01/sales-calendar/internal/middleware"
	ucCalendar "github.com/BruksfildServices01/sales-calendar/internal/usecase/calendar"
)

type CalendarHandler struct {
	loc *time.Location

	grid          *ucCalendar.GetCalendar
	roster        *ucCalendar.GetRoster
	setAttendance *ucCalendar.SetAttendance
	toggleSlot    *ucCalendar.ToggleUnavailable
}

func NewCalendarHandler(
	loc *time.Location,
	grid *ucCalendar.GetCalendar,
	roster *ucCalendar.GetRoster,
	setAttendance *ucCalendar.SetAttendance,
	toggleSlot *ucCalendar.ToggleUnavailable,
) *CalendarHandler {
	return &CalendarHandler{
		loc:           loc,
		grid:          grid,
		roster:        roster,
		setAttendance: setAttendance,
		toggleSlot:    toggleSlot,
	}
}

type AttendanceRequest struct {
	Date      string `json:"date" binding:"required,day"`
	IsPresent *bool  `json:"is_present" binding:"required"`
}

type ToggleSlotRequest struct {
	Date        string `json:"date" binding:"required,day"`
	Time        string `json:"time" binding:"required,slot_time"`
	SalesPerson string `json:"sales_person" binding:"required"`
}

func (h *CalendarHandler) Calendar(c *gin.Context) {
	day, ok := queryDay(c, h.loc)
	if !ok {
		return
	}

	grid, err := h.grid.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, grid)
}

func (h *CalendarHandler) Roster(c *gin.Context) {
	day, ok := queryDay(c, h.loc)
	if !ok {
		return
	}

	roster, err := h.roster.Execute(c.Request.Context(), day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, roster)
}

func (h *CalendarHandler) SetAttendance(c *gin.Context) {
	var req AttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	roster, err := h.setAttendance.Execute(c.Request.Context(), ucCalendar.SetAttendanceInput{
		Date:        parseDay(req.Date, h.loc),
		SalesPerson: c.Param("name"),
		Present:     *req.IsPresent,
		Actor:       middleware.Actor(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, roster)
}

func (h *CalendarHandler) ToggleUnavailable(c *gin.Context) {
	var req ToggleSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.toggleSlot.Execute(c.Request.Context(), ucCalendar.ToggleUnavailableInput{
		Date:        parseDay(req.Date, h.loc),
		Time:        req.Time,
		SalesPerson: req.SalesPerson,
		Actor:       middleware.Actor(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, state)
}
