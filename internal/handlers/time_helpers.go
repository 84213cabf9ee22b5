package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/timezone"
)

// queryDay reads ?date=YYYY-MM-DD as midnight in loc; a missing date means
// today. On failure the 400 is already written.
func queryDay(c *gin.Context, loc *time.Location) (time.Time, bool) {
	day, err := timezone.DayOrToday(c.Query("date"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return time.Time{}, false
	}
	return day, true
}

// parseDay reads a date already checked by the "day" binding tag.
func parseDay(s string, loc *time.Location) time.Time {
	day, _ := timezone.ParseDay(s, loc)
	return day
}
