package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/validators"
)

// bindJSON writes a 400 listing the failed fields when the body is invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		msg := "Invalid request body."
		if fields := validators.FieldErrors(err); len(fields) > 0 {
			msg = "Invalid fields: " + strings.Join(fields, ", ")
		}
		httperr.BadRequest(c, "invalid_request", msg)
		return false
	}
	return true
}
