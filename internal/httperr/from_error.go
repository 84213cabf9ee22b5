package httperr

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// messages for the business codes the API returns most often.
var messages = map[string]string{
	"appointment_not_found": "Appointment not found.",
	"already_rescheduled":   "Appointment was already rescheduled.",
	"slot_taken":            "Slot already has an appointment.",
	"slot_unavailable":      "Slot is marked unavailable; resend with force to book it anyway.",
	"slot_always_blocked":   "Slot is blocked in the sales config.",
	"unknown_sales_person":  "Salesperson is not on the roster.",
	"unknown_setter":        "Setter is not on the team.",
	"invalid_time":          "Time is not a bookable slot.",
	"invalid_status":        "Unknown status.",
	"invalid_state":         "Appointment cannot change status.",
	"use_reschedule":        "Use the reschedule action instead.",
	"payment_type_mismatch": "Payment type does not belong to the pitched track.",
}

// FromError writes err as JSON: business errors are 400, or 404 when the
// code ends in _not_found; everything else is a 500 with a generic body.
func FromError(c *gin.Context, err error) {
	code, ok := CodeOf(err)
	if !ok {
		_ = c.Error(err)
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg, ok := messages[code]
	if !ok {
		msg = strings.ReplaceAll(code, "_", " ")
	}
	Business(c, code, msg)
}
