package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// snapshot is the shared preprocessing every aggregator starts from.
type snapshot struct {
	// day holds every record on the selected date, rescheduled included.
	day         []appointment.Appointment
	active      []appointment.Appointment
	rescheduled []appointment.Appointment
	// parents marks ids that some record was rescheduled into, across the
	// whole input and not just the selected day.
	parents map[string]bool
}

func newSnapshot(apps []appointment.Appointment, date time.Time) snapshot {
	s := snapshot{parents: parentSet(apps)}
	for _, a := range apps {
		if !appointment.SameDay(a.Date, date) {
			continue
		}
		s.day = append(s.day, a)
		if a.IsActive() {
			s.active = append(s.active, a)
		} else {
			s.rescheduled = append(s.rescheduled, a)
		}
	}
	return s
}

func parentSet(apps []appointment.Appointment) map[string]bool {
	parents := make(map[string]bool)
	for _, a := range apps {
		if a.ParentID != "" {
			parents[a.ParentID] = true
		}
	}
	return parents
}

// scheduled is true for records that are neither rescheduled nor the origin
// of a later record.
func (s snapshot) scheduled(a appointment.Appointment) bool {
	return a.IsActive() && !s.parents[a.ID]
}

func filter(
	apps []appointment.Appointment,
	keep func(appointment.Appointment) bool,
) []appointment.Appointment {
	var out []appointment.Appointment
	for _, a := range apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func count(
	apps []appointment.Appointment,
	match func(appointment.Appointment) bool,
) int {
	n := 0
	for _, a := range apps {
		if match(a) {
			n++
		}
	}
	return n
}

func hasStatus(s appointment.Status) func(appointment.Appointment) bool {
	return func(a appointment.Appointment) bool { return a.Status == s }
}

func initialTrack(t appointment.Track) func(appointment.Appointment) bool {
	return func(a appointment.Appointment) bool { return a.InitialPitch == t }
}

// paidOnTrack also requires the code to belong to the track.
func paidOnTrack(a appointment.Appointment, t appointment.Track) bool {
	return a.PaidOn(t) && t.Accepts(a.Payment.Code)
}

func deposits(apps []appointment.Appointment) (paid, unpaid int) {
	for _, a := range apps {
		switch a.InitialPayment {
		case appointment.DepositPaid:
			paid++
		case appointment.DepositUnpaid:
			unpaid++
		}
	}
	return paid, unpaid
}
