package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// Unclassified counts records carrying values outside the closed
// enumerations. Lead quality is optional, so an empty one is not counted. Those records are still dropped from the buckets the value
// would have fed; this only makes the drop visible.
type Unclassified struct {
	Status       int `json:"status"`
	InitialPitch int `json:"initial_pitch"`
	LeadSource   int `json:"lead_source"`
	LeadQuality  int `json:"lead_quality"`
	Payment      int `json:"payment"`
}

func (u Unclassified) Total() int {
	return u.Status + u.InitialPitch + u.LeadSource + u.LeadQuality + u.Payment
}

func countUnclassified(apps []appointment.Appointment) Unclassified {
	var u Unclassified
	for _, a := range apps {
		if !a.Status.Valid() {
			u.Status++
		}
		if !a.InitialPitch.Valid() {
			u.InitialPitch++
		}
		if !a.LeadSource.Valid() {
			u.LeadSource++
		}
		if a.LeadQuality != "" && !a.LeadQuality.Valid() {
			u.LeadQuality++
		}
		if a.Status == appointment.StatusPaid {
			if a.Payment == nil || !a.Payment.Track.Accepts(a.Payment.Code) {
				u.Payment++
			}
		}
	}
	return u
}

type Summary struct {
	Date        string `json:"date"`
	TotalSlots  int    `json:"total_slots"`
	Booked      int    `json:"booked"`
	Unavailable int    `json:"unavailable"`
	Available   int    `json:"available"`

	StatusCounts map[appointment.Status]int `json:"status_counts"`

	Pitched10K  int `json:"pitched_10k"`
	Pitched20K  int `json:"pitched_20k"`
	Paid        int `json:"paid"`
	ShowUp      int `json:"show_up"`
	NoShow      int `json:"no_show"`
	Rescheduled int `json:"rescheduled"`

	Payments       Histogram                 `json:"payments"`
	TotalRevenue   int                       `json:"total_revenue"`
	RevenueByTrack map[appointment.Track]int `json:"revenue_by_track"`

	// ConversionRate is paid over every record on the day.
	ConversionRate string `json:"conversion_rate"`

	Unclassified Unclassified `json:"unclassified"`
}

// BuildSummary computes the day's headline figures. Available is capacity
// minus active bookings minus slots marked unavailable for the day; the
// raw record count never enters it.
func BuildSummary(
	apps []appointment.Appointment,
	roster []appointment.SalesPerson,
	date time.Time,
	unavailable appointment.UnavailableSlots,
) Summary {
	return summaryFromSnapshot(newSnapshot(apps, date), roster, date, unavailable)
}

func summaryFromSnapshot(
	s snapshot,
	roster []appointment.SalesPerson,
	date time.Time,
	unavailable appointment.UnavailableSlots,
) Summary {
	out := Summary{
		Date:           appointment.DayKey(date),
		TotalSlots:     appointment.TotalCapacity(roster),
		Booked:         len(s.active),
		Unavailable:    unavailable.CountForDay(date),
		StatusCounts:   make(map[appointment.Status]int),
		Payments:       newHistogram(),
		RevenueByTrack: make(map[appointment.Track]int),
		Rescheduled:    len(s.rescheduled),
		Unclassified:   countUnclassified(s.day),
	}
	out.Available = out.TotalSlots - out.Booked - out.Unavailable

	for _, st := range appointment.Statuses() {
		out.StatusCounts[st] = 0
	}
	for _, t := range appointment.Tracks() {
		out.RevenueByTrack[t] = 0
	}

	for _, a := range s.day {
		if a.Status.Valid() {
			out.StatusCounts[a.Status]++
		}
		switch {
		case a.Status.IsShowUp():
			out.ShowUp++
		case a.Status.IsNoShow():
			out.NoShow++
		}
		if a.Status == appointment.StatusPaid {
			out.Paid++
		}
	}

	for _, a := range s.active {
		if a.PitchedOn(appointment.Track10K) {
			out.Pitched10K++
		}
		if a.PitchedOn(appointment.Track20K) {
			out.Pitched20K++
		}
		if code := a.PaymentCode(); code.Valid() {
			out.Payments[code]++
		}
		if t, ok := a.PitchedTrack(); ok && paidOnTrack(a, t) {
			out.RevenueByTrack[t] += t.Amount(a.Payment.Code)
		}
	}

	out.TotalRevenue = RevenueFromHistogram(out.Payments)
	out.ConversionRate = FormatRate(out.Paid, len(s.day))
	return out
}
