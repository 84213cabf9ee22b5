package stats

import (
	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// Dashboard is every report for one day, computed from one snapshot.
type Dashboard struct {
	Date          string            `json:"date"`
	Summary       Summary           `json:"summary"`
	Setters       []Setter          `json:"setters"`
	SalesPeople   []SalesPerson     `json:"sales_people"`
	LeadSources   LeadSourceReport  `json:"lead_sources"`
	LeadQualities LeadQualityReport `json:"lead_qualities"`
}

func Build(apps []appointment.Appointment, in Input) Dashboard {
	cfg := in.Config.WithDefaults()
	s := newSnapshot(apps, in.Date)

	d := Dashboard{
		Date:          appointment.DayKey(in.Date),
		Summary:       summaryFromSnapshot(s, in.Roster, in.Date, in.Unavailable),
		LeadSources:   leadSourceReportFromSnapshot(s, cfg),
		LeadQualities: leadQualityReportFromSnapshot(s, cfg),
	}
	for _, name := range cfg.Setters {
		d.Setters = append(d.Setters, setterFromSnapshot(s, name))
	}
	for _, p := range in.Roster {
		sp := salesPersonFromSnapshot(s, p.Name)
		sp.IsPresent = p.IsPresent
		sp.Capacity = p.Capacity()
		d.SalesPeople = append(d.SalesPeople, sp)
	}
	return d
}
