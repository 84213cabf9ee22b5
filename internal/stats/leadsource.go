package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// TrackFunnel is one product track within a lead source.
type TrackFunnel struct {
	Scheduled   int    `json:"scheduled"`
	ShowUp      int    `json:"show_up"`
	DidntShowUp int    `json:"didnt_show_up"`
	ShowUpRate  string `json:"show_up_rate"`
	Pitched     int    `json:"pitched"`
	Paid        int    `json:"paid"`
	ClosingRate string `json:"closing_rate"`
	Revenue     int    `json:"revenue"`
}

func (f TrackFunnel) add(o TrackFunnel) TrackFunnel {
	f.Scheduled += o.Scheduled
	f.ShowUp += o.ShowUp
	f.DidntShowUp += o.DidntShowUp
	f.Pitched += o.Pitched
	f.Paid += o.Paid
	f.Revenue += o.Revenue
	return f.withRates()
}

func (f TrackFunnel) withRates() TrackFunnel {
	f.ShowUpRate = FormatRate(f.ShowUp, f.Scheduled)
	f.ClosingRate = FormatRate(f.Paid, f.Pitched)
	return f
}

type LeadSource struct {
	Source   appointment.LeadSource `json:"source"`
	Label    string                 `json:"label"`
	Stats10K TrackFunnel            `json:"stats_10k"`
	Stats20K TrackFunnel            `json:"stats_20k"`
	// Appointments is the (date, source) sublist, rescheduled records
	// included, kept for drill-down views.
	Appointments []appointment.Appointment `json:"appointments"`
}

type LeadSourceReport struct {
	Sources []LeadSource `json:"sources"`
	Total   LeadSource   `json:"total"`
}

// LeadSourceStats computes show-up, pitch and close figures on the full
// (date, source) list. Only Scheduled excludes superseded records.
func LeadSourceStats(
	apps []appointment.Appointment,
	source appointment.LeadSource,
	date time.Time,
) LeadSource {
	return leadSourceFromSnapshot(newSnapshot(apps, date), source)
}

func leadSourceFromSnapshot(s snapshot, source appointment.LeadSource) LeadSource {
	mine := filter(s.day, func(a appointment.Appointment) bool {
		return a.LeadSource == source
	})
	return LeadSource{
		Source:       source,
		Label:        source.Label(),
		Stats10K:     trackFunnel(s, mine, appointment.Track10K),
		Stats20K:     trackFunnel(s, mine, appointment.Track20K),
		Appointments: mine,
	}
}

func trackFunnel(s snapshot, apps []appointment.Appointment, t appointment.Track) TrackFunnel {
	var f TrackFunnel
	for _, a := range apps {
		if a.InitialPitch == t {
			if s.scheduled(a) {
				f.Scheduled++
			}
			if a.Status.IsShowUp() {
				f.ShowUp++
			}
			if a.Status.IsNoShow() {
				f.DidntShowUp++
			}
		}
		if a.PitchedOn(t) {
			f.Pitched++
		}
		if paidOnTrack(a, t) {
			f.Paid++
			f.Revenue += t.Amount(a.Payment.Code)
		}
	}
	return f.withRates()
}

// BuildLeadSourceReport covers every configured source plus a total row
// whose rates are recomputed from the summed counts.
func BuildLeadSourceReport(
	apps []appointment.Appointment,
	cfg Config,
	date time.Time,
) LeadSourceReport {
	return leadSourceReportFromSnapshot(newSnapshot(apps, date), cfg)
}

func leadSourceReportFromSnapshot(s snapshot, cfg Config) LeadSourceReport {
	report := LeadSourceReport{
		Total: LeadSource{
			Label:    "Total",
			Stats10K: TrackFunnel{}.withRates(),
			Stats20K: TrackFunnel{}.withRates(),
		},
	}
	for _, src := range cfg.LeadSources {
		ls := leadSourceFromSnapshot(s, src)
		report.Sources = append(report.Sources, ls)
		report.Total.Stats10K = report.Total.Stats10K.add(ls.Stats10K)
		report.Total.Stats20K = report.Total.Stats20K.add(ls.Stats20K)
	}
	return report
}

// Revenue is the source's revenue over both tracks.
func (l LeadSource) Revenue() int {
	return l.Stats10K.Revenue + l.Stats20K.Revenue
}

func (l LeadSource) DidntShowUp() int {
	return l.Stats10K.DidntShowUp + l.Stats20K.DidntShowUp
}
