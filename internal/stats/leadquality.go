package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// Payment columns shown per track in the quality report.
var qualityColumns = map[appointment.Track][]appointment.PaymentCode{
	appointment.Track10K: {
		appointment.Payment10KFull,
		appointment.Payment10KReduced,
		appointment.Payment10KSplit,
		appointment.Payment10KDeposit,
	},
	appointment.Track20K: {
		appointment.Payment20KFull,
		appointment.Payment20KReduced,
		appointment.Payment20KPro,
		appointment.Payment20KDeposit,
		appointment.Payment20KSubscription,
	},
}

// Codes that feed ARP. Deposits are shown as columns but never averaged in.
var arpCodes = map[appointment.Track][]appointment.PaymentCode{
	appointment.Track10K: {
		appointment.Payment10KFull,
		appointment.Payment10KReduced,
		appointment.Payment10KSplit,
	},
	appointment.Track20K: {
		appointment.Payment20KFull,
		appointment.Payment20KReduced,
		appointment.Payment20KPro,
		appointment.Payment20KSubscription,
	},
}

// QualityTrack is one product track within a lead-quality bucket.
type QualityTrack struct {
	Set              int       `json:"set"`
	DidntShow        int       `json:"didnt_show"`
	WronglyQualified int       `json:"wrongly_qualified"`
	Rescheduled      int       `json:"rescheduled"`
	Pitched          int       `json:"pitched"`
	PitchedRate      string    `json:"pitched_rate"`
	Payments         Histogram `json:"payments"`
	ARP              int       `json:"arp"`
}

func newQualityTrack(t appointment.Track) QualityTrack {
	q := QualityTrack{Payments: make(Histogram)}
	for _, code := range qualityColumns[t] {
		q.Payments[code] = 0
	}
	return q
}

func (q QualityTrack) add(o QualityTrack) QualityTrack {
	out := q
	out.Set += o.Set
	out.DidntShow += o.DidntShow
	out.WronglyQualified += o.WronglyQualified
	out.Rescheduled += o.Rescheduled
	out.Pitched += o.Pitched
	out.Payments = make(Histogram, len(q.Payments))
	for code, n := range q.Payments {
		out.Payments[code] = n + o.Payments[code]
	}
	return out
}

func (q QualityTrack) finish(t appointment.Track) QualityTrack {
	q.PitchedRate = FormatRate(q.Pitched, q.Set)
	sum := 0
	for _, code := range arpCodes[t] {
		sum += q.Payments[code] * code.Amount()
	}
	q.ARP = roundDiv(sum, q.Pitched)
	return q
}

type Quality struct {
	Quality  appointment.LeadQuality `json:"quality"`
	Stats10K QualityTrack            `json:"stats_10k"`
	Stats20K QualityTrack            `json:"stats_20k"`
}

type LeadQualityReport struct {
	Qualities []Quality `json:"qualities"`
	Total     Quality   `json:"total"`
}

// didntShowStatuses is narrower than the no-show set: reschedules have their
// own column in the quality report.
var didntShowStatuses = map[appointment.Status]bool{
	appointment.StatusDidntPick:   true,
	appointment.StatusCallLater:   true,
	appointment.StatusWrongNumber: true,
}

// LeadQualityStats works on the full (date, quality) list, rescheduled
// records included.
func LeadQualityStats(
	apps []appointment.Appointment,
	quality appointment.LeadQuality,
	date time.Time,
) Quality {
	return qualityFromSnapshot(newSnapshot(apps, date), quality)
}

func qualityFromSnapshot(s snapshot, quality appointment.LeadQuality) Quality {
	mine := filter(s.day, func(a appointment.Appointment) bool {
		return a.LeadQuality == quality
	})
	return Quality{
		Quality:  quality,
		Stats10K: qualityTrack(mine, appointment.Track10K).finish(appointment.Track10K),
		Stats20K: qualityTrack(mine, appointment.Track20K).finish(appointment.Track20K),
	}
}

func qualityTrack(apps []appointment.Appointment, t appointment.Track) QualityTrack {
	q := newQualityTrack(t)
	for _, a := range apps {
		if a.InitialPitch == t {
			q.Set++
			switch {
			case didntShowStatuses[a.Status]:
				q.DidntShow++
			case a.Status == appointment.StatusWronglyQualified:
				q.WronglyQualified++
			case a.Status == appointment.StatusRescheduled:
				q.Rescheduled++
			}
		}
		if a.PitchedOn(t) {
			q.Pitched++
		}
		if paidOnTrack(a, t) {
			if _, shown := q.Payments[a.Payment.Code]; shown {
				q.Payments[a.Payment.Code]++
			}
		}
	}
	return q
}

func BuildLeadQualityReport(
	apps []appointment.Appointment,
	cfg Config,
	date time.Time,
) LeadQualityReport {
	return leadQualityReportFromSnapshot(newSnapshot(apps, date), cfg)
}

func leadQualityReportFromSnapshot(s snapshot, cfg Config) LeadQualityReport {
	total10K := newQualityTrack(appointment.Track10K)
	total20K := newQualityTrack(appointment.Track20K)

	var report LeadQualityReport
	for _, q := range cfg.LeadQualities {
		qs := qualityFromSnapshot(s, q)
		report.Qualities = append(report.Qualities, qs)
		total10K = total10K.add(qs.Stats10K)
		total20K = total20K.add(qs.Stats20K)
	}
	report.Total = Quality{
		Stats10K: total10K.finish(appointment.Track10K),
		Stats20K: total20K.finish(appointment.Track20K),
	}
	return report
}
