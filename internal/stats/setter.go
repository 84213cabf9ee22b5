package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// Setter is the funnel of the appointments one setter booked on a day.
type Setter struct {
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Rescheduled int    `json:"rescheduled"`

	Initial10K int `json:"initial_10k"`
	Initial20K int `json:"initial_20k"`
	Pitched10K int `json:"pitched_10k"`
	Pitched20K int `json:"pitched_20k"`

	Payments10K Histogram `json:"payments_10k"`
	Payments20K Histogram `json:"payments_20k"`
	Revenue     int       `json:"revenue"`

	Converted int `json:"converted"`
	// Converted10K and Converted20K only count sales closed on the track the
	// setter booked, so upgrades and downgrades are excluded.
	Converted10K int `json:"converted_10k"`
	Converted20K int `json:"converted_20k"`

	DidntPick        int `json:"didnt_pick"`
	NoShow           int `json:"no_show"`
	WronglyQualified int `json:"wrongly_qualified"`
	WrongNumber      int `json:"wrong_number"`

	DepositPaid   int `json:"deposit_paid"`
	DepositUnpaid int `json:"deposit_unpaid"`

	ConversionRate string `json:"conversion_rate"`
	Rate10K        string `json:"rate_10k"`
	Rate20K        string `json:"rate_20k"`
}

// SetterStats aggregates the active appointments setter booked on date.
// Rescheduled records only feed the Rescheduled counter.
func SetterStats(apps []appointment.Appointment, setter string, date time.Time) Setter {
	return setterFromSnapshot(newSnapshot(apps, date), setter)
}

func setterFromSnapshot(s snapshot, setter string) Setter {
	bySetter := func(a appointment.Appointment) bool { return a.SetterName == setter }
	active := filter(s.active, bySetter)

	out := Setter{
		Name:        setter,
		Total:       len(active),
		Rescheduled: count(s.rescheduled, bySetter),
		Initial10K:  count(active, initialTrack(appointment.Track10K)),
		Initial20K:  count(active, initialTrack(appointment.Track20K)),
		Payments10K: trackHistogram(appointment.Track10K),
		Payments20K: trackHistogram(appointment.Track20K),
	}

	for _, a := range active {
		if a.PitchedOn(appointment.Track10K) {
			out.Pitched10K++
		}
		if a.PitchedOn(appointment.Track20K) {
			out.Pitched20K++
		}

		switch a.Status {
		case appointment.StatusPaid:
			out.Converted++
		case appointment.StatusDidntPick:
			out.DidntPick++
		case appointment.StatusWronglyQualified:
			out.WronglyQualified++
		case appointment.StatusWrongNumber:
			out.WrongNumber++
		}
		if a.Status.IsNoShow() {
			out.NoShow++
		}

		t, ok := a.PitchedTrack()
		if !ok || !paidOnTrack(a, t) {
			continue
		}
		hist := out.Payments10K
		if t == appointment.Track20K {
			hist = out.Payments20K
		}
		hist[a.Payment.Code]++
		out.Revenue += a.Payment.Amount()

		if a.InitialPitch == t {
			if t == appointment.Track10K {
				out.Converted10K++
			} else {
				out.Converted20K++
			}
		}
	}

	out.DepositPaid, out.DepositUnpaid = deposits(active)

	out.ConversionRate = FormatRate(out.Converted, out.Total)
	out.Rate10K = FormatRate(out.Converted10K, out.Initial10K)
	out.Rate20K = FormatRate(out.Converted20K, out.Initial20K)
	return out
}

// trackHistogram has every code of t present at zero.
func trackHistogram(t appointment.Track) Histogram {
	h := make(Histogram)
	for _, code := range t.PaymentCodes() {
		h[code] = 0
	}
	return h
}
