package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// SalesPerson is one closer's day. The payment histogram is the output;
// revenue and ARP are derived from it on demand.
type SalesPerson struct {
	Name       string `json:"name"`
	IsPresent  bool   `json:"is_present"`
	Capacity   int    `json:"capacity"`
	Booked10K  int    `json:"booked_10k"`
	Booked20K  int    `json:"booked_20k"`
	Pitched10K int    `json:"pitched_10k"`
	Pitched20K int    `json:"pitched_20k"`

	Payments Histogram `json:"payments"`

	DepositPaid   int `json:"deposit_paid"`
	DepositUnpaid int `json:"deposit_unpaid"`
}

func SalesPersonStats(apps []appointment.Appointment, name string, date time.Time) SalesPerson {
	return salesPersonFromSnapshot(newSnapshot(apps, date), name)
}

func salesPersonFromSnapshot(s snapshot, name string) SalesPerson {
	mine := filter(s.active, func(a appointment.Appointment) bool {
		return a.SalesPerson == name
	})

	out := SalesPerson{
		Name:      name,
		Booked10K: count(mine, initialTrack(appointment.Track10K)),
		Booked20K: count(mine, initialTrack(appointment.Track20K)),
		Payments:  newHistogram(),
	}
	for _, a := range mine {
		if a.PitchedOn(appointment.Track10K) {
			out.Pitched10K++
		}
		if a.PitchedOn(appointment.Track20K) {
			out.Pitched20K++
		}
		if code := a.PaymentCode(); code.Valid() {
			out.Payments[code]++
		}
	}
	out.DepositPaid, out.DepositUnpaid = deposits(mine)
	return out
}

// Revenue is the person's total from the histogram.
func (p SalesPerson) Revenue() int {
	return RevenueFromHistogram(p.Payments)
}

func (p SalesPerson) ARP(t appointment.Track) int {
	pitched := p.Pitched10K
	if t == appointment.Track20K {
		pitched = p.Pitched20K
	}
	return PersonARP(p.Payments, t, pitched)
}
