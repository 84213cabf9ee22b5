package stats

import (
	"math"
	"strconv"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// FormatRate renders num/den as a percentage with one decimal place,
// rounding halves away from zero. A zero denominator yields "0.0".
func FormatRate(num, den int) string {
	if den == 0 {
		return "0.0"
	}
	sign := ""
	if (num < 0) != (den < 0) && num != 0 {
		sign = "-"
	}
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	tenths := (num*2000 + den) / (2 * den)
	return sign + strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10)
}

// Histogram counts payments by code.
type Histogram map[appointment.PaymentCode]int

// newHistogram returns a histogram with every known code present at zero.
func newHistogram() Histogram {
	h := make(Histogram, len(appointment.PaymentCodes()))
	for _, code := range appointment.PaymentCodes() {
		h[code] = 0
	}
	return h
}

// RevenueFromHistogram is the sum of count × amount. Unknown codes add 0.
func RevenueFromHistogram(h Histogram) int {
	total := 0
	for code, n := range h {
		total += n * code.Amount()
	}
	return total
}

// TrackRevenue sums only the codes owned by t.
func TrackRevenue(h Histogram, t appointment.Track) int {
	total := 0
	for code, n := range h {
		total += n * t.Amount(code)
	}
	return total
}

// PersonARP is the average revenue per pitch on one track, rounded to the
// nearest rupee.
func PersonARP(h Histogram, t appointment.Track, pitched int) int {
	if pitched == 0 {
		return 0
	}
	return roundDiv(TrackRevenue(h, t), pitched)
}

func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den)))
}
