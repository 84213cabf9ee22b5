package appointment

// ===============================
// Product tracks
// ===============================

// Track is the product tier proposed to a lead. The 10K track keeps the
// historical "5k_pitched" code stored on existing records.
type Track string

const (
	Track10K Track = "5k_pitched"
	Track20K Track = "20k_pitched"
)

func Tracks() []Track {
	return []Track{Track10K, Track20K}
}

func (t Track) Valid() bool {
	return t == Track10K || t == Track20K
}

func (t Track) Label() string {
	switch t {
	case Track10K:
		return "10K"
	case Track20K:
		return "20K"
	}
	return string(t)
}

// PitchedStatus is the status recorded when this track is pitched.
func (t Track) PitchedStatus() Status {
	return Status(t)
}

// ===============================
// Payment codes
// ===============================

type PaymentCode string

const (
	// 10K track. "5k" is the full 10K payment; the code predates the price change.
	Payment10KFull    PaymentCode = "5k"
	Payment10KReduced PaymentCode = "4k"
	Payment10KDeposit PaymentCode = "1k_deposit"
	Payment10KSplit   PaymentCode = "5k_split"

	// 20K track.
	Payment20KFull         PaymentCode = "20k"
	Payment20KReduced      PaymentCode = "15k"
	Payment20KPro          PaymentCode = "10k"
	Payment20KSecond       PaymentCode = "10k_2nd"
	Payment20KSubscription PaymentCode = "6k_sub"
	Payment20KDeposit      PaymentCode = "5k_deposit"
)

type paymentInfo struct {
	track  Track
	amount int
	label  string
}

var paymentTable = map[PaymentCode]paymentInfo{
	Payment10KFull:    {Track10K, 10000, "10K"},
	Payment10KReduced: {Track10K, 9000, "9K"},
	Payment10KDeposit: {Track10K, 1000, "1K Deposit"},
	Payment10KSplit:   {Track10K, 5000, "5K Split"},

	Payment20KFull:         {Track20K, 20000, "20K"},
	Payment20KReduced:      {Track20K, 15000, "15K"},
	Payment20KPro:          {Track20K, 10000, "10K"},
	Payment20KSecond:       {Track20K, 10000, "10K (2nd)"},
	Payment20KSubscription: {Track20K, 6000, "6K Subscription"},
	Payment20KDeposit:      {Track20K, 5000, "5K Deposit"},
}

var trackPayments = map[Track][]PaymentCode{
	Track10K: {Payment10KFull, Payment10KReduced, Payment10KDeposit, Payment10KSplit},
	Track20K: {
		Payment20KFull,
		Payment20KReduced,
		Payment20KPro,
		Payment20KSecond,
		Payment20KSubscription,
		Payment20KDeposit,
	},
}

// PaymentCodes lists every known code, 10K track first.
func PaymentCodes() []PaymentCode {
	var out []PaymentCode
	for _, t := range Tracks() {
		out = append(out, trackPayments[t]...)
	}
	return out
}

// PaymentCodes lists the codes valid for the track.
func (t Track) PaymentCodes() []PaymentCode {
	codes := trackPayments[t]
	out := make([]PaymentCode, len(codes))
	copy(out, codes)
	return out
}

// Accepts reports whether code is a payment variant of this track.
func (t Track) Accepts(code PaymentCode) bool {
	info, ok := paymentTable[code]
	return ok && info.track == t
}

// Amount looks the code up in this track's table only.
func (t Track) Amount(code PaymentCode) int {
	if !t.Accepts(code) {
		return 0
	}
	return paymentTable[code].amount
}

func (p PaymentCode) Valid() bool {
	_, ok := paymentTable[p]
	return ok
}

// Amount is the revenue a single payment of this code contributes.
// Unknown codes contribute 0.
func (p PaymentCode) Amount() int {
	return paymentTable[p].amount
}

func (p PaymentCode) Track() (Track, bool) {
	info, ok := paymentTable[p]
	return info.track, ok
}

func (p PaymentCode) Label() string {
	if info, ok := paymentTable[p]; ok {
		return info.label
	}
	return string(p)
}

// Payment is the final track and payment variant of a paid appointment.
type Payment struct {
	Track Track       `json:"pitched_type"`
	Code  PaymentCode `json:"payment_type"`
}

// Amount uses the pitched track's table, so a code from the other track
// contributes nothing.
func (p Payment) Amount() int {
	return p.Track.Amount(p.Code)
}
