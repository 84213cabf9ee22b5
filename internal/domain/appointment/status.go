package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked           Status = "booked"
	StatusPicked           Status = "picked"
	StatusDidntPick        Status = "didnt_pick"
	StatusCallLater        Status = "call_later"
	StatusWillJoinLater    Status = "will_join_later"
	StatusGhosted          Status = "ghosted"
	StatusPitched10K       Status = "5k_pitched"
	StatusPitched20K       Status = "20k_pitched"
	StatusRescheduled      Status = "rescheduled"
	StatusWronglyQualified Status = "wrongly_qualified"
	StatusWrongNumber      Status = "wrong_number"
	StatusPaid             Status = "paid"
)

var allStatuses = []Status{
	StatusBooked,
	StatusPitched10K,
	StatusPitched20K,
	StatusPicked,
	StatusDidntPick,
	StatusWillJoinLater,
	StatusGhosted,
	StatusCallLater,
	StatusRescheduled,
	StatusWronglyQualified,
	StatusWrongNumber,
	StatusPaid,
}

var statusLabels = map[Status]string{
	StatusPicked:           "Picked",
	StatusDidntPick:        "Didn't Pick",
	StatusCallLater:        "Call Later",
	StatusWillJoinLater:    "Will Join Later",
	StatusGhosted:          "Ghosted",
	StatusPitched10K:       "5K Pitched",
	StatusPitched20K:       "20K Pitched",
	StatusBooked:           "Booked",
	StatusRescheduled:      "Rescheduled",
	StatusWronglyQualified: "Wrongly Qualified",
	StatusWrongNumber:      "Wrong Number",
	StatusPaid:             "Paid",
}

var statusColors = map[Status]string{
	StatusPicked:           "bg-purple-500",
	StatusDidntPick:        "bg-red-500",
	StatusCallLater:        "bg-blue-500",
	StatusWillJoinLater:    "bg-pink-500",
	StatusGhosted:          "bg-indigo-500",
	StatusPitched10K:       "bg-cyan-500",
	StatusPitched20K:       "bg-teal-500",
	StatusBooked:           "bg-orange-400",
	StatusRescheduled:      "bg-amber-500",
	StatusWronglyQualified: "bg-red-300",
	StatusWrongNumber:      "bg-gray-500",
	StatusPaid:             "bg-green-500",
}

const defaultStatusColor = "bg-gray-400"

// ===============================
// Show-up classification
// ===============================

// Statuses where the lead attended the call. Disjoint from noShowStatuses;
// booked belongs to neither.
var showUpStatuses = map[Status]bool{
	StatusPicked:           true,
	StatusPitched10K:       true,
	StatusPitched20K:       true,
	StatusWillJoinLater:    true,
	StatusGhosted:          true,
	StatusWronglyQualified: true,
	StatusPaid:             true,
}

// rescheduled counts as a no-show wherever the full list is classified.
var noShowStatuses = map[Status]bool{
	StatusDidntPick:   true,
	StatusCallLater:   true,
	StatusRescheduled: true,
	StatusWrongNumber: true,
}

// Statuses returns every status in the order the status form lists them.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func ShowUpStatuses() []Status {
	return filterStatuses(showUpStatuses)
}

func NoShowStatuses() []Status {
	return filterStatuses(noShowStatuses)
}

func filterStatuses(set map[Status]bool) []Status {
	var out []Status
	for _, s := range allStatuses {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, or the raw code when unknown.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultStatusColor
}

func (s Status) IsShowUp() bool {
	return showUpStatuses[s]
}

func (s Status) IsNoShow() bool {
	return noShowStatuses[s]
}

// PitchTrack maps a pitched status to its track.
func (s Status) PitchTrack() (Track, bool) {
	switch s {
	case StatusPitched10K:
		return Track10K, true
	case StatusPitched20K:
		return Track20K, true
	}
	return "", false
}

// ===============================
// Provenance enums
// ===============================

type LeadSource string

const (
	LeadSourceAds     LeadSource = "ads"
	LeadSourceYouTube LeadSource = "youtube"
)

func (l LeadSource) Valid() bool {
	return l == LeadSourceAds || l == LeadSourceYouTube
}

func (l LeadSource) Label() string {
	switch l {
	case LeadSourceAds:
		return "Meta Ads"
	case LeadSourceYouTube:
		return "YouTube"
	}
	return string(l)
}

type LeadQuality string

const (
	LeadQualityBest    LeadQuality = "best"
	LeadQualityGood    LeadQuality = "good"
	LeadQualityAverage LeadQuality = "average"
)

func (q LeadQuality) Valid() bool {
	switch q {
	case LeadQualityBest, LeadQualityGood, LeadQualityAverage:
		return true
	}
	return false
}

// DepositState records whether the small booking deposit was collected.
type DepositState string

const (
	DepositPaid   DepositState = "paid"
	DepositUnpaid DepositState = "unpaid"
)

func (d DepositState) Valid() bool {
	return d == DepositPaid || d == DepositUnpaid
}
