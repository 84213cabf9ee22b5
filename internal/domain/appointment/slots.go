package appointment

import (
	"fmt"
	"time"
)

const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"

	SlotMinutes = 30

	firstSlotHour = 9
	lastSlotHour  = 21
)

// CreateTimeSlots returns the bookable half-hour slots of a working day,
// 09:00 up to but excluding 21:00.
func CreateTimeSlots() []string {
	slots := make([]string, 0, (lastSlotHour-firstSlotHour)*2)
	for hour := firstSlotHour; hour < lastSlotHour; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// CountSlotsBetweenTimes is floor((end-start)/30min). Unparseable bounds
// count as zero.
func CountSlotsBetweenTimes(start, end string) int {
	s, ok1 := minutesOfDay(start)
	e, ok2 := minutesOfDay(end)
	if !ok1 || !ok2 {
		return 0
	}
	total := e - s
	if total <= 0 {
		return 0
	}
	return total / SlotMinutes
}

// IsSlotTime reports whether t is one of the slots produced by CreateTimeSlots.
func IsSlotTime(t string) bool {
	m, ok := minutesOfDay(t)
	if !ok || m%SlotMinutes != 0 {
		return false
	}
	return m >= firstSlotHour*60 && m < lastSlotHour*60
}

// ===============================
// Calendar days
// ===============================

// DayKey formats the calendar day of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// SameDay compares calendar days, each in its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ===============================
// Unavailable slots
// ===============================

// SlotKey identifies one salesperson slot on one day.
type SlotKey struct {
	SalesPerson string `json:"sales_person"`
	Time        string `json:"time"`
	Day         string `json:"date"`
}

func NewSlotKey(salesPerson, slot string, day time.Time) SlotKey {
	return SlotKey{SalesPerson: salesPerson, Time: slot, Day: DayKey(day)}
}

func (k SlotKey) String() string {
	return k.SalesPerson + "-" + k.Time + "-" + k.Day
}

// UnavailableSlots marks slots a manager closed for booking. A nil map is empty.
type UnavailableSlots map[SlotKey]bool

func (u UnavailableSlots) IsUnavailable(k SlotKey) bool {
	return u[k]
}

// CountForDay counts the slots marked unavailable on day.
func (u UnavailableSlots) CountForDay(day time.Time) int {
	key := DayKey(day)
	n := 0
	for k, marked := range u {
		if marked && k.Day == key {
			n++
		}
	}
	return n
}
