package appointment

import (
	"strconv"
	"strings"
)

// SalesPerson is a roster entry for one calendar day. Attendance is stored
// per date, so the same person can be present one day and absent the next.
type SalesPerson struct {
	Name      string `json:"name" yaml:"name"`
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time" yaml:"end_time"`
	IsPresent bool   `json:"is_present" yaml:"is_present"`
}

// Capacity is the number of bookable half-hour slots the person offers.
// Absent people offer none.
func (p SalesPerson) Capacity() int {
	if !p.IsPresent {
		return 0
	}
	return CountSlotsBetweenTimes(p.StartTime, p.EndTime)
}

// Covers reports whether slot falls inside the person's working hours
// [start, end) on a day they are present.
func (p SalesPerson) Covers(slot string) bool {
	if !p.IsPresent {
		return false
	}
	m, ok := minutesOfDay(slot)
	if !ok {
		return false
	}
	start, ok1 := minutesOfDay(p.StartTime)
	end, ok2 := minutesOfDay(p.EndTime)
	if !ok1 || !ok2 {
		return false
	}
	return m >= start && m < end
}

// TotalCapacity sums the capacity of every present salesperson.
func TotalCapacity(roster []SalesPerson) int {
	total := 0
	for _, p := range roster {
		total += p.Capacity()
	}
	return total
}

// FindSalesPerson returns the roster entry with the given name.
func FindSalesPerson(roster []SalesPerson, name string) (SalesPerson, bool) {
	for _, p := range roster {
		if p.Name == name {
			return p, true
		}
	}
	return SalesPerson{}, false
}

// minutesOfDay parses "HH:MM" into minutes after midnight.
func minutesOfDay(hm string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(hm), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
