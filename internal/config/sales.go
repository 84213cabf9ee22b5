package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
)

// BlockedSlot is closed for booking on every day.
type BlockedSlot struct {
	SalesPerson string `yaml:"sales_person"`
	Time        string `yaml:"time"`
}

// Sales is the team layout: who sets, who closes and when, and which
// slots are closed by default.
type Sales struct {
	stats.Config `yaml:",inline"`

	Roster  []appointment.SalesPerson `yaml:"roster"`
	Blocked []BlockedSlot             `yaml:"blocked_slots"`
}

func defaultRoster() []appointment.SalesPerson {
	return []appointment.SalesPerson{
		{Name: "Harsha", StartTime: "11:00", EndTime: "20:00", IsPresent: true},
		{Name: "Mani", StartTime: "11:00", EndTime: "19:00", IsPresent: true},
		{Name: "Monish", StartTime: "17:00", EndTime: "21:00", IsPresent: true},
		{Name: "Pranav", StartTime: "09:30", EndTime: "14:00", IsPresent: true},
		{Name: "Tamil", StartTime: "11:00", EndTime: "20:00", IsPresent: true},
	}
}

func DefaultSales() *Sales {
	return &Sales{
		Config: stats.DefaultConfig(),
		Roster: defaultRoster(),
	}
}

// LoadSales reads the YAML team layout. A missing file yields the defaults;
// sections left out of the file fall back individually.
func LoadSales(path string) (*Sales, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSales(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sales config %s: %w", path, err)
	}
	return ParseSales(data)
}

func ParseSales(data []byte) (*Sales, error) {
	var s Sales
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse sales config: %w", err)
	}
	s.Config = s.Config.WithDefaults()
	if len(s.Roster) == 0 {
		s.Roster = defaultRoster()
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sales) validate() error {
	for _, src := range s.LeadSources {
		if !src.Valid() {
			return fmt.Errorf("sales config: unknown lead source %q", src)
		}
	}
	for _, q := range s.LeadQualities {
		if !q.Valid() {
			return fmt.Errorf("sales config: unknown lead quality %q", q)
		}
	}
	seen := make(map[string]bool)
	for _, p := range s.Roster {
		if p.Name == "" {
			return errors.New("sales config: roster entry without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("sales config: duplicate roster entry %q", p.Name)
		}
		seen[p.Name] = true
		if appointment.CountSlotsBetweenTimes(p.StartTime, p.EndTime) == 0 {
			return fmt.Errorf("sales config: %s has no bookable hours", p.Name)
		}
	}
	for _, b := range s.Blocked {
		if !appointment.IsSlotTime(b.Time) {
			return fmt.Errorf("sales config: blocked slot %q is not a slot time", b.Time)
		}
	}
	return nil
}

// RosterCopy returns the default roster, safe to modify.
func (s *Sales) RosterCopy() []appointment.SalesPerson {
	out := make([]appointment.SalesPerson, len(s.Roster))
	copy(out, s.Roster)
	return out
}

// BlockedFor expands the daily blocked slots for one day.
func (s *Sales) BlockedFor(day string) appointment.UnavailableSlots {
	out := make(appointment.UnavailableSlots, len(s.Blocked))
	for _, b := range s.Blocked {
		out[appointment.SlotKey{SalesPerson: b.SalesPerson, Time: b.Time, Day: day}] = true
	}
	return out
}

func (s *Sales) IsSetter(name string) bool {
	for _, n := range s.Setters {
		if n == name {
			return true
		}
	}
	return false
}
