// Package stats folds an appointment snapshot into funnel statistics.
//
// Every function here is pure: it reads the slice it is given, never
// mutates it, and returns the same output for the same input. There is no
// incremental state; callers recompute from the full snapshot on every
// change.
package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// Config names the fixed groupings reports are sliced by.
type Config struct {
	Setters       []string                  `json:"setters" yaml:"setters"`
	LeadSources   []appointment.LeadSource  `json:"lead_sources" yaml:"lead_sources"`
	LeadQualities []appointment.LeadQuality `json:"lead_qualities" yaml:"lead_qualities"`
}

var defaultSetters = []string{
	"Vicky",
	"Vikneswar",
	"Hemaanth",
	"Harneesh",
	"Hitesh",
	"Kumaran",
	"Sethu",
	"Prasanna",
	"Sales Person",
}

func DefaultConfig() Config {
	return Config{
		Setters: append([]string(nil), defaultSetters...),
		LeadSources: []appointment.LeadSource{
			appointment.LeadSourceAds,
			appointment.LeadSourceYouTube,
		},
		LeadQualities: []appointment.LeadQuality{
			appointment.LeadQualityBest,
			appointment.LeadQualityGood,
			appointment.LeadQualityAverage,
		},
	}
}

// WithDefaults fills empty groupings from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if len(c.Setters) == 0 {
		c.Setters = d.Setters
	}
	if len(c.LeadSources) == 0 {
		c.LeadSources = d.LeadSources
	}
	if len(c.LeadQualities) == 0 {
		c.LeadQualities = d.LeadQualities
	}
	return c
}

// Input is the context a dashboard is computed in.
type Input struct {
	Config      Config
	Roster      []appointment.SalesPerson
	Date        time.Time
	Unavailable appointment.UnavailableSlots
}
