package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

type RosterEntry struct {
	domain.SalesPerson
	Capacity int `json:"capacity"`
}

type Roster struct {
	Date       string        `json:"date"`
	Saved      bool          `json:"saved"`
	TotalSlots int           `json:"total_slots"`
	People     []RosterEntry `json:"people"`
}

func newRoster(day time.Time, people []domain.SalesPerson, saved bool) *Roster {
	out := &Roster{
		Date:       domain.DayKey(day),
		Saved:      saved,
		TotalSlots: domain.TotalCapacity(people),
		People:     make([]RosterEntry, 0, len(people)),
	}
	for _, p := range people {
		out.People = append(out.People, RosterEntry{SalesPerson: p, Capacity: p.Capacity()})
	}
	return out
}

type GetRoster struct {
	repo  domain.Repository
	sales *config.Sales
}

func NewGetRoster(repo domain.Repository, sales *config.Sales) *GetRoster {
	return &GetRoster{repo: repo, sales: sales}
}

func (uc *GetRoster) Execute(ctx context.Context, day time.Time) (*Roster, error) {
	people, saved, err := LoadRoster(ctx, uc.repo, uc.sales, day)
	if err != nil {
		return nil, err
	}
	return newRoster(day, people, saved), nil
}
