package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

// ======================================================
// GRID
// ======================================================

type Cell struct {
	SalesPerson string              `json:"sales_person"`
	Working     bool                `json:"working"`
	Unavailable bool                `json:"unavailable"`
	Appointment *domain.Appointment `json:"appointment,omitempty"`
	StatusColor string              `json:"status_color,omitempty"`
	Superseded  []string            `json:"superseded,omitempty"`
}

type Row struct {
	Time  string `json:"time"`
	Cells []Cell `json:"cells"`
}

type Grid struct {
	Date        string               `json:"date"`
	SalesPeople []domain.SalesPerson `json:"sales_people"`
	Rows        []Row                `json:"rows"`
}

// ======================================================
// USE CASE
// ======================================================

type GetCalendar struct {
	repo  domain.Repository
	sales *config.Sales
}

func NewGetCalendar(repo domain.Repository, sales *config.Sales) *GetCalendar {
	return &GetCalendar{repo: repo, sales: sales}
}

func (uc *GetCalendar) Execute(ctx context.Context, date time.Time) (*Grid, error) {
	day, err := LoadDay(ctx, uc.repo, uc.sales, date)
	if err != nil {
		return nil, err
	}
	return BuildGrid(day), nil
}

// BuildGrid lays the day out as slots × salespeople. Rescheduled records
// stay listed under their old cell by id.
func BuildGrid(day *Day) *Grid {
	g := &Grid{
		Date:        domain.DayKey(day.Date),
		SalesPeople: day.Roster,
	}

	for _, slot := range domain.CreateTimeSlots() {
		row := Row{Time: slot, Cells: make([]Cell, 0, len(day.Roster))}

		for _, p := range day.Roster {
			cell := Cell{
				SalesPerson: p.Name,
				Working:     p.Covers(slot),
				Unavailable: day.Unavailable.IsUnavailable(domain.NewSlotKey(p.Name, slot, day.Date)),
			}
			for i := range day.Appointments {
				ap := &day.Appointments[i]
				if ap.SalesPerson != p.Name || ap.Time != slot {
					continue
				}
				if !ap.IsActive() {
					cell.Superseded = append(cell.Superseded, ap.ID)
					continue
				}
				if cell.Appointment == nil {
					cell.Appointment = ap
					cell.StatusColor = ap.Status.Color()
				}
			}
			row.Cells = append(row.Cells, cell)
		}

		g.Rows = append(g.Rows, row)
	}

	return g
}
