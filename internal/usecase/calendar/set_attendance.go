package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

type SetAttendanceInput struct {
	Date        time.Time
	SalesPerson string
	Present     bool
	Actor       string
}

// SetAttendance marks one salesperson present or absent for a single day.
// The first change of a day snapshots the configured roster.
type SetAttendance struct {
	repo    domain.Repository
	sales   *config.Sales
	changes *changes.Recorder
}

func NewSetAttendance(
	repo domain.Repository,
	sales *config.Sales,
	rec *changes.Recorder,
) *SetAttendance {
	return &SetAttendance{
		repo:    repo,
		sales:   sales,
		changes: rec,
	}
}

func (uc *SetAttendance) Execute(ctx context.Context, in SetAttendanceInput) (*Roster, error) {
	people, _, err := LoadRoster(ctx, uc.repo, uc.sales, in.Date)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range people {
		if people[i].Name == in.SalesPerson {
			people[i].IsPresent = in.Present
			found = true
		}
	}
	if !found {
		err := httperr.ErrBusiness("unknown_sales_person")
		uc.changes.Failed(audit.ActionAttendanceSaved, err)
		return nil, err
	}

	if err := uc.repo.SaveAttendance(ctx, in.Date, people); err != nil {
		uc.changes.Failed(audit.ActionAttendanceSaved, err)
		return nil, err
	}

	day := domain.DayKey(in.Date)
	uc.changes.Record(ctx, changes.Change{
		Actor:    in.Actor,
		Action:   audit.ActionAttendanceSaved,
		Entity:   "attendance",
		EntityID: in.SalesPerson,
		Day:      day,
		Kind:     realtime.KindAttendanceSaved,
		Metadata: map[string]any{"date": day, "present": in.Present},
	})

	return newRoster(in.Date, people, true), nil
}
