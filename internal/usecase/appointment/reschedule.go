package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/calendar"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

type RescheduleInput struct {
	ID     string
	Target domain.RescheduleTarget
	Force  bool
	Actor  string
}

type RescheduleResult struct {
	Original *domain.Appointment `json:"original"`
	Next     *domain.Appointment `json:"next"`
}

type RescheduleAppointment struct {
	repo    domain.Repository
	sales   *config.Sales
	changes *changes.Recorder
	now     func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	sales *config.Sales,
	rec *changes.Recorder,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:    repo,
		sales:   sales,
		changes: rec,
		now:     time.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*RescheduleResult, error) {

	res, err := uc.reschedule(ctx, in)
	if err != nil {
		uc.changes.Failed(audit.ActionAppointmentRescheduled, err)
		return nil, err
	}

	fromDay := domain.DayKey(res.Original.Date)
	toDay := domain.DayKey(res.Next.Date)

	uc.changes.Record(ctx, changes.Change{
		Actor:    in.Actor,
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "appointment",
		EntityID: res.Original.ID,
		Day:      fromDay,
		Kind:     realtime.KindAppointmentSaved,
		Metadata: map[string]any{
			"next_id":      res.Next.ID,
			"date":         toDay,
			"time":         res.Next.Time,
			"sales_person": res.Next.SalesPerson,
		},
	})
	if toDay != fromDay {
		uc.changes.Notify(ctx, realtime.Event{
			Kind: realtime.KindAppointmentSaved,
			ID:   res.Next.ID,
			Day:  toDay,
		})
	}

	return res, nil
}

func (uc *RescheduleAppointment) reschedule(
	ctx context.Context,
	in RescheduleInput,
) (*RescheduleResult, error) {

	orig, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	next, err := domain.Reschedule(orig, in.Target, uuid.NewString(), uc.now())
	if err != nil {
		return nil, err
	}

	day, err := calendar.LoadDay(ctx, uc.repo, uc.sales, in.Target.Date)
	if err != nil {
		return nil, err
	}
	if err := day.CheckBookable(next.SalesPerson, next.Time, in.Force, orig.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.Reschedule(ctx, orig, next); err != nil {
		return nil, err
	}
	return &RescheduleResult{Original: orig, Next: next}, nil
}
