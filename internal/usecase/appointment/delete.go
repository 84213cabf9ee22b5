package appointment

import (
	"context"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

// DeleteAppointment clears a slot. The record is removed, not cancelled.
type DeleteAppointment struct {
	repo    domain.Repository
	changes *changes.Recorder
}

func NewDeleteAppointment(
	repo domain.Repository,
	rec *changes.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:    repo,
		changes: rec,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id string,
	actor string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err == nil {
		err = uc.repo.DeleteAppointment(ctx, id)
	}
	if err != nil {
		uc.changes.Failed(audit.ActionAppointmentDeleted, err)
		return err
	}

	uc.changes.Record(ctx, changes.Change{
		Actor:    actor,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: ap.ID,
		Day:      domain.DayKey(ap.Date),
		Kind:     realtime.KindAppointmentDeleted,
		Metadata: map[string]any{
			"sales_person": ap.SalesPerson,
			"time":         ap.Time,
			"status":       ap.Status,
		},
	})
	return nil
}
