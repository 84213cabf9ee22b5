package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

type UpdateStatusInput struct {
	ID     string
	Update domain.StatusUpdate
	Actor  string
}

type UpdateStatus struct {
	repo    domain.Repository
	changes *changes.Recorder
	now     func() time.Time
}

func NewUpdateStatus(
	repo domain.Repository,
	rec *changes.Recorder,
) *UpdateStatus {
	return &UpdateStatus{
		repo:    repo,
		changes: rec,
		now:     time.Now,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*domain.Appointment, error) {

	ap, from, err := uc.apply(ctx, in)
	if err != nil {
		uc.changes.Failed(audit.ActionAppointmentStatus, err)
		return nil, err
	}

	meta := map[string]any{
		"from": from,
		"to":   ap.Status,
	}
	if ap.Payment != nil {
		meta["payment_type"] = ap.Payment.Code
	}

	uc.changes.Record(ctx, changes.Change{
		Actor:    in.Actor,
		Action:   audit.ActionAppointmentStatus,
		Entity:   "appointment",
		EntityID: ap.ID,
		Day:      domain.DayKey(ap.Date),
		Kind:     realtime.KindAppointmentSaved,
		Metadata: meta,
	})

	return ap, nil
}

func (uc *UpdateStatus) apply(
	ctx context.Context,
	in UpdateStatusInput,
) (*domain.Appointment, domain.Status, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, "", err
	}

	from := ap.Status
	if err := domain.ApplyStatus(ap, in.Update, uc.now()); err != nil {
		return nil, "", err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, "", err
	}
	return ap, from, nil
}
