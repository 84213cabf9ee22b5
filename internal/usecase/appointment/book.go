package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/calendar"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Date        time.Time
	Time        string
	SalesPerson string

	SetterName     string
	InitialPitch   domain.Track
	LeadSource     domain.LeadSource
	LeadQuality    domain.LeadQuality
	InitialPayment domain.DepositState

	Name  string
	Phone string
	Notes string

	// Force books into a slot closed as unavailable.
	Force bool
	Actor string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo    domain.Repository
	sales   *config.Sales
	changes *changes.Recorder
	now     func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	sales *config.Sales,
	rec *changes.Recorder,
) *BookAppointment {
	return &BookAppointment{
		repo:    repo,
		sales:   sales,
		changes: rec,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*domain.Appointment, error) {

	ap, err := uc.book(ctx, in)
	if err != nil {
		uc.changes.Failed(audit.ActionAppointmentBooked, err)
		return nil, err
	}

	uc.changes.Record(ctx, changes.Change{
		Actor:    in.Actor,
		Action:   audit.ActionAppointmentBooked,
		Entity:   "appointment",
		EntityID: ap.ID,
		Day:      domain.DayKey(ap.Date),
		Kind:     realtime.KindAppointmentSaved,
		Metadata: map[string]any{
			"sales_person": ap.SalesPerson,
			"time":         ap.Time,
			"setter":       ap.SetterName,
			"forced":       in.Force,
		},
	})

	return ap, nil
}

func (uc *BookAppointment) book(
	ctx context.Context,
	in BookAppointmentInput,
) (*domain.Appointment, error) {

	// --------------------------------------------------
	// Setter must be on the team
	// --------------------------------------------------
	if in.SetterName != "" && !uc.sales.IsSetter(in.SetterName) {
		return nil, httperr.ErrBusiness("unknown_setter")
	}

	// --------------------------------------------------
	// Funnel fields
	// --------------------------------------------------
	ap, err := domain.Book(domain.BookInput{
		Date:           in.Date,
		Time:           in.Time,
		SalesPerson:    in.SalesPerson,
		SetterName:     in.SetterName,
		InitialPitch:   in.InitialPitch,
		LeadSource:     in.LeadSource,
		LeadQuality:    in.LeadQuality,
		InitialPayment: in.InitialPayment,
		Name:           in.Name,
		Phone:          in.Phone,
		Notes:          in.Notes,
	}, uuid.NewString(), uc.now())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Slot
	// --------------------------------------------------
	day, err := calendar.LoadDay(ctx, uc.repo, uc.sales, in.Date)
	if err != nil {
		return nil, err
	}
	if err := day.CheckBookable(in.SalesPerson, in.Time, in.Force, ""); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
