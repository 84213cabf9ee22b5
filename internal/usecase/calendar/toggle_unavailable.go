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

type ToggleUnavailableInput struct {
	Date        time.Time
	Time        string
	SalesPerson string
	Actor       string
}

type SlotState struct {
	domain.SlotKey
	Unavailable bool `json:"unavailable"`
}

type ToggleUnavailable struct {
	repo    domain.Repository
	sales   *config.Sales
	changes *changes.Recorder
}

func NewToggleUnavailable(
	repo domain.Repository,
	sales *config.Sales,
	rec *changes.Recorder,
) *ToggleUnavailable {
	return &ToggleUnavailable{
		repo:    repo,
		sales:   sales,
		changes: rec,
	}
}

// Execute flips the slot between open and closed. Slots blocked in the
// sales config stay closed.
func (uc *ToggleUnavailable) Execute(ctx context.Context, in ToggleUnavailableInput) (*SlotState, error) {
	state, err := uc.toggle(ctx, in)
	if err != nil {
		uc.changes.Failed(audit.ActionSlotToggled, err)
		return nil, err
	}

	uc.changes.Record(ctx, changes.Change{
		Actor:    in.Actor,
		Action:   audit.ActionSlotToggled,
		Entity:   "slot",
		EntityID: state.String(),
		Day:      state.Day,
		Kind:     realtime.KindSlotToggled,
		Metadata: state,
	})
	return state, nil
}

func (uc *ToggleUnavailable) toggle(ctx context.Context, in ToggleUnavailableInput) (*SlotState, error) {
	if !domain.IsSlotTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	roster, _, err := LoadRoster(ctx, uc.repo, uc.sales, in.Date)
	if err != nil {
		return nil, err
	}
	if _, ok := domain.FindSalesPerson(roster, in.SalesPerson); !ok {
		return nil, httperr.ErrBusiness("unknown_sales_person")
	}

	key := domain.NewSlotKey(in.SalesPerson, in.Time, in.Date)
	if uc.sales.BlockedFor(key.Day).IsUnavailable(key) {
		return nil, httperr.ErrBusiness("slot_always_blocked")
	}

	stored, err := uc.repo.ListUnavailable(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	next := !stored.IsUnavailable(key)
	if err := uc.repo.SetUnavailable(ctx, key, next); err != nil {
		return nil, err
	}

	return &SlotState{SlotKey: key, Unavailable: next}, nil
}
