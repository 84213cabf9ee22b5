package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
)

// Day is everything stored about one calendar date.
type Day struct {
	Date         time.Time
	Roster       []domain.SalesPerson
	RosterSaved  bool
	Unavailable  domain.UnavailableSlots
	Appointments []domain.Appointment
}

// LoadRoster returns the attendance saved for day, or the configured roster
// when nothing was saved yet.
func LoadRoster(
	ctx context.Context,
	repo domain.Repository,
	sales *config.Sales,
	day time.Time,
) ([]domain.SalesPerson, bool, error) {

	roster, found, err := repo.GetAttendance(ctx, day)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return sales.RosterCopy(), false, nil
	}
	return roster, true, nil
}

// LoadUnavailable merges the configured blocked slots with those closed by hand.
func LoadUnavailable(
	ctx context.Context,
	repo domain.Repository,
	sales *config.Sales,
	day time.Time,
) (domain.UnavailableSlots, error) {

	stored, err := repo.ListUnavailable(ctx, day)
	if err != nil {
		return nil, err
	}
	out := sales.BlockedFor(domain.DayKey(day))
	for k, v := range stored {
		if v {
			out[k] = true
		}
	}
	return out, nil
}

func LoadDay(
	ctx context.Context,
	repo domain.Repository,
	sales *config.Sales,
	day time.Time,
) (*Day, error) {

	roster, saved, err := LoadRoster(ctx, repo, sales, day)
	if err != nil {
		return nil, err
	}
	unavailable, err := LoadUnavailable(ctx, repo, sales, day)
	if err != nil {
		return nil, err
	}
	apps, err := repo.ListAppointmentsForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	return &Day{
		Date:         day,
		Roster:       roster,
		RosterSaved:  saved,
		Unavailable:  unavailable,
		Appointments: apps,
	}, nil
}

// Occupant returns the live appointment in a salesperson's slot, if any.
func (d *Day) Occupant(salesPerson, slot string) (*domain.Appointment, bool) {
	for i := range d.Appointments {
		ap := &d.Appointments[i]
		if ap.IsActive() && ap.SalesPerson == salesPerson && ap.Time == slot {
			return ap, true
		}
	}
	return nil, false
}

// CheckBookable rejects slots that cannot take a new appointment. force
// overrides a slot closed as unavailable, nothing else. ignoreID skips the
// record being moved.
func (d *Day) CheckBookable(salesPerson, slot string, force bool, ignoreID string) error {
	if _, ok := domain.FindSalesPerson(d.Roster, salesPerson); !ok {
		return httperr.ErrBusiness("unknown_sales_person")
	}
	if !domain.IsSlotTime(slot) {
		return httperr.ErrBusiness("invalid_time")
	}
	if !force && d.Unavailable.IsUnavailable(domain.NewSlotKey(salesPerson, slot, d.Date)) {
		return httperr.ErrBusiness("slot_unavailable")
	}
	if ap, taken := d.Occupant(salesPerson, slot); taken && ap.ID != ignoreID {
		return httperr.ErrBusiness("slot_taken")
	}
	return nil
}
