package appointment

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	"github.com/BruksfildServices01/sales-calendar/internal/db"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/infra/repository"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/changes"
)

var testDay = time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)

type fixture struct {
	repo   domain.Repository
	sales  *config.Sales
	rec    *changes.Recorder
	events <-chan realtime.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "appointments.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	broker := realtime.NewMemoryBroker()
	events, cancel, err := broker.Subscribe(context.Background())
	require.NoError(t, err)
	t.Cleanup(cancel)

	return &fixture{
		repo:   repository.NewAppointmentGormRepository(gdb, time.UTC),
		sales:  config.DefaultSales(),
		rec:    &changes.Recorder{Broker: broker},
		events: events,
	}
}

func (f *fixture) nextEvent(t *testing.T) realtime.Event {
	t.Helper()
	select {
	case ev := <-f.events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no change event")
		return realtime.Event{}
	}
}

func validBooking() BookAppointmentInput {
	return BookAppointmentInput{
		Date:         testDay,
		Time:         "11:00",
		SalesPerson:  "Harsha",
		SetterName:   "Vicky",
		InitialPitch: domain.Track10K,
		LeadSource:   domain.LeadSourceAds,
		LeadQuality:  domain.LeadQualityBest,
		Name:         "Lead One",
	}
}

func TestBookAppointment(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.repo, f.sales, f.rec)
	ctx := context.Background()

	ap, err := uc.Execute(ctx, validBooking())
	require.NoError(t, err)
	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, domain.StatusBooked, ap.Status)
	assert.Equal(t, domain.DepositUnpaid, ap.InitialPayment)

	ev := f.nextEvent(t)
	assert.Equal(t, realtime.KindAppointmentSaved, ev.Kind)
	assert.Equal(t, ap.ID, ev.ID)

	stored, err := f.repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lead One", stored.Name)

	_, err = uc.Execute(ctx, validBooking())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestBookAppointment_Rejections(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.repo, f.sales, f.rec)
	ctx := context.Background()

	cases := map[string]func(in *BookAppointmentInput){
		"unknown_setter":       func(in *BookAppointmentInput) { in.SetterName = "Stranger" },
		"missing_setter":       func(in *BookAppointmentInput) { in.SetterName = "" },
		"invalid_time":         func(in *BookAppointmentInput) { in.Time = "11:15" },
		"invalid_lead_source":  func(in *BookAppointmentInput) { in.LeadSource = "tiktok" },
		"invalid_pitch_type":   func(in *BookAppointmentInput) { in.InitialPitch = "50k" },
		"unknown_sales_person": func(in *BookAppointmentInput) { in.SalesPerson = "Nobody" },
	}
	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			in := validBooking()
			mutate(&in)
			_, err := uc.Execute(ctx, in)
			assert.True(t, httperr.IsBusiness(err, code), "got %v", err)
		})
	}
}

func TestBookAppointment_UnavailableNeedsForce(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.repo, f.sales, f.rec)
	ctx := context.Background()

	require.NoError(t, f.repo.SetUnavailable(ctx, domain.NewSlotKey("Harsha", "11:00", testDay), true))

	_, err := uc.Execute(ctx, validBooking())
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	in := validBooking()
	in.Force = true
	_, err = uc.Execute(ctx, in)
	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := NewBookAppointment(f.repo, f.sales, f.rec).Execute(ctx, validBooking())
	require.NoError(t, err)
	f.nextEvent(t)

	uc := NewUpdateStatus(f.repo, f.rec)
	got, err := uc.Execute(ctx, UpdateStatusInput{
		ID: ap.ID,
		Update: domain.StatusUpdate{
			Status:      domain.StatusPaid,
			PitchedType: domain.Track20K,
			PaymentType: domain.Payment20KReduced,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Payment)
	assert.Equal(t, 15000, got.Payment.Amount())
	assert.Equal(t, ap.ID, f.nextEvent(t).ID)

	_, err = uc.Execute(ctx, UpdateStatusInput{
		ID: ap.ID,
		Update: domain.StatusUpdate{
			Status:      domain.StatusPaid,
			PitchedType: domain.Track10K,
			PaymentType: domain.Payment20KReduced,
		},
	})
	assert.True(t, httperr.IsBusiness(err, "payment_type_mismatch"))

	_, err = uc.Execute(ctx, UpdateStatusInput{ID: "missing", Update: domain.StatusUpdate{Status: domain.StatusGhosted}})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestRescheduleAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := NewBookAppointment(f.repo, f.sales, f.rec).Execute(ctx, validBooking())
	require.NoError(t, err)
	f.nextEvent(t)

	uc := NewRescheduleAppointment(f.repo, f.sales, f.rec)
	res, err := uc.Execute(ctx, RescheduleInput{
		ID: ap.ID,
		Target: domain.RescheduleTarget{
			Date:        testDay.AddDate(0, 0, 1),
			Time:        "12:00",
			SalesPerson: "Mani",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRescheduled, res.Original.Status)
	assert.Equal(t, ap.ID, res.Next.ParentID)

	assert.Equal(t, "2025-03-29", f.nextEvent(t).Day)
	assert.Equal(t, "2025-03-30", f.nextEvent(t).Day)

	_, err = uc.Execute(ctx, RescheduleInput{
		ID:     ap.ID,
		Target: domain.RescheduleTarget{Date: testDay, Time: "13:00", SalesPerson: "Mani"},
	})
	assert.True(t, httperr.IsBusiness(err, "already_rescheduled"))

	_, err = uc.Execute(ctx, RescheduleInput{
		ID:     res.Next.ID,
		Target: domain.RescheduleTarget{Date: testDay.AddDate(0, 0, 1), Time: "12:00", SalesPerson: "Mani"},
	})
	assert.NoError(t, err, "moving within its own cell is allowed")
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := NewBookAppointment(f.repo, f.sales, f.rec).Execute(ctx, validBooking())
	require.NoError(t, err)
	f.nextEvent(t)

	uc := NewDeleteAppointment(f.repo, f.rec)
	require.NoError(t, uc.Execute(ctx, ap.ID, "manager"))
	assert.Equal(t, realtime.KindAppointmentDeleted, f.nextEvent(t).Kind)

	err = uc.Execute(ctx, ap.ID, "manager")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = NewBookAppointment(f.repo, f.sales, f.rec).Execute(ctx, validBooking())
	assert.NoError(t, err, "cleared slot can be booked again")
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	book := NewBookAppointment(f.repo, f.sales, f.rec)

	bookings := []struct {
		date   time.Time
		person string
	}{
		{testDay, "Harsha"},
		{testDay, "Tamil"},
		{testDay.AddDate(0, 0, -5), "Harsha"},
		{testDay.AddDate(0, 1, 0), "Harsha"},
	}
	for _, b := range bookings {
		in := validBooking()
		in.Date = b.date
		in.SalesPerson = b.person
		_, err := book.Execute(ctx, in)
		require.NoError(t, err)
	}

	day, err := NewListAppointmentsByDate(f.repo).Execute(ctx, testDay)
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "2025-03-29", day[0].Date)
	assert.Equal(t, "Booked", day[0].StatusLabel)

	month, err := NewListAppointmentsByMonth(f.repo, time.UTC).Execute(ctx, 2025, 3)
	require.NoError(t, err)
	assert.Len(t, month, 3)

	_, err = NewListAppointmentsByMonth(f.repo, time.UTC).Execute(ctx, 2025, 13)
	assert.True(t, httperr.IsBusiness(err, "invalid_month"))
}
