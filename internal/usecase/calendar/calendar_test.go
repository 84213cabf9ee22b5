package calendar

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

func newRepo(t *testing.T) domain.Repository {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "calendar.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return repository.NewAppointmentGormRepository(gdb, time.UTC)
}

func book(t *testing.T, repo domain.Repository, id, person, slot string) *domain.Appointment {
	t.Helper()
	ap, err := domain.Book(domain.BookInput{
		Date:         testDay,
		Time:         slot,
		SalesPerson:  person,
		SetterName:   "Vicky",
		InitialPitch: domain.Track20K,
		LeadSource:   domain.LeadSourceAds,
		LeadQuality:  domain.LeadQualityBest,
	}, id, testDay)
	require.NoError(t, err)
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestGetRoster_DefaultsUntilSaved(t *testing.T) {
	repo := newRepo(t)
	sales := config.DefaultSales()
	ctx := context.Background()

	r, err := NewGetRoster(repo, sales).Execute(ctx, testDay)
	require.NoError(t, err)
	assert.False(t, r.Saved)
	assert.Len(t, r.People, 5)
	assert.Equal(t, 69, r.TotalSlots)

	_, err = NewSetAttendance(repo, sales, nil).Execute(ctx, SetAttendanceInput{
		Date:        testDay,
		SalesPerson: "Harsha",
		Present:     false,
	})
	require.NoError(t, err)

	r, err = NewGetRoster(repo, sales).Execute(ctx, testDay)
	require.NoError(t, err)
	assert.True(t, r.Saved)
	assert.Equal(t, 51, r.TotalSlots)
	assert.Zero(t, r.People[0].Capacity)

	other, err := NewGetRoster(repo, sales).Execute(ctx, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 69, other.TotalSlots, "attendance is per day")
}

func TestSetAttendance_KeepsEarlierChanges(t *testing.T) {
	repo := newRepo(t)
	sales := config.DefaultSales()
	uc := NewSetAttendance(repo, sales, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, SetAttendanceInput{Date: testDay, SalesPerson: "Mani", Present: false})
	require.NoError(t, err)
	r, err := uc.Execute(ctx, SetAttendanceInput{Date: testDay, SalesPerson: "Monish", Present: false})
	require.NoError(t, err)

	assert.Equal(t, 69-16-8, r.TotalSlots)

	_, err = uc.Execute(ctx, SetAttendanceInput{Date: testDay, SalesPerson: "Nobody"})
	assert.True(t, httperr.IsBusiness(err, "unknown_sales_person"))
}

func TestToggleUnavailable(t *testing.T) {
	repo := newRepo(t)
	sales := config.DefaultSales()
	sales.Blocked = []config.BlockedSlot{{SalesPerson: "Mani", Time: "13:00"}}

	broker := realtime.NewMemoryBroker()
	events, cancel, err := broker.Subscribe(context.Background())
	require.NoError(t, err)
	defer cancel()

	uc := NewToggleUnavailable(repo, sales, &changes.Recorder{Broker: broker})
	ctx := context.Background()
	in := ToggleUnavailableInput{Date: testDay, Time: "11:00", SalesPerson: "Harsha"}

	state, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.True(t, state.Unavailable)

	select {
	case ev := <-events:
		assert.Equal(t, realtime.KindSlotToggled, ev.Kind)
		assert.Equal(t, "2025-03-29", ev.Day)
	case <-time.After(time.Second):
		t.Fatal("no change event")
	}

	state, err = uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.False(t, state.Unavailable)

	_, err = uc.Execute(ctx, ToggleUnavailableInput{Date: testDay, Time: "13:00", SalesPerson: "Mani"})
	assert.True(t, httperr.IsBusiness(err, "slot_always_blocked"))

	_, err = uc.Execute(ctx, ToggleUnavailableInput{Date: testDay, Time: "13:15", SalesPerson: "Mani"})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = uc.Execute(ctx, ToggleUnavailableInput{Date: testDay, Time: "13:00", SalesPerson: "Nobody"})
	assert.True(t, httperr.IsBusiness(err, "unknown_sales_person"))
}

func TestLoadDay_MergesBlockedAndStored(t *testing.T) {
	repo := newRepo(t)
	sales := config.DefaultSales()
	sales.Blocked = []config.BlockedSlot{{SalesPerson: "Mani", Time: "13:00"}}
	ctx := context.Background()

	require.NoError(t, repo.SetUnavailable(ctx, domain.NewSlotKey("Tamil", "15:00", testDay), true))

	day, err := LoadDay(ctx, repo, sales, testDay)
	require.NoError(t, err)
	assert.Equal(t, 2, day.Unavailable.CountForDay(testDay))

	assert.True(t, httperr.IsBusiness(day.CheckBookable("Tamil", "15:00", false, ""), "slot_unavailable"))
	assert.NoError(t, day.CheckBookable("Tamil", "15:00", true, ""))
}

func TestCheckBookable_SlotTaken(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	book(t, repo, "a1", "Harsha", "11:00")

	day, err := LoadDay(ctx, repo, config.DefaultSales(), testDay)
	require.NoError(t, err)

	assert.True(t, httperr.IsBusiness(day.CheckBookable("Harsha", "11:00", true, ""), "slot_taken"))
	assert.NoError(t, day.CheckBookable("Harsha", "11:00", false, "a1"))
	assert.NoError(t, day.CheckBookable("Harsha", "11:30", false, ""))
}

func TestGetCalendar_Grid(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	orig := book(t, repo, "a1", "Harsha", "11:00")
	next, err := domain.Reschedule(orig, domain.RescheduleTarget{
		Date:        testDay,
		Time:        "11:00",
		SalesPerson: "Harsha",
	}, "a2", testDay)
	require.NoError(t, err)
	require.NoError(t, repo.Reschedule(ctx, orig, next))

	g, err := NewGetCalendar(repo, config.DefaultSales()).Execute(ctx, testDay)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-29", g.Date)
	require.Len(t, g.Rows, 24)
	assert.Equal(t, "09:00", g.Rows[0].Time)
	assert.Equal(t, "20:30", g.Rows[23].Time)

	pranav := 3
	assert.False(t, g.Rows[0].Cells[pranav].Working)
	assert.True(t, g.Rows[1].Cells[pranav].Working)

	cell := g.Rows[4].Cells[0]
	assert.Equal(t, "Harsha", cell.SalesPerson)
	require.NotNil(t, cell.Appointment)
	assert.Equal(t, "a2", cell.Appointment.ID)
	assert.Equal(t, []string{"a1"}, cell.Superseded)
	assert.NotEmpty(t, cell.StatusColor)
}
