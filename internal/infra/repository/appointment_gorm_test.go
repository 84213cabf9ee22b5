package repository

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

	"github.com/BruksfildServices01/sales-calendar/internal/db"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
)

var (
	testLoc = time.FixedZone("IST", 5*60*60+30*60)
	testDay = time.Date(2025, 3, 29, 0, 0, 0, 0, testLoc)
	testNow = time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC)
)

func newTestRepo(t *testing.T) *AppointmentGormRepository {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return NewAppointmentGormRepository(gdb, testLoc)
}

func booked(t *testing.T, id string, day time.Time, slot string) *domain.Appointment {
	t.Helper()
	ap, err := domain.Book(domain.BookInput{
		Date:         day,
		Time:         slot,
		SalesPerson:  "Harsha",
		SetterName:   "Vicky",
		InitialPitch: domain.Track10K,
		LeadSource:   domain.LeadSourceAds,
		LeadQuality:  domain.LeadQualityGood,
	}, id, testNow)
	require.NoError(t, err)
	return ap
}

func TestAppointmentRepository_CreateGetUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := booked(t, "a1", testDay, "11:00")
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	got, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, got.Status)
	assert.True(t, domain.SameDay(testDay, got.Date))
	assert.Equal(t, testLoc, got.Date.Location())
	assert.Nil(t, got.Payment)

	require.NoError(t, domain.ApplyStatus(got, domain.StatusUpdate{
		Status:      domain.StatusPaid,
		PitchedType: domain.Track10K,
		PaymentType: domain.Payment10KSplit,
	}, testNow))
	require.NoError(t, repo.UpdateAppointment(ctx, got))

	again, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, again.Payment)
	assert.Equal(t, domain.Payment10KSplit, again.Payment.Code)
	assert.Equal(t, 5000, again.Payment.Amount())
}

func TestAppointmentRepository_NotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetAppointment(ctx, "missing")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	err = repo.DeleteAppointment(ctx, "missing")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestAppointmentRepository_UpdateDoesNotResurrectDeleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateAppointment(ctx, booked(t, "a1", testDay, "11:00")))
	stale, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	require.NoError(t, repo.DeleteAppointment(ctx, "a1"))

	require.NoError(t, domain.ApplyStatus(stale, domain.StatusUpdate{Status: domain.StatusPicked}, testNow))
	err = repo.UpdateAppointment(ctx, stale)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = repo.GetAppointment(ctx, "a1")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestAppointmentRepository_UpdateClearsPayment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := booked(t, "a1", testDay, "11:00")
	require.NoError(t, domain.ApplyStatus(ap, domain.StatusUpdate{
		Status:      domain.StatusPaid,
		PitchedType: domain.Track10K,
		PaymentType: domain.Payment10KFull,
	}, testNow))
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	require.NoError(t, domain.ApplyStatus(ap, domain.StatusUpdate{Status: domain.StatusPicked}, testNow))
	require.NoError(t, repo.UpdateAppointment(ctx, ap))

	got, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPicked, got.Status)
	assert.Nil(t, got.Payment)
}

func TestAppointmentRepository_ListByRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateAppointment(ctx, booked(t, "a1", testDay, "12:00")))
	require.NoError(t, repo.CreateAppointment(ctx, booked(t, "a2", testDay, "11:00")))
	require.NoError(t, repo.CreateAppointment(ctx, booked(t, "a3", testDay.AddDate(0, 0, 1), "11:00")))
	require.NoError(t, repo.CreateAppointment(ctx, booked(t, "a4", testDay.AddDate(0, 1, 0), "11:00")))

	day, err := repo.ListAppointmentsForDay(ctx, testDay)
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "a2", day[0].ID, "ordered by time")

	week, err := repo.ListAppointments(ctx, testDay, testDay.AddDate(0, 0, 6))
	require.NoError(t, err)
	assert.Len(t, week, 3)

	require.NoError(t, repo.DeleteAppointment(ctx, "a1"))
	day, err = repo.ListAppointmentsForDay(ctx, testDay)
	require.NoError(t, err)
	assert.Len(t, day, 1)
}

func TestAppointmentRepository_Reschedule(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	orig := booked(t, "a1", testDay, "11:00")
	require.NoError(t, repo.CreateAppointment(ctx, orig))

	next, err := domain.Reschedule(orig, domain.RescheduleTarget{
		Date:        testDay.AddDate(0, 0, 2),
		Time:        "15:30",
		SalesPerson: "Mani",
	}, "a2", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Reschedule(ctx, orig, next))

	stored, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRescheduled, stored.Status)
	assert.Equal(t, "a2", stored.RescheduledTo)

	moved, err := repo.GetAppointment(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, "a1", moved.ParentID)
	assert.Equal(t, "Mani", moved.SalesPerson)

	// a second reschedule of the same original is refused by the store too
	err = repo.Reschedule(ctx, orig, booked(t, "a3", testDay, "12:00"))
	assert.True(t, httperr.IsBusiness(err, "already_rescheduled"))
}

func TestAppointmentRepository_KeepsUnknownValues(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ap := booked(t, "a1", testDay, "11:00")
	ap.Status = "lost"
	ap.LeadSource = "tiktok"
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	got, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.Status("lost"), got.Status)
	assert.Equal(t, domain.LeadSource("tiktok"), got.LeadSource)
}

func TestAttendance_SaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, found, err := repo.GetAttendance(ctx, testDay)
	require.NoError(t, err)
	assert.False(t, found)

	roster := []domain.SalesPerson{
		{Name: "Tamil", StartTime: "11:00", EndTime: "20:00", IsPresent: true},
		{Name: "Harsha", StartTime: "11:00", EndTime: "20:00", IsPresent: false},
	}
	require.NoError(t, repo.SaveAttendance(ctx, testDay, roster))
	require.NoError(t, repo.SaveAttendance(ctx, testDay, roster))

	got, found, err := repo.GetAttendance(ctx, testDay)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, roster, got)

	_, found, err = repo.GetAttendance(ctx, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUnavailable_Toggle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	key := domain.NewSlotKey("Harsha", "11:00", testDay)
	require.NoError(t, repo.SetUnavailable(ctx, key, true))
	require.NoError(t, repo.SetUnavailable(ctx, key, true))
	require.NoError(t, repo.SetUnavailable(ctx, domain.NewSlotKey("Mani", "12:00", testDay), true))

	slots, err := repo.ListUnavailable(ctx, testDay)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.True(t, slots.IsUnavailable(key))

	require.NoError(t, repo.SetUnavailable(ctx, key, false))
	slots, err = repo.ListUnavailable(ctx, testDay)
	require.NoError(t, err)
	assert.False(t, slots.IsUnavailable(key))
	assert.Equal(t, 1, slots.CountForDay(testDay))
}
