package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func bookedFixture(t *testing.T) *Appointment {
	t.Helper()
	ap, err := Book(BookInput{
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:         "11:00",
		SalesPerson:  "Harsha",
		SetterName:   "Vicky",
		InitialPitch: Track20K,
		LeadSource:   LeadSourceAds,
		LeadQuality:  LeadQualityBest,
		Name:         "Lead",
		Phone:        "9999999999",
	}, "ap-1", testNow)
	require.NoError(t, err)
	return ap
}

func TestBook_DefaultsToBookedAndUnpaid(t *testing.T) {
	ap := bookedFixture(t)

	assert.Equal(t, StatusBooked, ap.Status)
	assert.Equal(t, DepositUnpaid, ap.InitialPayment)
	assert.Nil(t, ap.Payment)
	assert.Equal(t, Booked{}, ap.Stage())
	assert.True(t, ap.IsActive())
}

func TestBook_RejectsInvalidInput(t *testing.T) {
	base := BookInput{
		Time:         "11:00",
		SalesPerson:  "Harsha",
		SetterName:   "Vicky",
		InitialPitch: Track10K,
		LeadSource:   LeadSourceYouTube,
	}

	cases := []struct {
		name   string
		mutate func(*BookInput)
		code   string
	}{
		{"off-grid time", func(in *BookInput) { in.Time = "11:15" }, "invalid_time"},
		{"after hours", func(in *BookInput) { in.Time = "21:00" }, "invalid_time"},
		{"no salesperson", func(in *BookInput) { in.SalesPerson = " " }, "missing_sales_person"},
		{"no setter", func(in *BookInput) { in.SetterName = "" }, "missing_setter"},
		{"bad pitch", func(in *BookInput) { in.InitialPitch = "50k_pitched" }, "invalid_pitch_type"},
		{"bad source", func(in *BookInput) { in.LeadSource = "tiktok" }, "invalid_lead_source"},
		{"bad quality", func(in *BookInput) { in.LeadQuality = "poor" }, "invalid_lead_quality"},
		{"bad deposit", func(in *BookInput) { in.InitialPayment = "partial" }, "invalid_initial_payment"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := Book(in, "x", testNow)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestApplyStatus_PaidRequiresMatchingTrack(t *testing.T) {
	ap := bookedFixture(t)

	err := ApplyStatus(ap, StatusUpdate{
		Status:      StatusPaid,
		PitchedType: Track10K,
		PaymentType: Payment20KFull,
	}, testNow)
	assert.True(t, httperr.IsBusiness(err, "payment_type_mismatch"))
	assert.Equal(t, StatusBooked, ap.Status)

	err = ApplyStatus(ap, StatusUpdate{
		Status:      StatusPaid,
		PitchedType: Track20K,
		PaymentType: "25k",
	}, testNow)
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_type"))

	err = ApplyStatus(ap, StatusUpdate{
		Status:      StatusPaid,
		PitchedType: Track20K,
		PaymentType: Payment20KReduced,
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, &Payment{Track: Track20K, Code: Payment20KReduced}, ap.Payment)
	assert.Equal(t, 15000, ap.Payment.Amount())
	assert.True(t, ap.PaidOn(Track20K))
	assert.True(t, ap.PitchedOn(Track20K))
	assert.Equal(t, Paid{Payment: *ap.Payment}, ap.Stage())
}

func TestApplyStatus_ClearsFieldsForOtherStatuses(t *testing.T) {
	ap := bookedFixture(t)
	later := testNow.Add(48 * time.Hour)

	require.NoError(t, ApplyStatus(ap, StatusUpdate{
		Status:      StatusCallLater,
		CallLaterAt: &later,
		CallNotes:   "ignored",
	}, testNow))
	assert.Equal(t, &later, ap.CallLaterAt)
	assert.Empty(t, ap.CallNotes)
	assert.Equal(t, NoShow{Status: StatusCallLater}, ap.Stage())

	require.NoError(t, ApplyStatus(ap, StatusUpdate{
		Status:      StatusPitched10K,
		CallLaterAt: &later,
		CallNotes:   "wants EMI",
	}, testNow))
	assert.Nil(t, ap.CallLaterAt)
	assert.Equal(t, "wants EMI", ap.CallNotes)
	assert.Equal(t, Pitched{Track: Track10K}, ap.Stage())

	require.NoError(t, ApplyStatus(ap, StatusUpdate{
		Status:      StatusPaid,
		PitchedType: Track10K,
		PaymentType: Payment10KFull,
	}, testNow))
	require.NoError(t, ApplyStatus(ap, StatusUpdate{Status: StatusGhosted}, testNow))
	assert.Nil(t, ap.Payment)
	assert.Empty(t, ap.PaymentCode())
	assert.Equal(t, Engaged{Status: StatusGhosted}, ap.Stage())
}

func TestApplyStatus_RefusesReschedule(t *testing.T) {
	ap := bookedFixture(t)

	err := ApplyStatus(ap, StatusUpdate{Status: StatusRescheduled}, testNow)
	assert.True(t, httperr.IsBusiness(err, "use_reschedule"))

	err = ApplyStatus(ap, StatusUpdate{Status: "lost"}, testNow)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestReschedule_SupersedesOriginal(t *testing.T) {
	orig := bookedFixture(t)
	require.NoError(t, ApplyStatus(orig, StatusUpdate{
		Status:      StatusPaid,
		PitchedType: Track20K,
		PaymentType: Payment20KFull,
	}, testNow))

	target := RescheduleTarget{
		Date:        time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Time:        "17:30",
		SalesPerson: "Monish",
	}
	next, err := Reschedule(orig, target, "ap-2", testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusRescheduled, orig.Status)
	assert.Equal(t, "ap-2", orig.RescheduledTo)
	assert.Nil(t, orig.Payment)
	assert.False(t, orig.IsActive())
	assert.Equal(t, Rescheduled{To: "ap-2"}, orig.Stage())

	assert.Equal(t, "ap-2", next.ID)
	assert.Equal(t, "ap-1", next.ParentID)
	assert.Equal(t, "ap-1", next.RescheduledFrom)
	assert.Equal(t, StatusBooked, next.Status)
	assert.Nil(t, next.Payment)
	assert.Equal(t, "17:30", next.Time)
	assert.Equal(t, "Monish", next.SalesPerson)
	assert.Equal(t, orig.SetterName, next.SetterName)
	assert.Equal(t, orig.LeadSource, next.LeadSource)
	assert.Equal(t, orig.InitialPitch, next.InitialPitch)

	_, err = Reschedule(orig, target, "ap-3", testNow)
	assert.True(t, httperr.IsBusiness(err, "already_rescheduled"))

	err = ApplyStatus(orig, StatusUpdate{Status: StatusPicked}, testNow)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestStage_UnknownStatusIsUnclassified(t *testing.T) {
	ap := Appointment{Status: "lost"}
	assert.Equal(t, Unclassified{Status: "lost"}, ap.Stage())

	paidWithoutPayment := Appointment{Status: StatusPaid}
	assert.Equal(t, "unclassified", paidWithoutPayment.Stage().Kind())
}
