package stats

import (
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

var fixtureDay = time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC)

func paid(t appointment.Track, code appointment.PaymentCode) *appointment.Payment {
	return &appointment.Payment{Track: t, Code: code}
}

// fixtureAppointments is the eight-record scenario the reports are checked
// against: full, split, reduced and second-installment payments, an
// upgrade from 10K to 20K, a no-show and a reschedule of that no-show.
func fixtureAppointments() []appointment.Appointment {
	return []appointment.Appointment{
		{
			ID: "1", Date: fixtureDay, Time: "11:00", SalesPerson: "Harsha",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track10K,
			Payment: paid(appointment.Track10K, appointment.Payment10KFull),
			SetterName: "Vicky", LeadSource: appointment.LeadSourceAds,
			LeadQuality: appointment.LeadQualityBest, InitialPayment: appointment.DepositPaid,
		},
		{
			ID: "2", Date: fixtureDay, Time: "12:00", SalesPerson: "Harsha",
			Status: appointment.StatusDidntPick, InitialPitch: appointment.Track10K,
			SetterName: "Vicky", LeadSource: appointment.LeadSourceAds,
			LeadQuality: appointment.LeadQualityBest, InitialPayment: appointment.DepositUnpaid,
		},
		{
			ID: "3", Date: fixtureDay, Time: "13:00", SalesPerson: "Mani",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track20K,
			Payment: paid(appointment.Track20K, appointment.Payment20KFull),
			SetterName: "Prasanna", LeadSource: appointment.LeadSourceYouTube,
			LeadQuality: appointment.LeadQualityGood, InitialPayment: appointment.DepositPaid,
		},
		{
			ID: "4", Date: fixtureDay, Time: "14:00", SalesPerson: "Harsha",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track10K,
			Payment: paid(appointment.Track20K, appointment.Payment20KFull),
			SetterName: "Vicky", LeadSource: appointment.LeadSourceAds,
			LeadQuality: appointment.LeadQualityBest, InitialPayment: appointment.DepositPaid,
		},
		{
			ID: "5", ParentID: "2", Date: fixtureDay, Time: "15:00", SalesPerson: "Monish",
			Status: appointment.StatusRescheduled, InitialPitch: appointment.Track10K,
			SetterName: "Prasanna", LeadSource: appointment.LeadSourceYouTube,
			LeadQuality: appointment.LeadQualityGood, InitialPayment: appointment.DepositUnpaid,
		},
		{
			ID: "6", Date: fixtureDay, Time: "16:00", SalesPerson: "Harsha",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track10K,
			Payment: paid(appointment.Track10K, appointment.Payment10KSplit),
			SetterName: "Vicky", LeadSource: appointment.LeadSourceAds,
			LeadQuality: appointment.LeadQualityAverage, InitialPayment: appointment.DepositPaid,
		},
		{
			ID: "7", Date: fixtureDay, Time: "17:00", SalesPerson: "Harsha",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track20K,
			Payment: paid(appointment.Track20K, appointment.Payment20KSecond),
			SetterName: "Vicky", LeadSource: appointment.LeadSourceAds,
			LeadQuality: appointment.LeadQualityGood, InitialPayment: appointment.DepositPaid,
		},
		{
			ID: "8", Date: fixtureDay, Time: "18:00", SalesPerson: "Tamil",
			Status: appointment.StatusPaid, InitialPitch: appointment.Track10K,
			Payment: paid(appointment.Track10K, appointment.Payment10KReduced),
			SetterName: "Prasanna", LeadSource: appointment.LeadSourceYouTube,
			LeadQuality: appointment.LeadQualityAverage, InitialPayment: appointment.DepositPaid,
		},
	}
}

func fixtureRoster() []appointment.SalesPerson {
	return []appointment.SalesPerson{
		{Name: "Harsha", StartTime: "11:00", EndTime: "20:00", IsPresent: true},
		{Name: "Mani", StartTime: "11:00", EndTime: "19:00", IsPresent: true},
		{Name: "Monish", StartTime: "17:00", EndTime: "21:00", IsPresent: true},
		{Name: "Pranav", StartTime: "09:30", EndTime: "14:00", IsPresent: true},
		{Name: "Tamil", StartTime: "11:00", EndTime: "20:00", IsPresent: true},
	}
}
