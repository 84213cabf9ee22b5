package repository

import (
	"time"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/models"
)

func toModel(ap *domain.Appointment) *models.Appointment {
	m := &models.Appointment{
		ID:              ap.ID,
		ParentID:        ap.ParentID,
		Day:             domain.DayKey(ap.Date),
		Time:            ap.Time,
		SalesPerson:     ap.SalesPerson,
		Status:          string(ap.Status),
		InitialPitch:    string(ap.InitialPitch),
		SetterName:      ap.SetterName,
		LeadSource:      string(ap.LeadSource),
		LeadQuality:     string(ap.LeadQuality),
		InitialPayment:  string(ap.InitialPayment),
		Name:            ap.Name,
		Phone:           ap.Phone,
		Notes:           ap.Notes,
		CallNotes:       ap.CallNotes,
		CallLaterAt:     ap.CallLaterAt,
		RescheduledFrom: ap.RescheduledFrom,
		RescheduledTo:   ap.RescheduledTo,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
	if ap.Payment != nil {
		m.PitchedType = string(ap.Payment.Track)
		m.PaymentType = string(ap.Payment.Code)
	}
	return m
}

// toDomain keeps stored values as they are, unknown codes included, so the
// reports can count them as unclassified.
func toDomain(m *models.Appointment, loc *time.Location) domain.Appointment {
	day, err := time.ParseInLocation(domain.DayLayout, m.Day, loc)
	if err != nil {
		day = time.Time{}
	}
	ap := domain.Appointment{
		ID:              m.ID,
		ParentID:        m.ParentID,
		Date:            day,
		Time:            m.Time,
		SalesPerson:     m.SalesPerson,
		Status:          domain.Status(m.Status),
		InitialPitch:    domain.Track(m.InitialPitch),
		SetterName:      m.SetterName,
		LeadSource:      domain.LeadSource(m.LeadSource),
		LeadQuality:     domain.LeadQuality(m.LeadQuality),
		InitialPayment:  domain.DepositState(m.InitialPayment),
		Name:            m.Name,
		Phone:           m.Phone,
		Notes:           m.Notes,
		CallNotes:       m.CallNotes,
		CallLaterAt:     m.CallLaterAt,
		RescheduledFrom: m.RescheduledFrom,
		RescheduledTo:   m.RescheduledTo,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if ap.Status == domain.StatusPaid && (m.PitchedType != "" || m.PaymentType != "") {
		ap.Payment = &domain.Payment{
			Track: domain.Track(m.PitchedType),
			Code:  domain.PaymentCode(m.PaymentType),
		}
	}
	return ap
}

func toDomainList(rows []models.Appointment, loc *time.Location) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(rows))
	for i := range rows {
		out = append(out, toDomain(&rows[i], loc))
	}
	return out
}
