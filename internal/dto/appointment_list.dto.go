package dto

import (
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
)

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SalesPerson string `json:"sales_person"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	SetterName  string `json:"setter_name"`
	LeadSource  string `json:"lead_source"`
	LeadQuality string `json:"lead_quality,omitempty"`
	PitchType   string `json:"initial_pitch_type"`
	PaymentType string `json:"payment_type,omitempty"`
	Amount      int    `json:"amount"`
	Name        string `json:"name,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

func FromAppointment(ap domain.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:          ap.ID,
		Date:        domain.DayKey(ap.Date),
		Time:        ap.Time,
		SalesPerson: ap.SalesPerson,
		Status:      string(ap.Status),
		StatusLabel: ap.Status.Label(),
		StatusColor: ap.Status.Color(),
		SetterName:  ap.SetterName,
		LeadSource:  string(ap.LeadSource),
		LeadQuality: string(ap.LeadQuality),
		PitchType:   string(ap.InitialPitch),
		Name:        ap.Name,
		ParentID:    ap.ParentID,
	}
	if ap.Payment != nil {
		out.PaymentType = string(ap.Payment.Code)
		out.Amount = ap.Payment.Amount()
	}
	return out
}

func FromAppointments(apps []domain.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
