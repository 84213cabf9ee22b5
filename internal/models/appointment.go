package models

import "time"

type Appointment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ParentID string `gorm:"size:36;index" json:"parent_id"`

	Day         string `gorm:"size:10;not null;index:idx_appointments_day_slot" json:"day"`
	Time        string `gorm:"size:5;not null;index:idx_appointments_day_slot" json:"time"`
	SalesPerson string `gorm:"size:80;not null;index:idx_appointments_day_slot" json:"sales_person"`

	Status       string `gorm:"size:20;default:'booked'" json:"status"`
	InitialPitch string `gorm:"size:20" json:"initial_pitch_type"`
	PitchedType  string `gorm:"size:20" json:"pitched_type"`
	PaymentType  string `gorm:"size:20" json:"payment_type"`

	SetterName     string `gorm:"size:80;index" json:"setter_name"`
	LeadSource     string `gorm:"size:20" json:"lead_source"`
	LeadQuality    string `gorm:"size:20" json:"lead_quality"`
	InitialPayment string `gorm:"size:10;default:'unpaid'" json:"initial_payment"`

	Name        string     `gorm:"size:120" json:"name"`
	Phone       string     `gorm:"size:30" json:"phone"`
	Notes       string     `gorm:"type:text" json:"notes"`
	CallNotes   string     `gorm:"type:text" json:"call_notes"`
	CallLaterAt *time.Time `json:"call_later_at"`

	RescheduledFrom string `gorm:"size:36" json:"rescheduled_from"`
	RescheduledTo   string `gorm:"size:36" json:"rescheduled_to"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attendance is one roster row for one day. A day with no rows falls back
// to the configured default roster.
type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day         string `gorm:"size:10;not null;uniqueIndex:idx_attendance_day_person" json:"day"`
	SalesPerson string `gorm:"size:80;not null;uniqueIndex:idx_attendance_day_person" json:"sales_person"`
	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	IsPresent   bool   `json:"is_present"`
	Position    int    `json:"position"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type UnavailableSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day         string `gorm:"size:10;not null;uniqueIndex:idx_unavailable_slot" json:"day"`
	Time        string `gorm:"size:5;not null;uniqueIndex:idx_unavailable_slot" json:"time"`
	SalesPerson string `gorm:"size:80;not null;uniqueIndex:idx_unavailable_slot" json:"sales_person"`

	CreatedAt time.Time `json:"created_at"`
}
