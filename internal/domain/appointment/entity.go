package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
)

// Appointment is one booked call. Payment is set only while Status is paid;
// the domain actions below are the only writers that keep it that way.
type Appointment struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`

	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	SalesPerson string    `json:"sales_person"`

	Status       Status   `json:"status"`
	InitialPitch Track    `json:"initial_pitch_type"`
	Payment      *Payment `json:"payment,omitempty"`

	SetterName     string       `json:"setter_name"`
	LeadSource     LeadSource   `json:"lead_source"`
	LeadQuality    LeadQuality  `json:"lead_quality,omitempty"`
	InitialPayment DepositState `json:"initial_payment"`

	Name        string     `json:"name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CallNotes   string     `json:"call_notes,omitempty"`
	CallLaterAt *time.Time `json:"call_later_at,omitempty"`

	RescheduledFrom string `json:"rescheduled_from,omitempty"`
	RescheduledTo   string `json:"rescheduled_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive is false once the appointment has been superseded by a reschedule.
func (a Appointment) IsActive() bool {
	return a.Status != StatusRescheduled
}

// PitchedTrack is the track actually pitched: the pitched status itself, or
// the final track of a paid appointment.
func (a Appointment) PitchedTrack() (Track, bool) {
	if t, ok := a.Status.PitchTrack(); ok {
		return t, true
	}
	if a.Status == StatusPaid && a.Payment != nil {
		return a.Payment.Track, true
	}
	return "", false
}

func (a Appointment) PitchedOn(t Track) bool {
	pt, ok := a.PitchedTrack()
	return ok && pt == t
}

func (a Appointment) PaidOn(t Track) bool {
	return a.Status == StatusPaid && a.Payment != nil && a.Payment.Track == t
}

// PaymentCode is empty unless the appointment is paid.
func (a Appointment) PaymentCode() PaymentCode {
	if a.Status != StatusPaid || a.Payment == nil {
		return ""
	}
	return a.Payment.Code
}

// ===============================
// Funnel stage
// ===============================

// Stage is the funnel position of an appointment together with the payload
// that position carries.
type Stage interface {
	Kind() string
}

type (
	Booked      struct{}
	Pitched     struct{ Track Track }
	Paid        struct{ Payment Payment }
	Engaged     struct{ Status Status }
	NoShow      struct{ Status Status }
	Rescheduled struct{ To string }
	// Unclassified holds records whose status is outside the enumeration or
	// inconsistent with its payload.
	Unclassified struct{ Status Status }
)

func (Booked) Kind() string       { return "booked" }
func (Pitched) Kind() string      { return "pitched" }
func (Paid) Kind() string         { return "paid" }
func (Engaged) Kind() string      { return "engaged" }
func (NoShow) Kind() string       { return "no_show" }
func (Rescheduled) Kind() string  { return "rescheduled" }
func (Unclassified) Kind() string { return "unclassified" }

func (a Appointment) Stage() Stage {
	switch {
	case a.Status == StatusBooked:
		return Booked{}
	case a.Status == StatusPaid:
		if a.Payment == nil {
			return Unclassified{Status: a.Status}
		}
		return Paid{Payment: *a.Payment}
	case a.Status == StatusRescheduled:
		return Rescheduled{To: a.RescheduledTo}
	case a.Status.IsNoShow():
		return NoShow{Status: a.Status}
	}
	if t, ok := a.Status.PitchTrack(); ok {
		return Pitched{Track: t}
	}
	if a.Status.IsShowUp() {
		return Engaged{Status: a.Status}
	}
	return Unclassified{Status: a.Status}
}

// ===============================
// Domain Actions
// ===============================

type BookInput struct {
	Date        time.Time
	Time        string
	SalesPerson string

	SetterName     string
	InitialPitch   Track
	LeadSource     LeadSource
	LeadQuality    LeadQuality
	InitialPayment DepositState

	Name  string
	Phone string
	Notes string
}

// Book creates a new appointment in the booked state.
func Book(in BookInput, id string, now time.Time) (*Appointment, error) {
	if strings.TrimSpace(in.SalesPerson) == "" {
		return nil, httperr.ErrBusiness("missing_sales_person")
	}
	if strings.TrimSpace(in.SetterName) == "" {
		return nil, httperr.ErrBusiness("missing_setter")
	}
	if !IsSlotTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !in.InitialPitch.Valid() {
		return nil, httperr.ErrBusiness("invalid_pitch_type")
	}
	if !in.LeadSource.Valid() {
		return nil, httperr.ErrBusiness("invalid_lead_source")
	}
	if in.LeadQuality != "" && !in.LeadQuality.Valid() {
		return nil, httperr.ErrBusiness("invalid_lead_quality")
	}

	deposit := in.InitialPayment
	if deposit == "" {
		deposit = DepositUnpaid
	}
	if !deposit.Valid() {
		return nil, httperr.ErrBusiness("invalid_initial_payment")
	}

	return &Appointment{
		ID:             id,
		Date:           in.Date,
		Time:           in.Time,
		SalesPerson:    in.SalesPerson,
		Status:         StatusBooked,
		InitialPitch:   in.InitialPitch,
		SetterName:     in.SetterName,
		LeadSource:     in.LeadSource,
		LeadQuality:    in.LeadQuality,
		InitialPayment: deposit,
		Name:           in.Name,
		Phone:          in.Phone,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

type StatusUpdate struct {
	Status      Status
	CallLaterAt *time.Time
	CallNotes   string
	PitchedType Track
	PaymentType PaymentCode
}

// ApplyStatus moves the appointment through the funnel. Fields that do not
// belong to the new status are cleared.
func ApplyStatus(ap *Appointment, u StatusUpdate, now time.Time) error {
	if ap.Status == StatusRescheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	if !u.Status.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if u.Status == StatusRescheduled {
		return httperr.ErrBusiness("use_reschedule")
	}

	var payment *Payment
	if u.Status == StatusPaid {
		if !u.PitchedType.Valid() {
			return httperr.ErrBusiness("invalid_pitched_type")
		}
		if !u.PaymentType.Valid() {
			return httperr.ErrBusiness("invalid_payment_type")
		}
		if !u.PitchedType.Accepts(u.PaymentType) {
			return httperr.ErrBusiness("payment_type_mismatch")
		}
		payment = &Payment{Track: u.PitchedType, Code: u.PaymentType}
	}

	ap.Status = u.Status
	ap.Payment = payment

	ap.CallLaterAt = nil
	if u.Status == StatusCallLater {
		ap.CallLaterAt = u.CallLaterAt
	}

	ap.CallNotes = ""
	if _, pitched := u.Status.PitchTrack(); pitched {
		ap.CallNotes = u.CallNotes
	}

	ap.UpdatedAt = now
	return nil
}

type RescheduleTarget struct {
	Date        time.Time
	Time        string
	SalesPerson string
}

// Reschedule supersedes orig and returns the record that replaces it. The
// original keeps its identity and is marked rescheduled; the new record
// points back through ParentID.
func Reschedule(
	orig *Appointment,
	target RescheduleTarget,
	newID string,
	now time.Time,
) (*Appointment, error) {
	if orig.Status == StatusRescheduled {
		return nil, httperr.ErrBusiness("already_rescheduled")
	}
	if strings.TrimSpace(target.SalesPerson) == "" {
		return nil, httperr.ErrBusiness("missing_sales_person")
	}
	if !IsSlotTime(target.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	next := *orig
	next.ID = newID
	next.ParentID = orig.ID
	next.RescheduledFrom = orig.ID
	next.RescheduledTo = ""
	next.Date = target.Date
	next.Time = target.Time
	next.SalesPerson = target.SalesPerson
	next.Status = StatusBooked
	next.Payment = nil
	next.CallLaterAt = nil
	next.CallNotes = ""
	next.CreatedAt = now
	next.UpdatedAt = now

	orig.Status = StatusRescheduled
	orig.RescheduledTo = newID
	orig.Payment = nil
	orig.CallLaterAt = nil
	orig.UpdatedAt = now

	return &next, nil
}
