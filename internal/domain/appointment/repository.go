package appointment

import (
	"context"
	"time"
)

type Repository interface {
	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// Reschedule persists the superseded original and its replacement together.
	Reschedule(
		ctx context.Context,
		orig *Appointment,
		next *Appointment,
	) error

	// -------- Appointment (reads) --------
	ListAppointments(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		day time.Time,
	) ([]Appointment, error)

	// -------- Attendance --------
	// GetAttendance returns found=false when nothing was saved for the day.
	GetAttendance(
		ctx context.Context,
		day time.Time,
	) (roster []SalesPerson, found bool, err error)

	SaveAttendance(
		ctx context.Context,
		day time.Time,
		roster []SalesPerson,
	) error

	// -------- Unavailable slots --------
	ListUnavailable(
		ctx context.Context,
		day time.Time,
	) (UnavailableSlots, error)

	SetUnavailable(
		ctx context.Context,
		key SlotKey,
		unavailable bool,
	) error
}
