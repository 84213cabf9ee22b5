package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/models"
)

type AppointmentGormRepository struct {
	db  *gorm.DB
	loc *time.Location
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

// NewAppointmentGormRepository reads stored days as midnight in loc.
func NewAppointmentGormRepository(db *gorm.DB, loc *time.Location) *AppointmentGormRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentGormRepository{db: db, loc: loc}
}

// --------------------------------------------------
// Appointment (create / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *domain.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(toModel(ap)).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*domain.Appointment, error) {

	var m models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	ap := toDomain(&m, r.loc)
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *domain.Appointment,
) error {
	m := toModel(ap)
	// Select("*") writes cleared fields too; unlike Save it never inserts.
	res := r.db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if res.Error != nil {
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return fmt.Errorf("delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) Reschedule(
	ctx context.Context,
	orig *domain.Appointment,
	next *domain.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orig.ID).
			First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("appointment_not_found")
			}
			return err
		}
		if current.Status == string(domain.StatusRescheduled) {
			return httperr.ErrBusiness("already_rescheduled")
		}

		if err := tx.Save(toModel(orig)).Error; err != nil {
			return fmt.Errorf("save rescheduled original: %w", err)
		}
		if err := tx.Create(toModel(next)).Error; err != nil {
			return fmt.Errorf("create rescheduled appointment: %w", err)
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (reads)
// --------------------------------------------------

// ListAppointments returns every record whose day lies in [from, to].
func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]domain.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", domain.DayKey(from), domain.DayKey(to)).
		Order("day ASC, time ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return toDomainList(rows, r.loc), nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	day time.Time,
) ([]domain.Appointment, error) {
	return r.ListAppointments(ctx, day, day)
}
