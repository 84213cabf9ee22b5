package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/models"
)

// --------------------------------------------------
// Attendance
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAttendance(
	ctx context.Context,
	day time.Time,
) ([]domain.SalesPerson, bool, error) {

	var rows []models.Attendance
	if err := r.db.WithContext(ctx).
		Where("day = ?", domain.DayKey(day)).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("get attendance: %w", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	roster := make([]domain.SalesPerson, 0, len(rows))
	for _, row := range rows {
		roster = append(roster, domain.SalesPerson{
			Name:      row.SalesPerson,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			IsPresent: row.IsPresent,
		})
	}
	return roster, true, nil
}

// SaveAttendance replaces the whole roster saved for day.
func (r *AppointmentGormRepository) SaveAttendance(
	ctx context.Context,
	day time.Time,
	roster []domain.SalesPerson,
) error {
	key := domain.DayKey(day)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("day = ?", key).
			Delete(&models.Attendance{}).Error; err != nil {
			return fmt.Errorf("clear attendance: %w", err)
		}
		if len(roster) == 0 {
			return nil
		}

		rows := make([]models.Attendance, 0, len(roster))
		for i, p := range roster {
			rows = append(rows, models.Attendance{
				Day:         key,
				SalesPerson: p.Name,
				StartTime:   p.StartTime,
				EndTime:     p.EndTime,
				IsPresent:   p.IsPresent,
				Position:    i,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("save attendance: %w", err)
		}
		return nil
	})
}

// --------------------------------------------------
// Unavailable slots
// --------------------------------------------------

func (r *AppointmentGormRepository) ListUnavailable(
	ctx context.Context,
	day time.Time,
) (domain.UnavailableSlots, error) {

	var rows []models.UnavailableSlot
	if err := r.db.WithContext(ctx).
		Where("day = ?", domain.DayKey(day)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list unavailable slots: %w", err)
	}

	out := make(domain.UnavailableSlots, len(rows))
	for _, row := range rows {
		out[domain.SlotKey{SalesPerson: row.SalesPerson, Time: row.Time, Day: row.Day}] = true
	}
	return out, nil
}

func (r *AppointmentGormRepository) SetUnavailable(
	ctx context.Context,
	key domain.SlotKey,
	unavailable bool,
) error {
	db := r.db.WithContext(ctx)

	if !unavailable {
		if err := db.
			Where("day = ? AND time = ? AND sales_person = ?", key.Day, key.Time, key.SalesPerson).
			Delete(&models.UnavailableSlot{}).Error; err != nil {
			return fmt.Errorf("clear unavailable slot: %w", err)
		}
		return nil
	}

	row := models.UnavailableSlot{
		Day:         key.Day,
		Time:        key.Time,
		SalesPerson: key.SalesPerson,
	}
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("mark unavailable slot: %w", err)
	}
	return nil
}
