package repository

import (
	"errors"
	"math"
	"time"

	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	ClockIn(operatorID, shiftID uint, now time.Time) (*model.AttendanceLog, error)
	ClockOut(operatorID uint, now time.Time) (*model.AttendanceLog, error)
	GetByDate(operatorID uint, date string) (*model.AttendanceLog, error)
	GetHistory(operatorID uint) ([]model.AttendanceLog, error)
	CountByStatus(date string) (map[string]int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// ClockIn records the start of the operator's day. Valid transitions per
// (operator, date): no record -> clocked in, or a pre-seeded absent record
// (null clock_in) filled in place. A record with a clock-in already set is
// rejected with AlreadyClockedIn. The attendance write and the operator
// status write happen in one transaction.
func (r *attendanceRepository) ClockIn(operatorID, shiftID uint, now time.Time) (*model.AttendanceLog, error) {
	date := now.Format("2006-01-02")
	var entry model.AttendanceLog

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceLog
		if err := tx.Where("operator_id = ? AND date = ?", operatorID, date).
			Limit(1).Find(&existing).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}

		switch {
		case existing.ID != 0 && existing.ClockIn != nil:
			return apperr.AlreadyClockedIn()
		case existing.ID != 0:
			// pre-seeded absent record: fill it in, never insert a duplicate
			existing.ClockIn = &now
			existing.Status = model.AttendancePresent
			existing.ShiftID = &shiftID
			if err := tx.Save(&existing).Error; err != nil {
				return apperr.FromDB(err, "", "")
			}
			entry = existing
		default:
			entry = model.AttendanceLog{
				OperatorID: operatorID,
				Date:       date,
				ShiftID:    &shiftID,
				ClockIn:    &now,
				Status:     model.AttendancePresent,
			}
			if err := tx.Create(&entry).Error; err != nil {
				// a concurrent clock-in won the race on the (operator, date) index
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperr.AlreadyClockedIn()
				}
				return apperr.FromDB(err, "", "")
			}
		}

		return setOperatorStatus(tx, operatorID, model.StatusOnline, now)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ClockOut closes the open attendance record. Today's record is checked
// first; if today has none, an open record from yesterday is accepted so a
// shift crossing midnight can still be closed. Total hours come from the two
// timestamps rounded to two decimals.
func (r *attendanceRepository) ClockOut(operatorID uint, now time.Time) (*model.AttendanceLog, error) {
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	var entry model.AttendanceLog

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceLog
		if err := tx.Where("operator_id = ? AND date = ?", operatorID, today).
			Limit(1).Find(&existing).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}

		if existing.ID == 0 || existing.ClockIn == nil {
			var prev model.AttendanceLog
			if err := tx.Where("operator_id = ? AND date = ?", operatorID, yesterday).
				Limit(1).Find(&prev).Error; err != nil {
				return apperr.FromDB(err, "", "")
			}
			if prev.ID == 0 || prev.ClockIn == nil || prev.ClockOut != nil {
				return apperr.NoActiveClockIn()
			}
			existing = prev
		}

		if existing.ClockOut != nil {
			return apperr.NoActiveClockIn()
		}

		total := now.Sub(*existing.ClockIn).Hours()
		existing.ClockOut = &now
		existing.TotalHours = math.Round(total*100) / 100
		if err := tx.Save(&existing).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}
		entry = existing

		return setOperatorStatus(tx, operatorID, model.StatusOffline, now)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func setOperatorStatus(tx *gorm.DB, operatorID uint, status string, now time.Time) error {
	res := tx.Model(&model.Operator{}).Where("id = ?", operatorID).
		Updates(map[string]interface{}{"status": status, "last_active": now})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("operator not found")
	}
	return nil
}

func (r *attendanceRepository) GetByDate(operatorID uint, date string) (*model.AttendanceLog, error) {
	var entry model.AttendanceLog
	err := r.db.Preload("Shift").
		Where("operator_id = ? AND date = ?", operatorID, date).
		Limit(1).Find(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, apperr.NotFound("no attendance record for operator on this date")
	}
	return &entry, nil
}

func (r *attendanceRepository) GetHistory(operatorID uint) ([]model.AttendanceLog, error) {
	var history []model.AttendanceLog
	err := r.db.Preload("Shift").
		Where("operator_id = ?", operatorID).
		Order("date desc").
		Find(&history).Error
	return history, err
}

func (r *attendanceRepository) CountByStatus(date string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.AttendanceLog{}).
		Select("status, COUNT(*) AS count").
		Where("date = ?", date).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{model.AttendancePresent: 0, model.AttendanceAbsent: 0}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
