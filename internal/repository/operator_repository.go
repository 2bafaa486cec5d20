package repository

import (
	"time"

	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OperatorRepository interface {
	GetAll(search string) ([]model.Operator, error)
	GetByID(id uint) (*model.Operator, error)
	Create(op *model.Operator) error
	Update(op *model.Operator) error
	Delete(id uint) error
	SetStatus(id uint, status string, now time.Time) error
	UpsertByEmail(op *model.Operator) error
	CountByStatus() (map[string]int64, error)
}

type operatorRepository struct {
	db *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db}
}

func (r *operatorRepository) GetAll(search string) ([]model.Operator, error) {
	var ops []model.Operator
	query := r.db.Preload("Department").Order("name asc")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR employee_id LIKE ?", pattern, pattern, pattern)
	}
	err := query.Find(&ops).Error
	return ops, err
}

func (r *operatorRepository) GetByID(id uint) (*model.Operator, error) {
	var op model.Operator
	if err := r.db.Preload("Department").First(&op, id).Error; err != nil {
		return nil, apperr.FromDB(err, "operator not found", "")
	}
	return &op, nil
}

func (r *operatorRepository) Create(op *model.Operator) error {
	return apperr.FromDB(r.db.Create(op).Error, "", "email or employee id already exists")
}

func (r *operatorRepository) Update(op *model.Operator) error {
	return apperr.FromDB(r.db.Save(op).Error, "operator not found", "email or employee id already exists")
}

// Delete removes the operator together with its shift assignments and
// attendance logs in one transaction.
func (r *operatorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("operator_id = ?", id).Delete(&model.ShiftAssignment{}).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}
		if err := tx.Where("operator_id = ?", id).Delete(&model.AttendanceLog{}).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}
		// performance snapshots reference the operator and must go too
		if err := tx.Where("operator_id = ?", id).Delete(&model.StationPerformance{}).Error; err != nil {
			return apperr.FromDB(err, "", "")
		}
		res := tx.Delete(&model.Operator{}, id)
		if res.Error != nil {
			return apperr.FromDB(res.Error, "", "")
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("operator not found")
		}
		return nil
	})
}

func (r *operatorRepository) SetStatus(id uint, status string, now time.Time) error {
	res := r.db.Model(&model.Operator{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "last_active": now})
	if res.Error != nil {
		return apperr.FromDB(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("operator not found")
	}
	return nil
}

// UpsertByEmail inserts the operator or, when the email already exists,
// overwrites name, employee id, department and skill level in place. The
// import flow is authoritative on conflict.
func (r *operatorRepository) UpsertByEmail(op *model.Operator) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "employee_id", "department_id", "skill_level", "updated_at"}),
	}).Create(op).Error
	return apperr.FromDB(err, "", "employee id already exists")
}

func (r *operatorRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.Operator{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{model.StatusOnline: 0, model.StatusOffline: 0, model.StatusOnBreak: 0}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
