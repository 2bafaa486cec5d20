package repository

import (
	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository interface {
	Assign(a *model.ShiftAssignment) error
	Delete(id uint) error
	GetByDate(date string) ([]model.ShiftAssignment, error)
	GetByOperatorAndDate(operatorID uint, date string) (*model.ShiftAssignment, error)
	CountByShiftAndDate(shiftID uint, date string) (int64, error)
	CountOccupiedByLine(date string) (map[uint]int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db}
}

// Assign upserts on the (shift, operator, date) key: an existing assignment
// gets its station updated in place, last writer wins. Capacity is not
// checked here; a shift's capacity is informational only.
func (r *assignmentRepository) Assign(a *model.ShiftAssignment) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shift_id"}, {Name: "operator_id"}, {Name: "assigned_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"station_id", "updated_at"}),
	}).Create(a).Error
	return apperr.FromDB(err, "", "assignment already exists")
}

func (r *assignmentRepository) Delete(id uint) error {
	res := r.db.Delete(&model.ShiftAssignment{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("assignment not found")
	}
	return nil
}

func (r *assignmentRepository) GetByDate(date string) ([]model.ShiftAssignment, error) {
	var assignments []model.ShiftAssignment
	err := r.db.Preload("Shift").Preload("Operator").Preload("Station").
		Where("assigned_date = ?", date).
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) GetByOperatorAndDate(operatorID uint, date string) (*model.ShiftAssignment, error) {
	var a model.ShiftAssignment
	err := r.db.Preload("Shift").Preload("Station").
		Where("operator_id = ? AND assigned_date = ?", operatorID, date).
		Limit(1).Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, apperr.NotFound("no assignment for operator on this date")
	}
	return &a, nil
}

func (r *assignmentRepository) CountByShiftAndDate(shiftID uint, date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ShiftAssignment{}).
		Where("shift_id = ? AND assigned_date = ?", shiftID, date).
		Count(&count).Error
	return count, err
}

// CountOccupiedByLine reports, per production line, how many distinct stations
// have an operator assigned on the given date.
func (r *assignmentRepository) CountOccupiedByLine(date string) (map[uint]int64, error) {
	var rows []struct {
		LineID   uint
		Occupied int64
	}
	err := r.db.Table("shift_assignments").
		Select("stations.line_id AS line_id, COUNT(DISTINCT shift_assignments.station_id) AS occupied").
		Joins("JOIN stations ON stations.id = shift_assignments.station_id").
		Where("shift_assignments.assigned_date = ?", date).
		Group("stations.line_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	occupied := make(map[uint]int64, len(rows))
	for _, row := range rows {
		occupied[row.LineID] = row.Occupied
	}
	return occupied, nil
}
