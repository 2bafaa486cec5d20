package repository

import (
	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll() ([]model.Shift, error)
	GetByID(id uint) (*model.Shift, error)
	Create(shift *model.Shift) error
	Update(shift *model.Shift) error
	Delete(id uint) error
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) GetAll() ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.Order("start_time asc").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetByID(id uint) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.First(&shift, id).Error; err != nil {
		return nil, apperr.FromDB(err, "shift not found", "")
	}
	return &shift, nil
}

func (r *shiftRepository) Create(shift *model.Shift) error {
	return apperr.FromDB(r.db.Create(shift).Error, "", "shift already exists")
}

func (r *shiftRepository) Update(shift *model.Shift) error {
	return apperr.FromDB(r.db.Save(shift).Error, "shift not found", "shift already exists")
}

func (r *shiftRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Shift{}, id)
	if res.Error != nil {
		return apperr.FromDB(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("shift not found")
	}
	return nil
}
