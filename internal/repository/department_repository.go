package repository

import (
	"factory-floor-backend/internal/apperr"
	"factory-floor-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	GetAll() ([]model.Department, error)
	GetByID(id uint) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
	Create(dept *model.Department) error
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) GetAll() ([]model.Department, error) {
	var depts []model.Department
	err := r.db.Order("name asc").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) GetByID(id uint) (*model.Department, error) {
	var dept model.Department
	if err := r.db.First(&dept, id).Error; err != nil {
		return nil, apperr.FromDB(err, "department not found", "")
	}
	return &dept, nil
}

// FindByName resolves a department by case-insensitive exact name match.
func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var dept model.Department
	err := r.db.Where("LOWER(name) = LOWER(?)", name).Limit(1).Find(&dept).Error
	if err != nil {
		return nil, err
	}
	if dept.ID == 0 {
		return nil, apperr.NotFound("department not found")
	}
	return &dept, nil
}

func (r *departmentRepository) Create(dept *model.Department) error {
	return apperr.FromDB(r.db.Create(dept).Error, "", "department name already exists")
}
